package geom

import (
	"math"

	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

// Scalar is the closed set of component types an attribute can store or be
// converted to.
//
// The constraint deliberately uses exact types (no type approximation) so the
// scalar type of a value slice can be recovered with a type switch.
type Scalar interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Geometry is a decoded mesh or point cloud.
//
// Geometries are produced by Decode and are immutable afterwards. Packing
// reads from a Geometry but never writes to it, so read-only use from
// multiple goroutines is safe as long as each operates on its own handle or
// the handle is fully decoded before being shared.
type Geometry struct {
	attrs      []*Attribute
	faces      []uint32 // 3 point indices per face, nil for point clouds
	pointCount uint32
	faceCount  uint32
	kind       format.GeometryKind
}

// Kind returns the geometry kind (mesh or point cloud).
func (g *Geometry) Kind() format.GeometryKind {
	return g.kind
}

// IsMesh reports whether the geometry is a triangulated mesh.
func (g *Geometry) IsMesh() bool {
	return g.kind == format.KindMesh
}

// PointCount returns the number of points (vertices) in the geometry.
func (g *Geometry) PointCount() uint32 {
	return g.pointCount
}

// FaceCount returns the number of triangular faces. Always 0 for point clouds.
func (g *Geometry) FaceCount() uint32 {
	return g.faceCount
}

// Face returns the three point indices of face i in traversal order.
// The face index must be less than FaceCount.
func (g *Geometry) Face(i uint32) [3]uint32 {
	base := i * 3
	return [3]uint32{g.faces[base], g.faces[base+1], g.faces[base+2]}
}

// NumAttributes returns the number of attributes in the geometry.
func (g *Geometry) NumAttributes() int {
	return len(g.attrs)
}

// Attribute returns the attribute at position i in container storage order.
// Storage order carries no meaning; use pack.OrderAttributes for the
// deterministic unique-ID order.
func (g *Geometry) Attribute(i int) *Attribute {
	return g.attrs[i]
}

// Attributes returns the attributes in container storage order.
// The returned slice is a copy; the attributes themselves are shared.
func (g *Geometry) Attributes() []*Attribute {
	attrs := make([]*Attribute, len(g.attrs))
	copy(attrs, g.attrs)

	return attrs
}

// NamedAttribute returns the first attribute with the given semantic, or nil
// if the geometry has none.
func (g *Geometry) NamedAttribute(semantic format.Semantic) *Attribute {
	for _, attr := range g.attrs {
		if attr.semantic == semantic {
			return attr
		}
	}

	return nil
}

// Attribute is a typed, fixed-dimensionality per-point data channel of a
// decoded geometry (positions, normals, colors, ...).
type Attribute struct {
	values     []byte // dim * pointCount tightly packed components
	engine     endian.EndianEngine
	pointCount uint32
	uniqueID   uint32
	scalarType format.ScalarType
	dim        uint8
	semantic   format.Semantic
}

// UniqueID returns the caller-assigned identifier, unique within the
// geometry and stable across decodes of the same container.
func (a *Attribute) UniqueID() uint32 {
	return a.uniqueID
}

// ScalarType returns the native component scalar type.
func (a *Attribute) ScalarType() format.ScalarType {
	return a.scalarType
}

// Dim returns the number of components per point (1-4).
func (a *Attribute) Dim() uint8 {
	return a.dim
}

// Semantic returns the channel semantic.
func (a *Attribute) Semantic() format.Semantic {
	return a.semantic
}

// ByteLength returns the total byte length of the attribute's value block.
func (a *Attribute) ByteLength() int {
	return len(a.values)
}

// Values converts the components of the given point to type T.
//
// Up to min(len(dst), Dim()) components are converted from the attribute's
// native scalar type into dst. Conversion follows Go numeric conversion
// rules (truncation toward zero for float to int, silent narrowing for
// mismatched ranges), matching how a GPU-facing consumer reinterprets
// channels.
//
// Parameters:
//   - a: Attribute to read from
//   - point: Point index in [0, PointCount)
//   - dst: Destination slice for converted components
//
// Returns:
//   - error: errs.ErrPointIndexOutOfRange or errs.ErrUnsupportedScalarType
func Values[T Scalar](a *Attribute, point uint32, dst []T) error {
	if point >= a.pointCount {
		return errs.ErrPointIndexOutOfRange
	}

	width := a.scalarType.ByteWidth()
	if width == 0 {
		return errs.ErrUnsupportedScalarType
	}

	n := int(a.dim)
	if len(dst) < n {
		n = len(dst)
	}

	base := int(point) * int(a.dim) * width
	for k := 0; k < n; k++ {
		off := base + k*width
		switch a.scalarType {
		case format.TypeInt8:
			dst[k] = T(int8(a.values[off]))
		case format.TypeUInt8:
			dst[k] = T(a.values[off])
		case format.TypeInt16:
			dst[k] = T(int16(a.engine.Uint16(a.values[off : off+2])))
		case format.TypeUInt16:
			dst[k] = T(a.engine.Uint16(a.values[off : off+2]))
		case format.TypeInt32:
			dst[k] = T(int32(a.engine.Uint32(a.values[off : off+4])))
		case format.TypeUInt32:
			dst[k] = T(a.engine.Uint32(a.values[off : off+4]))
		case format.TypeFloat32:
			dst[k] = T(math.Float32frombits(a.engine.Uint32(a.values[off : off+4])))
		case format.TypeFloat64:
			dst[k] = T(math.Float64frombits(a.engine.Uint64(a.values[off : off+8])))
		default:
			return errs.ErrUnsupportedScalarType
		}
	}

	return nil
}
