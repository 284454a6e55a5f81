package pack

import (
	"fmt"
	"math"

	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
	"github.com/meshpack/meshpack/geom"
)

// writeCursor tracks the write position inside a caller-owned output region
// and bounds-checks every scalar before it is written.
type writeCursor struct {
	buf    []byte
	engine endian.EndianEngine
	off    int
}

func (c *writeCursor) fits(n int) bool {
	return c.off+n <= len(c.buf)
}

func (c *writeCursor) putUint8(v uint8) bool {
	if !c.fits(1) {
		return false
	}
	c.buf[c.off] = v
	c.off++

	return true
}

func (c *writeCursor) putUint16(v uint16) bool {
	if !c.fits(2) {
		return false
	}
	c.engine.PutUint16(c.buf[c.off:], v)
	c.off += 2

	return true
}

func (c *writeCursor) putUint32(v uint32) bool {
	if !c.fits(4) {
		return false
	}
	c.engine.PutUint32(c.buf[c.off:], v)
	c.off += 4

	return true
}

func (c *writeCursor) putUint64(v uint64) bool {
	if !c.fits(8) {
		return false
	}
	c.engine.PutUint64(c.buf[c.off:], v)
	c.off += 8

	return true
}

// PackMesh serializes a decoded mesh into the caller-owned output region.
//
// The index block is written first, each point index narrowed to the width
// chosen by SelectIndexWidth (indices beyond the width's range truncate
// silently; they are a precondition violation, not detected here). Attribute
// value blocks follow in ascending unique-ID order, every component written
// in the attribute's native scalar width. The write is all or nothing: on
// any failure the returned count is 0 and the buffer contents are
// unspecified.
//
// PackMesh performs no allocation and never retains a reference to out.
//
// Parameters:
//   - mesh: Decoded mesh handle
//   - out: Caller-allocated output region, at least BufferSize bytes
//   - opts: Optional pack configuration (byte order)
//
// Returns:
//   - int: Total bytes written, equal to the corresponding config's
//     BufferSize on success
//   - error: errs.ErrInvalidGeometry, errs.ErrBufferTooSmall, or
//     errs.ErrUnsupportedScalarType
func PackMesh(mesh *geom.Geometry, out []byte, opts ...Option) (int, error) {
	cfg, err := newPackConfig(opts...)
	if err != nil {
		return 0, err
	}
	if mesh == nil || !mesh.IsMesh() {
		return 0, errs.ErrInvalidGeometry
	}

	cur := &writeCursor{buf: out, engine: cfg.engine}

	indexCount := mesh.FaceCount() * 3
	if err := packIndices(cur, mesh, SelectIndexWidth(indexCount)); err != nil {
		return 0, err
	}

	for _, attr := range OrderAttributes(mesh) {
		if err := packAttribute(cur, attr, mesh.PointCount()); err != nil {
			return 0, fmt.Errorf("attribute %d: %w", attr.UniqueID(), err)
		}
	}

	return cur.off, nil
}

// packIndices writes every face's point indices narrowed to the given width.
func packIndices(cur *writeCursor, mesh *geom.Geometry, width uint32) error {
	faceCount := mesh.FaceCount()

	if width == 2 {
		for i := uint32(0); i < faceCount; i++ {
			face := mesh.Face(i)
			for _, idx := range face {
				if !cur.putUint16(uint16(idx)) { //nolint: gosec
					return errs.ErrBufferTooSmall
				}
			}
		}

		return nil
	}

	for i := uint32(0); i < faceCount; i++ {
		face := mesh.Face(i)
		for _, idx := range face {
			if !cur.putUint32(idx) {
				return errs.ErrBufferTooSmall
			}
		}
	}

	return nil
}

// packAttribute writes one attribute's value block, one point at a time, in
// the attribute's native scalar width.
func packAttribute(cur *writeCursor, attr *geom.Attribute, pointCount uint32) error {
	dim := int(attr.Dim())

	switch attr.ScalarType() {
	case format.TypeInt8:
		var v [4]int8
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint8(uint8(v[k])) { //nolint: gosec
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeUInt8:
		var v [4]uint8
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint8(v[k]) {
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeInt16:
		var v [4]int16
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint16(uint16(v[k])) { //nolint: gosec
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeUInt16:
		var v [4]uint16
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint16(v[k]) {
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeInt32:
		var v [4]int32
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint32(uint32(v[k])) { //nolint: gosec
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeUInt32:
		var v [4]uint32
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint32(v[k]) {
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeFloat32:
		var v [4]float32
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint32(math.Float32bits(v[k])) {
					return errs.ErrBufferTooSmall
				}
			}
		}
	case format.TypeFloat64:
		var v [4]float64
		for p := uint32(0); p < pointCount; p++ {
			if err := geom.Values(attr, p, v[:dim]); err != nil {
				return err
			}
			for k := 0; k < dim; k++ {
				if !cur.putUint64(math.Float64bits(v[k])) {
					return errs.ErrBufferTooSmall
				}
			}
		}
	default:
		return errs.ErrUnsupportedScalarType
	}

	return nil
}
