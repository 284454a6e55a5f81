package format

import "github.com/meshpack/meshpack/errs"

type (
	ScalarType      uint8
	CompressionType uint8
	GeometryKind    uint8
	Semantic        uint8
)

const (
	TypeInt8    ScalarType = 0x0 // TypeInt8 represents a signed 8-bit integer component.
	TypeUInt8   ScalarType = 0x1 // TypeUInt8 represents an unsigned 8-bit integer component.
	TypeInt16   ScalarType = 0x2 // TypeInt16 represents a signed 16-bit integer component.
	TypeUInt16  ScalarType = 0x3 // TypeUInt16 represents an unsigned 16-bit integer component.
	TypeInt32   ScalarType = 0x4 // TypeInt32 represents a signed 32-bit integer component.
	TypeUInt32  ScalarType = 0x5 // TypeUInt32 represents an unsigned 32-bit integer component.
	TypeFloat32 ScalarType = 0x6 // TypeFloat32 represents a 32-bit floating point component.
	TypeFloat64 ScalarType = 0x7 // TypeFloat64 represents a 64-bit floating point component.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no payload compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindMesh       GeometryKind = 0x1 // KindMesh represents triangulated mesh geometry.
	KindPointCloud GeometryKind = 0x2 // KindPointCloud represents point cloud geometry.

	SemanticGeneric  Semantic = 0x0 // SemanticGeneric represents an untyped data channel.
	SemanticPosition Semantic = 0x1 // SemanticPosition represents vertex positions.
	SemanticNormal   Semantic = 0x2 // SemanticNormal represents vertex normals.
	SemanticColor    Semantic = 0x3 // SemanticColor represents vertex colors.
	SemanticTexCoord Semantic = 0x4 // SemanticTexCoord represents texture coordinates.
)

// ByteWidth returns the width in bytes of a single component of this scalar
// type. It returns 0 for any value outside the closed enumeration; callers
// that need to reject unknown types should use Tag or Valid instead.
func (t ScalarType) ByteWidth() int {
	switch t {
	case TypeInt8, TypeUInt8:
		return 1
	case TypeInt16, TypeUInt16:
		return 2
	case TypeInt32, TypeUInt32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Tag returns the stable descriptor tag for this scalar type.
//
// The tag space is total over the closed enumeration: every supported scalar
// type, including Float64, has a distinct tag equal to its own constant
// value. Unknown types are reported as errs.ErrUnsupportedScalarType rather
// than mislabeled.
//
// Returns:
//   - uint8: Descriptor tag (0-7)
//   - error: errs.ErrUnsupportedScalarType for values outside the enumeration
func (t ScalarType) Tag() (uint8, error) {
	if !t.Valid() {
		return 0, errs.ErrUnsupportedScalarType
	}

	return uint8(t), nil
}

// Valid reports whether the scalar type is a member of the closed enumeration.
func (t ScalarType) Valid() bool {
	return t <= TypeFloat64
}

func (t ScalarType) String() string {
	switch t {
	case TypeInt8:
		return "Int8"
	case TypeUInt8:
		return "UInt8"
	case TypeInt16:
		return "Int16"
	case TypeUInt16:
		return "UInt16"
	case TypeInt32:
		return "Int32"
	case TypeUInt32:
		return "UInt32"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k GeometryKind) String() string {
	switch k {
	case KindMesh:
		return "Mesh"
	case KindPointCloud:
		return "PointCloud"
	default:
		return "Unknown"
	}
}

func (s Semantic) String() string {
	switch s {
	case SemanticGeneric:
		return "Generic"
	case SemanticPosition:
		return "Position"
	case SemanticNormal:
		return "Normal"
	case SemanticColor:
		return "Color"
	case SemanticTexCoord:
		return "TexCoord"
	default:
		return "Unknown"
	}
}
