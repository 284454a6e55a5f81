package geom

import (
	"fmt"
	"math"

	"github.com/meshpack/meshpack/compress"
	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/internal/collision"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
	"github.com/meshpack/meshpack/internal/hash"
	"github.com/meshpack/meshpack/internal/options"
	"github.com/meshpack/meshpack/internal/pool"
	"github.com/meshpack/meshpack/section"
)

// Builder assembles a geometry container from raw face and attribute data.
//
// A Builder is not safe for concurrent use and is not reusable: after Finish
// returns, create a new Builder for the next container.
type Builder struct {
	engine      endian.EndianEngine
	faces       []uint32
	entries     []section.AttributeEntry
	blocks      [][]byte
	ids         *collision.Tracker
	pointCount  uint32
	kind        format.GeometryKind
	compression format.CompressionType
	checksum    bool
}

// BuilderOption represents a functional option for configuring a Builder.
type BuilderOption = options.Option[*Builder]

// WithEngine sets the byte order for the container payload.
// The default is little-endian.
func WithEngine(engine endian.EndianEngine) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.engine = engine
	})
}

// WithCompression sets the payload compression type.
// The default is no compression.
func WithCompression(ct format.CompressionType) BuilderOption {
	return options.New(func(b *Builder) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		b.compression = ct

		return nil
	})
}

// WithChecksum enables or disables the payload checksum in the header.
// The default is enabled.
func WithChecksum(enabled bool) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.checksum = enabled
	})
}

// NewBuilder creates a Builder for a geometry of the given kind and point count.
//
// Parameters:
//   - kind: format.KindMesh or format.KindPointCloud
//   - pointCount: Number of points (vertices) in the geometry
//   - opts: Optional builder configuration
//
// Returns:
//   - *Builder: New builder instance
//   - error: ErrInvalidGeometryKind or option errors
func NewBuilder(kind format.GeometryKind, pointCount uint32, opts ...BuilderOption) (*Builder, error) {
	if kind != format.KindMesh && kind != format.KindPointCloud {
		return nil, errs.ErrInvalidGeometryKind
	}

	b := &Builder{
		engine:      endian.GetLittleEndianEngine(),
		ids:         collision.NewTracker(),
		pointCount:  pointCount,
		kind:        kind,
		compression: format.CompressionNone,
		checksum:    true,
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// AddFace appends one triangular face with the given point indices.
//
// Returns:
//   - error: ErrInvalidGeometryKind for point clouds, or
//     ErrPointIndexOutOfRange if an index is not below the point count
func (b *Builder) AddFace(i0, i1, i2 uint32) error {
	if b.kind != format.KindMesh {
		return errs.ErrInvalidGeometryKind
	}
	for _, idx := range [3]uint32{i0, i1, i2} {
		if idx >= b.pointCount {
			return fmt.Errorf("face index %d with %d points: %w", idx, b.pointCount, errs.ErrPointIndexOutOfRange)
		}
	}

	b.faces = append(b.faces, i0, i1, i2)

	return nil
}

// AddAttribute appends a per-point attribute to the builder.
//
// The scalar type is inferred from T. The values slice must hold exactly
// dim components per point, point-major.
//
// Parameters:
//   - b: Builder to append to
//   - uniqueID: Identifier, unique within this geometry
//   - semantic: Channel semantic (position, normal, ...)
//   - dim: Components per point (1-4)
//   - values: dim * pointCount components in point-major order
//
// Returns:
//   - error: ErrInvalidComponentCount, ErrValueCountMismatch, or
//     ErrDuplicateAttributeID
func AddAttribute[T Scalar](b *Builder, uniqueID uint32, semantic format.Semantic, dim uint8, values []T) error {
	if err := validateAttribute(b, dim, len(values)); err != nil {
		return err
	}
	if err := b.ids.TrackID(uniqueID); err != nil {
		return fmt.Errorf("attribute id %d: %w", uniqueID, err)
	}

	appendAttribute(b, uniqueID, semantic, dim, values)

	return nil
}

// AddNamedAttribute appends a per-point attribute identified by a producer
// name instead of a raw ID. The unique ID is derived by hashing the name;
// two distinct names that hash to the same ID are rejected, since the
// container stores only IDs and cannot disambiguate them later.
//
// Parameters:
//   - b: Builder to append to
//   - name: Non-empty attribute name ("position", "uv0", ...)
//   - semantic: Channel semantic (position, normal, ...)
//   - dim: Components per point (1-4)
//   - values: dim * pointCount components in point-major order
//
// Returns:
//   - error: ErrInvalidAttributeName, ErrAttributeIDCollision, or the
//     AddAttribute validation errors
func AddNamedAttribute[T Scalar](b *Builder, name string, semantic format.Semantic, dim uint8, values []T) error {
	if err := validateAttribute(b, dim, len(values)); err != nil {
		return err
	}

	uniqueID := hash.ID(name)
	if err := b.ids.TrackName(name, uniqueID); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	appendAttribute(b, uniqueID, semantic, dim, values)

	return nil
}

func validateAttribute(b *Builder, dim uint8, valueCount int) error {
	if dim < 1 || dim > section.MaxComponentCount {
		return errs.ErrInvalidComponentCount
	}
	if valueCount != int(dim)*int(b.pointCount) {
		return fmt.Errorf("%d values for dim %d and %d points: %w",
			valueCount, dim, b.pointCount, errs.ErrValueCountMismatch)
	}
	if len(b.entries) >= section.MaxAttributeCount {
		return errs.ErrInvalidAttributeEntry
	}

	return nil
}

func appendAttribute[T Scalar](b *Builder, uniqueID uint32, semantic format.Semantic, dim uint8, values []T) {
	scalarType := scalarTypeOf[T]()
	block := make([]byte, 0, len(values)*scalarType.ByteWidth())
	for _, v := range values {
		block = appendScalar(b.engine, block, v)
	}

	b.entries = append(b.entries, section.NewAttributeEntry(uniqueID, scalarType, dim, semantic))
	b.blocks = append(b.blocks, block)
}

// Finish assembles and returns the container bytes.
//
// The payload (face block plus attribute blocks) is compressed with the
// configured codec and checksummed. The returned slice is newly allocated
// and owned by the caller; the builder must not be used afterwards.
func (b *Builder) Finish() ([]byte, error) {
	payload := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(payload)

	for _, idx := range b.faces {
		payload.B = b.engine.AppendUint32(payload.B, idx)
	}
	for _, block := range b.blocks {
		payload.MustWrite(block)
	}

	codec, err := compress.GetCodec(b.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	header := section.NewGeometryHeader(b.kind)
	if b.engine == endian.GetBigEndianEngine() {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(b.compression)
	header.Flag.SetChecksum(b.checksum)
	header.PointCount = b.pointCount
	header.FaceCount = uint32(len(b.faces) / section.FaceVertexCount) //nolint: gosec
	header.AttributeCount = uint16(len(b.entries))                    //nolint: gosec
	header.PayloadLength = uint32(len(compressed))                    //nolint: gosec
	if b.checksum {
		header.PayloadChecksum = hash.Sum64(compressed)
	}

	out := make([]byte, section.HeaderSize+len(b.entries)*section.AttributeEntrySize+len(compressed))
	copy(out, header.Bytes())
	offset := section.AttributeTableOff
	for i := range b.entries {
		offset = b.entries[i].WriteToSlice(out, offset, b.engine)
	}
	copy(out[offset:], compressed)

	return out, nil
}

// scalarTypeOf maps a Scalar type parameter to its format tag.
func scalarTypeOf[T Scalar]() format.ScalarType {
	var v T
	switch any(v).(type) {
	case int8:
		return format.TypeInt8
	case uint8:
		return format.TypeUInt8
	case int16:
		return format.TypeInt16
	case uint16:
		return format.TypeUInt16
	case int32:
		return format.TypeInt32
	case uint32:
		return format.TypeUInt32
	case float32:
		return format.TypeFloat32
	default:
		return format.TypeFloat64
	}
}

// appendScalar appends one component in the builder's byte order.
func appendScalar[T Scalar](engine endian.EndianEngine, dst []byte, v T) []byte {
	switch val := any(v).(type) {
	case int8:
		return append(dst, byte(val))
	case uint8:
		return append(dst, val)
	case int16:
		return engine.AppendUint16(dst, uint16(val)) //nolint: gosec
	case uint16:
		return engine.AppendUint16(dst, val)
	case int32:
		return engine.AppendUint32(dst, uint32(val)) //nolint: gosec
	case uint32:
		return engine.AppendUint32(dst, val)
	case float32:
		return engine.AppendUint32(dst, math.Float32bits(val))
	case float64:
		return engine.AppendUint64(dst, math.Float64bits(val))
	default:
		return dst
	}
}
