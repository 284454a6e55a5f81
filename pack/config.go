package pack

import (
	"fmt"
	"math"

	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/geom"
)

const (
	// Uint16IndexMax is the largest index count representable with 2-byte
	// indices. Meshes above it switch to 4-byte indices.
	Uint16IndexMax = math.MaxUint16

	// configHeaderSize is the fixed size of the serialized MeshConfig header.
	configHeaderSize = 16

	// descriptorSize is the fixed size of one serialized attribute descriptor.
	descriptorSize = 16
)

// SelectIndexWidth returns the byte width of a single packed index for the
// given index count: 2 for counts up to 65535, 4 above.
//
// This is the single source of truth for the index width decision. Both
// ComputeMeshConfig and PackMesh call it, so the planned layout and the
// written bytes can never use different widths for the same mesh.
func SelectIndexWidth(indexCount uint32) uint32 {
	if indexCount <= Uint16IndexMax {
		return 2
	}

	return 4
}

// AttributeLayout describes one attribute's region inside a packed buffer.
type AttributeLayout struct {
	// UniqueID is the attribute's identifier, copied from the geometry.
	UniqueID uint32
	// Offset is the byte offset of the attribute's value block in the buffer.
	Offset uint32
	// Length is the byte length of the attribute's value block.
	Length uint32
	// Tag is the descriptor scalar type tag (0-7).
	Tag uint8
	// Dim is the number of components per vertex (1-4).
	Dim uint8
}

// MeshConfig describes the exact layout of a packed mesh buffer: the index
// region followed by one value block per attribute in ascending unique-ID
// order.
//
// A MeshConfig is immutable once built. For a well-formed config:
//
//	Attributes[0].Offset == IndexLength
//	Attributes[i+1].Offset == Attributes[i].Offset + Attributes[i].Length
//	BufferSize == IndexLength + sum of all Lengths
type MeshConfig struct {
	// Attributes holds one layout per attribute, ascending by UniqueID.
	Attributes []AttributeLayout
	// VertexCount is the number of vertices in the mesh.
	VertexCount uint32
	// IndexCount is the number of packed indices (3 per face).
	IndexCount uint32
	// IndexLength is the byte length of the index region.
	IndexLength uint32
	// BufferSize is the total byte size of the packed buffer.
	BufferSize int
}

// IndexWidth returns the byte width of one packed index for this config.
func (c *MeshConfig) IndexWidth() uint32 {
	return SelectIndexWidth(c.IndexCount)
}

// ComputeMeshConfig plans the packed buffer layout for a decoded mesh.
//
// The computation is deterministic: calling it twice on the same unmodified
// handle yields identical configs. The attribute set may be empty, in which
// case BufferSize equals IndexLength.
//
// Parameters:
//   - mesh: Decoded mesh handle
//
// Returns:
//   - *MeshConfig: Layout descriptor for the packed buffer
//   - error: errs.ErrInvalidGeometry for nil or non-mesh handles,
//     errs.ErrUnsupportedScalarType if an attribute's type has no tag
func ComputeMeshConfig(mesh *geom.Geometry) (*MeshConfig, error) {
	if mesh == nil || !mesh.IsMesh() {
		return nil, errs.ErrInvalidGeometry
	}

	indexCount := mesh.FaceCount() * 3
	config := &MeshConfig{
		VertexCount: mesh.PointCount(),
		IndexCount:  indexCount,
		IndexLength: indexCount * SelectIndexWidth(indexCount),
	}

	ordered := OrderAttributes(mesh)
	config.Attributes = make([]AttributeLayout, 0, len(ordered))

	offset := config.IndexLength
	for _, attr := range ordered {
		tag, err := attr.ScalarType().Tag()
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", attr.UniqueID(), err)
		}

		length := uint32(attr.Dim()) * config.VertexCount * uint32(attr.ScalarType().ByteWidth()) //nolint: gosec
		config.Attributes = append(config.Attributes, AttributeLayout{
			UniqueID: attr.UniqueID(),
			Tag:      tag,
			Dim:      attr.Dim(),
			Offset:   offset,
			Length:   length,
		})
		offset += length
	}

	config.BufferSize = int(offset)

	return config, nil
}

// Bytes serializes the MeshConfig using the specified endian engine, so a
// consumer process can slice a packed buffer without access to the geometry.
//
// Layout: a 16-byte header (VertexCount, IndexCount, IndexLength uint32,
// attribute count uint16, 2 reserved bytes) followed by one 16-byte record
// per attribute (UniqueID, Offset, Length uint32, Tag, Dim uint8, 2 reserved
// bytes).
func (c *MeshConfig) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, configHeaderSize+len(c.Attributes)*descriptorSize)

	engine.PutUint32(b[0:4], c.VertexCount)
	engine.PutUint32(b[4:8], c.IndexCount)
	engine.PutUint32(b[8:12], c.IndexLength)
	engine.PutUint16(b[12:14], uint16(len(c.Attributes))) //nolint: gosec

	offset := configHeaderSize
	for i := range c.Attributes {
		attr := &c.Attributes[i]
		engine.PutUint32(b[offset:offset+4], attr.UniqueID)
		engine.PutUint32(b[offset+4:offset+8], attr.Offset)
		engine.PutUint32(b[offset+8:offset+12], attr.Length)
		b[offset+12] = attr.Tag
		b[offset+13] = attr.Dim
		offset += descriptorSize
	}

	return b
}

// ParseMeshConfig parses a MeshConfig serialized with Bytes.
//
// BufferSize is recomputed from the index length and attribute lengths.
//
// Parameters:
//   - data: Serialized config bytes
//   - engine: Endian engine matching the one used by Bytes
//
// Returns:
//   - *MeshConfig: Parsed config
//   - error: errs.ErrInvalidConfigSize if data is truncated
func ParseMeshConfig(data []byte, engine endian.EndianEngine) (*MeshConfig, error) {
	if len(data) < configHeaderSize {
		return nil, errs.ErrInvalidConfigSize
	}

	count := int(engine.Uint16(data[12:14]))
	if len(data) < configHeaderSize+count*descriptorSize {
		return nil, errs.ErrInvalidConfigSize
	}

	config := &MeshConfig{
		VertexCount: engine.Uint32(data[0:4]),
		IndexCount:  engine.Uint32(data[4:8]),
		IndexLength: engine.Uint32(data[8:12]),
		Attributes:  make([]AttributeLayout, count),
	}

	size := config.IndexLength
	offset := configHeaderSize
	for i := 0; i < count; i++ {
		config.Attributes[i] = AttributeLayout{
			UniqueID: engine.Uint32(data[offset : offset+4]),
			Offset:   engine.Uint32(data[offset+4 : offset+8]),
			Length:   engine.Uint32(data[offset+8 : offset+12]),
			Tag:      data[offset+12],
			Dim:      data[offset+13],
		}
		size += config.Attributes[i].Length
		offset += descriptorSize
	}
	config.BufferSize = int(size)

	return config, nil
}
