package section

import (
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

// GeometryHeader represents the fixed-size header section at the start of a
// geometry container.
type GeometryHeader struct {
	// PointCount is the number of points (vertices) in the geometry.
	PointCount uint32 // byte offset 4-7
	// FaceCount is the number of triangular faces. Always 0 for point clouds.
	FaceCount uint32 // byte offset 8-11
	// AttributeCount is the number of attribute table entries after the header.
	AttributeCount uint16 // byte offset 12-13
	// PayloadLength is the byte length of the (possibly compressed) payload
	// that follows the attribute table.
	PayloadLength uint32 // byte offset 16-19
	// PayloadChecksum is the xxHash64 digest of the payload bytes as stored.
	// Only meaningful when the checksum flag is set.
	PayloadChecksum uint64 // byte offset 24-31

	// Flag is a packed field for endianness, checksum, kind, compression and
	// the magic number.
	Flag GeometryFlag // byte offset 0-3
}

// NewGeometryHeader creates a new GeometryHeader for the given geometry kind.
// Counts, payload length and checksum are set when the builder finishes.
func NewGeometryHeader(kind format.GeometryKind) *GeometryHeader {
	return &GeometryHeader{
		Flag: NewGeometryFlag(kind),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or flag validation errors
func (h *GeometryHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field is always little-endian so the endianness flag can be
	// read before the engine is known.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Kind = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.PointCount = engine.Uint32(data[4:8])
	h.FaceCount = engine.Uint32(data[8:12])
	h.AttributeCount = engine.Uint16(data[12:14])
	h.PayloadLength = engine.Uint32(data[16:20])
	h.PayloadChecksum = engine.Uint64(data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the GeometryHeader into a byte slice.
func (h *GeometryHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Kind
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.PointCount)
	engine.PutUint32(b[8:12], h.FaceCount)
	engine.PutUint16(b[12:14], h.AttributeCount)
	engine.PutUint32(b[16:20], h.PayloadLength)
	engine.PutUint64(b[24:32], h.PayloadChecksum)

	return b
}

// ParseGeometryHeader parses a GeometryHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - GeometryHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseGeometryHeader(data []byte) (GeometryHeader, error) {
	var h GeometryHeader
	if err := h.Parse(data); err != nil {
		return GeometryHeader{}, err
	}

	return h, nil
}
