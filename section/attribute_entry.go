package section

import (
	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

// AttributeEntry records one attribute of the geometry in the container's
// attribute table. It is a fixed size of 8 bytes.
//
// The table immediately follows the 32-byte header, one entry per attribute,
// in the producer's storage order. The storage order intentionally carries no
// meaning; consumers that need a deterministic order sort by UniqueID.
type AttributeEntry struct {
	// UniqueID is the caller-assigned identifier, unique within the geometry
	// and stable across decodes of the same container.
	//
	// Offset: 0, Size: 4 bytes
	UniqueID uint32

	// ScalarType is the component scalar type tag.
	//
	// Offset: 4, Size: 1 byte
	ScalarType uint8

	// Dim is the number of components per point (1-4).
	//
	// Offset: 5, Size: 1 byte
	Dim uint8

	// Semantic is the channel semantic (position, normal, color, ...).
	//
	// Offset: 6, Size: 1 byte
	Semantic uint8
}

// NewAttributeEntry creates an attribute table entry.
func NewAttributeEntry(uniqueID uint32, scalarType format.ScalarType, dim uint8, semantic format.Semantic) AttributeEntry {
	return AttributeEntry{
		UniqueID:   uniqueID,
		ScalarType: uint8(scalarType),
		Dim:        dim,
		Semantic:   uint8(semantic),
	}
}

// Bytes returns the entry as a byte slice using the specified endian engine.
func (e *AttributeEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [AttributeEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint32(b[0:4], e.UniqueID)
	b[4] = e.ScalarType
	b[5] = e.Dim
	b[6] = e.Semantic

	return b[:]
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// This is the most efficient method when writing multiple entries sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 8 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 8)
func (e *AttributeEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], e.UniqueID)
	data[offset+4] = e.ScalarType
	data[offset+5] = e.Dim
	data[offset+6] = e.Semantic
	data[offset+7] = 0

	return offset + AttributeEntrySize
}

// ScalarTypeTag returns the scalar type as a format.ScalarType.
func (e AttributeEntry) ScalarTypeTag() format.ScalarType {
	return format.ScalarType(e.ScalarType)
}

// SemanticTag returns the semantic as a format.Semantic.
func (e AttributeEntry) SemanticTag() format.Semantic {
	return format.Semantic(e.Semantic)
}

// Validate checks the entry fields against the supported value domains.
//
// Returns:
//   - error: ErrUnsupportedScalarType or ErrInvalidComponentCount
func (e AttributeEntry) Validate() error {
	if !e.ScalarTypeTag().Valid() {
		return errs.ErrUnsupportedScalarType
	}
	if e.Dim < 1 || e.Dim > MaxComponentCount {
		return errs.ErrInvalidComponentCount
	}

	return nil
}

// ParseAttributeEntry parses an AttributeEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the entry (must be at least 8 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - AttributeEntry: Parsed entry
//   - error: ErrInvalidAttributeEntry if data is too short, or validation errors
func ParseAttributeEntry(data []byte, engine endian.EndianEngine) (AttributeEntry, error) {
	if len(data) < AttributeEntrySize {
		return AttributeEntry{}, errs.ErrInvalidAttributeEntry
	}

	entry := AttributeEntry{
		UniqueID:   engine.Uint32(data[0:4]),
		ScalarType: data[4],
		Dim:        data[5],
		Semantic:   data[6],
	}
	if err := entry.Validate(); err != nil {
		return AttributeEntry{}, err
	}

	return entry, nil
}
