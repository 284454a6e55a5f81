package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

func TestAttributeEntry_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	entry := NewAttributeEntry(7, format.TypeFloat32, 3, format.SemanticPosition)

	data := entry.Bytes(engine)
	require.Len(t, data, AttributeEntrySize)

	parsed, err := ParseAttributeEntry(data, engine)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
	require.Equal(t, format.TypeFloat32, parsed.ScalarTypeTag())
	require.Equal(t, format.SemanticPosition, parsed.SemanticTag())
}

func TestAttributeEntry_WriteToSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	entries := []AttributeEntry{
		NewAttributeEntry(0, format.TypeFloat32, 3, format.SemanticPosition),
		NewAttributeEntry(1, format.TypeUInt8, 4, format.SemanticColor),
	}

	data := make([]byte, len(entries)*AttributeEntrySize)
	offset := 0
	for i := range entries {
		offset = entries[i].WriteToSlice(data, offset, engine)
	}
	require.Equal(t, len(data), offset)

	for i := range entries {
		parsed, err := ParseAttributeEntry(data[i*AttributeEntrySize:], engine)
		require.NoError(t, err)
		require.Equal(t, entries[i], parsed)
	}
}

func TestAttributeEntry_ParseTooShort(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	_, err := ParseAttributeEntry(make([]byte, AttributeEntrySize-1), engine)
	require.ErrorIs(t, err, errs.ErrInvalidAttributeEntry)
}

func TestAttributeEntry_ValidateScalarType(t *testing.T) {
	entry := NewAttributeEntry(1, format.TypeFloat64, 1, format.SemanticGeneric)
	require.NoError(t, entry.Validate())

	entry.ScalarType = 0x20
	require.ErrorIs(t, entry.Validate(), errs.ErrUnsupportedScalarType)
}

func TestAttributeEntry_ValidateDim(t *testing.T) {
	tests := []struct {
		dim uint8
		ok  bool
	}{
		{0, false},
		{1, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		entry := NewAttributeEntry(1, format.TypeInt16, tt.dim, format.SemanticGeneric)
		err := entry.Validate()
		if tt.ok {
			require.NoError(t, err, "dim=%d", tt.dim)
		} else {
			require.ErrorIs(t, err, errs.ErrInvalidComponentCount, "dim=%d", tt.dim)
		}
	}
}
