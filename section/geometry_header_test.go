package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

func TestNewGeometryHeader_Defaults(t *testing.T) {
	h := NewGeometryHeader(format.KindMesh)

	require.True(t, h.Flag.IsLittleEndian())
	require.True(t, h.Flag.HasChecksum())
	require.Equal(t, format.KindMesh, h.Flag.GeometryKind())
	require.Equal(t, format.CompressionNone, h.Flag.Compression())
	require.Equal(t, uint16(MagicGeometryV1Opt), h.Flag.GetMagicNumber())
}

func TestGeometryHeader_RoundTrip(t *testing.T) {
	h := NewGeometryHeader(format.KindMesh)
	h.PointCount = 3254
	h.FaceCount = 1456
	h.AttributeCount = 3
	h.PayloadLength = 123456
	h.PayloadChecksum = 0xDEADBEEFCAFEF00D
	h.Flag.SetCompression(format.CompressionZstd)

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseGeometryHeader(data)
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
}

func TestGeometryHeader_RoundTripBigEndian(t *testing.T) {
	h := NewGeometryHeader(format.KindPointCloud)
	h.Flag.WithBigEndian()
	h.PointCount = 42
	h.PayloadLength = 504

	parsed, err := ParseGeometryHeader(h.Bytes())
	require.NoError(t, err)
	require.True(t, parsed.Flag.IsBigEndian())
	require.Equal(t, uint32(42), parsed.PointCount)
	require.Equal(t, uint32(504), parsed.PayloadLength)
}

func TestGeometryHeader_ParseTooShort(t *testing.T) {
	var h GeometryHeader
	err := h.Parse(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestGeometryHeader_ParseBadMagic(t *testing.T) {
	h := NewGeometryHeader(format.KindMesh)
	data := h.Bytes()
	data[1] = 0x00 // clobber the magic bits

	_, err := ParseGeometryHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestGeometryHeader_ParseBadKind(t *testing.T) {
	h := NewGeometryHeader(format.KindMesh)
	data := h.Bytes()
	data[2] = 0x7F

	_, err := ParseGeometryHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidGeometryKind)
}

func TestGeometryFlag_ChecksumToggle(t *testing.T) {
	f := NewGeometryFlag(format.KindMesh)
	require.True(t, f.HasChecksum())

	f.SetChecksum(false)
	require.False(t, f.HasChecksum())

	f.SetChecksum(true)
	require.True(t, f.HasChecksum())
}

func TestGeometryFlag_ValidateBadCompression(t *testing.T) {
	f := NewGeometryFlag(format.KindMesh)
	f.CompressionType = 0x7F

	require.ErrorIs(t, f.Validate(), errs.ErrInvalidCompression)
}
