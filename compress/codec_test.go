package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshpack/meshpack/format"
)

func testPayload() []byte {
	// Repetitive payload resembling a float32 attribute block, so every
	// codec actually shrinks it.
	payload := make([]byte, 0, 4096)
	block := []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x00, 0x40} // 1.0f, 2.0f
	for i := 0; i < 512; i++ {
		payload = append(payload, block...)
	}

	return payload
}

func TestGetCodec_AllTypes(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name string
		ct   format.CompressionType
	}{
		{"none", format.CompressionNone},
		{"zstd", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := GetCodec(tt.ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodecs_CompressShrinksRepetitiveData(t *testing.T) {
	payload := testPayload()

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "codec %s", ct)
	}
}

func TestNoOp_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}

func TestLZ4_DecompressCorrupted(t *testing.T) {
	codec := NewLZ4Compressor()
	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestZstd_DecompressCorrupted(t *testing.T) {
	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}
