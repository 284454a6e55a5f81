package pack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
	"github.com/meshpack/meshpack/geom"
)

// decodeMesh builds and decodes a mesh with the given faces and attribute
// adders, so tests exercise the same handles production code sees.
func decodeMesh(t *testing.T, pointCount uint32, faces [][3]uint32, add func(b *geom.Builder)) *geom.Geometry {
	t.Helper()

	b, err := geom.NewBuilder(format.KindMesh, pointCount)
	require.NoError(t, err)
	for _, f := range faces {
		require.NoError(t, b.AddFace(f[0], f[1], f[2]))
	}
	if add != nil {
		add(b)
	}

	data, err := b.Finish()
	require.NoError(t, err)

	g, err := geom.Decode(data)
	require.NoError(t, err)

	return g
}

// triangleFan returns count faces over the first three points.
func triangleFan(count int) [][3]uint32 {
	faces := make([][3]uint32, count)
	for i := range faces {
		faces[i] = [3]uint32{0, 1, 2}
	}

	return faces
}

func TestSelectIndexWidth(t *testing.T) {
	tests := []struct {
		indexCount uint32
		width      uint32
	}{
		{0, 2},
		{1, 2},
		{65535, 2},
		{65536, 4},
		{65538, 4},
	}

	for _, tt := range tests {
		require.Equal(t, tt.width, SelectIndexWidth(tt.indexCount), "indexCount=%d", tt.indexCount)
	}
}

func TestComputeMeshConfig_Counts(t *testing.T) {
	mesh := decodeMesh(t, 4, [][3]uint32{{0, 1, 2}, {2, 1, 3}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 0, format.SemanticPosition, 3, make([]float32, 12)))
	})

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	require.Equal(t, uint32(4), config.VertexCount)
	require.Equal(t, uint32(6), config.IndexCount)
	require.Equal(t, uint32(12), config.IndexLength) // 6 indices * 2 bytes
	require.Equal(t, uint32(2), config.IndexWidth())
}

func TestComputeMeshConfig_DescriptorContiguity(t *testing.T) {
	mesh := decodeMesh(t, 10, [][3]uint32{{0, 1, 2}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 3, format.SemanticPosition, 3, make([]float32, 30)))
		require.NoError(t, geom.AddAttribute(b, 1, format.SemanticColor, 4, make([]uint8, 40)))
		require.NoError(t, geom.AddAttribute(b, 7, format.SemanticTexCoord, 2, make([]int16, 20)))
	})

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)
	require.Len(t, config.Attributes, 3)

	require.Equal(t, config.IndexLength, config.Attributes[0].Offset)
	for i := 0; i < len(config.Attributes)-1; i++ {
		cur := config.Attributes[i]
		require.Equal(t, cur.Offset+cur.Length, config.Attributes[i+1].Offset)
	}
	last := config.Attributes[len(config.Attributes)-1]
	require.Equal(t, int(last.Offset+last.Length), config.BufferSize)

	total := config.IndexLength
	for _, attr := range config.Attributes {
		total += attr.Length
	}
	require.Equal(t, int(total), config.BufferSize)
}

func TestComputeMeshConfig_OrderedByUniqueID(t *testing.T) {
	// Storage order 3, 1, 7 - descriptors must come out as 1, 3, 7.
	mesh := decodeMesh(t, 10, [][3]uint32{{0, 1, 2}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 3, format.SemanticPosition, 3, make([]float32, 30)))
		require.NoError(t, geom.AddAttribute(b, 1, format.SemanticColor, 4, make([]uint8, 40)))
		require.NoError(t, geom.AddAttribute(b, 7, format.SemanticTexCoord, 2, make([]int16, 20)))
	})

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	ids := make([]uint32, len(config.Attributes))
	for i, attr := range config.Attributes {
		ids[i] = attr.UniqueID
	}
	require.Equal(t, []uint32{1, 3, 7}, ids)

	require.Equal(t, uint8(format.TypeUInt8), config.Attributes[0].Tag)
	require.Equal(t, uint8(format.TypeFloat32), config.Attributes[1].Tag)
	require.Equal(t, uint8(format.TypeInt16), config.Attributes[2].Tag)
}

func TestComputeMeshConfig_KnownVector(t *testing.T) {
	// Reference layout: 16744 vertices, 18221 faces (54663 indices) with a
	// dim-3 and a dim-2 float32 attribute.
	mesh := decodeMesh(t, 16744, triangleFan(18221), func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 0, format.SemanticPosition, 3, make([]float32, 3*16744)))
		require.NoError(t, geom.AddAttribute(b, 1, format.SemanticTexCoord, 2, make([]float32, 2*16744)))
	})

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	require.Equal(t, uint32(54663), config.IndexCount)
	require.Equal(t, uint32(109326), config.IndexLength)

	require.Equal(t, uint32(109326), config.Attributes[0].Offset)
	require.Equal(t, uint32(200928), config.Attributes[0].Length)

	require.Equal(t, uint32(310254), config.Attributes[1].Offset)
	require.Equal(t, uint32(133952), config.Attributes[1].Length)

	require.Equal(t, 444206, config.BufferSize)
}

func TestComputeMeshConfig_ThresholdBoundary(t *testing.T) {
	// 21845 faces = 65535 indices: still 2-byte indices.
	narrow := decodeMesh(t, 3, triangleFan(21845), nil)
	config, err := ComputeMeshConfig(narrow)
	require.NoError(t, err)
	require.Equal(t, uint32(65535), config.IndexCount)
	require.Equal(t, uint32(2), config.IndexWidth())
	require.Equal(t, uint32(65535*2), config.IndexLength)

	// 21846 faces = 65538 indices: 4-byte indices.
	wide := decodeMesh(t, 3, triangleFan(21846), nil)
	config, err = ComputeMeshConfig(wide)
	require.NoError(t, err)
	require.Equal(t, uint32(65538), config.IndexCount)
	require.Equal(t, uint32(4), config.IndexWidth())
	require.Equal(t, uint32(65538*4), config.IndexLength)
}

func TestComputeMeshConfig_NoAttributes(t *testing.T) {
	mesh := decodeMesh(t, 3, [][3]uint32{{0, 1, 2}}, nil)

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)
	require.Empty(t, config.Attributes)
	require.Equal(t, int(config.IndexLength), config.BufferSize)
}

func TestComputeMeshConfig_Deterministic(t *testing.T) {
	mesh := decodeMesh(t, 10, [][3]uint32{{0, 1, 2}, {3, 4, 5}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 2, format.SemanticPosition, 3, make([]float32, 30)))
		require.NoError(t, geom.AddAttribute(b, 5, format.SemanticNormal, 3, make([]float32, 30)))
	})

	first, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)
	second, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	require.Equal(t, first, second)

	engine := endian.GetLittleEndianEngine()
	require.Equal(t, first.Bytes(engine), second.Bytes(engine))
}

func TestComputeMeshConfig_InvalidGeometry(t *testing.T) {
	_, err := ComputeMeshConfig(nil)
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	b, err := geom.NewBuilder(format.KindPointCloud, 2)
	require.NoError(t, err)
	require.NoError(t, geom.AddAttribute(b, 0, format.SemanticPosition, 3, make([]float32, 6)))
	data, err := b.Finish()
	require.NoError(t, err)
	pc, err := geom.Decode(data)
	require.NoError(t, err)

	_, err = ComputeMeshConfig(pc)
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)
}

func TestMeshConfig_BytesParseRoundTrip(t *testing.T) {
	mesh := decodeMesh(t, 8, [][3]uint32{{0, 1, 2}, {2, 3, 4}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 0, format.SemanticPosition, 3, make([]float32, 24)))
		require.NoError(t, geom.AddAttribute(b, 9, format.SemanticColor, 4, make([]uint8, 32)))
	})

	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		data := config.Bytes(engine)
		parsed, err := ParseMeshConfig(data, engine)
		require.NoError(t, err)
		require.Equal(t, config, parsed)
	}
}

func TestParseMeshConfig_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseMeshConfig(make([]byte, 8), engine)
	require.ErrorIs(t, err, errs.ErrInvalidConfigSize)

	mesh := decodeMesh(t, 3, [][3]uint32{{0, 1, 2}}, func(b *geom.Builder) {
		require.NoError(t, geom.AddAttribute(b, 0, format.SemanticPosition, 3, make([]float32, 9)))
	})
	config, err := ComputeMeshConfig(mesh)
	require.NoError(t, err)

	data := config.Bytes(engine)
	_, err = ParseMeshConfig(data[:len(data)-1], engine)
	require.ErrorIs(t, err, errs.ErrInvalidConfigSize)
}
