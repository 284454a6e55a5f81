package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	var buf [4]byte
	engine.PutUint32(buf[:], 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf[:])
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	var buf [4]byte
	engine.PutUint32(buf[:], 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf[:])
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.True(t, order == binary.LittleEndian || order == binary.BigEndian)

	if order == binary.LittleEndian {
		require.True(t, IsNativeLittleEndian())
		require.False(t, IsNativeBigEndian())
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, IsNativeBigEndian())
		require.False(t, IsNativeLittleEndian())
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestEngineAppendRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint16(nil, 0xBEEF)
	buf = engine.AppendUint32(buf, 0xDEADBEEF)
	buf = engine.AppendUint64(buf, 0x0123456789ABCDEF)

	require.Len(t, buf, 14)
	require.Equal(t, uint16(0xBEEF), engine.Uint16(buf[0:2]))
	require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf[2:6]))
	require.Equal(t, uint64(0x0123456789ABCDEF), engine.Uint64(buf[6:14]))
}
