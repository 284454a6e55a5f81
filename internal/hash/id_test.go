package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("position"), ID("position"))
	require.NotEqual(t, ID("position"), ID("normal"))
}

func TestID_EmptyName(t *testing.T) {
	// Empty names are legal; the ID is simply the folded hash of "".
	require.Equal(t, ID(""), ID(""))
}

func TestSum64_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	require.Equal(t, Sum64(data), Sum64(data))
	require.NotEqual(t, Sum64(data), Sum64(data[:3]))
}
