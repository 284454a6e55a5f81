package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width    int
	checksum bool
}

func TestApply_Order(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.width = 2 }),
		NoError(func(c *testConfig) { c.width = 4 }),
		NoError(func(c *testConfig) { c.checksum = true }),
	)

	require.NoError(t, err)
	require.Equal(t, 4, cfg.width)
	require.True(t, cfg.checksum)
}

func TestApply_ErrorStopsApplication(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.width = 2 }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.width = 8 }),
	)

	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, cfg.width)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{width: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.width)
}
