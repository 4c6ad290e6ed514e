package checkers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultWeights, cfg.Weights)
	require.Equal(t, 65536, cfg.PollInterval)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.toml")
	contents := `
default_depth_limit = 8
poll_interval = 4096

[weights]
pieces = 7
kings = 3
movers = 1
kings_row = 1
edges = -1
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.DefaultDepthLimit)
	require.Equal(t, 4096, cfg.PollInterval)
	require.Equal(t, 7, cfg.Weights.Pieces)
	// Fields absent from the file keep the baked-in default.
	require.Equal(t, DefaultConfig().DefaultTimeLimit, cfg.DefaultTimeLimit)
}

func TestLoadConfigOrDefaultFallsBackOnMissingFile(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Equal(t, DefaultConfig(), cfg)
}
