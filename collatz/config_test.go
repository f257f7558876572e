package collatz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".mainterm.yaml")
	content := `name: sweep
max_iterations: 500
verbose: 1
workers: 2
intervals:
  - "(1, 2]"
  - "(3/2, 4]"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Name:          "sweep",
		MaxIterations: 500,
		Verbose:       1,
		Workers:       2,
		Intervals:     []string{"(1, 2]", "(3/2, 4]"},
	}, config)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "name: x\nrules: {}\n"},
		{"negative limit", "max_iterations: -1\n"},
		{"negative workers", "workers: -3\n"},
		{"not yaml", "intervals: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".mainterm.yaml")
	want := DefaultConfig()
	want.Workers = 4
	want.Intervals = []string{"(0, 4]", "[1/2, 1]"}

	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
