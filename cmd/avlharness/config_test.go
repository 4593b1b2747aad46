package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(DefaultSeed), cfg.Seed)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultStressOps, cfg.Stress.Ops)
	assert.Equal(t, DefaultStressRange, cfg.Stress.KeyRange)
	assert.Equal(t, DefaultCheckEvery, cfg.Stress.CheckEvery)
	assert.Equal(t, uint(DefaultBuckets), cfg.HashSet.Buckets)
	assert.Equal(t, DefaultStrings, cfg.HashSet.Strings)
	assert.Equal(t, DefaultStringLen, cfg.HashSet.StringLen)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harness.yaml")
	content := `
seed: 42
stress:
  ops: 500
  key_range: 64
hashset:
  buckets: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.Stress.Ops)
	assert.Equal(t, 64, cfg.Stress.KeyRange)
	assert.Equal(t, DefaultCheckEvery, cfg.Stress.CheckEvery)
	assert.Equal(t, uint(7), cfg.HashSet.Buckets)
}

func TestLoadConfig_SearchesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName+".yaml"), []byte("seed: 9\n"), 0o600))
	t.Chdir(dir)

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVLHARNESS_STRESS_OPS", "1234")
	t.Setenv("AVLHARNESS_SEED", "7")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Stress.Ops)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"zero ops", "stress:\n  ops: 0\n", ErrNonPositiveOps},
		{"negative range", "stress:\n  key_range: -1\n", ErrNonPositiveRange},
		{"negative check", "stress:\n  check_every: -5\n", ErrNegativeCheck},
		{"zero buckets", "hashset:\n  buckets: 0\n", ErrZeroBuckets},
		{"zero length", "hashset:\n  string_len: 0\n", ErrNonPositiveLen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "harness.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadConfig(viper.New(), path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
