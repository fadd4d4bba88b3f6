package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseStressPolicy(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    StressPolicy
		wantErr bool
	}{
		{name: "ignore", input: "ignore", want: StressIgnore},
		{name: "override", input: "override", want: StressOverride},
		{name: "error", input: "error", want: StressError},
		{name: "unrecognized", input: "nonsense", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStressPolicy(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_StressPolicy_String_roundTrip(t *testing.T) {
	for _, p := range []StressPolicy{StressIgnore, StressOverride, StressError} {
		parsed, err := ParseStressPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func Test_LoadPipe_readsStressPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("stress_policy = \"override\"\n"), 0o644))

	cfg, err := LoadPipe(path)
	require.NoError(t, err)
	assert.Equal(t, StressOverride, cfg.StressPolicy)
}

func Test_LoadPipe_missingFile(t *testing.T) {
	_, err := LoadPipe(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func Test_DefaultPipe(t *testing.T) {
	assert.Equal(t, StressIgnore, DefaultPipe().StressPolicy)
}
