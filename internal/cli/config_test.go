package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seximal "github.com/shabbyrobe/go-seximal"
)

func TestLoadConfigDefaults(t *testing.T) {
	v, err := loadConfig("")
	require.NoError(t, err)

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, seximal.KindSi144, cfg.Kind)
	assert.Equal(t, 0, cfg.FracDigits)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "kind: SF52\nfrac_digits: \"4\"\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seximal.yaml"), []byte(yaml), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "seximal.yaml"), v.ConfigFileUsed())

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, seximal.KindSf52, cfg.Kind)
	assert.Equal(t, 4, cfg.FracDigits)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seximal.yaml"), []byte("kind: su12\n"), 0o644))
	t.Setenv("SEXIMAL_KIND", "si332")
	t.Setenv("SEXIMAL_VERBOSE", "true")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	cfg, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, seximal.KindSi332, cfg.Kind)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seximal.yaml"), []byte("kind: [\n"), 0o644))

	_, err := loadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		env, value string
	}{
		{"SEXIMAL_KIND", "u8"},
		{"SEXIMAL_FRAC_DIGITS", "many"},
		{"SEXIMAL_FRAC_DIGITS", "-3"},
		{"SEXIMAL_VERBOSE", "perhaps"},
	} {
		t.Run(tc.env+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.env, tc.value)
			v, err := loadConfig("")
			require.NoError(t, err)
			_, err = decodeConfig(v)
			assert.Error(t, err)
		})
	}
}
