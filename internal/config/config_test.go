package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, cfgFile string) (*Config, error) {
	t.Helper()
	v := viper.New()
	Setup(v, cfgFile)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_FileEnvAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cadastro.yaml"), []byte(`
api_url: http://cadastro.internal:8080
http_timeout: 3s
log:
  level: debug
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CADASTRO_CACHE_TTL=0s\n"), 0o600))
	t.Setenv("CADASTRO_LOOKUP_URL", "http://viacep.local")
	t.Cleanup(func() { os.Unsetenv("CADASTRO_CACHE_TTL") })

	cfg, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, "http://viacep.local", cfg.LookupURL)
	assert.Equal(t, "http://cadastro.internal:8080", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "cadastro.log", cfg.Log.File)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := load(t, "missing.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "relative api url", mutate: func(c *Config) { c.APIURL = "/api" }},
		{name: "lookup url without scheme", mutate: func(c *Config) { c.LookupURL = "viacep.com.br" }},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }},
		{name: "negative cache ttl", mutate: func(c *Config) { c.CacheTTL = -time.Second }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Defaults()
	require.NoError(t, cfg.Validate())
}
