package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

const EnvPrefix = "CADASTRO"

type Config struct {
	LookupURL   string        `mapstructure:"lookup_url"`
	APIURL      string        `mapstructure:"api_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	Log         LogConfig     `mapstructure:"log"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func Defaults() Config {
	return Config{
		LookupURL:   "https://viacep.com.br",
		APIURL:      "http://localhost:5000",
		HTTPTimeout: 10 * time.Second,
		CacheTTL:    10 * time.Minute,
		Log: LogConfig{
			File:  "cadastro.log",
			Level: "info",
		},
	}
}

// Setup registers defaults, env binding and config file lookup on v.
// cfgFile overrides the lookup when set.
func Setup(v *viper.Viper, cfgFile string) {
	d := Defaults()
	v.SetDefault("lookup_url", d.LookupURL)
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("http_timeout", d.HTTPTimeout)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.SetConfigName("cadastro")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "cadastro"))
	}
}

// Load reads .env (if present) and the config file into v and returns the
// validated result. A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for key, raw := range map[string]string{"lookup_url": c.LookupURL, "api_url": c.APIURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL, got %q", ErrInvalid, key, raw)
		}
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http_timeout must be positive", ErrInvalid)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl must not be negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
