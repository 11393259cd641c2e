package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hexforge/hexforge/pkg/cache"
	"github.com/hexforge/hexforge/pkg/errors"
)

// Config holds the optional on-disk configuration. Every field has a
// working zero value so a missing file is not an error.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Serve    ServeConfig    `toml:"serve"`
}

// DefaultsConfig sets fallback build parameters for commands that omit them.
type DefaultsConfig struct {
	Orientation string  `toml:"orientation"`
	Radius      float64 `toml:"radius"`
}

// CacheConfig selects and configures the built-grid cache backend.
// Backend is one of "none", "file" or "redis"; empty means "none".
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     string      `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig carries connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ServeConfig configures the HTTP server started by the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{Orientation: "POINTY_TOP", Radius: 10},
		Serve:    ServeConfig{Addr: ":8080"},
	}
}

// loadConfig reads the TOML config file. When path is empty the usual
// locations are tried in order: ./hexforge.toml, then
// <user config dir>/hexforge/config.toml. A missing file yields the
// defaults; a present but unparseable file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidSpec, err, "failed to parse config file %s", path)
	}
	return cfg, nil
}

func findConfigFile() string {
	if _, err := os.Stat("hexforge.toml"); err == nil {
		return "hexforge.toml"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "hexforge", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// cacheTTL parses the configured TTL, defaulting to 24h.
func (c CacheConfig) cacheTTL() time.Duration {
	if c.TTL == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// cacheDir resolves the file cache directory, defaulting to
// <user cache dir>/hexforge.
func (c CacheConfig) cacheDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hexforge")
	}
	return filepath.Join(dir, "hexforge")
}

// openCache constructs the cache backend named by the config.
func openCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "file":
		return cache.NewFileCache(cfg.cacheDir())
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidSpec, "unknown cache backend %q (want none, file or redis)", cfg.Backend)
	}
}
