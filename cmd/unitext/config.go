package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinne26/unitext"
)

// Settings are the resolved CLI settings. Precedence, from highest to
// lowest: flags, UNITEXT_* environment variables, config file, defaults.
type Settings struct {
	MinSize      int
	MaxSize      int
	FontPath     string
	Wrap         bool
	CacheEntries int
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("sizes.min", 8)
	v.SetDefault("sizes.max", 72)
	v.SetDefault("font.path", "")
	v.SetDefault("fit.wrap", true)
	v.SetDefault("fit.cache", 256)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("UNITEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Binds a flag to a viper key. Unset flags don't override other sources.
func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.viper.BindPFlag(key, flag); err != nil {
		panic(err) // only fails for nil flags
	}
}

// Reads the config file, if any, and resolves the settings. An explicit
// config path must exist; the default one is optional.
func loadSettings(v *viper.Viper, configPath string) (Settings, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "unitext"))
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	settings := Settings{
		MinSize:      v.GetInt("sizes.min"),
		MaxSize:      v.GetInt("sizes.max"),
		FontPath:     v.GetString("font.path"),
		Wrap:         v.GetBool("fit.wrap"),
		CacheEntries: v.GetInt("fit.cache"),
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validates the size range and the cache size.
func (s Settings) Validate() error {
	if err := s.config().Validate(); err != nil {
		return err
	}
	if s.CacheEntries < 0 {
		return fmt.Errorf("invalid fit.cache value %d: must be >= 0", s.CacheEntries)
	}
	return nil
}

func (s Settings) config() unitext.Config {
	return unitext.Config{MinSize: s.MinSize, MaxSize: s.MaxSize}
}
