package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Server ServerConfig
	Log    LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string
	Format string
	Width  int
}

// ServerConfig holds the HTML server settings.
type ServerConfig struct {
	Addr string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// DOCPANELS_. path wins over $DOCPANELS_CONFIG, which wins over
// ~/.config/docpanels/config.yaml. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.format", "terminal")
	v.SetDefault("ui.width", 80)
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("DOCPANELS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "docpanels"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCPANELS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
