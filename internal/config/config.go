package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"tabbed-document-ui/internal/logger"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Font   FontConfig
	Log    LogConfig
}

// WindowConfig holds top-level window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// FontConfig names the global default font. Path optionally points at a
// TTF/OTF file providing the family.
type FontConfig struct {
	Family string
	Path   string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// Default reproduces the stock window: 800x600, "Segoe UI".
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Tabbed Document UI", Width: 800, Height: 600},
		Font:   FontConfig{Family: "Segoe UI"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from an optional TOML file and env.
// Env var overrides use prefix TDUI_; TDUI_CONFIG names the file.
func Load() (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("font.family", d.Font.Family)
	v.SetDefault("font.path", d.Font.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)

	v.SetEnvPrefix("TDUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath := os.Getenv("TDUI_CONFIG"); cfgPath != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		return fmt.Errorf("%w: empty window title", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
