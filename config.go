package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	RefreshInterval int      `json:"refresh_interval"`
	PollInterval    int      `json:"poll_interval"`
	Modules         []string `json:"modules"`
	Colors          Colors   `json:"colors"`
	LogLevel        string   `json:"log_level"`
}

type Colors struct {
	Primary string `json:"primary"`
	Surface string `json:"surface"`
	Text    string `json:"text"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "controller-status", "config.json")
}

// loadConfig reads path, or the default location when path is empty. A
// missing file yields the defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "open config %s", path)
	}
	defer file.Close()

	config := defaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	config.normalize()
	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		RefreshInterval: 1,
		PollInterval:    2,
		Modules:         []string{"controller", "clock", "cpu", "memory", "battery"},
		Colors: Colors{
			Primary: "#D7BAFF",
			Surface: "#16121B",
			Text:    "#E9DFEE",
		},
		LogLevel: "info",
	}
}

func (c *Config) normalize() {
	def := defaultConfig()
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = def.RefreshInterval
	}
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if len(c.Modules) == 0 {
		c.Modules = def.Modules
	}
	if c.Colors.Primary == "" {
		c.Colors.Primary = def.Colors.Primary
	}
	if c.Colors.Surface == "" {
		c.Colors.Surface = def.Colors.Surface
	}
	if c.Colors.Text == "" {
		c.Colors.Text = def.Colors.Text
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func (c *Config) refreshEvery() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

func (c *Config) pollEvery() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

func (c *Config) enabled(module string) bool {
	for _, m := range c.Modules {
		if m == module {
			return true
		}
	}
	return false
}
