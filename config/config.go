package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const DefaultConfigFileName = "config.json"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/triage")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

var ErrNotFound = errors.New("config file not found")

// Config holds the defaults used when analyze flags are not set.
type Config struct {
	Category  string `json:"category,omitempty"`
	Device    string `json:"device,omitempty"`
	Context   string `json:"context,omitempty"`
	Playbooks string `json:"playbooks,omitempty"`
}

func (c *Config) Save() error {
	return c.SaveToPath(DefaultConfigFilePath)
}

func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func LoadFromFile() (*Config, error) {
	return LoadFromPath(DefaultConfigFilePath)
}

// LoadFromPath returns ErrNotFound when path does not exist.
func LoadFromPath(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return &c, nil
}

// LoadOrDefault never fails on a missing file.
func LoadOrDefault() (*Config, error) {
	c, err := LoadFromFile()
	if errors.Is(err, ErrNotFound) {
		return &Config{}, nil
	}
	return c, err
}

// Set assigns the field named key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "category":
		c.Category = value
	case "device":
		c.Device = value
	case "context":
		c.Context = value
	case "playbooks":
		c.Playbooks = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

var Keys = []string{"category", "device", "context", "playbooks"}

// version is set via ldflags at build time
var version string

func Version() string {
	if version == "" {
		return "dev"
	}
	return version
}
