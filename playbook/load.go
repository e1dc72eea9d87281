package playbook

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported playbook format")

//go:embed data/playbooks.json
var defaultCatalog []byte

// Default returns the catalog bundled with the binary.
func Default() (Catalog, error) {
	c, err := Parse(defaultCatalog, JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled playbooks: %w", err)
	}
	return c, nil
}

// Load reads the catalog at path. An empty path loads the bundled catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile picks the format from the file extension.
func LoadFile(path string) (Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playbooks %s: %w", path, err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: invalid file extension: %q", ErrUnsupportedFormat, ext)
	}
}

func Parse(data []byte, format Format) (Catalog, error) {
	c := Catalog{}
	switch format {
	case JSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
			return nil, fmt.Errorf("error decoding json playbooks: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("error decoding yaml playbooks: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return c, nil
}
