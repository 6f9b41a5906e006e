// Package manifest loads static service descriptor lists from disk.
// YAML, TOML, and JSON manifests are supported, dispatched on file
// extension.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/supervisor"
)

// Manifest is the root structure of a service manifest file.
type Manifest struct {
	Services []supervisor.ServiceSpec `json:"services" yaml:"services" toml:"services"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes manifest data in the format implied by ext
// (".yaml"/".yml", ".toml", or ".json") and validates it.
func Parse(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML manifest: %w", err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse JSON manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %q", ext)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool, len(m.Services))
	for i, svc := range m.Services {
		if svc.Name == "" {
			return fmt.Errorf("service %d has empty name", i)
		}
		if svc.Path == "" {
			return fmt.Errorf("service %q has empty path", svc.Name)
		}
		if seen[svc.Name] {
			return fmt.Errorf("duplicate service name: %q", svc.Name)
		}
		seen[svc.Name] = true
		if len(svc.Deps) > supervisor.MaxDependencies {
			return fmt.Errorf("service %q exceeds %d dependencies", svc.Name, supervisor.MaxDependencies)
		}
	}
	return nil
}
