package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "terrain.yaml"))
}

// SaveTo writes the config to a specific path. A .toml extension selects TOML.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(isTOML(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as YAML, or as TOML when asTOML is set.
func (c *Config) Marshal(asTOML bool) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil || !asTOML {
		return data, err
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	tree, err := toml.TreeFromMap(homogenize(generic).(map[string]interface{}))
	if err != nil {
		return nil, err
	}
	return []byte(tree.String()), nil
}

// homogenize promotes integers to floats inside arrays that hold floats.
// YAML writes whole float32 values like 1.0 as "1", which would otherwise
// produce mixed-type TOML arrays.
func homogenize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = homogenize(e)
		}
		return t
	case []interface{}:
		hasFloat := false
		for i, e := range t {
			t[i] = homogenize(e)
			if _, ok := t[i].(float64); ok {
				hasFloat = true
			}
		}
		if hasFloat {
			for i, e := range t {
				if n, ok := e.(int); ok {
					t[i] = float64(n)
				}
			}
		}
		return t
	default:
		return v
	}
}
