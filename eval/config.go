package eval

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds preset variable bindings loaded from a YAML file:
//
//	vars:
//	  p: true
//	  q: false
type Config struct {
	Vars map[string]bool `yaml:"vars"`
}

// LoadConfig parses the vars file at path.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}
