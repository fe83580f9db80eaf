package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type verdictsFile struct {
	Verdicts map[string]string `yaml:"verdicts"`
}

// LoadVerdicts reads status verdict overrides from a YAML file of the form
//
//	verdicts:
//	  approved: "..."
//	  rejected: "..."
func LoadVerdicts(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read verdicts file: %w", err)
	}

	var f verdictsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse verdicts file: %w", err)
	}
	if len(f.Verdicts) == 0 {
		return nil, fmt.Errorf("verdicts file %s defines no verdicts", path)
	}
	return f.Verdicts, nil
}
