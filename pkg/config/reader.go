package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a template file. Fields missing from the file keep their
// values from Default. An empty path returns Default unchanged.
func Load(path string) (Template, error) {
	tpl := Default()
	if path == "" {
		return tpl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}

	if err := tpl.Validate(); err != nil {
		return Template{}, fmt.Errorf("invalid template %s: %w", path, err)
	}

	return tpl, nil
}
