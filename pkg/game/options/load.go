package options

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an options file in YAML form, applying the file's values over
// the defaults, and validates the result.
func Load(path string) (Options, error) {
	o := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return o, fmt.Errorf("options: %s: %w", path, err)
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("options: %s: %w", path, err)
	}
	return o, nil
}
