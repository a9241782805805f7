package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the manifest template to path. Refuses to overwrite
// an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("manifest already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(manifestTemplate), 0o600)
}

const manifestTemplate = `[extension]
name = "my-extension"
entry = "extension_entry"
reloadable = false

[host]
compatibility_minimum = "1.0"

[editor]
# tool-only | all
run_behavior = "tool-only"
`
