package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/extctl/internal/boundary"
)

// Manifest describes one extension library: identity, host compatibility,
// and editor policy. It is the TOML file shipped next to the built library.
type Manifest struct {
	Extension ExtensionConfig `toml:"extension"`
	Host      HostConfig      `toml:"host"`
	Editor    EditorConfig    `toml:"editor"`
}

type ExtensionConfig struct {
	Name       string `toml:"name"`
	Entry      string `toml:"entry"`
	Reloadable bool   `toml:"reloadable"`
}

type HostConfig struct {
	CompatibilityMinimum string `toml:"compatibility_minimum"`
}

type EditorConfig struct {
	RunBehavior string `toml:"run_behavior"`
}

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// LoadManifest reads and validates a manifest file, applying defaults for
// optional fields.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest load failed (%s): %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest parse failed (%s): %w", path, err)
	}

	if m.Extension.Entry == "" {
		m.Extension.Entry = "extension_entry"
	}
	if m.Host.CompatibilityMinimum == "" {
		m.Host.CompatibilityMinimum = "1.0"
	}
	if m.Editor.RunBehavior == "" {
		m.Editor.RunBehavior = boundary.ToolClassesOnly.String()
	}

	if err := ValidateManifest(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// ValidateManifest checks required fields and value formats.
func ValidateManifest(m Manifest) error {
	if strings.TrimSpace(m.Extension.Name) == "" {
		return fmt.Errorf("manifest: extension name is required")
	}
	if strings.TrimSpace(m.Extension.Entry) == "" {
		return fmt.Errorf("manifest: extension entry is required")
	}
	if !versionPattern.MatchString(m.Host.CompatibilityMinimum) {
		return fmt.Errorf("manifest: invalid compatibility_minimum %q, want major.minor", m.Host.CompatibilityMinimum)
	}
	if _, err := boundary.ParseEditorRunBehavior(m.Editor.RunBehavior); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// EditorRunBehavior returns the manifest's editor policy as a typed value.
// Call only on a validated manifest.
func (m Manifest) EditorRunBehavior() boundary.EditorRunBehavior {
	b, err := boundary.ParseEditorRunBehavior(m.Editor.RunBehavior)
	if err != nil {
		return boundary.ToolClassesOnly
	}
	return b
}
