package hostapi

import "sync"

// Config is the runtime configuration assembled once during load.
type Config struct {
	// ToolOnlyInEditor is derived from the extension's editor-run behavior:
	// when set, only tool-marked classes run their lifecycle callbacks while
	// the host is in editor mode.
	ToolOnlyInEditor bool

	isEditor func() bool
}

// NewConfig builds a runtime configuration. editorQuery is asked at most
// once, on the first IsEditor call; the answer is cached for the process
// lifetime. A nil query means "not an editor".
func NewConfig(toolOnlyInEditor bool, editorQuery func() bool) Config {
	return Config{
		ToolOnlyInEditor: toolOnlyInEditor,
		isEditor: sync.OnceValue(func() bool {
			if editorQuery == nil {
				return false
			}
			return editorQuery()
		}),
	}
}

// IsEditor reports whether the host runs in editor mode.
func (c Config) IsEditor() bool {
	if c.isEditor == nil {
		return false
	}
	return c.isEditor()
}
