package boundary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/extctl/internal/lifecycle"
)

var ErrUnknownRunBehavior = errors.New("boundary: unknown editor run behavior")

// EditorRunBehavior determines if and how extension code runs while the
// host is in editor/authoring mode.
type EditorRunBehavior int

const (
	// ToolClassesOnly registers every class but keeps lifecycle callbacks
	// inactive in the editor except for tool-marked classes. The default.
	ToolClassesOnly EditorRunBehavior = iota

	// AllClasses runs the extension with full functionality in the editor.
	AllClasses
)

func (b EditorRunBehavior) String() string {
	switch b {
	case ToolClassesOnly:
		return "tool-only"
	case AllClasses:
		return "all"
	default:
		return fmt.Sprintf("run-behavior(%d)", int(b))
	}
}

// ParseEditorRunBehavior resolves a behavior name from config or flags.
func ParseEditorRunBehavior(raw string) (EditorRunBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tool-only", "tool_classes_only", "tools":
		return ToolClassesOnly, nil
	case "all", "all_classes":
		return AllClasses, nil
	default:
		return ToolClassesOnly, fmt.Errorf("%w: %q", ErrUnknownRunBehavior, raw)
	}
}

// Library is the entry point an extension implements exactly once. Load
// consults it while bringing the library up.
type Library interface {
	// LoadLibrary registers the extension's layers on handle. Returning
	// false marks the whole load as failed even when every registration
	// inside it succeeded.
	LoadLibrary(handle *lifecycle.Handle) bool

	// EditorRunBehavior is consulted once, at load time.
	EditorRunBehavior() EditorRunBehavior
}

// BaseLibrary supplies the default entry behavior: a DefaultLayer at the
// scene level and tool-only editor execution. Embed it and override only
// what the extension needs; registering another layer at the scene level
// replaces the default one.
type BaseLibrary struct{}

func (BaseLibrary) LoadLibrary(handle *lifecycle.Handle) bool {
	handle.RegisterLayer(lifecycle.LevelScene, DefaultLayer{})
	return true
}

func (BaseLibrary) EditorRunBehavior() EditorRunBehavior {
	return ToolClassesOnly
}
