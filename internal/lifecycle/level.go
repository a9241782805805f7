package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("lifecycle: unknown level")

// Level identifies one ordered phase of the host lifecycle. Ordinals match
// the host ABI and are part of the public contract: the host compares them
// to decide the minimum initialization level, so they must not be reordered.
type Level uint32

const (
	LevelCore Level = iota
	LevelServers
	LevelScene
	LevelEditor

	levelCount = 4
)

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{LevelCore, LevelServers, LevelScene, LevelEditor}
}

// FromRaw maps a host-side level ordinal to a Level. Unrecognized ordinals
// fall back to LevelScene; known reports whether raw was recognized. The
// caller decides how loudly to warn.
func FromRaw(raw uint32) (level Level, known bool) {
	if raw < levelCount {
		return Level(raw), true
	}
	return LevelScene, false
}

// Raw returns the host-side ordinal for the level.
func (l Level) Raw() uint32 {
	return uint32(l)
}

func (l Level) String() string {
	switch l {
	case LevelCore:
		return "core"
	case LevelServers:
		return "servers"
	case LevelScene:
		return "scene"
	case LevelEditor:
		return "editor"
	default:
		return fmt.Sprintf("level(%d)", uint32(l))
	}
}

// ParseLevel resolves a level name from config or flags.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "core":
		return LevelCore, nil
	case "servers":
		return LevelServers, nil
	case "scene":
		return LevelScene, nil
	case "editor":
		return LevelEditor, nil
	default:
		return LevelScene, fmt.Errorf("%w: %q", ErrUnknownLevel, raw)
	}
}
