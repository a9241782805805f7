package lifecycle

import (
	"github.com/rs/zerolog"
)

// Handle owns every layer an extension registers and dispatches per-level
// init/deinit calls against them. The level set is closed and tiny, so
// layers live in a fixed array indexed by ordinal.
//
// A Handle is not safe for concurrent use. The host calling contract
// serializes load and all per-level callbacks onto one caller at a time;
// anything beyond that is the boundary package's concern.
type Handle struct {
	layers [levelCount]Layer
	log    zerolog.Logger
}

// NewHandle creates an empty handle whose diagnostics go to log.
func NewHandle(log zerolog.Logger) *Handle {
	return &Handle{log: log}
}

// RegisterLayer binds layer to level. Registering at an occupied level
// replaces the previous layer: the last registration wins, silently. This
// is how an extension swaps out the default scene layer.
func (h *Handle) RegisterLayer(level Level, layer Layer) {
	h.layers[level] = layer
}

// LowestInitLevel returns the earliest level with a registered layer, or
// LevelScene when nothing is registered. The host uses it as the first
// phase it must call back for; earlier callbacks degrade to logged skips.
func (h *Handle) LowestInitLevel() Level {
	for _, level := range Levels() {
		if h.layers[level] != nil {
			return level
		}
	}
	return LevelScene
}

// RunInit invokes Initialize on the layer at level, if one is registered.
// A level without a layer is a logged no-op, never a failure.
func (h *Handle) RunInit(level Level) {
	if layer := h.layers[level]; layer != nil {
		h.log.Debug().Stringer("level", level).Msg("lifecycle: initialize level")
		layer.Initialize()
		return
	}
	h.log.Debug().Stringer("level", level).Msg("lifecycle: skip init, no layer")
}

// RunDeinit invokes Deinitialize on the layer at level, if one is
// registered. Symmetric to RunInit.
func (h *Handle) RunDeinit(level Level) {
	if layer := h.layers[level]; layer != nil {
		h.log.Debug().Stringer("level", level).Msg("lifecycle: deinitialize level")
		layer.Deinitialize()
		return
	}
	h.log.Debug().Stringer("level", level).Msg("lifecycle: skip deinit, no layer")
}
