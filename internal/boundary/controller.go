package boundary

import (
	"github.com/rs/zerolog"

	"github.com/danmuck/extctl/internal/hostapi"
	"github.com/danmuck/extctl/internal/lifecycle"
	"github.com/danmuck/extctl/internal/logging"
)

// Load result codes crossing the host boundary.
const (
	LoadFailure uint8 = 0
	LoadSuccess uint8 = 1
)

// Load is the entry point the host calls exactly once after loading the
// library. It binds the host interface, runs the extension's builder,
// publishes the lifecycle handle into the process-wide slot, and fills out
// with the table the host will call back through.
//
// Returns LoadSuccess only when the whole body completed and the builder
// reported success. A panic anywhere inside is contained here; on failure
// out may be partially populated and the host must not call back into it.
// A second Load without an Unload fails fast instead of overwriting state.
func Load(iface hostapi.Interface, library hostapi.LibraryToken, out *hostapi.InitTable, lib Library) uint8 {
	logging.ConfigureRuntime()
	log := logging.Logger()

	var builderOK bool
	var published bool

	completed := Contain(log, "boundary: error while loading extension library", func() {
		toolOnly := lib.EditorRunBehavior() == ToolClassesOnly
		cfg := hostapi.NewConfig(toolOnly, iface.IsEditorHint)

		if err := hostapi.Bind(iface, library, cfg); err != nil {
			log.Error().Err(err).Msg("boundary: bind host interface")
			return
		}

		handle := lifecycle.NewHandle(log)
		builderOK = lib.LoadLibrary(handle)
		// No early exit on builder failure: the host may still read the
		// output parameters, so the table is populated either way.

		*out = hostapi.InitTable{
			MinimumInitLevel: hostapi.RawLevel(handle.LowestInitLevel().Raw()),
			Userdata:         nil,
			Initialize:       initializeLayer,
			Deinitialize:     deinitializeLayer,
		}

		if err := publishHandle(handle); err != nil {
			log.Error().Err(err).Msg("boundary: publish lifecycle handle")
			return
		}
		published = true

		log.Info().
			Stringer("minimum_level", handle.LowestInitLevel()).
			Str("library", library.ID).
			Bool("tool_only_in_editor", toolOnly).
			Msg("boundary: library loaded")
	})

	if !completed || !published || !builderOK {
		return LoadFailure
	}
	return LoadSuccess
}

// initializeLayer is the per-level callback published to the host for
// phase bring-up. Void toward the host: failures are logged and absorbed.
func initializeLayer(_ any, raw hostapi.RawLevel) {
	log := logging.Logger()
	level := levelFromRaw(log, raw)

	Contain(log, "boundary: failed to initialize layer "+level.String(), func() {
		handle, err := currentHandle()
		if err != nil {
			log.Error().Err(err).Stringer("level", level).Msg("boundary: initialize before load")
			return
		}
		handle.RunInit(level)
	})
}

// deinitializeLayer is the per-level callback for phase teardown.
// Symmetric to initializeLayer.
func deinitializeLayer(_ any, raw hostapi.RawLevel) {
	log := logging.Logger()
	level := levelFromRaw(log, raw)

	Contain(log, "boundary: failed to deinitialize layer "+level.String(), func() {
		handle, err := currentHandle()
		if err != nil {
			log.Error().Err(err).Stringer("level", level).Msg("boundary: deinitialize before load")
			return
		}
		handle.RunDeinit(level)
	})
}

// levelFromRaw maps a host level ordinal, warning on values this build does
// not know. The callback ABI has no room for an error, so unknown ordinals
// degrade to the scene level rather than being rejected.
func levelFromRaw(log zerolog.Logger, raw hostapi.RawLevel) lifecycle.Level {
	level, known := lifecycle.FromRaw(uint32(raw))
	if !known {
		log.Warn().
			Uint32("raw_level", uint32(raw)).
			Stringer("fallback", level).
			Msg("boundary: unknown initialization level")
	}
	return level
}
