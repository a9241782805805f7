package hostsim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/danmuck/extctl/internal/boundary"
	"github.com/danmuck/extctl/internal/hostapi"
	"github.com/danmuck/extctl/internal/lifecycle"
)

var (
	ErrLoadFailed    = errors.New("hostsim: extension load failed")
	ErrAlreadyLoaded = errors.New("hostsim: extension already loaded")
	ErrNotLoaded     = errors.New("hostsim: extension not loaded")
	ErrClassExists   = errors.New("hostsim: class already registered")
	ErrUnknownClass  = errors.New("hostsim: class not registered")
)

// Config shapes the simulated host.
type Config struct {
	LibraryID    string
	Editor       bool
	VersionMajor uint32
	VersionMinor uint32
}

func DefaultConfig() Config {
	return Config{
		LibraryID:    "ext.local",
		VersionMajor: 1,
		VersionMinor: 0,
	}
}

// Host drives one extension the way the real host does: Load once, then
// per-level callbacks ascending on the way up and descending on the way
// down. It also plays the host's side of class registration.
type Host struct {
	cfg     Config
	log     zerolog.Logger
	table   hostapi.InitTable
	loaded  bool
	classes map[string]bool // name -> tool
}

func New(cfg Config, log zerolog.Logger) *Host {
	if cfg.LibraryID == "" {
		cfg.LibraryID = "ext.local"
	}
	return &Host{
		cfg:     cfg,
		log:     log,
		classes: make(map[string]bool),
	}
}

// Interface returns the resolved host interface handed to the extension.
func (h *Host) Interface() hostapi.Interface {
	return hostapi.Interface{
		VersionMajor:    h.cfg.VersionMajor,
		VersionMinor:    h.cfg.VersionMinor,
		RegisterClass:   h.registerClass,
		UnregisterClass: h.unregisterClass,
		IsEditorHint:    func() bool { return h.cfg.Editor },
	}
}

// Load runs the extension entry point once and keeps the returned table.
func (h *Host) Load(lib boundary.Library) error {
	if h.loaded {
		return ErrAlreadyLoaded
	}
	token := hostapi.LibraryToken{ID: h.cfg.LibraryID}
	if code := boundary.Load(h.Interface(), token, &h.table, lib); code != boundary.LoadSuccess {
		return ErrLoadFailed
	}
	h.loaded = true
	h.log.Info().
		Str("library", h.cfg.LibraryID).
		Uint32("minimum_level", uint32(h.table.MinimumInitLevel)).
		Msg("hostsim: extension loaded")
	return nil
}

// InitializeTo brings phases up in ascending order, from the extension's
// minimum level through target inclusive.
func (h *Host) InitializeTo(target lifecycle.Level) error {
	if !h.loaded {
		return ErrNotLoaded
	}
	for _, level := range lifecycle.Levels() {
		if level.Raw() < uint32(h.table.MinimumInitLevel) || level > target {
			continue
		}
		h.table.Initialize(h.table.Userdata, hostapi.RawLevel(level.Raw()))
	}
	return nil
}

// DeinitializeFrom tears phases down in descending order, from target back
// to the extension's minimum level inclusive.
func (h *Host) DeinitializeFrom(target lifecycle.Level) error {
	if !h.loaded {
		return ErrNotLoaded
	}
	levels := lifecycle.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		level := levels[i]
		if level.Raw() < uint32(h.table.MinimumInitLevel) || level > target {
			continue
		}
		h.table.Deinitialize(h.table.Userdata, hostapi.RawLevel(level.Raw()))
	}
	return nil
}

// Unload drops the extension, mirroring the host unloading the library.
// The extension may be loaded again afterwards.
func (h *Host) Unload() {
	if !h.loaded {
		return
	}
	boundary.Unload()
	h.loaded = false
	h.table = hostapi.InitTable{}
	h.classes = make(map[string]bool)
	h.log.Info().Str("library", h.cfg.LibraryID).Msg("hostsim: extension unloaded")
}

// Table returns the initialization table the extension published.
func (h *Host) Table() hostapi.InitTable {
	return h.table
}

// RegisteredClasses returns the names the extension registered, sorted.
func (h *Host) RegisteredClasses() []string {
	names := make([]string, 0, len(h.classes))
	for name := range h.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Host) registerClass(library hostapi.LibraryToken, name string, tool bool) error {
	if _, ok := h.classes[name]; ok {
		return fmt.Errorf("%w: %q", ErrClassExists, name)
	}
	h.classes[name] = tool
	h.log.Debug().Str("library", library.ID).Str("class", name).Bool("tool", tool).Msg("hostsim: class registered")
	return nil
}

func (h *Host) unregisterClass(library hostapi.LibraryToken, name string) error {
	if _, ok := h.classes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	delete(h.classes, name)
	h.log.Debug().Str("library", library.ID).Str("class", name).Msg("hostsim: class unregistered")
	return nil
}
