package hostapi

// RawLevel is the host's wire representation of an initialization level.
// Ordinals are fixed by the host ABI.
type RawLevel uint32

const (
	RawLevelCore RawLevel = iota
	RawLevelServers
	RawLevelScene
	RawLevelEditor
)

// LevelFunc is the shape of the per-level callbacks published to the host.
// The host ABI for these calls is void: nothing is returned, failures are
// logged and absorbed on this side of the boundary.
type LevelFunc func(userdata any, level RawLevel)

// InitTable is the function table handed back to the host when the library
// loads. The host reads MinimumInitLevel to decide the earliest phase it
// must call back for, then drives Initialize and Deinitialize per level.
type InitTable struct {
	MinimumInitLevel RawLevel
	// Userdata is always nil. The callback ABI offers no usable per-call
	// state, which is why the loaded handle lives in a process-wide slot.
	Userdata     any
	Initialize   LevelFunc
	Deinitialize LevelFunc
}

// Interface is the host interface already resolved to typed entry points.
type Interface struct {
	VersionMajor uint32
	VersionMinor uint32

	// RegisterClass makes a class declared by this library visible to the
	// host. Tool classes stay active in editor mode under the tool-only
	// policy; enforcement of that policy is the host's job.
	RegisterClass func(library LibraryToken, name string, tool bool) error

	// UnregisterClass removes a previously registered class.
	UnregisterClass func(library LibraryToken, name string) error

	// IsEditorHint reports whether the host runs in editor/authoring mode.
	IsEditorHint func() bool
}

// LibraryToken identifies this library within the host for the lifetime of
// the load.
type LibraryToken struct {
	ID string
}
