package boundary

import (
	"errors"
	"testing"

	"github.com/danmuck/extctl/internal/classes"
	"github.com/danmuck/extctl/internal/hostapi"
	"github.com/danmuck/extctl/internal/lifecycle"
	"github.com/danmuck/extctl/internal/testutil/testlog"
)

type testLibrary struct {
	behavior EditorRunBehavior
	load     func(handle *lifecycle.Handle) bool
}

func (l testLibrary) LoadLibrary(handle *lifecycle.Handle) bool {
	if l.load == nil {
		return true
	}
	return l.load(handle)
}

func (l testLibrary) EditorRunBehavior() EditorRunBehavior {
	return l.behavior
}

type fakeHost struct {
	registered []string
	editor     bool
}

func (f *fakeHost) iface() hostapi.Interface {
	return hostapi.Interface{
		VersionMajor: 1,
		RegisterClass: func(_ hostapi.LibraryToken, name string, _ bool) error {
			f.registered = append(f.registered, name)
			return nil
		},
		UnregisterClass: func(_ hostapi.LibraryToken, name string) error {
			return nil
		},
		IsEditorHint: func() bool { return f.editor },
	}
}

func loadWith(t *testing.T, host *fakeHost, lib Library) (hostapi.InitTable, uint8) {
	t.Helper()
	t.Cleanup(Unload)
	var table hostapi.InitTable
	code := Load(host.iface(), hostapi.LibraryToken{ID: "ext.test"}, &table, lib)
	return table, code
}

func TestLoadPublishesTableAndHandle(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	var events []string
	lib := testLibrary{load: func(handle *lifecycle.Handle) bool {
		handle.RegisterLayer(lifecycle.LevelCore, lifecycle.Funcs{
			OnInit:   func() { events = append(events, "init:core") },
			OnDeinit: func() { events = append(events, "deinit:core") },
		})
		handle.RegisterLayer(lifecycle.LevelScene, lifecycle.Funcs{
			OnInit: func() { events = append(events, "init:scene") },
		})
		return true
	}}

	table, code := loadWith(t, host, lib)
	if code != LoadSuccess {
		t.Fatalf("load code = %d, want success", code)
	}
	if table.MinimumInitLevel != hostapi.RawLevelCore {
		t.Fatalf("minimum level = %d, want core", table.MinimumInitLevel)
	}
	if table.Userdata != nil {
		t.Fatalf("userdata must be nil, all state is process-wide")
	}
	if table.Initialize == nil || table.Deinitialize == nil {
		t.Fatalf("callbacks not populated")
	}

	if _, err := currentHandle(); err != nil {
		t.Fatalf("handle slot empty after load: %v", err)
	}

	table.Initialize(table.Userdata, hostapi.RawLevelCore)
	table.Initialize(table.Userdata, hostapi.RawLevelServers) // no layer, skip
	table.Initialize(table.Userdata, hostapi.RawLevelScene)
	table.Deinitialize(table.Userdata, hostapi.RawLevelCore)

	want := []string{"init:core", "init:scene", "deinit:core"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestLoadBuilderFailureReturnsFailureCode(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	registered := false
	lib := testLibrary{load: func(handle *lifecycle.Handle) bool {
		handle.RegisterLayer(lifecycle.LevelServers, lifecycle.Funcs{})
		registered = true
		return false
	}}

	table, code := loadWith(t, host, lib)
	if code != LoadFailure {
		t.Fatalf("load code = %d, want failure", code)
	}
	if !registered {
		t.Fatalf("builder should have run")
	}
	// Output parameters are still populated; the host may read them even
	// on failure.
	if table.MinimumInitLevel != hostapi.RawLevelServers {
		t.Fatalf("minimum level = %d, want servers", table.MinimumInitLevel)
	}
}

func TestLoadBuilderPanicIsContained(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	lib := testLibrary{load: func(handle *lifecycle.Handle) bool {
		panic("builder exploded before registering anything")
	}}

	_, code := loadWith(t, host, lib)
	if code != LoadFailure {
		t.Fatalf("load code = %d, want failure", code)
	}
	if _, err := currentHandle(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("slot should stay empty after panicking load, got %v", err)
	}
}

func TestSecondLoadFailsFast(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	if _, code := loadWith(t, host, testLibrary{}); code != LoadSuccess {
		t.Fatalf("first load failed")
	}

	var table hostapi.InitTable
	code := Load(host.iface(), hostapi.LibraryToken{ID: "ext.test"}, &table, testLibrary{})
	if code != LoadFailure {
		t.Fatalf("second load code = %d, want failure", code)
	}

	// After a full unload the library can come up again.
	Unload()
	if _, code := loadWith(t, host, testLibrary{}); code != LoadSuccess {
		t.Fatalf("reload after unload failed")
	}
}

func TestCallbackContainsLayerPanic(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	var sceneUp bool
	lib := testLibrary{load: func(handle *lifecycle.Handle) bool {
		handle.RegisterLayer(lifecycle.LevelCore, lifecycle.Funcs{
			OnInit: func() { panic("core layer broken") },
		})
		handle.RegisterLayer(lifecycle.LevelScene, lifecycle.Funcs{
			OnInit: func() { sceneUp = true },
		})
		return true
	}}

	table, code := loadWith(t, host, lib)
	if code != LoadSuccess {
		t.Fatalf("load failed")
	}

	// Must not unwind; the host sees nothing.
	table.Initialize(table.Userdata, hostapi.RawLevelCore)

	// The process stays usable for later levels.
	table.Initialize(table.Userdata, hostapi.RawLevelScene)
	if !sceneUp {
		t.Fatalf("scene layer should initialize after contained core panic")
	}
}

func TestCallbackUnknownLevelFallsBackToScene(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	var sceneInits int
	lib := testLibrary{load: func(handle *lifecycle.Handle) bool {
		handle.RegisterLayer(lifecycle.LevelScene, lifecycle.Funcs{
			OnInit: func() { sceneInits++ },
		})
		return true
	}}

	table, code := loadWith(t, host, lib)
	if code != LoadSuccess {
		t.Fatalf("load failed")
	}

	table.Initialize(table.Userdata, hostapi.RawLevel(42))
	if sceneInits != 1 {
		t.Fatalf("unknown level should dispatch to scene, got %d inits", sceneInits)
	}
}

func TestCallbackBeforeLoadIsAbsorbed(t *testing.T) {
	testlog.Start(t)
	t.Cleanup(Unload)

	// Contract violation by the host; must be logged, never a crash.
	initializeLayer(nil, hostapi.RawLevelCore)
	deinitializeLayer(nil, hostapi.RawLevelEditor)
}

func TestBaseLibraryRegistersDefaultSceneLayer(t *testing.T) {
	testlog.Start(t)
	host := &fakeHost{}

	if err := classes.Register(testClass{name: "BoundaryTestNode"}); err != nil {
		t.Fatalf("declare class: %v", err)
	}

	table, code := loadWith(t, host, BaseLibrary{})
	if code != LoadSuccess {
		t.Fatalf("load failed")
	}
	if table.MinimumInitLevel != hostapi.RawLevelScene {
		t.Fatalf("minimum level = %d, want scene", table.MinimumInitLevel)
	}

	table.Initialize(table.Userdata, hostapi.RawLevelScene)

	found := false
	for _, name := range host.registered {
		if name == "BoundaryTestNode" {
			found = true
		}
	}
	if !found {
		t.Fatalf("default layer did not register declared classes: %v", host.registered)
	}

	// Teardown of the default layer is deliberately a no-op.
	table.Deinitialize(table.Userdata, hostapi.RawLevelScene)
}

type testClass struct {
	name string
}

func (c testClass) Name() string { return c.name }
func (c testClass) Tool() bool   { return false }
