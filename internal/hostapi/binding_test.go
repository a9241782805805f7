package hostapi

import (
	"errors"
	"testing"

	"github.com/danmuck/extctl/internal/testutil/testlog"
)

func TestBindIsExactlyOncePerLoad(t *testing.T) {
	testlog.Start(t)
	t.Cleanup(Unbind)

	iface := Interface{VersionMajor: 1}
	token := LibraryToken{ID: "ext.test"}

	if err := Bind(iface, token, NewConfig(true, nil)); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if err := Bind(iface, token, NewConfig(true, nil)); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("expected ErrAlreadyBound, got %v", err)
	}

	b, err := Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if b.Library.ID != "ext.test" || b.Interface.VersionMajor != 1 {
		t.Fatalf("unexpected binding: %+v", b)
	}
	if !b.Config.ToolOnlyInEditor {
		t.Fatalf("expected tool-only config")
	}
}

func TestUnbindAllowsRebind(t *testing.T) {
	testlog.Start(t)
	t.Cleanup(Unbind)

	if err := Bind(Interface{}, LibraryToken{ID: "a"}, NewConfig(false, nil)); err != nil {
		t.Fatalf("bind: %v", err)
	}
	Unbind()

	if _, err := Current(); !errors.Is(err, ErrNotBound) {
		t.Fatalf("expected ErrNotBound, got %v", err)
	}
	if err := Bind(Interface{}, LibraryToken{ID: "b"}, NewConfig(false, nil)); err != nil {
		t.Fatalf("rebind: %v", err)
	}
}

func TestConfigQueriesEditorHintAtMostOnce(t *testing.T) {
	testlog.Start(t)

	calls := 0
	cfg := NewConfig(false, func() bool {
		calls++
		return true
	})

	for i := 0; i < 3; i++ {
		if !cfg.IsEditor() {
			t.Fatalf("expected editor mode")
		}
	}
	if calls != 1 {
		t.Fatalf("editor hint queried %d times, want 1", calls)
	}
}

func TestConfigWithoutQueryIsNotEditor(t *testing.T) {
	testlog.Start(t)

	if NewConfig(false, nil).IsEditor() {
		t.Fatalf("nil query should mean not editor")
	}
	var zero Config
	if zero.IsEditor() {
		t.Fatalf("zero config should mean not editor")
	}
}
