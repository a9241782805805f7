package boundary

import (
	"errors"
	"sync"

	"github.com/danmuck/extctl/internal/hostapi"
	"github.com/danmuck/extctl/internal/lifecycle"
)

var (
	ErrAlreadyLoaded = errors.New("boundary: library already loaded")
	ErrNotLoaded     = errors.New("boundary: library not loaded")
)

// The handle slot holds the one lifecycle handle for the process. The host
// callback ABI carries no usable userdata pointer, so the slot is a guarded
// global cell: a single writer during Load, then readers on whichever
// thread the host calls back on.
var (
	slotMu sync.Mutex
	slot   *lifecycle.Handle
)

func publishHandle(h *lifecycle.Handle) error {
	slotMu.Lock()
	defer slotMu.Unlock()
	if slot != nil {
		return ErrAlreadyLoaded
	}
	slot = h
	return nil
}

func currentHandle() (*lifecycle.Handle, error) {
	slotMu.Lock()
	defer slotMu.Unlock()
	if slot == nil {
		return nil, ErrNotLoaded
	}
	return slot, nil
}

// Unload clears the handle slot and the host binding after the host has
// torn every level down. Without it a second Load fails fast; with it a
// reloadable library can be loaded again in the same process.
func Unload() {
	slotMu.Lock()
	slot = nil
	slotMu.Unlock()
	hostapi.Unbind()
}
