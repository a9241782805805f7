package hostapi

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyBound = errors.New("hostapi: host interface already bound")
	ErrNotBound     = errors.New("hostapi: host interface not bound")
)

// Binding is the process-wide host binding established once at load. Every
// later call back into the host (class registration, editor queries) goes
// through the current binding.
type Binding struct {
	Interface Interface
	Library   LibraryToken
	Config    Config
}

var (
	bindMu  sync.Mutex
	binding *Binding
)

// Bind publishes the resolved host interface for the lifetime of the load.
// A second Bind without an intervening Unbind fails; the load sequence is
// exactly-once by contract and this is where that is enforced.
func Bind(iface Interface, library LibraryToken, cfg Config) error {
	bindMu.Lock()
	defer bindMu.Unlock()
	if binding != nil {
		return ErrAlreadyBound
	}
	binding = &Binding{Interface: iface, Library: library, Config: cfg}
	return nil
}

// Current returns the active binding.
func Current() (*Binding, error) {
	bindMu.Lock()
	defer bindMu.Unlock()
	if binding == nil {
		return nil, ErrNotBound
	}
	return binding, nil
}

// Unbind clears the binding after the host unloads the library.
func Unbind() {
	bindMu.Lock()
	defer bindMu.Unlock()
	binding = nil
}
