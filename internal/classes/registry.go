package classes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrClassExists = errors.New("classes: class already declared")
	ErrClassNil    = errors.New("classes: class is nil")
	ErrInvalidName = errors.New("classes: invalid class name")
)

// Class describes one host-visible class declared by this library.
type Class interface {
	// Name returns the host-visible class name.
	Name() string
	// Tool reports whether the class keeps running in editor mode under the
	// tool-only policy.
	Tool() bool
}

var (
	mu       sync.RWMutex
	declared = map[string]Class{}
)

// Register declares a class for later host registration. Typically called
// from an init func in the file defining the class. Duplicate names are
// rejected.
func Register(c Class) error {
	if c == nil {
		return ErrClassNil
	}
	name := strings.TrimSpace(c.Name())
	if !isValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, c.Name())
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := declared[name]; ok {
		return fmt.Errorf("%w: %q", ErrClassExists, name)
	}
	declared[name] = c
	return nil
}

// Get returns a declared class by name.
func Get(name string) (Class, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := declared[name]
	return c, ok
}

// All returns every declared class in deterministic name order.
func All() []Class {
	mu.RLock()
	defer mu.RUnlock()
	list := make([]Class, 0, len(declared))
	for _, c := range declared {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// AutoRegister pushes every declared class to the host through register, in
// name order. The first failure aborts the walk and is returned.
func AutoRegister(register func(Class) error) error {
	for _, c := range All() {
		if err := register(c); err != nil {
			return fmt.Errorf("register class %q: %w", c.Name(), err)
		}
	}
	return nil
}

// Deregister removes every declared class from the host through deregister,
// in reverse name order so teardown mirrors registration.
func Deregister(deregister func(Class) error) error {
	list := All()
	for i := len(list) - 1; i >= 0; i-- {
		if err := deregister(list[i]); err != nil {
			return fmt.Errorf("deregister class %q: %w", list[i].Name(), err)
		}
	}
	return nil
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '_', r == '-':
			if i == 0 && (r == '_' || r == '-') {
				return false
			}
		default:
			return false
		}
	}
	return true
}
