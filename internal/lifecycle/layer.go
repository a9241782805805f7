package lifecycle

// Layer is one registrable unit of lifecycle work, bound to exactly one
// Level at registration time. Implementations own their idempotence: the
// host may repeat or reorder callbacks and the handle does not track state
// per level.
type Layer interface {
	Initialize()
	Deinitialize()
}

// Funcs adapts plain functions to a Layer. Nil fields are no-ops.
type Funcs struct {
	OnInit   func()
	OnDeinit func()
}

func (f Funcs) Initialize() {
	if f.OnInit != nil {
		f.OnInit()
	}
}

func (f Funcs) Deinitialize() {
	if f.OnDeinit != nil {
		f.OnDeinit()
	}
}
