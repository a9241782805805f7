package main

import (
	"github.com/danmuck/extctl/internal/boundary"
	"github.com/danmuck/extctl/internal/classes"
	"github.com/danmuck/extctl/internal/lifecycle"
	"github.com/danmuck/extctl/internal/logging"
)

// demoClass is a host-visible class the demo extension declares.
type demoClass struct {
	name string
	tool bool
}

func (c demoClass) Name() string { return c.name }
func (c demoClass) Tool() bool   { return c.tool }

func declareDemoClasses() error {
	for _, c := range []demoClass{
		{name: "DemoNode"},
		{name: "DemoToolPanel", tool: true},
	} {
		if err := classes.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// demoLibrary keeps the default scene layer (class auto-registration) and
// adds a servers-level layer so the driving order is visible in the logs.
type demoLibrary struct {
	boundary.BaseLibrary

	behavior boundary.EditorRunBehavior
}

func (d demoLibrary) LoadLibrary(handle *lifecycle.Handle) bool {
	handle.RegisterLayer(lifecycle.LevelServers, lifecycle.Funcs{
		OnInit: func() {
			logger := logging.Logger()
			logger.Info().Msg("demo: servers layer up")
		},
		OnDeinit: func() {
			logger := logging.Logger()
			logger.Info().Msg("demo: servers layer down")
		},
	})
	return d.BaseLibrary.LoadLibrary(handle)
}

func (d demoLibrary) EditorRunBehavior() boundary.EditorRunBehavior {
	return d.behavior
}
