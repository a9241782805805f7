package boundary

import (
	"github.com/danmuck/extctl/internal/classes"
	"github.com/danmuck/extctl/internal/hostapi"
	"github.com/danmuck/extctl/internal/logging"
)

// DefaultLayer is the layer BaseLibrary registers at the scene level. Its
// Initialize pushes every declared class to the host.
type DefaultLayer struct{}

func (DefaultLayer) Initialize() {
	log := logging.Logger()

	b, err := hostapi.Current()
	if err != nil {
		log.Error().Err(err).Msg("boundary: default layer has no host binding")
		return
	}

	err = classes.AutoRegister(func(c classes.Class) error {
		return b.Interface.RegisterClass(b.Library, c.Name(), c.Tool())
	})
	if err != nil {
		log.Error().Err(err).Msg("boundary: class auto-registration failed")
		return
	}
	log.Debug().Int("classes", len(classes.All())).Msg("boundary: classes registered")
}

func (DefaultLayer) Deinitialize() {
	// Nothing. Cleanup belongs in extension-specific teardown: an extension
	// may replace this layer entirely, so this method is not guaranteed to
	// run.
}
