package testlog

import (
	"testing"

	"github.com/danmuck/extctl/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logger := logging.Logger()
	logger.Info().Str("test", t.Name()).Msg("testlog: start")
}
