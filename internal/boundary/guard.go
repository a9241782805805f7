package boundary

import (
	"github.com/rs/zerolog"
)

// Contain runs fn and absorbs any panic it raises, logging the recovered
// value under msg. It reports whether fn completed normally.
//
// An unwind across the host boundary is undefined behavior, so every entry
// point the host can call runs its whole body through here.
func Contain(log zerolog.Logger, msg string, fn func()) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg(msg)
			completed = false
		}
	}()
	fn()
	return true
}
