// Package logging holds zerolog helpers shared by hrevu components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with cmp=name. Events logged
// with .Ctx(ctx) pick up the request fields through ContextHook.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
