package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook adds the request fields found on an event's context.
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	r, ok := RequestFrom(ctx)
	if !ok {
		return
	}
	if r.ID != "" {
		e.Str("request_id", r.ID)
	}
	if r.Method != "" {
		e.Str("method", r.Method)
	}
	if r.Path != "" {
		e.Str("path", r.Path)
	}
}
