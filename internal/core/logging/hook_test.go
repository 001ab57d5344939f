package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want map[string]string
	}{
		{
			name: "full request",
			ctx:  WithRequest(context.Background(), Request{ID: "req-1", Method: "POST", Path: "/api/comments"}),
			want: map[string]string{"request_id": "req-1", "method": "POST", "path": "/api/comments"},
		},
		{
			name: "id only",
			ctx:  WithRequest(context.Background(), Request{ID: "req-2"}),
			want: map[string]string{"request_id": "req-2"},
		},
		{
			name: "background context",
			ctx:  context.Background(),
			want: map[string]string{},
		},
		{
			name: "empty request",
			ctx:  WithRequest(context.Background(), Request{}),
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.ctx).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for _, k := range []string{"request_id", "method", "path"} {
				want, ok := tt.want[k]
				got, present := entry[k]
				assert.Equal(t, ok, present, k)
				if ok {
					assert.Equal(t, want, got, k)
				}
			}
		})
	}
}
