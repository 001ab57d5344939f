package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("client")
	logger.Info().Ctx(WithRequest(context.Background(), Request{ID: "abc", Path: "/api/data"})).Msg("sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "client", entry["cmp"])
	assert.Equal(t, "sent", entry["message"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "/api/data", entry["path"])
}
