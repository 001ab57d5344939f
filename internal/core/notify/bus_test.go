package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []Notification
	bus.Subscribe(func(n Notification) {
		received = append(received, n)
	})

	bus.Errorf("test error: %d", 42)
	bus.Infof("info msg")
	bus.Warnf("warn msg")
	bus.Successf("saved")

	require.Len(t, received, 4)
	assert.Equal(t, LevelError, received[0].Level)
	assert.Equal(t, "test error: 42", received[0].Message)
	assert.Equal(t, LevelInfo, received[1].Level)
	assert.Equal(t, LevelWarning, received[2].Level)
	assert.Equal(t, LevelSuccess, received[3].Level)
}

func TestBus_Publish_assigns_ids_and_timestamps(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	bus := NewBus()
	bus.now = func() time.Time { return fixed }

	var received []Notification
	bus.Subscribe(func(n Notification) { received = append(received, n) })

	bus.Publish(Notification{Level: LevelSuccess, Message: "done", CloseAfter: true})
	bus.Publish(Notification{Level: LevelInfo, Message: "again"})

	require.Len(t, received, 2)
	assert.Equal(t, int64(1), received[0].ID)
	assert.Equal(t, int64(2), received[1].ID)
	assert.Equal(t, fixed, received[0].CreatedAt)
	assert.True(t, received[0].CloseAfter)
}

func TestBus_Publish_no_dedup(t *testing.T) {
	bus := NewBus()

	count := 0
	bus.Subscribe(func(Notification) { count++ })

	bus.Errorf("same")
	bus.Errorf("same")

	assert.Equal(t, 2, count)
}

func TestBus_multiple_subscribers(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func(Notification) { a++ })
	bus.Subscribe(func(Notification) { b++ })

	bus.Infof("hello")

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
