package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpTurnDeliversChunksAndCompletion(t *testing.T) {
	events := make(chan tea.Msg, 8)

	go pumpTurn(context.Background(), events, func(ctx context.Context, onChunk func(string)) (string, error) {
		onChunk("Hel")
		onChunk("Hello")
		onChunk("Hello world")
		return "Hello world", nil
	})

	var got []tea.Msg
	for msg := range events {
		got = append(got, msg)
	}

	require.Len(t, got, 4)
	assert.Equal(t, streamChunkMsg("Hel"), got[0])
	assert.Equal(t, streamChunkMsg("Hello"), got[1])
	assert.Equal(t, streamChunkMsg("Hello world"), got[2])
	done, ok := got[3].(streamDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "Hello world", done.full)
	assert.NoError(t, done.err)
}

func TestPumpTurnUnwindsWhenAbandoned(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, 8)

	finished := make(chan struct{})
	go func() {
		pumpTurn(ctx, events, func(ctx context.Context, onChunk func(string)) (string, error) {
			// Far more chunks than the buffer holds, with nothing
			// draining, as when the user quits mid-stream.
			for i := 0; i < 50; i++ {
				onChunk("fragment")
			}
			return "", ctx.Err()
		})
		close(finished)
	}()

	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not unwind after cancellation with no reader")
	}
}
