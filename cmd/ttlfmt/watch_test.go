package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geoknoesis/rdf-turtle/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSet(t *testing.T) {
	_, err := watchSet([]string{"a.ttl", stdio})
	assert.EqualError(t, err, "cannot watch standard input")

	got, err := watchSet([]string{"a.ttl", "./a.ttl"})
	require.NoError(t, err)
	abs, err := filepath.Abs("a.ttl")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{abs: true}, got)
}

func TestWatchInputsReruns(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ttl")
	writeFile(t, input, sampleTurtle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := slog.New(logging.NewHandler(io.Discard, slog.LevelDebug, false))

	reruns := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchInputs(ctx, []string{input}, logger, func() { reruns <- struct{}{} })
	}()

	// The watcher may not be registered yet; keep touching the file.
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(3 * settleDelay)
	defer tick.Stop()
loop:
	for {
		select {
		case <-reruns:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(input, []byte(sampleTurtle), 0o600))
		case <-deadline:
			t.Fatal("no rerun after writing the input")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
