package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanged(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bindings.yaml")

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: target, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, changed(tt.ev, target))
		})
	}
}

func TestWatchFile_RechecksOnWrite(t *testing.T) {
	path := writeFile(t, "bindings.yaml", validYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var checks atomic.Int32

	ready := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- watchFile(ctx, path, func() error {
			checks.Add(1)
			return nil
		}, ready)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not start")
	}

	assert.Equal(t, int32(1), checks.Load())

	require.NoError(t, os.WriteFile(path, []byte(validTOML), 0o644))

	assert.Eventually(t, func() bool { return checks.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "bindings.yaml")

	err := watchFile(context.Background(), missing, func() error { return nil }, nil)
	assert.Error(t, err)
}
