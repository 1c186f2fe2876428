package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeArtifact(t *testing.T, path string, a *Artifact) {
	t.Helper()
	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestHolder_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	writeArtifact(t, path, linearArtifact())

	var reloads, failures atomic.Int32
	h, err := NewHolder(path, zap.NewNop(), WithReloadHook(func(err error) {
		reloads.Add(1)
		if err != nil {
			failures.Add(1)
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", h.Pipeline().Version())

	next := linearArtifact()
	next.Version = "0.2.0"
	writeArtifact(t, path, next)
	require.NoError(t, h.Reload())
	assert.Equal(t, "0.2.0", h.Pipeline().Version())

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	assert.ErrorIs(t, h.Reload(), ErrInvalidArtifact)
	assert.Equal(t, "0.2.0", h.Pipeline().Version(), "failed reload keeps the previous pipeline")

	assert.Equal(t, int32(2), reloads.Load())
	assert.Equal(t, int32(1), failures.Load())
}

func TestNewHolder_MissingArtifact(t *testing.T) {
	_, err := NewHolder(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Error(t, err)
}

func TestHolder_WatchPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	writeArtifact(t, path, linearArtifact())

	h, err := NewHolder(path, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx) }()

	next := linearArtifact()
	next.Version = "0.3.0"
	assert.Eventually(t, func() bool {
		// Rewrite on every tick; the watcher may not be registered yet.
		writeArtifact(t, path, next)
		return h.Pipeline().Version() == "0.3.0"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
