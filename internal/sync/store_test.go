//go:build unit

package sync_test

import (
	"os"
	"path/filepath"
	"testing"

	"charterlink/internal/domain/event"
	"charterlink/internal/sync"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("load of a missing blob is an empty queue", func(t *testing.T) {
		store := sync.NewFileStore(filepath.Join(t.TempDir(), "queue.json"))

		items, err := store.Load()

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("round trips queue items", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queue.json")
		store := sync.NewFileStore(path)

		saved := []sync.QueueItem{
			{Event: makeEvent(event.TypeFeatureUsed), RetryCount: 0},
			{Event: makeEvent(event.TypeFeatureUsed), RetryCount: 2},
		}
		require.NoError(t, store.Save(saved))

		loaded, err := store.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(saved, loaded); diff != "" {
			t.Errorf("queue blob mismatch (-saved +loaded):\n%s", diff)
		}
	})

	t.Run("save replaces the previous blob", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queue.json")
		store := sync.NewFileStore(path)

		require.NoError(t, store.Save([]sync.QueueItem{{Event: makeEvent(event.TypeFeatureUsed)}}))
		require.NoError(t, store.Save(nil))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("corrupt blob returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queue.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := sync.NewFileStore(path).Load()
		assert.Error(t, err)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		store := sync.NewFileStore(filepath.Join(dir, "queue.json"))

		require.NoError(t, store.Save([]sync.QueueItem{{Event: makeEvent(event.TypeFeatureUsed)}}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "queue.json", entries[0].Name())
	})
}
