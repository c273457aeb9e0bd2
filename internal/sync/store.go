package sync

import (
	"encoding/json"
	"os"
	"path/filepath"

	"charterlink/internal/pkg/errs"
)

// Store persists the pending queue as a single named blob. Absence or parse
// failure of the blob is treated as an empty queue by the caller.
type Store interface {
	Load() ([]QueueItem, error)
	Save(items []QueueItem) error
}

// FileStore keeps the queue blob as a JSON array on disk. Writes go through
// a temp file and rename so a crash mid-write never corrupts the blob.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]QueueItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read queue blob")
	}

	var items []QueueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errs.Wrap(err, "failed to parse queue blob")
	}
	return items, nil
}

func (s *FileStore) Save(items []QueueItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode queue blob")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".queue-*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp queue blob")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write temp queue blob")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close temp queue blob")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace queue blob")
	}
	return nil
}
