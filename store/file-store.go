package store

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const commandsFile = "commands.json"

// FileStore persists the shortcut map as a JSON document in a data
// directory. A file lock guards against concurrent writers; the browser
// page and the CLI may both mutate the same file.
type FileStore struct {
	dir  string
	lock *flock.Flock
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return &FileStore{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, commandsFile+".lock")),
	}, nil
}

func (fs *FileStore) path() string {
	return filepath.Join(fs.dir, commandsFile)
}

// Load reads the persisted shortcut map. A missing file means first run
// and yields the built-in defaults. An unparseable file is treated as no
// data: logged, defaults returned, never surfaced as a failure.
func (fs *FileStore) Load() (*Store, error) {
	data, err := os.ReadFile(fs.path())
	if os.IsNotExist(err) {
		return DefaultStore(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read commands file")
	}
	if !gjson.ValidBytes(data) {
		logrus.Warn("commands file is not valid JSON, falling back to defaults")
		return DefaultStore(), nil
	}
	entries, err := decodeCommands(gjson.ParseBytes(data))
	if err != nil {
		logrus.WithError(err).Warn("commands file is malformed, falling back to defaults")
		return DefaultStore(), nil
	}
	return FromEntries(entries), nil
}

// Persist writes the full map atomically: temp file, then rename, under
// the file lock.
func (fs *FileStore) Persist(s *Store) error {
	data, err := encodeCommands(s.Entries())
	if err != nil {
		return errors.Wrap(err, "encode commands")
	}

	if err := fs.lock.Lock(); err != nil {
		return errors.Wrap(err, "lock commands file")
	}
	defer func() {
		if err := fs.lock.Unlock(); err != nil {
			logrus.WithError(err).Warn("failed to release commands file lock")
		}
	}()

	tmp := fs.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write commands file")
	}
	return errors.Wrap(os.Rename(tmp, fs.path()), "replace commands file")
}
