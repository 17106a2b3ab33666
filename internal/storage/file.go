package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileSink stores each key as a JSON file inside a data directory.
type FileSink struct {
	dir string
}

// NewFileSink creates the data directory if needed and returns a sink over it.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSink) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}
	return string(data), true, nil
}

// Set writes to a temporary file and renames it into place so a crash mid-write
// never leaves a truncated document behind.
func (s *FileSink) Set(key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "failed to write %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "failed to close %s", key)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "failed to replace %s", key)
	}
	return nil
}

func (s *FileSink) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", key)
	}
	return nil
}
