package storage

import (
	"os"
	"path/filepath"
)

// FileSlot keeps the snapshot as a JSON file in a local data directory.
// Writes go through a temp file and rename so a crashed writer never
// leaves a torn snapshot behind.
type FileSlot struct {
	path string
}

func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSlot{path: filepath.Join(dir, SlotKey+".json")}, nil
}

func (f *FileSlot) Read() ([]byte, bool, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (f *FileSlot) Write(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileSlot) Delete() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
