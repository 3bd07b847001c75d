package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Path returns the full output path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFile writes a generated file next to its declaring package. A file
// whose content is already up to date is left untouched so that watchers
// and build caches do not see a change. It reports whether the file was
// written.
func WriteFile(file *GeneratedFile) (bool, error) {
	path := file.Path()

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, file.Content):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}

	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, file.Content, filePerm); err != nil {
		return false, fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return true, nil
}

// WriteFiles writes all generated files. It stops at the first failure.
func WriteFiles(files []*GeneratedFile) error {
	for _, file := range files {
		if _, err := WriteFile(file); err != nil {
			return err
		}
	}

	return nil
}
