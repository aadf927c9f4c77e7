package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const storeFileMode os.FileMode = 0o644

// FileBackend keeps the collection in a single JSON file that is rewritten in full
// on every save.
type FileBackend struct {
	path string
}

// OpenFile returns a FileBackend for path, creating the parent directory and an
// empty collection when the file does not exist yet. An existing file is left alone.
func OpenFile(path string) (*FileBackend, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = "data/pages.json"
	}

	if err := ensureParentDir(trimmed); err != nil {
		return nil, err
	}

	backend := &FileBackend{path: trimmed}

	if _, err := os.Stat(trimmed); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := backend.Save(context.Background(), nil); err != nil {
			return nil, err
		}
	}

	return backend, nil
}

// Path reports the file the backend writes to.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads and decodes the whole collection. A missing or undecodable file is an
// error, never an empty collection.
func (b *FileBackend) Load(ctx context.Context) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("read %s: empty file", b.path)
	}

	var pages []Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.path, err)
	}
	if pages == nil {
		// "null" is not a collection.
		return nil, fmt.Errorf("decode %s: not a page array", b.path)
	}

	return pages, nil
}

// Save writes pages to a temp file next to the target, syncs it and renames it into
// place, so readers see either the old or the new collection.
func (b *FileBackend) Save(ctx context.Context, pages []Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if pages == nil {
		pages = []Page{}
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pages: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpName)
		return cause
	}

	// CreateTemp uses 0600, which the rename would carry onto the store file.
	if err := tmp.Chmod(storeFileMode); err != nil {
		return cleanup(fmt.Errorf("chmod %s: %w", tmpName, err))
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write %s: %w", tmpName, err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync %s: %w", tmpName, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", b.path, err)
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("store path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
