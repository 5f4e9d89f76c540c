// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package mediastore persists uploaded media files to local disk.

Stored files are served back by the HTTP layer as static content. Each file is
renamed on ingestion to "<unix-millis>-<original-name>" so repeated uploads of
the same filename do not clobber each other; two files with the same name
landing in the same millisecond still collide, which is an accepted limitation
of the naming scheme.
*/
package mediastore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes media files into a single flat directory.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures the target directory exists and returns a store over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mediastore: failed to create media directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (store *LocalStore) Dir() string {
	return store.dir
}

/*
Save writes the reader's content under an ingestion-timestamped name.

Parameters:
  - originalName: The client-supplied filename. Path components are stripped.
  - reader: io.Reader over the file content.

Returns:
  - string: The stored filename (not a full path), suitable for persisting
    on a Post and resolving through the static media route.
  - error: Filesystem failures.
*/
func (store *LocalStore) Save(originalName string, reader io.Reader) (string, error) {
	baseName := sanitizeFilename(originalName)
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), baseName)

	destination, err := os.Create(filepath.Join(store.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("mediastore: failed to create %s: %w", storedName, err)
	}

	if _, err := io.Copy(destination, reader); err != nil {
		_ = destination.Close()
		_ = os.Remove(destination.Name())
		return "", fmt.Errorf("mediastore: failed to write %s: %w", storedName, err)
	}

	if err := destination.Close(); err != nil {
		return "", fmt.Errorf("mediastore: failed to close %s: %w", storedName, err)
	}

	return storedName, nil
}

/*
Remove deletes a previously stored file.

Description: Used to undo a partially completed multi-file ingestion when a
later step fails, so error paths do not strand orphaned files on disk.
Removing a file that is already gone is not an error.

Parameters:
  - storedName: A filename previously returned by [LocalStore.Save].

Returns:
  - error: Filesystem failures other than the file being absent.
*/
func (store *LocalStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(store.dir, sanitizeFilename(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("mediastore: failed to remove %s: %w", storedName, err)
	}
	return nil
}

// sanitizeFilename strips directory components and neutralizes path separators
// so client-supplied names cannot escape the media directory.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "upload"
	}
	return base
}
