package storage

import (
	"fmt"
	"io"

	"scout/internal/fspath"
)

// Store is the interface for archive storage backends.
// This allows swapping the local filesystem for S3 or other backends later.
type Store interface {
	Save(scanID string, data io.Reader) (int64, error)
	GetPath(scanID string) (string, error)
	Delete(scanID string) error
	EnsureDir() error
}

// ArchiveCache keeps generated scan archives on the local filesystem,
// one {scanID}.zip per scan.
type ArchiveCache struct {
	base fspath.DirectoryPath
}

// NewArchiveCache creates a filesystem-backed archive cache.
func NewArchiveCache(base fspath.DirectoryPath) *ArchiveCache {
	return &ArchiveCache{base: base}
}

// EnsureDir creates the cache directory and any missing ancestors.
func (ac *ArchiveCache) EnsureDir() error {
	if !ac.base.Create(true) {
		return fmt.Errorf("failed to create archive directory %s", ac.base.AsAbsoluteString())
	}
	return nil
}

// Save writes data to {scanID}.zip and returns the number of bytes written.
func (ac *ArchiveCache) Save(scanID string, data io.Reader) (int64, error) {
	file := ac.archiveFile(scanID)

	out, err := file.Write(false, true)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	n, err := io.Copy(out, data)
	if err != nil {
		// Drop the partial archive so GetPath never serves it.
		file.Delete()
		return 0, fmt.Errorf("failed to write archive: %w", err)
	}
	return n, nil
}

// GetPath returns the absolute path of a cached archive, or an error if
// the archive is not present.
func (ac *ArchiveCache) GetPath(scanID string) (string, error) {
	file := ac.archiveFile(scanID)
	if !file.Exists() {
		return "", fmt.Errorf("archive not found for scan %s", scanID)
	}
	return file.AsAbsoluteString(), nil
}

// Delete removes the cached archive for a scan. A missing archive is not
// an error.
func (ac *ArchiveCache) Delete(scanID string) error {
	file := ac.archiveFile(scanID)
	if !file.Exists() {
		return nil
	}
	return file.Delete()
}

func (ac *ArchiveCache) archiveFile(scanID string) fspath.FilePath {
	return ac.base.Select(scanID + ".zip")
}
