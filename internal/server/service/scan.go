package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"scout/internal/fspath"
	"scout/internal/scan"
	"scout/internal/server/config"
	"scout/internal/server/database"
	"scout/internal/server/storage"

	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors for the service layer.
var (
	ErrNotFound      = errors.New("scan not found")
	ErrOutsideRoot   = errors.New("path escapes the served root")
	ErrTreeTooLarge  = errors.New("tree exceeds the maximum archive size")
	ErrInvalidPath   = errors.New("invalid path")
	ErrInvalidToken  = errors.New("invalid admin token")
	ErrAdminDisabled = errors.New("admin operations are disabled")
)

// ScanResult is returned after a successful scan.
type ScanResult struct {
	ID          string    `json:"id"`
	Root        string    `json:"root"`
	FileCount   int       `json:"file_count"`
	TotalSize   int64     `json:"total_size"`
	ArchiveSize int64     `json:"archive_size"`
	DurationMS  int64     `json:"duration_ms"`
	DownloadURL string    `json:"download_url"`
	StartedAt   time.Time `json:"started_at"`
}

// ScanInfo is returned for metadata queries.
type ScanInfo struct {
	ID          string    `json:"id"`
	Root        string    `json:"root"`
	FileCount   int       `json:"file_count"`
	TotalSize   int64     `json:"total_size"`
	ArchiveSize int64     `json:"archive_size"`
	DurationMS  int64     `json:"duration_ms"`
	StartedAt   time.Time `json:"started_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// BrowseResult lists the immediate children of one directory.
type BrowseResult struct {
	Path        string   `json:"path"`
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

// ScanService contains the business logic for browsing and scanning the
// served root.
type ScanService struct {
	repo      *database.Repository
	cache     storage.Store
	cfg       *config.Config
	root      fspath.DirectoryPath
	adminHash []byte // empty when admin operations are disabled
}

// NewScanService creates a scan service rooted at cfg.RootPath. The
// admin token, when configured, is hashed once here and only the hash is
// kept.
func NewScanService(repo *database.Repository, cache storage.Store, cfg *config.Config) (*ScanService, error) {
	root, err := fspath.QualifyDir(cfg.RootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid root path %q: %w", cfg.RootPath, err)
	}

	var adminHash []byte
	if cfg.AdminToken != "" {
		adminHash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminToken), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin token: %w", err)
		}
	}

	return &ScanService{
		repo:      repo,
		cache:     cache,
		cfg:       cfg,
		root:      root,
		adminHash: adminHash,
	}, nil
}

// Root returns the served root directory.
func (s *ScanService) Root() fspath.DirectoryPath {
	return s.root
}

// resolve qualifies a request-relative path under the served root and
// rejects anything that escapes it. The escape check is pure segment
// math: the served root must be the common root of itself and the
// resolved directory.
func (s *ScanService) resolve(rel string) (fspath.DirectoryPath, error) {
	dir := s.root
	if rel != "" {
		resolved, err := fspath.ParseDir(s.root.AsAbsoluteString() + "/" + rel)
		if err != nil {
			return fspath.DirectoryPath{}, fmt.Errorf("%w: %s", ErrInvalidPath, err)
		}
		dir = resolved
	}
	if dir.CommonRoot(s.root).Depth() != s.root.Depth() {
		return fspath.DirectoryPath{}, ErrOutsideRoot
	}
	return dir, nil
}

// Browse lists the immediate files and subdirectories of a directory
// under the served root.
func (s *ScanService) Browse(rel string) (*BrowseResult, error) {
	dir, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	return &BrowseResult{
		Path:        dir.AsRelativeString(s.root),
		Directories: dir.ListDirectories(),
		Files:       dir.ListFiles(),
	}, nil
}

// Scan walks a directory under the served root, archives its files,
// caches the archive, and records the scan.
func (s *ScanService) Scan(ctx context.Context, rel string) (*ScanResult, error) {
	dir, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	snapshot := scan.Take(dir)

	if snapshot.TotalSize > s.cfg.MaxArchiveSize {
		return nil, ErrTreeTooLarge
	}

	archive, err := snapshot.ToZipBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to archive %s: %w", dir.AsAbsoluteString(), err)
	}

	id, err := generateScanID(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate scan ID: %w", err)
	}

	archiveSize, err := s.cache.Save(id, bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("failed to cache archive: %w", err)
	}

	record := &database.Scan{
		ID:          id,
		Root:        dir.AsRelativeString(s.root),
		FileCount:   snapshot.FileCount(),
		TotalSize:   snapshot.TotalSize,
		ArchiveSize: archiveSize,
		StartedAt:   started,
		DurationMS:  time.Since(started).Milliseconds(),
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.cache.Delete(id)
		return nil, err
	}

	slog.Info("scan complete",
		"scan_id", id,
		"root", record.Root,
		"files", record.FileCount,
		"total_size", record.TotalSize,
		"archive_size", record.ArchiveSize,
		"duration_ms", record.DurationMS,
	)

	return &ScanResult{
		ID:          id,
		Root:        record.Root,
		FileCount:   record.FileCount,
		TotalSize:   record.TotalSize,
		ArchiveSize: record.ArchiveSize,
		DurationMS:  record.DurationMS,
		DownloadURL: fmt.Sprintf("%s/a/%s", s.cfg.BaseURL, id),
		StartedAt:   record.StartedAt,
	}, nil
}

// Info returns the recorded metadata of a scan.
func (s *ScanService) Info(ctx context.Context, id string) (*ScanInfo, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrScanNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return scanInfoFrom(record), nil
}

// Recent returns the most recent scans, newest first.
func (s *ScanService) Recent(ctx context.Context, limit int) ([]*ScanInfo, error) {
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	infos := make([]*ScanInfo, 0, len(records))
	for _, record := range records {
		infos = append(infos, scanInfoFrom(record))
	}
	return infos, nil
}

func scanInfoFrom(record *database.Scan) *ScanInfo {
	return &ScanInfo{
		ID:          record.ID,
		Root:        record.Root,
		FileCount:   record.FileCount,
		TotalSize:   record.TotalSize,
		ArchiveSize: record.ArchiveSize,
		DurationMS:  record.DurationMS,
		StartedAt:   record.StartedAt,
		CreatedAt:   record.CreatedAt,
	}
}

// Archive returns the cached archive's path and a download filename.
func (s *ScanService) Archive(ctx context.Context, id string) (path, filename string, err error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrScanNotFound) {
			return "", "", ErrNotFound
		}
		return "", "", err
	}

	path, err = s.cache.GetPath(record.ID)
	if err != nil {
		return "", "", ErrNotFound
	}
	return path, fmt.Sprintf("scout-%s.zip", record.ID), nil
}

// Delete removes a scan record and its cached archive. Requires the
// configured admin token.
func (s *ScanService) Delete(ctx context.Context, id, token string) error {
	if len(s.adminHash) == 0 {
		return ErrAdminDisabled
	}
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(token)) != nil {
		return ErrInvalidToken
	}

	if err := s.cache.Delete(id); err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrScanNotFound) {
			return ErrNotFound
		}
		return err
	}

	slog.Info("scan deleted", "scan_id", id)
	return nil
}

// Stats returns aggregate statistics across recorded scans.
func (s *ScanService) Stats(ctx context.Context) (*database.Stats, error) {
	return s.repo.GetStats(ctx)
}

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateScanID produces a URL-safe random identifier.
func generateScanID(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(idCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = idCharset[n.Int64()]
	}
	return string(out), nil
}
