package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

var (
	ErrScanNotFound = errors.New("scan not found")
)

// Repository provides CRUD operations for scan records.
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new scan record.
func (r *Repository) Create(ctx context.Context, scan *Scan) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO scans (
			id, root, file_count, total_size, archive_size,
			started_at, duration_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		scan.ID,
		scan.Root,
		scan.FileCount,
		scan.TotalSize,
		scan.ArchiveSize,
		scan.StartedAt,
		scan.DurationMS,
		scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scan: %w", err)
	}
	return nil
}

// GetByID retrieves a scan by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Scan, error) {
	scan := &Scan{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, root, file_count, total_size, archive_size,
			   started_at, duration_ms, created_at
		FROM scans WHERE id = $1
	`, id).Scan(
		&scan.ID,
		&scan.Root,
		&scan.FileCount,
		&scan.TotalSize,
		&scan.ArchiveSize,
		&scan.StartedAt,
		&scan.DurationMS,
		&scan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScanNotFound
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return scan, nil
}

// ListRecent returns the most recent scans, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*Scan, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, root, file_count, total_size, archive_size,
			   started_at, duration_ms, created_at
		FROM scans ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []*Scan
	for rows.Next() {
		scan := &Scan{}
		if err := rows.Scan(
			&scan.ID,
			&scan.Root,
			&scan.FileCount,
			&scan.TotalSize,
			&scan.ArchiveSize,
			&scan.StartedAt,
			&scan.DurationMS,
			&scan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

// GetStale returns scans created before the cutoff.
func (r *Repository) GetStale(ctx context.Context, cutoff time.Time) ([]*Scan, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, root, file_count, total_size, archive_size,
			   started_at, duration_ms, created_at
		FROM scans WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale scans: %w", err)
	}
	defer rows.Close()

	var scans []*Scan
	for rows.Next() {
		scan := &Scan{}
		if err := rows.Scan(
			&scan.ID,
			&scan.Root,
			&scan.FileCount,
			&scan.TotalSize,
			&scan.ArchiveSize,
			&scan.StartedAt,
			&scan.DurationMS,
			&scan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

// Delete removes a scan record.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM scans WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScanNotFound
	}
	return nil
}

// GetStats returns aggregate statistics across all recorded scans.
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
			   COALESCE(SUM(file_count), 0),
			   COALESCE(SUM(total_size), 0),
			   COALESCE(SUM(archive_size), 0)
		FROM scans
	`).Scan(
		&stats.TotalScans,
		&stats.TotalFiles,
		&stats.TotalBytes,
		&stats.ArchiveBytes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}
