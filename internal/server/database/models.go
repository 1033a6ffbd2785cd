package database

import "time"

// Scan is a recorded tree scan.
type Scan struct {
	ID          string
	Root        string // rendered relative to the served root
	FileCount   int
	TotalSize   int64
	ArchiveSize int64
	StartedAt   time.Time
	DurationMS  int64
	CreatedAt   time.Time
}

// Stats holds aggregate server statistics.
type Stats struct {
	TotalScans   int64
	TotalFiles   int64
	TotalBytes   int64
	ArchiveBytes int64
}
