// Package scan builds ordered records of directory trees on top of the
// fspath walker and archives them.
package scan

import (
	"os"

	"scout/internal/fspath"
)

// Entry is one file discovered during a snapshot.
type Entry struct {
	Path fspath.FilePath
	Rel  string // rendered relative to the snapshot root
	Size int64
}

// Snapshot records every file under a root directory in walk order: each
// directory's own files appear before any file of its subdirectories.
type Snapshot struct {
	Root      fspath.DirectoryPath
	Entries   []Entry
	TotalSize int64
}

// Take walks root and records each reachable file with its size. Files
// that disappear between enumeration and stat are recorded with size
// zero rather than aborting the scan.
func Take(root fspath.DirectoryPath) *Snapshot {
	s := &Snapshot{Root: root}
	root.Walk(func(f fspath.FilePath) {
		var size int64
		if info, err := os.Stat(f.AsAbsoluteString()); err == nil {
			size = info.Size()
		}
		s.Entries = append(s.Entries, Entry{
			Path: f,
			Rel:  f.AsRelativeString(root),
			Size: size,
		})
		s.TotalSize += size
	})
	return s
}

// FileCount returns the number of recorded files.
func (s *Snapshot) FileCount() int {
	return len(s.Entries)
}
