package fspath

import (
	"errors"
	"io/fs"
	"os"
)

// The path types confine their OS calls to the narrow helpers below:
// child enumeration, single-level directory creation, and working
// directory lookup. Everything else in the package is pure segment math.

type dirChild struct {
	name   string
	isFile bool
}

// listChildren enumerates the immediate children of a directory as
// (name, is-file) pairs, excluding the implicit "." and ".." entries.
// Enumeration failures are deliberately silent: an unreadable or missing
// directory lists as empty so tree-wide scans keep going.
func listChildren(abs string) []dirChild {
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil
	}
	out := make([]dirChild, 0, len(entries))
	for _, e := range entries {
		out = append(out, dirChild{name: e.Name(), isFile: !e.IsDir()})
	}
	return out
}

// makeDirectory creates exactly one directory level, reporting success
// for both "created" and "already existed".
func makeDirectory(abs string) bool {
	err := os.Mkdir(abs, 0o755)
	return err == nil || errors.Is(err, fs.ErrExist)
}
