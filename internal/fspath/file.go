package fspath

import (
	"fmt"
	"os"
)

// FilePath is an absolute path known to denote a leaf; the final segment
// is the file name.
type FilePath struct {
	sys   platform
	parts []string
}

// ParseFile constructs a FilePath from an absolute raw string. A string
// that normalizes to the bare root is rejected, since a file path must
// carry a terminal name.
func ParseFile(raw string) (FilePath, error) {
	return parseFileOn(hostPlatform, raw)
}

func parseFileOn(sys platform, raw string) (FilePath, error) {
	parts, err := splitSegments(sys, raw)
	if err != nil {
		return FilePath{}, err
	}
	if pathDepth(sys, parts) == 0 {
		return FilePath{}, &ParseError{Raw: raw, Cause: "file path names the root"}
	}
	return FilePath{sys: sys, parts: parts}, nil
}

// QualifyFile resolves a possibly-relative raw string against the
// process working directory, then parses it.
func QualifyFile(raw string) (FilePath, error) {
	if hostPlatform.isAbsolute(raw) {
		return ParseFile(raw)
	}
	wd, err := WorkingDirectory()
	if err != nil {
		return FilePath{}, err
	}
	return ParseFile(wd.AsAbsoluteString() + "/" + raw)
}

func (p FilePath) system() platform {
	if p.sys == nil {
		return hostPlatform
	}
	return p.sys
}

// AsAbsoluteString renders the canonical absolute form.
func (p FilePath) AsAbsoluteString() string {
	return renderAbsolute(p.system(), p.parts)
}

// AsRelativeString renders the shortest relative path from the given
// directory to p.
func (p FilePath) AsRelativeString(from DirectoryPath) string {
	return renderRelative(p.parts, from.parts)
}

// Depth counts segments below the root marker, the file name included.
func (p FilePath) Depth() int {
	return pathDepth(p.system(), p.parts)
}

// File returns the terminal segment, the file's name.
func (p FilePath) File() string {
	return p.parts[len(p.parts)-1]
}

// Directory returns the containing directory, all segments but the last.
func (p FilePath) Directory() DirectoryPath {
	return DirectoryPath{sys: p.system(), parts: clonePath(p.parts[:len(p.parts)-1], 0)}
}

// Exists reports whether something is present at this path.
func (p FilePath) Exists() bool {
	_, err := os.Stat(p.AsAbsoluteString())
	return err == nil
}

// Delete removes the file.
func (p FilePath) Delete() error {
	if err := os.Remove(p.AsAbsoluteString()); err != nil {
		return fmt.Errorf("failed to delete %s: %w", p.AsAbsoluteString(), err)
	}
	return nil
}

// Read opens the file for input. The caller owns the returned handle.
func (p FilePath) Read() (*os.File, error) {
	f, err := os.Open(p.AsAbsoluteString())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for reading: %w", p.AsAbsoluteString(), err)
	}
	return f, nil
}

// Write opens the file for output, creating it if absent. appendTo seeks
// every write to the end; truncate discards existing content on open.
func (p FilePath) Write(appendTo, truncate bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	}
	if truncate {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(p.AsAbsoluteString(), flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for writing: %w", p.AsAbsoluteString(), err)
	}
	return f, nil
}
