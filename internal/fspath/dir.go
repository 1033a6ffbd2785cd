package fspath

// DirectoryPath is an absolute path known to denote a container. It is a
// value type: copies are independent, and Enter/Exit mutate only the
// receiver.
type DirectoryPath struct {
	sys   platform
	parts []string
}

// RootDirectory returns the filesystem root ("/" on POSIX systems).
func RootDirectory() DirectoryPath {
	return DirectoryPath{sys: hostPlatform}
}

// ParseDir constructs a DirectoryPath from an absolute raw string,
// normalizing "." and ".." during the scan.
func ParseDir(raw string) (DirectoryPath, error) {
	return parseDirOn(hostPlatform, raw)
}

func parseDirOn(sys platform, raw string) (DirectoryPath, error) {
	parts, err := splitSegments(sys, raw)
	if err != nil {
		return DirectoryPath{}, err
	}
	return DirectoryPath{sys: sys, parts: parts}, nil
}

// QualifyDir resolves a possibly-relative raw string against the process
// working directory, then parses it.
func QualifyDir(raw string) (DirectoryPath, error) {
	if hostPlatform.isAbsolute(raw) {
		return ParseDir(raw)
	}
	wd, err := WorkingDirectory()
	if err != nil {
		return DirectoryPath{}, err
	}
	return ParseDir(wd.AsAbsoluteString() + "/" + raw)
}

func (p DirectoryPath) system() platform {
	if p.sys == nil {
		return hostPlatform
	}
	return p.sys
}

// AsAbsoluteString renders the canonical absolute form.
func (p DirectoryPath) AsAbsoluteString() string {
	return renderAbsolute(p.system(), p.parts)
}

// AsRelativeString renders the shortest relative path from the given
// directory to p. Identical paths render to the empty string.
func (p DirectoryPath) AsRelativeString(from DirectoryPath) string {
	return renderRelative(p.parts, from.parts)
}

// Depth counts segments below the root marker.
func (p DirectoryPath) Depth() int {
	return pathDepth(p.system(), p.parts)
}

// IsRoot reports whether p denotes the filesystem root.
func (p DirectoryPath) IsRoot() bool {
	return p.Depth() == 0
}

// CommonRoot returns the deepest ancestor shared by p and other.
func (p DirectoryPath) CommonRoot(other DirectoryPath) DirectoryPath {
	n := commonPrefixLen(p.parts, other.parts)
	return DirectoryPath{sys: p.system(), parts: clonePath(p.parts[:n], 0)}
}

// Enter appends one segment in place and returns the receiver for
// chaining.
func (p *DirectoryPath) Enter(name string) *DirectoryPath {
	if p.sys == nil {
		p.sys = hostPlatform
	}
	p.parts = append(clonePath(p.parts, 1), name)
	return p
}

// Exit removes the last segment in place. Calling Exit on a root
// directory is a programming error and panics; check IsRoot first.
func (p *DirectoryPath) Exit() *DirectoryPath {
	if p.IsRoot() {
		panic("fspath: Exit called on a root directory")
	}
	p.parts = p.parts[:len(p.parts)-1]
	return p
}

// Select combines p's segments with one terminal file name. The
// filesystem is not consulted.
func (p DirectoryPath) Select(filename string) FilePath {
	return FilePath{sys: p.system(), parts: append(clonePath(p.parts, 1), filename)}
}

// Create attempts to make this directory, treating "already exists" as
// success and reporting any other failure as false. With ensureAncestors
// it works down from the shallowest missing level and stops at the first
// level that cannot be created.
func (p DirectoryPath) Create(ensureAncestors bool) bool {
	if !ensureAncestors {
		return makeDirectory(p.AsAbsoluteString())
	}
	sys := p.system()
	for i := sys.rootSegments() + 1; i <= len(p.parts); i++ {
		if !makeDirectory(renderAbsolute(sys, p.parts[:i])) {
			return false
		}
	}
	return true
}

// ListFiles enumerates the names of immediate non-directory children.
// Ordering follows the OS enumeration and must not be assumed sorted. An
// unreadable directory lists as empty.
func (p DirectoryPath) ListFiles() []string {
	var out []string
	for _, child := range listChildren(p.AsAbsoluteString()) {
		if child.isFile {
			out = append(out, child.name)
		}
	}
	return out
}

// ListDirectories enumerates the names of immediate subdirectories,
// under the same ordering and error rules as ListFiles.
func (p DirectoryPath) ListDirectories() []string {
	var out []string
	for _, child := range listChildren(p.AsAbsoluteString()) {
		if !child.isFile {
			out = append(out, child.name)
		}
	}
	return out
}
