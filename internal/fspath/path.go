// Package fspath provides typed absolute filesystem paths. DirectoryPath
// and FilePath are two concrete value types sharing one normalized
// segment representation: a path is parsed and resolved once at
// construction and never holds a ".", ".." or empty segment afterwards.
// Comparison, relative rendering and common-root computation operate on
// the segment sequence alone and never consult the filesystem.
package fspath

import "strings"

// renderAbsolute joins segments into canonical absolute form. Rendering
// always uses forward slashes; a drive-letter root is emitted as the
// first segment with no leading separator.
func renderAbsolute(sys platform, parts []string) string {
	if sys.rootSegments() > 0 {
		return strings.Join(parts, "/")
	}
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// pathDepth counts segments below the root marker.
func pathDepth(sys platform, parts []string) int {
	return len(parts) - sys.rootSegments()
}

// commonPrefixLen returns the number of leading segments shared by a and
// b, comparing segment text ordinally.
func commonPrefixLen(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// renderRelative emits the shortest relative form connecting from to
// target: one ".." per segment of from beyond the divergence point, then
// target's remaining segments verbatim. Identical sequences render to
// the empty string. The result carries no leading separator.
func renderRelative(target, from []string) string {
	shared := commonPrefixLen(target, from)
	tokens := make([]string, 0, (len(from)-shared)+(len(target)-shared))
	for range from[shared:] {
		tokens = append(tokens, "..")
	}
	tokens = append(tokens, target[shared:]...)
	return strings.Join(tokens, "/")
}

// clonePath copies a segment sequence, reserving room for extra appended
// segments. Path values are copied freely, so derived sequences never
// share writable backing storage with their source.
func clonePath(parts []string, extra int) []string {
	out := make([]string, len(parts), len(parts)+extra)
	copy(out, parts)
	return out
}
