package fspath

import "fmt"

// ParseError reports a raw path string rejected at construction time.
// A rejected string never produces a partially built path value.
type ParseError struct {
	Raw   string
	Cause string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Raw, e.Cause)
}

// splitSegments tokenizes an absolute raw string into a normalized
// segment sequence, resolving "." and ".." during the scan. Repeated
// separators produce empty tokens which are collapsed away, so the
// result never contains an empty, "." or ".." segment. Segment bytes
// are preserved exactly; no case folding is performed.
func splitSegments(sys platform, raw string) ([]string, error) {
	if raw == "" {
		return nil, &ParseError{Raw: raw, Cause: "path is empty"}
	}
	if !sys.isAbsolute(raw) {
		return nil, &ParseError{Raw: raw, Cause: "path is not absolute"}
	}

	var parts []string
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && !sys.isSeparator(raw[i]) {
			continue
		}
		token := raw[start:i]
		start = i + 1

		switch token {
		case "", ".":
			continue
		case "..":
			// Ascending above the root is illegal, never clamped.
			if len(parts) <= sys.rootSegments() {
				return nil, &ParseError{Raw: raw, Cause: "cannot ascend above the root"}
			}
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, token)
		}
	}
	return parts, nil
}
