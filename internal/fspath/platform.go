package fspath

import "runtime"

// platform captures the path conventions of one operating system family.
// Parsing, rendering and depth math are written once against this
// interface; nothing else in the package branches on the OS.
type platform interface {
	// isSeparator reports whether c splits segments in raw input.
	isSeparator(c byte) bool
	// isAbsolute reports whether raw carries the platform's absolute-path marker.
	isAbsolute(raw string) bool
	// rootSegments is the number of leading segments that form the root
	// itself: 0 on POSIX systems, 1 on drive-letter systems where the
	// drive is stored as the first segment.
	rootSegments() int
}

// posixPlatform: paths rooted at "/", forward slashes only.
type posixPlatform struct{}

func (posixPlatform) isSeparator(c byte) bool { return c == '/' }

func (posixPlatform) isAbsolute(raw string) bool {
	return len(raw) > 0 && raw[0] == '/'
}

func (posixPlatform) rootSegments() int { return 0 }

// drivePlatform: paths rooted at "<letter>:", both slash styles accepted
// on input. Case differences are never folded; two paths differing only
// in case are distinct even where the filesystem would agree they match.
type drivePlatform struct{}

func (drivePlatform) isSeparator(c byte) bool { return c == '/' || c == '\\' }

func (drivePlatform) isAbsolute(raw string) bool {
	return len(raw) >= 2 && raw[1] == ':' && isDriveLetter(raw[0])
}

func (drivePlatform) rootSegments() int { return 1 }

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// hostPlatform is the convention set of the OS the process runs on.
var hostPlatform = platformFor(runtime.GOOS)

func platformFor(goos string) platform {
	if goos == "windows" {
		return drivePlatform{}
	}
	return posixPlatform{}
}
