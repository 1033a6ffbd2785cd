package fspath

import (
	"errors"
	"strings"
	"testing"
)

// Helpers

func mustDir(t *testing.T, raw string) DirectoryPath {
	t.Helper()
	d, err := parseDirOn(posixPlatform{}, raw)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", raw, err)
	}
	return d
}

func mustWinDir(t *testing.T, raw string) DirectoryPath {
	t.Helper()
	d, err := parseDirOn(drivePlatform{}, raw)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", raw, err)
	}
	return d
}

func assertSegments(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected segments %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected segments %v, got %v", want, got)
		}
	}
}

// Parsing

func TestParseDir(t *testing.T) {
	t.Run("plain absolute path", func(t *testing.T) {
		d := mustDir(t, "/a/b/c")
		assertSegments(t, d.parts, "a", "b", "c")
	})

	t.Run("dot segments collapse", func(t *testing.T) {
		d := mustDir(t, "/a/./b/./c")
		assertSegments(t, d.parts, "a", "b", "c")
		if s := d.AsAbsoluteString(); strings.Contains(s, ".") {
			t.Errorf("rendered string still contains a dot segment: %s", s)
		}
	})

	t.Run("dotdot pops the preceding segment", func(t *testing.T) {
		d := mustDir(t, "/a/b/../c/./d")
		assertSegments(t, d.parts, "a", "c", "d")
		if got := d.AsAbsoluteString(); got != "/a/c/d" {
			t.Errorf("expected /a/c/d, got %s", got)
		}
	})

	t.Run("repeated separators collapse", func(t *testing.T) {
		d := mustDir(t, "//a///b//")
		assertSegments(t, d.parts, "a", "b")
	})

	t.Run("case is preserved and significant", func(t *testing.T) {
		d := mustDir(t, "/Foo/BAR")
		assertSegments(t, d.parts, "Foo", "BAR")
		other := mustDir(t, "/foo/BAR")
		if commonPrefixLen(d.parts, other.parts) != 0 {
			t.Error("differently cased segments must not compare equal")
		}
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		_, err := parseDirOn(posixPlatform{}, "")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if perr.Cause != "path is empty" {
			t.Errorf("unexpected cause: %s", perr.Cause)
		}
	})

	t.Run("relative string is rejected with distinct diagnostic", func(t *testing.T) {
		_, err := parseDirOn(posixPlatform{}, "a/b")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if perr.Cause != "path is not absolute" {
			t.Errorf("unexpected cause: %s", perr.Cause)
		}
	})

	t.Run("ascent above root is rejected, not clamped", func(t *testing.T) {
		for _, raw := range []string{"/..", "/a/../..", "/../a"} {
			if _, err := parseDirOn(posixPlatform{}, raw); err == nil {
				t.Errorf("expected construction error for %q", raw)
			}
		}
	})
}

func TestParseDirDriveLetter(t *testing.T) {
	t.Run("drive is the first segment", func(t *testing.T) {
		d := mustWinDir(t, `C:\Users\alice`)
		assertSegments(t, d.parts, "C:", "Users", "alice")
		if got := d.AsAbsoluteString(); got != "C:/Users/alice" {
			t.Errorf("expected C:/Users/alice, got %s", got)
		}
	})

	t.Run("both slash styles accepted", func(t *testing.T) {
		d := mustWinDir(t, `C:/Users\alice/docs`)
		assertSegments(t, d.parts, "C:", "Users", "alice", "docs")
	})

	t.Run("dotdot cannot pop the drive", func(t *testing.T) {
		if _, err := parseDirOn(drivePlatform{}, `C:\a\..\..`); err == nil {
			t.Error("expected construction error when ascending past the drive")
		}
	})

	t.Run("missing drive marker is rejected", func(t *testing.T) {
		for _, raw := range []string{`\Users\alice`, "1:/oops", "nope"} {
			if _, err := parseDirOn(drivePlatform{}, raw); err == nil {
				t.Errorf("expected construction error for %q", raw)
			}
		}
	})
}

func TestParseFile(t *testing.T) {
	t.Run("splits directory and name", func(t *testing.T) {
		f, err := parseFileOn(posixPlatform{}, "/a/b/notes.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.File() != "notes.txt" {
			t.Errorf("expected notes.txt, got %s", f.File())
		}
		if got := f.Directory().AsAbsoluteString(); got != "/a/b" {
			t.Errorf("expected /a/b, got %s", got)
		}
	})

	t.Run("root is not a file", func(t *testing.T) {
		if _, err := parseFileOn(posixPlatform{}, "/"); err == nil {
			t.Error("expected construction error for bare root")
		}
	})
}

// Rendering, depth, root test

func TestAsAbsoluteString(t *testing.T) {
	t.Run("empty sequence renders the bare root", func(t *testing.T) {
		d := DirectoryPath{sys: posixPlatform{}}
		if got := d.AsAbsoluteString(); got != "/" {
			t.Errorf("expected /, got %s", got)
		}
	})

	t.Run("roundtrips through parsing", func(t *testing.T) {
		for _, raw := range []string{"/a", "/a/b/c", "/usr/local/share"} {
			d := mustDir(t, raw)
			if got := d.AsAbsoluteString(); got != raw {
				t.Errorf("expected %s, got %s", raw, got)
			}
		}
	})
}

func TestDepthAndIsRoot(t *testing.T) {
	t.Run("posix depth counts all segments", func(t *testing.T) {
		if d := mustDir(t, "/a/b/c"); d.Depth() != 3 {
			t.Errorf("expected depth 3, got %d", d.Depth())
		}
		root := DirectoryPath{sys: posixPlatform{}}
		if !root.IsRoot() || root.Depth() != 0 {
			t.Error("empty sequence must be the root at depth 0")
		}
	})

	t.Run("drive systems exclude the drive segment", func(t *testing.T) {
		d := mustWinDir(t, `C:\a\b`)
		if d.Depth() != 2 {
			t.Errorf("expected depth 2, got %d", d.Depth())
		}
		drive := mustWinDir(t, "C:")
		if !drive.IsRoot() {
			t.Error("a bare drive must be a root")
		}
	})
}

// Common root and relative rendering

func TestCommonRoot(t *testing.T) {
	t.Run("shared prefix", func(t *testing.T) {
		a := mustDir(t, "/a/b/c")
		b := mustDir(t, "/a/b/x/y")
		if got := a.CommonRoot(b).AsAbsoluteString(); got != "/a/b" {
			t.Errorf("expected /a/b, got %s", got)
		}
	})

	t.Run("one path prefixes the other", func(t *testing.T) {
		a := mustDir(t, "/a/b")
		b := mustDir(t, "/a/b/c/d")
		if got := a.CommonRoot(b).AsAbsoluteString(); got != "/a/b" {
			t.Errorf("expected /a/b, got %s", got)
		}
	})

	t.Run("nothing shared", func(t *testing.T) {
		a := mustDir(t, "/a")
		b := mustDir(t, "/b")
		if got := a.CommonRoot(b); !got.IsRoot() {
			t.Errorf("expected the root, got %s", got.AsAbsoluteString())
		}
	})
}

func TestAsRelativeString(t *testing.T) {
	t.Run("diverging paths climb then descend", func(t *testing.T) {
		target := mustDir(t, "/a/b/c")
		from := mustDir(t, "/a/x/y")
		if got := target.AsRelativeString(from); got != "../../b/c" {
			t.Errorf("expected ../../b/c, got %s", got)
		}
	})

	t.Run("target inside reference needs no ascent", func(t *testing.T) {
		target := mustDir(t, "/a/b/c/d")
		from := mustDir(t, "/a/b")
		got := target.AsRelativeString(from)
		if got != "c/d" {
			t.Errorf("expected c/d, got %s", got)
		}
		if strings.Contains(got, "..") {
			t.Errorf("contained ascent token: %s", got)
		}
	})

	t.Run("identical paths render empty", func(t *testing.T) {
		a := mustDir(t, "/a/b")
		if got := a.AsRelativeString(mustDir(t, "/a/b")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("ascent count matches reference depth beyond divergence", func(t *testing.T) {
		target := mustDir(t, "/p/q")
		from := mustDir(t, "/p/r/s/t")
		got := target.AsRelativeString(from)
		if n := strings.Count(got, ".."); n != 3 {
			t.Errorf("expected 3 ascent tokens in %q, got %d", got, n)
		}
	})

	t.Run("file paths render relative to a directory", func(t *testing.T) {
		f, err := parseFileOn(posixPlatform{}, "/a/b/c.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.AsRelativeString(mustDir(t, "/a/x")); got != "../b/c.txt" {
			t.Errorf("expected ../b/c.txt, got %s", got)
		}
	})
}

// Mutators and value semantics

func TestEnterExit(t *testing.T) {
	t.Run("exit undoes enter", func(t *testing.T) {
		a := DirectoryPath{sys: posixPlatform{}}
		a.Enter("a").Enter("b").Exit()
		b := DirectoryPath{sys: posixPlatform{}}
		b.Enter("a")
		if a.AsAbsoluteString() != b.AsAbsoluteString() {
			t.Errorf("expected %s, got %s", b.AsAbsoluteString(), a.AsAbsoluteString())
		}
	})

	t.Run("copies do not share storage", func(t *testing.T) {
		base := mustDir(t, "/a/b")
		first := base
		second := base
		first.Enter("one")
		second.Enter("two")
		if got := first.AsAbsoluteString(); got != "/a/b/one" {
			t.Errorf("expected /a/b/one, got %s", got)
		}
		if got := second.AsAbsoluteString(); got != "/a/b/two" {
			t.Errorf("expected /a/b/two, got %s", got)
		}
		if got := base.AsAbsoluteString(); got != "/a/b" {
			t.Errorf("mutation leaked into the source value: %s", got)
		}
	})

	t.Run("exit on root panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		root := DirectoryPath{sys: posixPlatform{}}
		root.Exit()
	})
}
