package fspath

import (
	"io"
	"testing"
)

func TestFilePathIO(t *testing.T) {
	t.Run("write then read roundtrip", func(t *testing.T) {
		base := tempDirPath(t)
		f := base.Select("data.txt")

		w, err := f.Write(false, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.WriteString("hello"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		w.Close()

		r, err := f.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer r.Close()
		content, _ := io.ReadAll(r)
		if string(content) != "hello" {
			t.Errorf("expected hello, got %q", content)
		}
	})

	t.Run("append preserves existing content", func(t *testing.T) {
		base := tempDirPath(t)
		f := base.Select("log.txt")

		w, _ := f.Write(false, true)
		w.WriteString("one")
		w.Close()

		w, err := f.Write(true, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.WriteString("two")
		w.Close()

		r, _ := f.Read()
		defer r.Close()
		content, _ := io.ReadAll(r)
		if string(content) != "onetwo" {
			t.Errorf("expected onetwo, got %q", content)
		}
	})

	t.Run("truncate discards existing content", func(t *testing.T) {
		base := tempDirPath(t)
		f := base.Select("trunc.txt")

		w, _ := f.Write(false, true)
		w.WriteString("a long first draft")
		w.Close()

		w, _ = f.Write(false, true)
		w.WriteString("short")
		w.Close()

		r, _ := f.Read()
		defer r.Close()
		content, _ := io.ReadAll(r)
		if string(content) != "short" {
			t.Errorf("expected short, got %q", content)
		}
	})

	t.Run("exists and delete", func(t *testing.T) {
		base := tempDirPath(t)
		f := base.Select("gone.txt")
		if f.Exists() {
			t.Fatal("file should not exist yet")
		}

		w, _ := f.Write(false, true)
		w.Close()
		if !f.Exists() {
			t.Fatal("file should exist after write")
		}

		if err := f.Delete(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Exists() {
			t.Error("file still exists after delete")
		}
		if err := f.Delete(); err == nil {
			t.Error("expected an error deleting a missing file")
		}
	})

	t.Run("read of missing file errors", func(t *testing.T) {
		base := tempDirPath(t)
		if _, err := base.Select("missing.txt").Read(); err == nil {
			t.Error("expected an error")
		}
	})
}
