package scan

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// ToZipBytes archives every snapshot entry under its root-relative name.
// Entry order is preserved, so the archive lists files in walk order.
func (s *Snapshot) ToZipBytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range s.Entries {
		if err := addEntry(zw, entry); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}
	return buf.Bytes(), nil
}

func addEntry(zw *zip.Writer, entry Entry) error {
	file, err := entry.Path.Read()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", entry.Path.AsAbsoluteString(), err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", entry.Path.AsAbsoluteString(), err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to create zip header: %w", err)
	}
	header.Name = entry.Rel
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create zip entry: %w", err)
	}
	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("failed to write %s to zip: %w", entry.Rel, err)
	}
	return nil
}
