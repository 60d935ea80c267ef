// Package snapshot exports the catalog as a single human-readable file.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/docpanels/internal/catalog"
)

// Stdout as a path writes to the caller's writer instead of a file.
const Stdout = "-"

// Encode serialises s as "json" or "yaml".
func Encode(s catalog.Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(b, '\n'), nil
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown export format %q (want json or yaml)", format)
}

// Write encodes s and stores it at path, or writes it to w when path is "-".
func Write(w io.Writer, path, format string, s catalog.Snapshot) error {
	b, err := Encode(s, format)
	if err != nil {
		return err
	}
	if path == Stdout || path == "" {
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
