// Package jsonfile persists record sets as indented JSON documents, one file
// per record set. Saves are atomic (write temp, then rename); loads treat a
// missing or unparseable file as an empty record set.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"
)

// loadDocument reads and decodes the JSON document at path into v.
// ok is false when no usable document exists: the file is missing, or its
// content does not parse. Parse failures are logged and otherwise swallowed —
// the stale content is discarded wholesale on the next save. Only read I/O
// faults are reported as errors.
func loadDocument(path string, v any) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("discarding malformed record set", "path", path, "error", err)
		return false, nil
	}
	return true, nil
}

// saveDocument encodes v as indented JSON and atomically replaces the file
// at path. A failed save leaves any prior file content intact.
func saveDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
