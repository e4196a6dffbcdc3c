// Package jsonstore implements the flat-file persistence layer: one JSON
// file per resource under the data directory. Every operation is a full
// read-modify-write cycle serialized by a per-store mutex, and files are
// replaced atomically (temp file + rename) so a crashed write never leaves
// a half-encoded file behind.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/api/metrics"
)

// Options configures a Collection or Document.
type Options struct {
	// Dir is the data directory holding all resource files.
	Dir string
	// RelaxedWrites makes a failed write-back non-fatal: the error is
	// logged and the in-memory result is still returned. This tolerates
	// read-only deployment filesystems at the cost of durability.
	RelaxedWrites bool
	Logger        zerolog.Logger
}

// readFile decodes path into v. A missing file returns os.ErrNotExist
// unwrapped so callers can seed defaults.
func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonstore: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeFile atomically replaces path with the JSON encoding of v.
func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("jsonstore: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsonstore: temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeBack writes v to path, honouring the relaxed-writes policy and
// recording the outcome in the store metrics.
func writeBack(path string, v any, relaxed bool, log zerolog.Logger) error {
	resource := strings.TrimSuffix(filepath.Base(path), ".json")
	if err := writeFile(path, v); err != nil {
		metrics.StoreWritesTotal.WithLabelValues(resource, "error").Inc()
		if relaxed {
			log.Warn().Err(err).Str("resource", resource).Msg("write-back failed, response still succeeds")
			return nil
		}
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues(resource, "ok").Inc()
	return nil
}

// NextID returns the next identifier in the PREFIX-0000 format. The number
// is one past the highest existing suffix so deleted ids are never reused.
func NextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		s, ok := strings.CutPrefix(id, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(s); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, max+1)
}

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
