package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/logging"
	"github.com/tayloree/pantry/internal/match"
	"github.com/tayloree/pantry/internal/validation"
)

// Stdin is the path that reads a snapshot from standard input.
const Stdin = "-"

// LoadItems reads list items from a JSON snapshot: either a bare array or an
// object with an "items" array. Every item must be valid.
func LoadItems(path string, stdin io.Reader) ([]grocery.ListItem, error) {
	items, err := loadSnapshot[grocery.ListItem](path, stdin, "items")
	if err != nil {
		return nil, err
	}
	if err := validation.Slice(items, func(i grocery.ListItem) string { return i.ID }); err != nil {
		return nil, fmt.Errorf("%s: %w", describe(path), err)
	}
	return items, nil
}

// LoadCandidates reads a candidate pool from a JSON snapshot: either a bare
// array or an object with a "candidates" array. Invalid candidates are
// skipped with a warning.
func LoadCandidates(path string, stdin io.Reader) ([]match.Candidate, error) {
	pool, err := loadSnapshot[match.Candidate](path, stdin, "candidates")
	if err != nil {
		return nil, err
	}
	return ValidCandidates(pool), nil
}

// LoadCriteria reads one request object.
func LoadCriteria(path string, stdin io.Reader) (match.RequestCriteria, error) {
	var r match.RequestCriteria
	data, err := readSnapshot(path, stdin)
	if err != nil {
		return r, err
	}
	if err := decodeStrict(bytes.NewReader(data), &r); err != nil {
		return r, fmt.Errorf("%s: %w", describe(path), err)
	}
	if err := validation.Struct(&r); err != nil {
		return r, fmt.Errorf("%s: %w", describe(path), err)
	}
	return r, nil
}

// ValidCandidates drops candidates that fail validation, logging each one.
func ValidCandidates(pool []match.Candidate) []match.Candidate {
	out := make([]match.Candidate, 0, len(pool))
	for i := range pool {
		if err := validation.Struct(&pool[i]); err != nil {
			logging.Warn().Str("candidate", pool[i].ID).Err(err).Msg("skipping invalid candidate")
			continue
		}
		out = append(out, pool[i])
	}
	return out
}

func loadSnapshot[T any](path string, stdin io.Reader, key string) ([]T, error) {
	data, err := readSnapshot(path, stdin)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s: empty snapshot", describe(path))
	}

	var out []T
	if trimmed[0] == '[' {
		if err := decodeStrict(bytes.NewReader(trimmed), &out); err != nil {
			return nil, fmt.Errorf("%s: %w", describe(path), err)
		}
		return out, nil
	}

	var wrapped map[string]json.RawMessage
	if err := decodeStrict(bytes.NewReader(trimmed), &wrapped); err != nil {
		return nil, fmt.Errorf("%s: %w", describe(path), err)
	}
	raw, ok := wrapped[key]
	if !ok {
		return nil, fmt.Errorf("%s: expected an array or an object with %q", describe(path), key)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decoding %s: %w", describe(path), key, err)
	}
	return out, nil
}

func readSnapshot(path string, stdin io.Reader) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("no snapshot path given")
	}
	if path == Stdin {
		if stdin == nil {
			return nil, fmt.Errorf("stdin is not available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	logging.Debug().Str("path", path).Int("bytes", len(data)).Msg("snapshot read")
	return data, nil
}

func describe(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return path
}

// WriteItems writes items as an indented JSON array.
func WriteItems(w io.Writer, items []grocery.ListItem) error {
	if items == nil {
		items = []grocery.ListItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
