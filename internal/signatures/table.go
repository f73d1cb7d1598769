package signatures

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const selectorHexLength = 8

// Table maps 4 byte function selectors to the human readable signatures that hash to them.
// It is populated once and never modified afterwards, so it is safe for concurrent reads.
type Table struct {
	entries map[string][]string
}

func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signatures file %s: %w", path, err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load signatures file %s: %w", path, err)
	}
	return table, nil
}

func Parse(r io.Reader) (*Table, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed signatures table: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("malformed signatures table: expected an object")
	}

	return New(raw)
}

// New builds a table from an in-memory mapping, applying the same validation as Parse.
func New(raw map[string][]string) (*Table, error) {
	entries := make(map[string][]string, len(raw))
	for key, sigs := range raw {
		selector, err := normalizeSelector(key)
		if err != nil {
			return nil, err
		}
		if _, exists := entries[selector]; exists {
			return nil, fmt.Errorf("duplicate selector %q in signatures table", selector)
		}
		if len(sigs) == 0 {
			return nil, fmt.Errorf("selector %q has no signatures", key)
		}
		entries[selector] = append([]string(nil), sigs...)
	}
	return &Table{entries: entries}, nil
}

// Lookup never fails, an unknown selector simply reports false.
func (t *Table) Lookup(selector string) ([]string, bool) {
	key := strings.ToLower(strings.TrimPrefix(selector, "0x"))
	sigs, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return sigs, true
}

func (t *Table) LookupBytes(selector [4]byte) ([]string, bool) {
	return t.Lookup(hex.EncodeToString(selector[:]))
}

func (t *Table) Len() int {
	return len(t.entries)
}

func normalizeSelector(key string) (string, error) {
	selector := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(key), "0x"))
	if len(selector) != selectorHexLength {
		return "", fmt.Errorf("invalid selector %q: expected %d hex characters", key, selectorHexLength)
	}
	if _, err := hex.DecodeString(selector); err != nil {
		return "", fmt.Errorf("invalid selector %q: %w", key, err)
	}
	return selector, nil
}
