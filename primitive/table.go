package primitive

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Table maps primitive kinds to target type text. The key set is closed:
// overrides may change the text of a declared kind but never add a kind.
type Table struct {
	overrides map[Kind]string
}

// DefaultTable returns the table with the built-in Java mapping.
func DefaultTable() *Table {
	return &Table{}
}

// NewTable builds a table with the given overrides, keyed by any symbol of
// the kind ("bool" and "boolean" both override KindBoolean).
func NewTable(overrides map[string]string) (*Table, error) {
	t := &Table{}
	if len(overrides) == 0 {
		return t, nil
	}

	t.overrides = make(map[Kind]string, len(overrides))

	// Sorted so that a conflict between aliases is reported deterministically.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, symbol := range keys {
		text := strings.TrimSpace(overrides[symbol])

		kind, ok := Lookup(symbol)
		if !ok {
			return nil, errors.Newf("type override %q: not a primitive symbol (known: %s)",
				symbol, strings.Join(Symbols(), ", "))
		}

		if text == "" {
			return nil, errors.Newf("type override %q: empty type text", symbol)
		}

		if prev, dup := t.overrides[kind]; dup && prev != text {
			return nil, errors.Newf("type override %q: %s already overridden as %q", symbol, kind, prev)
		}

		t.overrides[kind] = text
	}

	return t, nil
}

// TypeText returns the target type text for kind.
func (t *Table) TypeText(kind Kind) string {
	if t != nil {
		if text, ok := t.overrides[kind]; ok {
			return text
		}
	}

	return kind.JavaType()
}

// Lookup returns the target type text for symbol. It reports false when
// the symbol is not a primitive; callers fall back to class-name conversion.
func (t *Table) Lookup(symbol string) (string, bool) {
	kind, ok := Lookup(symbol)
	if !ok {
		return "", false
	}

	return t.TypeText(kind), true
}
