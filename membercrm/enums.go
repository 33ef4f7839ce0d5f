package membercrm

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/cases"
)

// enumTable maps accepted upstream spellings to a closed set of values.
//
// Strict tables reject anything they do not know. Lenient tables resolve
// unknown input to the zero value, which doubles as the "unknown" sentinel
// and always encodes as the empty string.
type enumTable[T ~string] struct {
	name     string
	foldCase bool
	lenient  bool
	values   []T
	lookup   map[string]T
}

// newEnum builds a table from the canonical values plus any aliases.
// Canonical values are always accepted spellings of themselves.
func newEnum[T ~string](name string, foldCase, lenient bool, values []T, aliases map[string]T) *enumTable[T] {
	t := &enumTable[T]{
		name:     name,
		foldCase: foldCase,
		lenient:  lenient,
		values:   values,
		lookup:   make(map[string]T, len(values)+len(aliases)),
	}
	for _, v := range values {
		t.lookup[t.key(string(v))] = v
	}
	for spelling, v := range aliases {
		t.lookup[t.key(spelling)] = v
	}
	return t
}

func (t *enumTable[T]) key(s string) string {
	if t.foldCase {
		// A Caser carries state, so each call gets its own.
		return cases.Fold().String(s)
	}
	return s
}

func (t *enumTable[T]) parse(raw string) (T, error) {
	s := strings.TrimSpace(raw)
	if v, ok := t.lookup[t.key(s)]; ok && s != "" {
		return v, nil
	}
	var zero T
	if t.lenient {
		return zero, nil
	}
	return zero, &EnumError{Enum: t.name, Value: raw}
}

func (t *enumTable[T]) valid(v T) bool {
	for _, c := range t.values {
		if c == v {
			return true
		}
	}
	return false
}

// unmarshal decodes a JSON string into dst through the table.
func (t *enumTable[T]) unmarshal(data []byte, dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s must be a string: %w", t.name, err)
	}
	v, err := t.parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// marshal encodes the canonical spelling. Values outside the table only
// reach here through direct conversion; lenient tables emit them as "".
func (t *enumTable[T]) marshal(v T) ([]byte, error) {
	if !t.valid(v) {
		if t.lenient || v == "" {
			return json.Marshal("")
		}
		return nil, &EnumError{Enum: t.name, Value: string(v)}
	}
	return json.Marshal(string(v))
}

// decoder adapts the table to the field reader. For strict tables a blank
// string counts as absent rather than as an unknown value.
func (t *enumTable[T]) decoder() func(json.RawMessage) (T, error) {
	return func(raw json.RawMessage) (T, error) {
		var v T
		if !t.lenient {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) == "" {
				return v, errAbsent
			}
		}
		err := t.unmarshal(raw, &v)
		return v, err
	}
}
