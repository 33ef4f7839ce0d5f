package membercrm

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Decoding happens in two phases. parseRecord turns a payload into a loosely
// typed key/value record without interpreting anything; the readers in this
// file then resolve each logical field from that record by trying its
// candidate keys in priority order.

// field is a logical entity field and the upstream keys it may arrive
// under. keys[0] is the canonical key used when encoding.
type field struct {
	name string
	keys []string
}

func newField(keys ...string) field {
	return field{name: keys[0], keys: keys}
}

// errAbsent marks a candidate whose value carries no information, such as
// an empty string. The reader moves on to the next key.
var errAbsent = errors.New("value is empty")

// record is a single upstream JSON object. A record created by group has a
// parent, and lookups fall back to the parent once the group's own nested
// object has no match.
type record struct {
	fields map[string]json.RawMessage
	parent *record
}

// parseRecord decodes raw into a record. It fails only if raw is not a JSON
// object.
func parseRecord(raw []byte) (*record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("record must be a JSON object: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("record must be a JSON object, got null")
	}
	return &record{fields: fields}, nil
}

// group returns a scope for an expansion group. Keys are looked up first in
// a nested object stored under the group's wire name and then at the top
// level, so both flat and partially nested payloads decode the same way.
func (r *record) group(name string) *record {
	scope := &record{fields: map[string]json.RawMessage{}, parent: r}
	if raw, ok := r.fields[name]; ok && !isNull(raw) {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil && nested != nil {
			scope.fields = nested
		}
	}
	return scope
}

// candidates returns every present, non-null value for f in priority order.
func (r *record) candidates(f field) []json.RawMessage {
	var out []json.RawMessage
	for scope := r; scope != nil; scope = scope.parent {
		for _, k := range f.keys {
			if v, ok := scope.fields[k]; ok && !isNull(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// has reports whether any of the fields carries information: a present
// value that is neither null nor a blank string.
func (r *record) has(fields ...field) bool {
	for _, f := range fields {
		for _, raw := range r.candidates(f) {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) == "" {
				continue
			}
			return true
		}
	}
	return false
}

// declares reports whether the canonical key of f holds a string, blank
// or not. Lenient fields with an unrecognised value are written that way.
func (r *record) declares(f field) bool {
	for scope := r; scope != nil; scope = scope.parent {
		raw, ok := scope.fields[f.keys[0]]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return true
		}
	}
	return false
}

// readField resolves f by decoding each candidate in turn. A candidate that
// fails to decode is treated as absent. When every present candidate
// failed, the last decode error is returned alongside ok == false so
// mandatory fields can report it.
func readField[T any](r *record, f field, decode func(json.RawMessage) (T, error)) (T, bool, error) {
	var zero T
	var lastErr error
	for _, raw := range r.candidates(f) {
		v, err := decode(raw)
		if err == nil {
			return v, true, nil
		}
		if !errors.Is(err, errAbsent) {
			lastErr = err
		}
	}
	return zero, false, lastErr
}

// optional wraps readField for fields whose failures are silent.
func optional[T any](r *record, f field, decode func(json.RawMessage) (T, error)) *T {
	v, ok, _ := readField(r, f, decode)
	if !ok {
		return nil
	}
	return &v
}

// mandatory wraps readField for fields that must decode when present.
// An absent field is not an error.
func mandatory[T any](r *record, entity string, f field, decode func(json.RawMessage) (T, error)) (*T, error) {
	v, ok, err := readField(r, f, decode)
	if err != nil && !ok {
		return nil, &DecodeError{Entity: entity, Field: f.name, Err: err}
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// lenient reads a lenient enum field. Unlike optional, an empty string is
// still a value here: it resolves to the enum's unknown sentinel.
func lenient[T ~string](r *record, f field, table *enumTable[T]) T {
	v, _, _ := readField(r, f, table.decoder())
	return v
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeString accepts a JSON string or number. Blank strings are absent.
func decodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errAbsent
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("expected string, got %s", raw)
}

// decodeID accepts an identifier as either a string or an integer, since
// the upstream API is inconsistent about which it returns.
func decodeID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return "", errAbsent
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil && !strings.ContainsAny(n.String(), ".eE") {
		return n.String(), nil
	}
	return "", fmt.Errorf("id must be string or integer")
}

// decodeInt accepts an integral JSON number or a numeric string.
func decodeInt(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("expected integer, got %s", raw)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, errAbsent
		}
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, fmt.Errorf("expected integer, got %q", s)
		}
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("integer %v out of range", f)
	}
	return int(f), nil
}

// decodeCount is decodeInt restricted to values that cannot be negative.
func decodeCount(raw json.RawMessage) (int, error) {
	n, err := decodeInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("expected non-negative count, got %d", n)
	}
	return n, nil
}

// decodeBool accepts a JSON bool or the strings "true" and "false".
func decodeBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, fmt.Errorf("expected boolean, got %s", raw)
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

func decodeDate(raw json.RawMessage) (Date, error) {
	s, err := decodeString(raw)
	if err != nil {
		return Date{}, err
	}
	return ParseDate(s)
}

func decodeTimestamp(raw json.RawMessage) (Timestamp, error) {
	s, err := decodeString(raw)
	if err != nil {
		return Timestamp{}, err
	}
	t, err := parseTime(s)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t}, nil
}

func decodeMemberID(raw json.RawMessage) (MemberID, error) {
	s, err := decodeString(raw)
	if err != nil {
		return "", err
	}
	return ParseMemberID(s)
}

func decodePhoto(raw json.RawMessage) (Photo, error) {
	s, err := decodeString(raw)
	if err != nil {
		return Photo{}, err
	}
	p := ParsePhoto(s)
	if p == nil {
		return Photo{}, fmt.Errorf("photo markup has no image source")
	}
	return *p, nil
}
