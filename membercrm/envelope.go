package membercrm

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Envelope keys used by the current paginated API.
const (
	envelopeRecordsKey = "data"
	envelopeSuccessKey = "success"
	envelopeMessageKey = "message"
	envelopeErrorKey   = "error"
)

// Legacy endpoints wrapped records under a singular, entity-specific key.
const (
	legacyMemberKey = "member"
	legacySeekerKey = "seeker"
)

var (
	fieldPageSize       = newField("pageSize")
	fieldTotalCount     = newField("totalCount", "totalSize")
	fieldCurrentPage    = newField("currentPage", "page")
	fieldNextCursor     = newField("nextCursor")
	fieldPreviousCursor = newField("previousCursor")
)

// Envelope is the top-level wrapper the CRM puts around a list of records.
//
// An Envelope is either a success carrying records (possibly none) or an
// error carrying a message. Records is never nil.
type Envelope struct {
	Records    []json.RawMessage
	Pagination *PageInfo
	Success    bool
	Message    string
}

// PageInfo is the pagination metadata of an envelope. Each field is set only
// if the CRM sent it.
type PageInfo struct {
	PageSize       *int
	TotalCount     *int
	CurrentPage    *int
	NextCursor     *string
	PreviousCursor *string
}

// IsPaginated reports whether the CRM sent any pagination metadata.
func (e *Envelope) IsPaginated() bool {
	return e.Pagination != nil
}

// NextCursor returns the cursor of the following page, or "" when there is
// none.
func (e *Envelope) NextCursor() string {
	if e.Pagination == nil {
		return ""
	}
	return StringValue(e.Pagination.NextCursor)
}

// Err returns an *EnvelopeError for error envelopes and nil otherwise.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	return &EnvelopeError{Message: e.Message}
}

// ResolveEnvelope classifies raw and extracts its records and pagination
// metadata. It understands, in order:
//
//  1. a bare JSON array of records;
//  2. an explicit {"success": false, "message": "..."} error;
//  3. the paginated shape, with records under "data";
//  4. the legacy shape, with records (or a single record) under legacyKey.
//
// An object matching none of these yields an empty successful envelope. Only
// input that is not JSON at all is an error.
func ResolveEnvelope(raw json.RawMessage, legacyKey string) (*Envelope, error) {
	env := &Envelope{Records: []json.RawMessage{}, Success: true}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &env.Records); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		env.Records = dropNulls(env.Records)
		return env, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	r := &record{fields: obj}

	if success, ok, _ := readField(r, newField(envelopeSuccessKey), decodeBool); ok && !success {
		env.Success = false
		msg, _, _ := readField(r, newField(envelopeMessageKey, envelopeErrorKey), decodeRawString)
		env.Message = msg
		return env, nil
	}

	if records, ok := decodeRecords(obj[envelopeRecordsKey]); ok {
		env.Records = records
	} else if records, ok := decodeRecords(obj[legacyKey]); ok {
		env.Records = records
	}

	env.Pagination = resolvePageInfo(obj)
	return env, nil
}

// decodeRecords reads a record list. A single object counts as a list of
// one, which is how legacy endpoints answered lookups.
func decodeRecords(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 || isNull(raw) {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return dropNulls(list), true
	}
	var single map[string]json.RawMessage
	if err := json.Unmarshal(raw, &single); err == nil && single != nil {
		return []json.RawMessage{raw}, true
	}
	return nil, false
}

func dropNulls(list []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(list))
	for _, item := range list {
		if !isNull(item) {
			out = append(out, item)
		}
	}
	return out
}

// resolvePageInfo returns nil unless at least one pagination key is
// present. A present key with an unusable value still marks the envelope
// as paginated.
func resolvePageInfo(obj map[string]json.RawMessage) *PageInfo {
	present := false
	for _, f := range []field{fieldPageSize, fieldTotalCount, fieldCurrentPage, fieldNextCursor, fieldPreviousCursor} {
		for _, k := range f.keys {
			if _, ok := obj[k]; ok {
				present = true
			}
		}
	}
	if !present {
		return nil
	}

	r := &record{fields: obj}
	return &PageInfo{
		PageSize:       optional(r, fieldPageSize, decodeCount),
		TotalCount:     optional(r, fieldTotalCount, decodeCount),
		CurrentPage:    optional(r, fieldCurrentPage, decodeInt),
		NextCursor:     optional(r, fieldNextCursor, decodeString),
		PreviousCursor: optional(r, fieldPreviousCursor, decodeString),
	}
}

// decodeRawString reads a string without trimming it.
func decodeRawString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// resolveSingle extracts the one record of a lookup response. Besides the
// envelope shapes it accepts a bare record object, recognised by its
// identity keys. A successful response without a record is ErrNotFound.
func resolveSingle(raw json.RawMessage, legacyKey string) (json.RawMessage, error) {
	env, err := ResolveEnvelope(raw, legacyKey)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	if len(env.Records) > 0 {
		return env.Records[0], nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotFound
	}
	r, err := parseRecord(trimmed)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, ok := r.fields[envelopeRecordsKey]; ok {
		return nil, ErrNotFound
	}
	if _, ok := r.fields[legacyKey]; ok {
		return nil, ErrNotFound
	}
	if !r.has(fieldID, fieldMemberID) {
		return nil, ErrNotFound
	}
	return trimmed, nil
}
