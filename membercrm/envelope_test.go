package membercrm

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvelope(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantSuccess   bool
		wantMessage   string
		wantRecords   int
		wantPaginated bool
	}{
		{
			name:        "bare array",
			raw:         `[{"id":"1"},{"id":"2"},null]`,
			wantSuccess: true,
			wantRecords: 2,
		},
		{
			name:        "explicit failure",
			raw:         `{"success":false,"message":"Invalid campus filter","data":[{"id":"1"}]}`,
			wantSuccess: false,
			wantMessage: "Invalid campus filter",
		},
		{
			name:        "failure with error key",
			raw:         `{"success":"false","error":"  Session expired  "}`,
			wantSuccess: false,
			wantMessage: "  Session expired  ",
		},
		{
			name:          "paginated shape",
			raw:           `{"success":true,"data":[{"id":"1"}],"pageSize":20,"totalCount":41,"currentPage":1,"nextCursor":"c2"}`,
			wantSuccess:   true,
			wantRecords:   1,
			wantPaginated: true,
		},
		{
			name:        "data wins over legacy key",
			raw:         `{"data":[{"id":"1"}],"member":[{"id":"2"},{"id":"3"}]}`,
			wantSuccess: true,
			wantRecords: 1,
		},
		{
			name:        "legacy array",
			raw:         `{"member":[{"id":"2"},{"id":"3"}]}`,
			wantSuccess: true,
			wantRecords: 2,
		},
		{
			name:        "legacy single object",
			raw:         `{"member":{"id":"2"}}`,
			wantSuccess: true,
			wantRecords: 1,
		},
		{
			name:        "undecodable data falls back to legacy",
			raw:         `{"data":"oops","member":[{"id":"2"}]}`,
			wantSuccess: true,
			wantRecords: 1,
		},
		{
			name:        "neither key decodable",
			raw:         `{"data":42,"member":"none"}`,
			wantSuccess: true,
			wantRecords: 0,
		},
		{
			name:          "pagination without records",
			raw:           `{"nextCursor":null}`,
			wantSuccess:   true,
			wantRecords:   0,
			wantPaginated: true,
		},
		{
			name:        "empty object",
			raw:         `{}`,
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := ResolveEnvelope(json.RawMessage(tt.raw), legacyMemberKey)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSuccess, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.NotNil(t, env.Records)
			assert.Len(t, env.Records, tt.wantRecords)
			assert.Equal(t, tt.wantPaginated, env.IsPaginated())
			if !tt.wantPaginated {
				assert.Nil(t, env.Pagination)
			}
		})
	}
}

func TestResolveEnvelope_NotJSON(t *testing.T) {
	_, err := ResolveEnvelope(json.RawMessage(`<html>Service Unavailable</html>`), legacyMemberKey)
	require.Error(t, err)
}

func TestResolveEnvelope_PageInfo(t *testing.T) {
	env, err := ResolveEnvelope(json.RawMessage(`{
		"data": [],
		"pageSize": "50",
		"totalSize": 120,
		"page": 3,
		"nextCursor": "c4",
		"previousCursor": "c2"
	}`), legacySeekerKey)
	require.NoError(t, err)

	p := env.Pagination
	require.NotNil(t, p)
	assert.Equal(t, 50, IntValue(p.PageSize))
	assert.Equal(t, 120, IntValue(p.TotalCount))
	assert.Equal(t, 3, IntValue(p.CurrentPage))
	assert.Equal(t, "c4", env.NextCursor())
	assert.Equal(t, "c2", StringValue(p.PreviousCursor))
}

func TestResolveEnvelope_PresenceNotValues(t *testing.T) {
	env, err := ResolveEnvelope(json.RawMessage(`{"data":[],"pageSize":"lots"}`), legacyMemberKey)
	require.NoError(t, err)

	assert.True(t, env.IsPaginated())
	assert.Nil(t, env.Pagination.PageSize)
	assert.Empty(t, env.NextCursor())
}

func TestResolveEnvelope_PageInfoOutOfRange(t *testing.T) {
	env, err := ResolveEnvelope(json.RawMessage(`{"data":[],"pageSize":1e20,"totalCount":-5,"currentPage":2}`), legacyMemberKey)
	require.NoError(t, err)

	require.NotNil(t, env.Pagination)
	assert.Nil(t, env.Pagination.PageSize)
	assert.Nil(t, env.Pagination.TotalCount)
	assert.Equal(t, 2, IntValue(env.Pagination.CurrentPage))
}

func TestEnvelope_Err(t *testing.T) {
	env, err := ResolveEnvelope(json.RawMessage(`{"success":false,"message":"Record locked"}`), legacyMemberKey)
	require.NoError(t, err)

	var envErr *EnvelopeError
	require.ErrorAs(t, env.Err(), &envErr)
	assert.Equal(t, "Record locked", envErr.Message)
	assert.Empty(t, env.Records)

	ok, err := ResolveEnvelope(json.RawMessage(`{"success":true,"data":[]}`), legacyMemberKey)
	require.NoError(t, err)
	assert.NoError(t, ok.Err())
}

func TestResolveSingle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantID  string
		wantErr error
	}{
		{"paginated envelope", `{"data":[{"id":"1"}]}`, "1", nil},
		{"legacy object", `{"member":{"id":"2"}}`, "2", nil},
		{"bare record", `{"id":"3","firstName":"Ana"}`, "3", nil},
		{"bare record by member id", `{"memberId":"TKT4"}`, "", nil},
		{"empty data", `{"data":[]}`, "", ErrNotFound},
		{"null legacy key", `{"member":null}`, "", ErrNotFound},
		{"empty array", `[]`, "", ErrNotFound},
		{"unrelated object", `{"status":"ok"}`, "", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := resolveSingle(json.RawMessage(tt.raw), legacyMemberKey)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			m, err := DecodeMember(rec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, m.ID)
		})
	}

	_, err := resolveSingle(json.RawMessage(`{"success":false,"message":"nope"}`), legacyMemberKey)
	var envErr *EnvelopeError
	require.ErrorAs(t, err, &envErr)
}
