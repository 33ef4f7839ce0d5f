package membercrm

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMemberID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"lower case prefix", "tkt123456", "TKT123456", true},
		{"mixed case prefix", "TkT00042", "TKT00042", true},
		{"canonical", "TKT123456", "TKT123456", true},
		{"suffix case preserved", "tktAbC-9", "TKTAbC-9", true},
		{"prefix only", "tkt", "TKT", true},
		{"too short", "TK", "", false},
		{"empty", "", "", false},
		{"wrong prefix", "abc123", "", false},
		{"prefix not at start", "123TKT", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMemberID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMemberID_Invalid(t *testing.T) {
	for _, input := range []string{"TK", "abc123", " tkt1"} {
		_, err := ParseMemberID(input)
		require.ErrorIs(t, err, ErrInvalidMemberID, "input %q", input)
	}
}

func TestMemberID_JSON(t *testing.T) {
	var id MemberID
	require.NoError(t, json.Unmarshal([]byte(`"tkt778"`), &id))
	assert.Equal(t, MemberID("TKT778"), id)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"TKT778"`, string(data))

	require.ErrorIs(t, json.Unmarshal([]byte(`"XYZ778"`), &id), ErrInvalidMemberID)
	require.Error(t, json.Unmarshal([]byte(`778`), &id))
}

func FuzzNormalizeMemberID(f *testing.F) {
	for _, seed := range []string{"tkt123456", "TKT", "TK", "abc123", "tKtéé", ""} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		once, ok := NormalizeMemberID(input)
		if !ok {
			return
		}

		twice, ok := NormalizeMemberID(once)
		if !ok {
			t.Fatalf("NormalizeMemberID(%q) rejected its own output", once)
		}
		if twice != once {
			t.Fatalf("NormalizeMemberID not idempotent: %q -> %q -> %q", input, once, twice)
		}
		if !strings.HasPrefix(once, memberIDPrefix) {
			t.Fatalf("NormalizeMemberID(%q) = %q, missing prefix", input, once)
		}
		if once[len(memberIDPrefix):] != input[len(memberIDPrefix):] {
			t.Fatalf("NormalizeMemberID(%q) = %q, suffix changed", input, once)
		}
	})
}
