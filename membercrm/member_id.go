package membercrm

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// memberIDPrefix is the fixed prefix every member number carries upstream.
const memberIDPrefix = "TKT"

// ErrInvalidMemberID is returned for identifiers that are too short or do not
// carry the member prefix.
var ErrInvalidMemberID = errors.New("invalid member id")

// MemberID is a validated member number such as "TKT123456".
//
// The prefix is matched case-insensitively and always stored upper-case.
// Everything after the prefix is kept exactly as supplied.
type MemberID string

// NormalizeMemberID returns the canonical form of s and whether s is a
// valid member number. Normalizing an already canonical ID returns it
// unchanged.
func NormalizeMemberID(s string) (string, bool) {
	if len(s) < len(memberIDPrefix) {
		return "", false
	}
	if !strings.EqualFold(s[:len(memberIDPrefix)], memberIDPrefix) {
		return "", false
	}
	return memberIDPrefix + s[len(memberIDPrefix):], true
}

// ParseMemberID validates and normalizes s.
func ParseMemberID(s string) (MemberID, error) {
	id, ok := NormalizeMemberID(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMemberID, s)
	}
	return MemberID(id), nil
}

// String returns the canonical form of the ID.
func (id MemberID) String() string {
	return string(id)
}

// MarshalJSON implements json.Marshaler for MemberID.
func (id MemberID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler for MemberID.
func (id *MemberID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("member id must be a string: %w", err)
	}
	parsed, err := ParseMemberID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
