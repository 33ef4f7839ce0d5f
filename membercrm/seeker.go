package membercrm

import json "github.com/goccy/go-json"

// Seeker is a newcomer who has not (yet) become a member.
type Seeker struct {
	ID               string
	MemberID         *MemberID // set once the seeker is converted
	CreatedDate      *Timestamp
	LastModifiedDate *Timestamp

	FirstName        *string
	MiddleName       *string
	LastName         *string
	Name             *string
	Gender           *Gender
	Campus           *Campus
	Service          *Service
	Language         *Language
	EntryType        EntryType
	DateOfFirstVisit *Date

	ContactInformation *ContactInformation
	LeadInformation    *LeadInformation
}

var (
	fieldEntryType        = newField("entryType", "sourceOfEntry")
	fieldDateOfFirstVisit = newField("dateOfFirstVisit", "firstVisitDate")
)

const entitySeeker = "seeker"

// DecodeSeeker builds a Seeker from a single upstream JSON object.
func DecodeSeeker(raw []byte) (*Seeker, error) {
	r, err := parseRecord(raw)
	if err != nil {
		return nil, &DecodeError{Entity: entitySeeker, Err: err}
	}

	id, err := identity(r, entitySeeker)
	if err != nil {
		return nil, err
	}

	s := &Seeker{
		ID:                 id.id,
		MemberID:           id.memberID,
		CreatedDate:        id.created,
		LastModifiedDate:   id.modified,
		Gender:             optional(r, fieldGender, genders.decoder()),
		Campus:             optional(r, fieldCampus, campuses.decoder()),
		Service:            optional(r, fieldService, services.decoder()),
		Language:           optional(r, fieldLanguage, languages.decoder()),
		EntryType:          lenient(r, fieldEntryType, entryTypes),
		DateOfFirstVisit:   optional(r, fieldDateOfFirstVisit, decodeDate),
		ContactInformation: decodeContactInformation(r),
		LeadInformation:    decodeLeadInformation(r),
	}
	s.FirstName, s.MiddleName, s.LastName, s.Name = names(r)

	return s, nil
}

// FullName returns the seeker's display name.
func (s *Seeker) FullName() string {
	return fullName(s.FirstName, s.MiddleName, s.LastName, s.Name)
}

// UnmarshalJSON implements json.Unmarshaler by way of DecodeSeeker.
func (s *Seeker) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeSeeker(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// MarshalJSON emits a flat object using canonical keys.
func (s Seeker) MarshalJSON() ([]byte, error) {
	out := wireObject{}
	out.set(fieldID, s.ID, s.ID != "")
	out.set(fieldMemberID, s.MemberID, s.MemberID != nil)
	out.set(fieldCreatedDate, s.CreatedDate, s.CreatedDate != nil)
	out.set(fieldLastModifiedDate, s.LastModifiedDate, s.LastModifiedDate != nil)
	out.set(fieldFirstName, s.FirstName, s.FirstName != nil)
	out.set(fieldMiddleName, s.MiddleName, s.MiddleName != nil)
	out.set(fieldLastName, s.LastName, s.LastName != nil)
	out.set(fieldName, s.Name, s.Name != nil)
	out.set(fieldGender, s.Gender, s.Gender != nil)
	out.set(fieldCampus, s.Campus, s.Campus != nil)
	out.set(fieldService, s.Service, s.Service != nil)
	out.set(fieldLanguage, s.Language, s.Language != nil)
	out.set(fieldEntryType, s.EntryType, s.EntryType != EntryTypeUnknown)
	out.set(fieldDateOfFirstVisit, s.DateOfFirstVisit, s.DateOfFirstVisit != nil)

	for _, g := range []any{s.ContactInformation, s.LeadInformation} {
		if err := out.merge(g); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}
