package membercrm

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Member is a church member record.
//
// Core identity and demographic fields sit at the top level. The optional
// expansion groups are nil unless the CRM sent at least one of their fields
// and the caller asked for them.
type Member struct {
	ID               string
	MemberID         *MemberID
	CreatedDate      *Timestamp
	LastModifiedDate *Timestamp

	Title      *Title
	FirstName  *string
	MiddleName *string
	LastName   *string
	// Name is the CRM's single full-name field, as received.
	Name        *string
	Gender      *Gender
	DateOfBirth *Date
	MemberType  *MemberType
	Status      *MemberStatus
	Campus      *Campus
	Service     *Service
	Language    *Language
	BloodGroup  *BloodGroup
	Photo       *Photo

	ContactInformation      *ContactInformation
	EmploymentInformation   *EmploymentInformation
	MaritalInformation      *MaritalInformation
	DiscipleshipInformation *DiscipleshipInformation
	MinistryInformation     *MinistryInformation
}

// Fields shared by members and seekers.
var (
	fieldID               = newField("id", "Id", "recordId")
	fieldMemberID         = newField("memberId", "memberID", "tktId")
	fieldCreatedDate      = newField("createdDate", "CreatedDate", "createdAt")
	fieldLastModifiedDate = newField("lastModifiedDate", "LastModifiedDate", "updatedAt")
	fieldFirstName        = newField("firstName", "FirstName", "first_name")
	fieldMiddleName       = newField("middleName", "MiddleName", "middle_name")
	fieldLastName         = newField("lastName", "LastName", "last_name")
	fieldName             = newField("name", "fullName", "Name")
	fieldGender           = newField("gender", "sex")
	fieldCampus           = newField("campus", "homeCampus")
	fieldService          = newField("serviceAttending", "service")
	fieldLanguage         = newField("preferredLanguage", "language")
)

var (
	fieldTitle       = newField("title", "salutation")
	fieldDateOfBirth = newField("dateOfBirth", "birthDate", "dobDdMmYyyy")
	fieldMemberType  = newField("memberType", "type")
	fieldStatus      = newField("status", "memberStatus")
	fieldBloodGroup  = newField("bloodGroup", "bloodType")
	fieldPhoto       = newField("photo", "profilePhoto")
)

const entityMember = "member"

// DecodeMember builds a Member from a single upstream JSON object, whatever
// API version produced it. Missing optional fields are not errors; see
// DecodeError for the fields that must decode when present.
func DecodeMember(raw []byte) (*Member, error) {
	r, err := parseRecord(raw)
	if err != nil {
		return nil, &DecodeError{Entity: entityMember, Err: err}
	}

	id, err := identity(r, entityMember)
	if err != nil {
		return nil, err
	}

	m := &Member{
		ID:               id.id,
		MemberID:         id.memberID,
		CreatedDate:      id.created,
		LastModifiedDate: id.modified,
		Title:            optional(r, fieldTitle, titles.decoder()),
		Gender:           optional(r, fieldGender, genders.decoder()),
		DateOfBirth:      optional(r, fieldDateOfBirth, decodeDate),
		Campus:           optional(r, fieldCampus, campuses.decoder()),
		Service:          optional(r, fieldService, services.decoder()),
		Language:         optional(r, fieldLanguage, languages.decoder()),
		BloodGroup:       optional(r, fieldBloodGroup, bloodGroups.decoder()),
		Photo:            optional(r, fieldPhoto, decodePhoto),
	}
	m.FirstName, m.MiddleName, m.LastName, m.Name = names(r)

	if m.MemberType, err = mandatory(r, entityMember, fieldMemberType, memberTypes.decoder()); err != nil {
		return nil, err
	}
	if m.Status, err = mandatory(r, entityMember, fieldStatus, memberStatuses.decoder()); err != nil {
		return nil, err
	}

	m.ContactInformation = decodeContactInformation(r)
	m.EmploymentInformation = decodeEmploymentInformation(r)
	m.MaritalInformation = decodeMaritalInformation(r)
	m.DiscipleshipInformation = decodeDiscipleshipInformation(r)
	m.MinistryInformation = decodeMinistryInformation(r)

	return m, nil
}

// identityFields are the fields every entity resolves first.
type identityFields struct {
	id       string
	memberID *MemberID
	created  *Timestamp
	modified *Timestamp
}

// identity resolves the identity fields. Each one is optional, but a value
// that is present and cannot be decoded under any of its keys is an error.
func identity(r *record, entity string) (identityFields, error) {
	var out identityFields

	id, err := mandatory(r, entity, fieldID, decodeID)
	if err != nil {
		return out, err
	}
	if id != nil {
		out.id = *id
	}
	if out.memberID, err = mandatory(r, entity, fieldMemberID, decodeMemberID); err != nil {
		return out, err
	}
	if out.created, err = mandatory(r, entity, fieldCreatedDate, decodeTimestamp); err != nil {
		return out, err
	}
	if out.modified, err = mandatory(r, entity, fieldLastModifiedDate, decodeTimestamp); err != nil {
		return out, err
	}
	return out, nil
}

// names resolves the name fields. Decomposed names win; without them the
// full-name field is split on whitespace into a first name and a last name
// made of the remaining tokens.
func names(r *record) (first, middle, last, full *string) {
	first = optional(r, fieldFirstName, decodeString)
	middle = optional(r, fieldMiddleName, decodeString)
	last = optional(r, fieldLastName, decodeString)
	full = optional(r, fieldName, decodeString)

	if first != nil || middle != nil || last != nil || full == nil {
		return first, middle, last, full
	}

	tokens := strings.Fields(*full)
	first = String(tokens[0])
	if len(tokens) > 1 {
		last = String(strings.Join(tokens[1:], " "))
	}
	return first, middle, last, full
}

// fullName joins whichever name components exist, falling back to the raw
// full-name field.
func fullName(first, middle, last, raw *string) string {
	var parts []string
	for _, p := range []*string{first, middle, last} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return StringValue(raw)
	}
	return strings.Join(parts, " ")
}

// FullName returns the member's display name.
func (m *Member) FullName() string {
	return fullName(m.FirstName, m.MiddleName, m.LastName, m.Name)
}

// Age returns the member's age in whole years at now. ok is false when no
// date of birth is recorded.
func (m *Member) Age(now time.Time) (age int, ok bool) {
	if m.DateOfBirth == nil {
		return 0, false
	}
	return AgeOn(*m.DateOfBirth, now), true
}

// AgeGroup returns the member's age bracket at now.
func (m *Member) AgeGroup(now time.Time) AgeGroup {
	age, ok := m.Age(now)
	if !ok {
		return AgeGroupUnknown
	}
	return AgeGroupOf(age)
}

// DaysUntilBirthday returns the number of days from now until the member's
// next birthday.
func (m *Member) DaysUntilBirthday(now time.Time) (days int, ok bool) {
	if m.DateOfBirth == nil {
		return 0, false
	}
	return DaysUntilNext(*m.DateOfBirth, now), true
}

// UnmarshalJSON implements json.Unmarshaler by way of DecodeMember.
func (m *Member) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeMember(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// MarshalJSON emits a flat object using the canonical key of every field.
// Legacy keys are never written.
func (m Member) MarshalJSON() ([]byte, error) {
	out := wireObject{}
	out.set(fieldID, m.ID, m.ID != "")
	out.set(fieldMemberID, m.MemberID, m.MemberID != nil)
	out.set(fieldCreatedDate, m.CreatedDate, m.CreatedDate != nil)
	out.set(fieldLastModifiedDate, m.LastModifiedDate, m.LastModifiedDate != nil)
	out.set(fieldTitle, m.Title, m.Title != nil)
	out.set(fieldFirstName, m.FirstName, m.FirstName != nil)
	out.set(fieldMiddleName, m.MiddleName, m.MiddleName != nil)
	out.set(fieldLastName, m.LastName, m.LastName != nil)
	out.set(fieldName, m.Name, m.Name != nil)
	out.set(fieldGender, m.Gender, m.Gender != nil)
	out.set(fieldDateOfBirth, m.DateOfBirth, m.DateOfBirth != nil)
	out.set(fieldMemberType, m.MemberType, m.MemberType != nil)
	out.set(fieldStatus, m.Status, m.Status != nil)
	out.set(fieldCampus, m.Campus, m.Campus != nil)
	out.set(fieldService, m.Service, m.Service != nil)
	out.set(fieldLanguage, m.Language, m.Language != nil)
	out.set(fieldBloodGroup, m.BloodGroup, m.BloodGroup != nil)
	out.set(fieldPhoto, m.Photo, m.Photo != nil)

	for _, g := range []any{
		m.ContactInformation, m.EmploymentInformation, m.MaritalInformation,
		m.DiscipleshipInformation, m.MinistryInformation,
	} {
		if err := out.merge(g); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// wireObject accumulates an entity's flat wire representation.
type wireObject map[string]any

func (w wireObject) set(f field, v any, present bool) {
	if present {
		w[f.keys[0]] = v
	}
}

// merge flattens a group's canonical keys into w. Nil groups add nothing.
func (w wireObject) merge(group any) error {
	data, err := json.Marshal(group)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		w[k] = v
	}
	return nil
}
