package membercrm

import (
	"reflect"
	"time"
)

// Expansion groups are the independently requestable nested parts of an
// entity. Every field in a group is optional; a decoded group is nil unless
// at least one of its fields resolved to a value.

// ContactInformation holds how to reach a member or seeker.
type ContactInformation struct {
	Email              *string            `json:"email,omitempty"`
	MobilePhone        *string            `json:"mobilePhone,omitempty"`
	HomePhone          *string            `json:"homePhone,omitempty"`
	Street             *string            `json:"mailingStreet,omitempty"`
	City               *string            `json:"mailingCity,omitempty"`
	State              *string            `json:"mailingState,omitempty"`
	PostalCode         *string            `json:"mailingPostalCode,omitempty"`
	Country            *string            `json:"mailingCountry,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
}

var (
	fieldEmail              = newField("email", "emailAddress", "personalEmail")
	fieldMobilePhone        = newField("mobilePhone", "mobile", "phone")
	fieldHomePhone          = newField("homePhone", "otherPhone")
	fieldStreet             = newField("mailingStreet", "address", "street")
	fieldCity               = newField("mailingCity", "city")
	fieldState              = newField("mailingState", "state")
	fieldPostalCode         = newField("mailingPostalCode", "postalCode", "zipCode")
	fieldCountry            = newField("mailingCountry", "country")
	fieldSubscriptionStatus = newField("subscriptionStatus", "newsletterSubscription")
)

func decodeContactInformation(r *record) *ContactInformation {
	g := r.group(string(ExpandContactInformation))
	return resolved(g, &ContactInformation{
		Email:              optional(g, fieldEmail, decodeString),
		MobilePhone:        optional(g, fieldMobilePhone, decodeString),
		HomePhone:          optional(g, fieldHomePhone, decodeString),
		Street:             optional(g, fieldStreet, decodeString),
		City:               optional(g, fieldCity, decodeString),
		State:              optional(g, fieldState, decodeString),
		PostalCode:         optional(g, fieldPostalCode, decodeString),
		Country:            optional(g, fieldCountry, decodeString),
		SubscriptionStatus: lenient(g, fieldSubscriptionStatus, subscriptionStatuses),
	}, fieldSubscriptionStatus)
}

// EmploymentInformation describes a member's work.
type EmploymentInformation struct {
	Occupation *string    `json:"occupation,omitempty"`
	Employer   *string    `json:"employer,omitempty"`
	JobTitle   *string    `json:"jobTitle,omitempty"`
	Industry   *string    `json:"industry,omitempty"`
	Department Department `json:"department"`
}

var (
	fieldOccupation = newField("occupation", "profession")
	fieldEmployer   = newField("employer", "companyName")
	fieldJobTitle   = newField("jobTitle", "designation")
	fieldIndustry   = newField("industry")
	fieldDepartment = newField("department", "churchDepartment")
)

func decodeEmploymentInformation(r *record) *EmploymentInformation {
	g := r.group(string(ExpandEmploymentInformation))
	return resolved(g, &EmploymentInformation{
		Occupation: optional(g, fieldOccupation, decodeString),
		Employer:   optional(g, fieldEmployer, decodeString),
		JobTitle:   optional(g, fieldJobTitle, decodeString),
		Industry:   optional(g, fieldIndustry, decodeString),
		Department: lenient(g, fieldDepartment, departments),
	}, fieldDepartment)
}

// MaritalInformation describes a member's family.
type MaritalInformation struct {
	Status             *MaritalStatus `json:"maritalStatus,omitempty"`
	SpouseName         *string        `json:"spouseName,omitempty"`
	NumberOfChildren   *int           `json:"numberOfChildren,omitempty"`
	WeddingAnniversary *Date          `json:"weddingAnniversary,omitempty"`
}

// The misspelled and prefixed keys come from older API versions and are
// only ever read, never written.
var (
	fieldMaritalStatus      = newField("maritalStatus", "martialStatus")
	fieldSpouseName         = newField("spouseName", "maritalSpouseName")
	fieldNumberOfChildren   = newField("numberOfChildren", "maritalNumberOfChildren", "children")
	fieldWeddingAnniversary = newField("weddingAnniversary", "weddingAnniversaryDdMmYyyy", "anniversaryDate")
)

func decodeMaritalInformation(r *record) *MaritalInformation {
	g := r.group(string(ExpandMaritalInformation))
	return resolved(g, &MaritalInformation{
		Status:             optional(g, fieldMaritalStatus, maritalStatuses.decoder()),
		SpouseName:         optional(g, fieldSpouseName, decodeString),
		NumberOfChildren:   optional(g, fieldNumberOfChildren, decodeCount),
		WeddingAnniversary: optional(g, fieldWeddingAnniversary, decodeDate),
	})
}

// DaysUntilAnniversary returns the number of days from now until the next
// wedding anniversary. ok is false when no anniversary is recorded.
func (m *MaritalInformation) DaysUntilAnniversary(now time.Time) (days int, ok bool) {
	if m == nil || m.WeddingAnniversary == nil {
		return 0, false
	}
	return DaysUntilNext(*m.WeddingAnniversary, now), true
}

// DiscipleshipInformation tracks a member's spiritual growth.
type DiscipleshipInformation struct {
	BibleCourse       BibleCourse `json:"bibleCourse"`
	BaptismDate       *Date       `json:"baptismDate,omitempty"`
	SalvationDate     *Date       `json:"salvationDate,omitempty"`
	DiscipleshipGroup *string     `json:"discipleshipGroup,omitempty"`
	MentorName        *string     `json:"mentorName,omitempty"`
}

var (
	fieldBibleCourse       = newField("bibleCourse", "currentBibleCourse")
	fieldBaptismDate       = newField("baptismDate", "dateOfBaptism")
	fieldSalvationDate     = newField("salvationDate", "dateOfSalvation")
	fieldDiscipleshipGroup = newField("discipleshipGroup", "cellGroup")
	fieldMentorName        = newField("mentorName", "discipler")
)

func decodeDiscipleshipInformation(r *record) *DiscipleshipInformation {
	g := r.group(string(ExpandDiscipleshipInformation))
	return resolved(g, &DiscipleshipInformation{
		BibleCourse:       lenient(g, fieldBibleCourse, bibleCourses),
		BaptismDate:       optional(g, fieldBaptismDate, decodeDate),
		SalvationDate:     optional(g, fieldSalvationDate, decodeDate),
		DiscipleshipGroup: optional(g, fieldDiscipleshipGroup, decodeString),
		MentorName:        optional(g, fieldMentorName, decodeString),
	}, fieldBibleCourse)
}

// MinistryInformation describes where a member serves.
type MinistryInformation struct {
	Involvement    MinistryInvolvement `json:"ministryInvolvement"`
	MissionaryType MissionaryType      `json:"missionaryType"`
	StartDate      *Date               `json:"ministryStartDate,omitempty"`
}

var (
	fieldMinistryInvolvement = newField("ministryInvolvement", "ministry")
	fieldMissionaryType      = newField("missionaryType")
	fieldMinistryStartDate   = newField("ministryStartDate", "servingSince")
)

func decodeMinistryInformation(r *record) *MinistryInformation {
	g := r.group(string(ExpandMinistryInformation))
	return resolved(g, &MinistryInformation{
		Involvement:    lenient(g, fieldMinistryInvolvement, ministryInvolvements),
		MissionaryType: lenient(g, fieldMissionaryType, missionaryTypes),
		StartDate:      optional(g, fieldMinistryStartDate, decodeDate),
	}, fieldMinistryInvolvement, fieldMissionaryType)
}

// LeadInformation is the follow-up record attached to a seeker.
type LeadInformation struct {
	LeadID           *string    `json:"leadId,omitempty"`
	Status           LeadStatus `json:"leadStatus"`
	Owner            *string    `json:"leadOwner,omitempty"`
	NextFollowUpDate *Date      `json:"nextFollowUpDate,omitempty"`
}

var (
	fieldLeadID           = newField("leadId", "leadID")
	fieldLeadStatus       = newField("leadStatus", "followUpStatus")
	fieldLeadOwner        = newField("leadOwner", "assignedTo")
	fieldNextFollowUpDate = newField("nextFollowUpDate", "followUpDate")
)

func decodeLeadInformation(r *record) *LeadInformation {
	g := r.group(string(ExpandLeadInformation))
	return resolved(g, &LeadInformation{
		LeadID:           optional(g, fieldLeadID, decodeID),
		Status:           lenient(g, fieldLeadStatus, leadStatuses),
		Owner:            optional(g, fieldLeadOwner, decodeString),
		NextFollowUpDate: optional(g, fieldNextFollowUpDate, decodeDate),
	}, fieldLeadStatus)
}

// resolved returns group when at least one of its pointer fields decoded
// or one of its lenient fields was given, and nil otherwise. A lenient
// field counts when it carried a non-blank value, or any string under its
// canonical key.
func resolved[T any](r *record, group *T, lenientFields ...field) *T {
	v := reflect.ValueOf(group).Elem()
	for i := range v.NumField() {
		if f := v.Field(i); f.Kind() == reflect.Pointer && !f.IsNil() {
			return group
		}
	}
	for _, f := range lenientFields {
		if r.has(f) || r.declares(f) {
			return group
		}
	}
	return nil
}

// clone returns a copy of a group that shares no pointers with g, or nil
// for a nil group. Group fields are scalars or pointers to scalars.
func clone[T any](g *T) *T {
	if g == nil {
		return nil
	}
	c := *g
	v := reflect.ValueOf(&c).Elem()
	for i := range v.NumField() {
		f := v.Field(i)
		if f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		cp := reflect.New(f.Type().Elem())
		cp.Elem().Set(f.Elem())
		f.Set(cp)
	}
	return &c
}
