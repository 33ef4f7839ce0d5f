package membercrm

// Title is a member's salutation.
type Title string

const (
	TitleMr   Title = "Mr."
	TitleMrs  Title = "Mrs."
	TitleMs   Title = "Ms."
	TitleMiss Title = "Miss"
	TitleDr   Title = "Dr."
	TitleRev  Title = "Rev."
	TitlePs   Title = "Ps."
)

var titles = newEnum("title", false, false,
	[]Title{TitleMr, TitleMrs, TitleMs, TitleMiss, TitleDr, TitleRev, TitlePs},
	map[string]Title{
		"Mr":     TitleMr,
		"Mrs":    TitleMrs,
		"Ms":     TitleMs,
		"Dr":     TitleDr,
		"Rev":    TitleRev,
		"Pastor": TitlePs,
		"Ps":     TitlePs,
	},
)

// ParseTitle normalizes an upstream salutation.
func ParseTitle(s string) (Title, error) { return titles.parse(s) }
func (t Title) String() string { return string(t) }
func (t Title) MarshalJSON() ([]byte, error) { return titles.marshal(t) }
func (t *Title) UnmarshalJSON(data []byte) error { return titles.unmarshal(data, t) }

// MemberType classifies how a person belongs to the church.
type MemberType string

const (
	MemberTypeMember          MemberType = "Member"
	MemberTypeAssociate       MemberType = "Associate Member"
	MemberTypeRegularAttendee MemberType = "Regular Attendee"
	MemberTypeStaff           MemberType = "Staff"
)

var memberTypes = newEnum("memberType", true, false,
	[]MemberType{MemberTypeMember, MemberTypeAssociate, MemberTypeRegularAttendee, MemberTypeStaff},
	map[string]MemberType{
		"Associate": MemberTypeAssociate,
		"Attendee":  MemberTypeRegularAttendee,
	},
)

// ParseMemberType normalizes an upstream member type.
func ParseMemberType(s string) (MemberType, error) { return memberTypes.parse(s) }
func (t MemberType) String() string { return string(t) }
func (t MemberType) MarshalJSON() ([]byte, error) { return memberTypes.marshal(t) }
func (t *MemberType) UnmarshalJSON(data []byte) error { return memberTypes.unmarshal(data, t) }

// BloodGroup is an ABO/Rh blood group.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

var bloodGroups = newEnum("bloodGroup", true, false,
	[]BloodGroup{
		BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupABPositive, BloodGroupABNegative,
		BloodGroupOPositive, BloodGroupONegative,
	},
	map[string]BloodGroup{
		"A Positive":  BloodGroupAPositive,
		"A Negative":  BloodGroupANegative,
		"B Positive":  BloodGroupBPositive,
		"B Negative":  BloodGroupBNegative,
		"AB Positive": BloodGroupABPositive,
		"AB Negative": BloodGroupABNegative,
		"O Positive":  BloodGroupOPositive,
		"O Negative":  BloodGroupONegative,
	},
)

// ParseBloodGroup normalizes an upstream blood group.
func ParseBloodGroup(s string) (BloodGroup, error) { return bloodGroups.parse(s) }
func (b BloodGroup) String() string { return string(b) }
func (b BloodGroup) MarshalJSON() ([]byte, error) { return bloodGroups.marshal(b) }
func (b *BloodGroup) UnmarshalJSON(data []byte) error { return bloodGroups.unmarshal(data, b) }

// Campus is the physical or online congregation a person attends.
type Campus string

const (
	CampusDowntown      Campus = "Downtown"
	CampusNorthside     Campus = "Northside"
	CampusRiversideEast Campus = "Riverside - East"
	CampusRiversideWest Campus = "Riverside - West"
	CampusOnline        Campus = "Online"
)

// Upstream users type the Riverside campuses with every possible spacing
// around the hyphen.
var campuses = newEnum("campus", false, false,
	[]Campus{CampusDowntown, CampusNorthside, CampusRiversideEast, CampusRiversideWest, CampusOnline},
	map[string]Campus{
		"Riverside-East":  CampusRiversideEast,
		"Riverside -East": CampusRiversideEast,
		"Riverside- East": CampusRiversideEast,
		"Riverside-West":  CampusRiversideWest,
		"Riverside -West": CampusRiversideWest,
		"Riverside- West": CampusRiversideWest,
		"Online Campus":   CampusOnline,
	},
)

// ParseCampus normalizes an upstream campus name.
func ParseCampus(s string) (Campus, error) { return campuses.parse(s) }
func (c Campus) String() string { return string(c) }
func (c Campus) MarshalJSON() ([]byte, error) { return campuses.marshal(c) }
func (c *Campus) UnmarshalJSON(data []byte) error { return campuses.unmarshal(data, c) }

// MemberStatus is the lifecycle state of a membership record.
type MemberStatus string

const (
	MemberStatusActive      MemberStatus = "Active"
	MemberStatusInactive    MemberStatus = "Inactive"
	MemberStatusTransferred MemberStatus = "Transferred"
	MemberStatusDeceased    MemberStatus = "Deceased"
)

var memberStatuses = newEnum("status", true, false,
	[]MemberStatus{MemberStatusActive, MemberStatusInactive, MemberStatusTransferred, MemberStatusDeceased},
	map[string]MemberStatus{
		"Dormant": MemberStatusInactive,
	},
)

// ParseMemberStatus normalizes an upstream membership status.
func ParseMemberStatus(s string) (MemberStatus, error) { return memberStatuses.parse(s) }
func (s MemberStatus) String() string { return string(s) }
func (s MemberStatus) MarshalJSON() ([]byte, error) { return memberStatuses.marshal(s) }
func (s *MemberStatus) UnmarshalJSON(data []byte) error { return memberStatuses.unmarshal(data, s) }

// Service is the weekend service a person usually attends.
type Service string

const (
	ServiceFirst   Service = "1st Service"
	ServiceSecond  Service = "2nd Service"
	ServiceThird   Service = "3rd Service"
	ServiceEvening Service = "Evening Service"
)

var services = newEnum("serviceAttending", false, false,
	[]Service{ServiceFirst, ServiceSecond, ServiceThird, ServiceEvening},
	map[string]Service{
		"First Service":  ServiceFirst,
		"Second Service": ServiceSecond,
		"Third Service":  ServiceThird,
		"Night Service":  ServiceEvening,
	},
)

// ParseService normalizes an upstream service name.
func ParseService(s string) (Service, error) { return services.parse(s) }
func (s Service) String() string { return string(s) }
func (s Service) MarshalJSON() ([]byte, error) { return services.marshal(s) }
func (s *Service) UnmarshalJSON(data []byte) error { return services.unmarshal(data, s) }

// Language is a person's preferred language.
type Language string

const (
	LanguageEnglish   Language = "English"
	LanguageMandarin  Language = "Mandarin"
	LanguageCantonese Language = "Cantonese"
	LanguageMalay     Language = "Malay"
	LanguageTamil     Language = "Tamil"
	LanguageSpanish   Language = "Spanish"
)

var languages = newEnum("preferredLanguage", true, false,
	[]Language{LanguageEnglish, LanguageMandarin, LanguageCantonese, LanguageMalay, LanguageTamil, LanguageSpanish},
	map[string]Language{
		"Chinese":         LanguageMandarin,
		"Bahasa Malaysia": LanguageMalay,
	},
)

// ParseLanguage normalizes an upstream language name.
func ParseLanguage(s string) (Language, error) { return languages.parse(s) }
func (l Language) String() string { return string(l) }
func (l Language) MarshalJSON() ([]byte, error) { return languages.marshal(l) }
func (l *Language) UnmarshalJSON(data []byte) error { return languages.unmarshal(data, l) }

// Gender of a member or seeker.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

var genders = newEnum("gender", true, false,
	[]Gender{GenderMale, GenderFemale},
	map[string]Gender{
		"M": GenderMale,
		"F": GenderFemale,
	},
)

// ParseGender normalizes an upstream gender value.
func ParseGender(s string) (Gender, error) { return genders.parse(s) }
func (g Gender) String() string { return string(g) }
func (g Gender) MarshalJSON() ([]byte, error) { return genders.marshal(g) }
func (g *Gender) UnmarshalJSON(data []byte) error { return genders.unmarshal(data, g) }

// MaritalStatus of a member.
type MaritalStatus string

const (
	MaritalStatusSingle    MaritalStatus = "Single"
	MaritalStatusMarried   MaritalStatus = "Married"
	MaritalStatusDivorced  MaritalStatus = "Divorced"
	MaritalStatusWidowed   MaritalStatus = "Widowed"
	MaritalStatusSeparated MaritalStatus = "Separated"
)

var maritalStatuses = newEnum("maritalStatus", true, false,
	[]MaritalStatus{MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed, MaritalStatusSeparated},
	nil,
)

// ParseMaritalStatus normalizes an upstream marital status.
func ParseMaritalStatus(s string) (MaritalStatus, error) { return maritalStatuses.parse(s) }
func (m MaritalStatus) String() string { return string(m) }
func (m MaritalStatus) MarshalJSON() ([]byte, error) { return maritalStatuses.marshal(m) }
func (m *MaritalStatus) UnmarshalJSON(data []byte) error { return maritalStatuses.unmarshal(data, m) }

// The enums below are lenient: anything unrecognized, including the empty
// string, becomes the Unknown value.

// SubscriptionStatus is the newsletter subscription state.
type SubscriptionStatus string

const (
	SubscriptionStatusUnknown      SubscriptionStatus = ""
	SubscriptionStatusSubscribed   SubscriptionStatus = "Subscribed"
	SubscriptionStatusUnsubscribed SubscriptionStatus = "Unsubscribed"
	SubscriptionStatusPending      SubscriptionStatus = "Pending"
)

var subscriptionStatuses = newEnum("subscriptionStatus", true, true,
	[]SubscriptionStatus{SubscriptionStatusSubscribed, SubscriptionStatusUnsubscribed, SubscriptionStatusPending},
	map[string]SubscriptionStatus{
		"Opted Out": SubscriptionStatusUnsubscribed,
	},
)

// ParseSubscriptionStatus normalizes an upstream subscription state.
// It never fails.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	v, _ := subscriptionStatuses.parse(s)
	return v
}
func (s SubscriptionStatus) String() string { return string(s) }
func (s SubscriptionStatus) MarshalJSON() ([]byte, error) { return subscriptionStatuses.marshal(s) }
func (s *SubscriptionStatus) UnmarshalJSON(data []byte) error {
	return subscriptionStatuses.unmarshal(data, s)
}

// MinistryInvolvement is the ministry a member serves in.
type MinistryInvolvement string

const (
	MinistryInvolvementUnknown     MinistryInvolvement = ""
	MinistryInvolvementWorship     MinistryInvolvement = "Worship"
	MinistryInvolvementUshering    MinistryInvolvement = "Ushering"
	MinistryInvolvementChildren    MinistryInvolvement = "Children"
	MinistryInvolvementYouth       MinistryInvolvement = "Youth"
	MinistryInvolvementMedia       MinistryInvolvement = "Media"
	MinistryInvolvementPrayer      MinistryInvolvement = "Prayer"
	MinistryInvolvementHospitality MinistryInvolvement = "Hospitality"
)

var ministryInvolvements = newEnum("ministryInvolvement", true, true,
	[]MinistryInvolvement{
		MinistryInvolvementWorship, MinistryInvolvementUshering, MinistryInvolvementChildren,
		MinistryInvolvementYouth, MinistryInvolvementMedia, MinistryInvolvementPrayer,
		MinistryInvolvementHospitality,
	},
	map[string]MinistryInvolvement{
		"Kids":  MinistryInvolvementChildren,
		"Usher": MinistryInvolvementUshering,
	},
)

// ParseMinistryInvolvement normalizes an upstream ministry name.
func ParseMinistryInvolvement(s string) MinistryInvolvement {
	v, _ := ministryInvolvements.parse(s)
	return v
}
func (m MinistryInvolvement) String() string { return string(m) }
func (m MinistryInvolvement) MarshalJSON() ([]byte, error) { return ministryInvolvements.marshal(m) }
func (m *MinistryInvolvement) UnmarshalJSON(data []byte) error {
	return ministryInvolvements.unmarshal(data, m)
}

// MissionaryType describes a member's missionary commitment.
type MissionaryType string

const (
	MissionaryTypeUnknown   MissionaryType = ""
	MissionaryTypeFullTime  MissionaryType = "Full-time"
	MissionaryTypePartTime  MissionaryType = "Part-time"
	MissionaryTypeShortTerm MissionaryType = "Short-term"
)

var missionaryTypes = newEnum("missionaryType", false, true,
	[]MissionaryType{MissionaryTypeFullTime, MissionaryTypePartTime, MissionaryTypeShortTerm},
	map[string]MissionaryType{
		"Full time":  MissionaryTypeFullTime,
		"Fulltime":   MissionaryTypeFullTime,
		"Part time":  MissionaryTypePartTime,
		"Short term": MissionaryTypeShortTerm,
	},
)

// ParseMissionaryType normalizes an upstream missionary type.
func ParseMissionaryType(s string) MissionaryType {
	v, _ := missionaryTypes.parse(s)
	return v
}
func (m MissionaryType) String() string { return string(m) }
func (m MissionaryType) MarshalJSON() ([]byte, error) { return missionaryTypes.marshal(m) }
func (m *MissionaryType) UnmarshalJSON(data []byte) error { return missionaryTypes.unmarshal(data, m) }

// Department is the church department a staff member or volunteer works in.
type Department string

const (
	DepartmentUnknown        Department = ""
	DepartmentAdministration Department = "Administration"
	DepartmentFinance        Department = "Finance"
	DepartmentPastoralCare   Department = "Pastoral Care"
	DepartmentWorship        Department = "Worship"
	DepartmentOutreach       Department = "Outreach"
	DepartmentMedia          Department = "Media"
	DepartmentChildren       Department = "Children"
)

var departments = newEnum("department", true, true,
	[]Department{
		DepartmentAdministration, DepartmentFinance, DepartmentPastoralCare, DepartmentWorship,
		DepartmentOutreach, DepartmentMedia, DepartmentChildren,
	},
	map[string]Department{
		"Admin":    DepartmentAdministration,
		"Pastoral": DepartmentPastoralCare,
	},
)

// ParseDepartment normalizes an upstream department name.
func ParseDepartment(s string) Department {
	v, _ := departments.parse(s)
	return v
}
func (d Department) String() string { return string(d) }
func (d Department) MarshalJSON() ([]byte, error) { return departments.marshal(d) }
func (d *Department) UnmarshalJSON(data []byte) error { return departments.unmarshal(data, d) }

// BibleCourse is the discipleship course a member is enrolled in.
type BibleCourse string

const (
	BibleCourseUnknown              BibleCourse = ""
	BibleCourseFoundations          BibleCourse = "Foundations"
	BibleCourseGrowingInChrist      BibleCourse = "Growing in Christ"
	BibleCourseDiscipleshipTraining BibleCourse = "Discipleship Training"
	BibleCourseLeadershipTraining   BibleCourse = "Leadership Training"
)

var bibleCourses = newEnum("bibleCourse", false, true,
	[]BibleCourse{
		BibleCourseFoundations, BibleCourseGrowingInChrist,
		BibleCourseDiscipleshipTraining, BibleCourseLeadershipTraining,
	},
	map[string]BibleCourse{
		"Foundation Class": BibleCourseFoundations,
		"DT":               BibleCourseDiscipleshipTraining,
	},
)

// ParseBibleCourse normalizes an upstream course name.
func ParseBibleCourse(s string) BibleCourse {
	v, _ := bibleCourses.parse(s)
	return v
}
func (b BibleCourse) String() string { return string(b) }
func (b BibleCourse) MarshalJSON() ([]byte, error) { return bibleCourses.marshal(b) }
func (b *BibleCourse) UnmarshalJSON(data []byte) error { return bibleCourses.unmarshal(data, b) }
