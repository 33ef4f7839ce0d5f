package membercrm

// LeadStatus tracks follow-up progress for a seeker. Unknown values resolve
// to LeadStatusUnknown.
type LeadStatus string

const (
	LeadStatusUnknown        LeadStatus = ""
	LeadStatusNew            LeadStatus = "New"
	LeadStatusFirstFollowUp  LeadStatus = "1st Follow up"
	LeadStatusSecondFollowUp LeadStatus = "2nd Follow up"
	LeadStatusThirdFollowUp  LeadStatus = "3rd Follow up"
	LeadStatusConnected      LeadStatus = "Connected"
	LeadStatusConverted      LeadStatus = "Converted"
	LeadStatusNotInterested  LeadStatus = "Not Interested"
)

var leadStatuses = newEnum("leadStatus", false, true,
	[]LeadStatus{
		LeadStatusNew, LeadStatusFirstFollowUp, LeadStatusSecondFollowUp, LeadStatusThirdFollowUp,
		LeadStatusConnected, LeadStatusConverted, LeadStatusNotInterested,
	},
	map[string]LeadStatus{
		"1st Follow Up":    LeadStatusFirstFollowUp,
		"First Follow up":  LeadStatusFirstFollowUp,
		"2nd Follow Up":    LeadStatusSecondFollowUp,
		"Second Follow up": LeadStatusSecondFollowUp,
		"3rd Follow Up":    LeadStatusThirdFollowUp,
		"Third Follow up":  LeadStatusThirdFollowUp,
		"Not interested":   LeadStatusNotInterested,
	},
)

// ParseLeadStatus normalizes an upstream lead status. It never fails.
func ParseLeadStatus(s string) LeadStatus {
	v, _ := leadStatuses.parse(s)
	return v
}

func (l LeadStatus) String() string { return string(l) }

func (l LeadStatus) MarshalJSON() ([]byte, error) { return leadStatuses.marshal(l) }

func (l *LeadStatus) UnmarshalJSON(data []byte) error { return leadStatuses.unmarshal(data, l) }

// EntryType records how a seeker first came into contact with the church.
type EntryType string

const (
	EntryTypeUnknown    EntryType = ""
	EntryTypeWalkIn     EntryType = "Walk-in"
	EntryTypeOnlineForm EntryType = "Online Form"
	EntryTypeEvent      EntryType = "Event"
	EntryTypeReferral   EntryType = "Referral"
	EntryTypeOutreach   EntryType = "Outreach"
)

var entryTypes = newEnum("entryType", true, true,
	[]EntryType{EntryTypeWalkIn, EntryTypeOnlineForm, EntryTypeEvent, EntryTypeReferral, EntryTypeOutreach},
	map[string]EntryType{
		"Walk In": EntryTypeWalkIn,
		"Walkin":  EntryTypeWalkIn,
		"Online":  EntryTypeOnlineForm,
	},
)

// ParseEntryType normalizes an upstream entry type. It never fails.
func ParseEntryType(s string) EntryType {
	v, _ := entryTypes.parse(s)
	return v
}

func (e EntryType) String() string { return string(e) }

func (e EntryType) MarshalJSON() ([]byte, error) { return entryTypes.marshal(e) }

func (e *EntryType) UnmarshalJSON(data []byte) error { return entryTypes.unmarshal(data, e) }
