package membercrm

import (
	"fmt"
	"slices"
	"strings"
)

// ExpansionGroup names an optional nested part of an entity. The same
// values are sent upstream in the expand query parameter.
type ExpansionGroup string

const (
	ExpandContactInformation      ExpansionGroup = "contactInformation"
	ExpandEmploymentInformation   ExpansionGroup = "employmentInformation"
	ExpandMaritalInformation      ExpansionGroup = "maritalInformation"
	ExpandDiscipleshipInformation ExpansionGroup = "discipleshipInformation"
	ExpandMinistryInformation     ExpansionGroup = "ministryInformation"
	ExpandLeadInformation         ExpansionGroup = "leadInformation"
)

var expansionGroups = newEnum("expansionGroup", false, false,
	[]ExpansionGroup{
		ExpandContactInformation, ExpandEmploymentInformation, ExpandMaritalInformation,
		ExpandDiscipleshipInformation, ExpandMinistryInformation, ExpandLeadInformation,
	},
	nil,
)

// ParseExpansionGroup validates a group name.
func ParseExpansionGroup(s string) (ExpansionGroup, error) {
	return expansionGroups.parse(s)
}

func (g ExpansionGroup) String() string { return string(g) }

// ExpansionRequest is the set of groups a caller wants populated. Groups
// that are not requested are cleared from results even when the CRM sends
// them.
type ExpansionRequest []ExpansionGroup

// Expand builds an ExpansionRequest from groups.
func Expand(groups ...ExpansionGroup) ExpansionRequest {
	return ExpansionRequest(groups)
}

// ParseExpansionRequest parses a comma-separated list of group names.
func ParseExpansionRequest(s string) (ExpansionRequest, error) {
	var req ExpansionRequest
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		g, err := ParseExpansionGroup(part)
		if err != nil {
			return nil, fmt.Errorf("parse expansion request: %w", err)
		}
		req = append(req, g)
	}
	return req, nil
}

// AllMemberGroups requests every group a Member can carry.
func AllMemberGroups() ExpansionRequest {
	return Expand(ExpandContactInformation, ExpandEmploymentInformation, ExpandMaritalInformation,
		ExpandDiscipleshipInformation, ExpandMinistryInformation)
}

// AllSeekerGroups requests every group a Seeker can carry.
func AllSeekerGroups() ExpansionRequest {
	return Expand(ExpandContactInformation, ExpandLeadInformation)
}

// Has reports whether g was requested.
func (r ExpansionRequest) Has(g ExpansionGroup) bool {
	return slices.Contains(r, g)
}

// String renders the request as the comma-separated query value.
func (r ExpansionRequest) String() string {
	parts := make([]string, len(r))
	for i, g := range r {
		parts[i] = string(g)
	}
	return strings.Join(parts, ",")
}

// keep returns a copy of g when it was requested and nil otherwise.
func keep[T any](r ExpansionRequest, name ExpansionGroup, g *T) *T {
	if !r.Has(name) {
		return nil
	}
	return clone(g)
}

// Project returns a copy of m in which every group not named in req is
// cleared. m itself is left untouched and core fields are copied as is.
func (m *Member) Project(req ExpansionRequest) *Member {
	if m == nil {
		return nil
	}
	p := *m
	p.ContactInformation = keep(req, ExpandContactInformation, m.ContactInformation)
	p.EmploymentInformation = keep(req, ExpandEmploymentInformation, m.EmploymentInformation)
	p.MaritalInformation = keep(req, ExpandMaritalInformation, m.MaritalInformation)
	p.DiscipleshipInformation = keep(req, ExpandDiscipleshipInformation, m.DiscipleshipInformation)
	p.MinistryInformation = keep(req, ExpandMinistryInformation, m.MinistryInformation)
	return &p
}

// Project returns a copy of s in which every group not named in req is
// cleared.
func (s *Seeker) Project(req ExpansionRequest) *Seeker {
	if s == nil {
		return nil
	}
	p := *s
	p.ContactInformation = keep(req, ExpandContactInformation, s.ContactInformation)
	p.LeadInformation = keep(req, ExpandLeadInformation, s.LeadInformation)
	return &p
}

// PresentGroups lists the groups m carries.
func (m *Member) PresentGroups() ExpansionRequest {
	var req ExpansionRequest
	if m.ContactInformation != nil {
		req = append(req, ExpandContactInformation)
	}
	if m.EmploymentInformation != nil {
		req = append(req, ExpandEmploymentInformation)
	}
	if m.MaritalInformation != nil {
		req = append(req, ExpandMaritalInformation)
	}
	if m.DiscipleshipInformation != nil {
		req = append(req, ExpandDiscipleshipInformation)
	}
	if m.MinistryInformation != nil {
		req = append(req, ExpandMinistryInformation)
	}
	return req
}

// PresentGroups lists the groups s carries.
func (s *Seeker) PresentGroups() ExpansionRequest {
	var req ExpansionRequest
	if s.ContactInformation != nil {
		req = append(req, ExpandContactInformation)
	}
	if s.LeadInformation != nil {
		req = append(req, ExpandLeadInformation)
	}
	return req
}
