package membercrm

import (
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Client manages communication with the member CRM API.
type Client struct {
	client *http.Client // HTTP client used to communicate with the API

	// Address is the base URL for API requests. It must end in a slash.
	Address *url.URL

	// User agent used when communicating with the CRM.
	UserAgent string

	// Bearer token for API authentication.
	BearerToken string

	// DefaultPageSize is used by List methods when the options leave the
	// page size unset.
	DefaultPageSize int

	logger *slog.Logger

	common service // Reuse a single struct instead of allocating one for each service

	// Services used for talking to different parts of the CRM API
	Members *MembersService
	Seekers *SeekersService

	// Most recent rate limit snapshot
	rateMu sync.Mutex
	rate   Rate
}

// service provides a general service interface for the API.
type service struct {
	client *Client
}

// MembersService handles communication with the member related
// methods of the CRM API.
type MembersService service

// SeekersService handles communication with the seeker related
// methods of the CRM API.
type SeekersService service

// Response wraps the standard http.Response and provides convenient access to
// pagination and rate limit information.
type Response struct {
	*http.Response

	// Pagination cursors extracted from the response
	NextCursor     string
	PreviousCursor string

	// Pagination is the envelope's pagination metadata, if any.
	Pagination *PageInfo

	// Rate limiting information
	Rate Rate
}

// Rate represents the API usage allowance reported by the CRM.
type Rate struct {
	// The maximum number of requests that can be made in the current window.
	Limit int

	// The number of requests remaining in the current window.
	Remaining int

	// The time at which the current rate limit window resets.
	Reset time.Time
}

// ListOptions specifies the optional parameters to various List methods that
// support pagination.
type ListOptions struct {
	// Page is the 1-based page to return. The CRM only supports cursors, so
	// reaching page N costs N requests. Ignored when Cursor is set.
	Page int `url:"-"`

	// PageSize is the number of records per page. It must stay the same
	// when following cursors.
	PageSize int `url:"pageSize,omitempty"`

	// Cursor is an opaque string used for pagination.
	// To get the next page of results, pass the NextCursor from the
	// previous response.
	Cursor string `url:"cursor,omitempty"`
}

// MemberListOptions specifies the optional parameters to the
// MembersService.List method.
type MemberListOptions struct {
	ListOptions

	// Campus filters members by home campus
	Campus Campus `url:"campus,omitempty"`

	// Status filters members by membership status
	Status MemberStatus `url:"status,omitempty"`

	// Search matches against names, member numbers and email addresses
	Search string `url:"q,omitempty"`

	// ModifiedSince returns only members changed on or after this date
	ModifiedSince *time.Time `url:"modifiedSince,omitempty" layout:"2006-01-02"`

	// Expand lists the expansion groups to populate
	Expand ExpansionRequest `url:"expand,comma,omitempty"`
}

// SeekerListOptions specifies the optional parameters to the
// SeekersService.List method.
type SeekerListOptions struct {
	ListOptions

	// Campus filters seekers by campus
	Campus Campus `url:"campus,omitempty"`

	// LeadStatus filters seekers by follow-up status
	LeadStatus LeadStatus `url:"leadStatus,omitempty"`

	// EntryType filters seekers by how they first made contact
	EntryType EntryType `url:"entryType,omitempty"`

	// Search matches against names and email addresses
	Search string `url:"q,omitempty"`

	// Expand lists the expansion groups to populate
	Expand ExpansionRequest `url:"expand,comma,omitempty"`
}

// GetOptions specifies the optional parameters to Get methods.
type GetOptions struct {
	// Expand lists the expansion groups to populate
	Expand ExpansionRequest `url:"expand,comma,omitempty"`
}

// FetchRequest describes a single raw call to the CRM.
type FetchRequest struct {
	// Endpoint is relative to the client's Address.
	Endpoint string

	// Method defaults to GET.
	Method string

	Query url.Values
}
