//go:build integration
// +build integration

package integration

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

const (
	mockAPIPrefix   = "/services/apexrest/crm/v1/"
	mockAccessToken = "00Dmock!integration-token"
	mockDailyLimit  = 15000
)

// mockCRMServer is the global mock CRM instance
var mockCRMServer *MockCRMServer

// GetMockCRMServerURL returns the instance URL of the mock CRM
func GetMockCRMServerURL() string {
	if mockCRMServer == nil {
		return ""
	}
	return mockCRMServer.URL
}

// InitMockServer initializes the global mock CRM
func InitMockServer() {
	if mockCRMServer == nil {
		mockCRMServer = NewMockCRMServer()
	}
}

// CloseMockServer closes the global mock CRM
func CloseMockServer() {
	if mockCRMServer != nil {
		mockCRMServer.Close()
		mockCRMServer = nil
	}
}

// generateCursor generates a random opaque cursor token
func generateCursor() string {
	b := make([]byte, 12)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// cursorState is what a cursor token resolves to. A cursor is only valid
// for the page size it was issued under.
type cursorState struct {
	offset   int
	pageSize int
}

// MockCRMServer serves a fixed member and seeker dataset in the CRM's
// envelope shapes with cursor pagination.
type MockCRMServer struct {
	server *httptest.Server
	URL    string

	members []map[string]any
	seekers []map[string]any

	mu       sync.Mutex
	cursors  map[string]cursorState
	used     int
	requests int
}

// NewMockCRMServer creates and starts a new mock CRM
func NewMockCRMServer() *MockCRMServer {
	mock := &MockCRMServer{
		members: mockMembers(),
		seekers: mockSeekers(),
		cursors: make(map[string]cursorState),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+mockAPIPrefix+"members", mock.authorized(mock.handleListMembers))
	mux.HandleFunc("GET "+mockAPIPrefix+"members/{id}", mock.authorized(mock.handleGetMember))
	mux.HandleFunc("GET "+mockAPIPrefix+"seekers", mock.authorized(mock.handleListSeekers))
	mux.HandleFunc("GET "+mockAPIPrefix+"seekers/{id}", mock.authorized(mock.handleGetSeeker))
	mux.HandleFunc("/health", mock.handleHealth)

	mock.server = httptest.NewServer(mux)
	mock.URL = mock.server.URL

	return mock
}

// Close shuts down the mock CRM
func (m *MockCRMServer) Close() {
	m.server.Close()
}

// Requests returns the number of authorized API requests served so far
func (m *MockCRMServer) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// authorized checks the bearer token and reports API usage on every answer
func (m *MockCRMServer) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+mockAccessToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"message": "Session expired or invalid",
				"errors":  []map[string]string{{"code": "INVALID_SESSION_ID"}},
			})
			return
		}

		m.mu.Lock()
		m.requests++
		m.used++
		used := m.used
		m.mu.Unlock()

		w.Header().Set("Sforce-Limit-Info", fmt.Sprintf("api-usage=%d/%d", used, mockDailyLimit))
		next(w, r)
	}
}

func (m *MockCRMServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListMembers serves the paginated "data" envelope
func (m *MockCRMServer) handleListMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filtered := filterRecords(m.members, func(rec map[string]any) bool {
		if campus := q.Get("campus"); campus != "" && rec["campus"] != campus {
			return false
		}
		if status := q.Get("status"); status != "" && rec["status"] != status {
			return false
		}
		if search := strings.ToLower(q.Get("q")); search != "" {
			name := strings.ToLower(fmt.Sprint(rec["firstName"], " ", rec["lastName"]))
			return strings.Contains(name, search)
		}
		return true
	})

	page, next, state, ok := m.slice(w, filtered, q.Get("pageSize"), q.Get("cursor"))
	if !ok {
		return
	}

	body := map[string]any{
		"success":     true,
		"data":        page,
		"pageSize":    state.pageSize,
		"totalCount":  len(filtered),
		"currentPage": state.offset/state.pageSize + 1,
		"nextCursor":  nil,
	}
	if next != "" {
		body["nextCursor"] = next
	}
	writeJSON(w, http.StatusOK, body)
}

// handleListSeekers serves the legacy "seeker" envelope with the cursor in
// a header
func (m *MockCRMServer) handleListSeekers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filtered := filterRecords(m.seekers, func(rec map[string]any) bool {
		if status := q.Get("leadStatus"); status != "" && rec["leadStatus"] != status {
			return false
		}
		return true
	})

	page, next, _, ok := m.slice(w, filtered, q.Get("pageSize"), q.Get("cursor"))
	if !ok {
		return
	}

	if next != "" {
		w.Header().Set("X-Next-Cursor", next)
	}
	writeJSON(w, http.StatusOK, map[string]any{"seeker": page})
}

func (m *MockCRMServer) handleGetMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, rec := range m.members {
		if rec["memberId"] == id {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{rec}})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
}

func (m *MockCRMServer) handleGetSeeker(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, rec := range m.seekers {
		if rec["id"] == id {
			writeJSON(w, http.StatusOK, rec)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"seeker": nil})
}

// slice cuts one page out of records, issuing a cursor for the next page.
// It writes an error response and returns ok=false on bad input.
func (m *MockCRMServer) slice(w http.ResponseWriter, records []map[string]any, rawSize, cursor string) (page []map[string]any, next string, state cursorState, ok bool) {
	pageSize := 20
	if rawSize != "" {
		n, err := strconv.Atoi(rawSize)
		if err != nil || n <= 0 || n > 200 {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "pageSize must be between 1 and 200"})
			return nil, "", state, false
		}
		pageSize = n
	}

	state = cursorState{pageSize: pageSize}
	if cursor != "" {
		m.mu.Lock()
		s, found := m.cursors[cursor]
		m.mu.Unlock()
		if !found || s.pageSize != pageSize {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid query locator",
				"errors":  []map[string]string{{"code": "INVALID_QUERY_LOCATOR", "field": "cursor"}},
			})
			return nil, "", state, false
		}
		state = s
	}

	end := min(state.offset+pageSize, len(records))
	if state.offset < end {
		page = records[state.offset:end]
	} else {
		page = []map[string]any{}
	}

	if end < len(records) {
		next = generateCursor()
		m.mu.Lock()
		m.cursors[next] = cursorState{offset: end, pageSize: pageSize}
		m.mu.Unlock()
	}

	return page, next, state, true
}

func filterRecords(records []map[string]any, keep func(map[string]any) bool) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

var (
	mockFirstNames = []string{"Grace", "Ben", "Mia", "Noah", "Ava", "Liam", "Zoe", "Ethan"}
	mockLastNames  = []string{"Lee", "Tan", "Ng", "Lim", "Ong", "Goh", "Chua"}
	mockCampuses   = []string{"Downtown", "Northside", "Riverside - East", "Riverside - West"}
)

// mockMembers builds the fixed member dataset. Every third member uses the
// legacy marital keys and every fourth has employment details.
func mockMembers() []map[string]any {
	members := make([]map[string]any, 0, 23)
	for i := range 23 {
		rec := map[string]any{
			"id":               fmt.Sprintf("a0M%05d", i+1),
			"memberId":         fmt.Sprintf("TKT%06d", 100001+i),
			"firstName":        mockFirstNames[i%len(mockFirstNames)],
			"lastName":         mockLastNames[i%len(mockLastNames)],
			"campus":           mockCampuses[i%len(mockCampuses)],
			"status":           "Active",
			"memberType":       "Member",
			"email":            fmt.Sprintf("member%02d@example.org", i+1),
			"mobilePhone":      fmt.Sprintf("+65 9000 %04d", i+1),
			"dateOfBirth":      fmt.Sprintf("19%02d-%02d-%02d", 60+i, i%12+1, i%28+1),
			"lastModifiedDate": "2024-03-01T08:30:00.000+0000",
		}
		if i%3 == 0 {
			rec["maritalSpouseName"] = "Partner " + rec["lastName"].(string)
			rec["anniversaryDate"] = fmt.Sprintf("20%02d-06-%02d", i%20, i%28+1)
			rec["martialStatus"] = "Married"
		}
		if i%4 == 0 {
			rec["occupation"] = "Engineer"
			rec["employer"] = "Harbour Works"
		}
		if i == 22 {
			rec["status"] = "Inactive"
		}
		members = append(members, rec)
	}
	return members
}

func mockSeekers() []map[string]any {
	statuses := []string{"New", "1st Follow up", "2nd Follow up", "Connected", "Converted"}
	seekers := make([]map[string]any, 0, 9)
	for i := range 9 {
		rec := map[string]any{
			"id":               fmt.Sprintf("00Q%05d", i+1),
			"firstName":        mockFirstNames[(i+3)%len(mockFirstNames)],
			"email":            fmt.Sprintf("seeker%02d@example.org", i+1),
			"leadStatus":       statuses[i%len(statuses)],
			"entryType":        "Walk In",
			"dateOfFirstVisit": fmt.Sprintf("2024-02-%02d", i+1),
		}
		if rec["leadStatus"] == "Converted" {
			rec["tktId"] = fmt.Sprintf("tkt%06d", 200001+i)
		}
		seekers = append(seekers, rec)
	}
	return seekers
}
