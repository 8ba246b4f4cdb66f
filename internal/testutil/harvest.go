package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/harvest"
	"harvest-sync/internal/hsync"
)

// FakeRequest is one request seen by a FakeHarvest server.
type FakeRequest struct {
	Path  string
	Query map[string]string
}

// FakeHarvest is an in-process Harvest v2 API. Listing endpoints paginate
// their fixtures by the per_page query parameter.
type FakeHarvest struct {
	Server *httptest.Server

	mu          sync.Mutex
	company     harvest.Company
	me          *harvest.User
	users       []harvest.User
	projects    []harvest.Project
	timeEntries []harvest.TimeEntry
	failures    []failure
	requests    []FakeRequest
}

type failure struct {
	path   string
	page   int
	status int
}

// NewFakeHarvest starts a fake Harvest server that is closed when the test completes.
func NewFakeHarvest(t *testing.T) *FakeHarvest {
	t.Helper()
	f := &FakeHarvest{company: harvest.Company{Name: "Acme", IsActive: true}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the API base URL, suitable for a sync configuration.
func (f *FakeHarvest) URL() string {
	return f.Server.URL + "/v2/"
}

// SetMe sets the user returned by /users/me.
func (f *FakeHarvest) SetMe(u harvest.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.me = &u
}

func (f *FakeHarvest) AddUsers(users ...harvest.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, users...)
}

func (f *FakeHarvest) SetUsers(users ...harvest.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = users
}

func (f *FakeHarvest) AddProjects(projects ...harvest.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, projects...)
}

func (f *FakeHarvest) SetProjects(projects ...harvest.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = projects
}

func (f *FakeHarvest) AddTimeEntries(entries ...harvest.TimeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeEntries = append(f.timeEntries, entries...)
}

func (f *FakeHarvest) SetTimeEntries(entries ...harvest.TimeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeEntries = entries
}

// Fail makes requests to path (relative to /v2/, e.g. "users") answer with status.
// page 0 matches every page.
func (f *FakeHarvest) Fail(path string, page int, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failure{path: path, page: page, status: status})
}

// ClearFailures removes every failure set by Fail.
func (f *FakeHarvest) ClearFailures() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = nil
}

// Requests returns the requests seen so far.
func (f *FakeHarvest) Requests() []FakeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeRequest(nil), f.requests...)
}

// RequestsTo returns the requests seen for path (relative to /v2/).
func (f *FakeHarvest) RequestsTo(path string) []FakeRequest {
	var out []FakeRequest
	for _, r := range f.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// ResetRequests forgets recorded requests.
func (f *FakeHarvest) ResetRequests() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

// Factory returns a RemoteFactory that talks to this server with a real harvest.Client.
func (f *FakeHarvest) Factory() hsync.RemoteFactory {
	return func(ctx context.Context, cfg *sqlc.SyncConfig) (hsync.RemoteAPI, error) {
		c, err := harvest.NewClient(ctx, harvest.Options{
			BaseURL:      f.URL(),
			AccountID:    cfg.AccountID,
			AccessToken:  cfg.AccessToken,
			ProbeTimeout: 5 * time.Second,
			ListTimeout:  5 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func (f *FakeHarvest) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v2/")
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = 100
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	query := make(map[string]string, len(q))
	for k := range q {
		query[k] = q.Get(k)
	}
	f.requests = append(f.requests, FakeRequest{Path: path, Query: query})

	if r.Header.Get("Authorization") == "" || r.Header.Get("Harvest-Account-ID") == "" {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}
	for _, fl := range f.failures {
		if fl.path == path && (fl.page == 0 || fl.page == page) {
			http.Error(w, `{"error":"forbidden"}`, fl.status)
			return
		}
	}

	switch {
	case path == "company":
		writeJSON(w, f.company)
	case path == "users/me":
		if f.me == nil {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, f.me)
	case path == "users":
		var users []harvest.User
		for _, u := range f.users {
			if q.Get("is_active") == "true" && !u.IsActive {
				continue
			}
			users = append(users, u)
		}
		items, total := paged(users, page, perPage)
		writeJSON(w, harvest.UsersPage{Users: items, Page: page, TotalPages: total})
	case path == "projects":
		var projects []harvest.Project
		for _, p := range f.projects {
			if q.Get("is_active") == "true" && !p.IsActive {
				continue
			}
			projects = append(projects, p)
		}
		items, total := paged(projects, page, perPage)
		writeJSON(w, harvest.ProjectsPage{Projects: items, Page: page, TotalPages: total})
	case strings.HasPrefix(path, "projects/"):
		id := strings.TrimPrefix(path, "projects/")
		for _, p := range f.projects {
			if p.ID.String() == id {
				writeJSON(w, p)
				return
			}
		}
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	case path == "time_entries":
		var entries []harvest.TimeEntry
		for _, e := range f.timeEntries {
			if uid := q.Get("user_id"); uid != "" && (e.User == nil || e.User.ID.String() != uid) {
				continue
			}
			if from := q.Get("from"); from != "" && e.SpentDate < from {
				continue
			}
			if to := q.Get("to"); to != "" && e.SpentDate > to {
				continue
			}
			entries = append(entries, e)
		}
		items, total := paged(entries, page, perPage)
		writeJSON(w, harvest.TimeEntriesPage{TimeEntries: items, Page: page, TotalPages: total})
	default:
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	}
}

func paged[T any](items []T, page, perPage int) ([]T, int) {
	total := (len(items) + perPage - 1) / perPage
	if total == 0 {
		total = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, total
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Ptr returns a pointer to v. Handy for the optional fields of harvest fixtures.
func Ptr[T any](v T) *T {
	return &v
}
