package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Harvest v2 REST endpoint.
	DefaultBaseURL = "https://api.harvestapp.com/v2/"
	// DefaultUserAgent identifies this connector to Harvest.
	DefaultUserAgent = "harvest-sync"
	// DefaultProbeTimeout bounds cheap single-object and capability calls.
	DefaultProbeTimeout = 10 * time.Second
	// DefaultListTimeout bounds bulk listing calls.
	DefaultListTimeout = 30 * time.Second
	// DateLayout is the format of the from/to query parameters and spent_date.
	DateLayout = "2006-01-02"
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	AccountID    string
	AccessToken  string
	UserAgent    string
	ProbeTimeout time.Duration
	ListTimeout  time.Duration
	// Transport is the round tripper under the bearer-token transport.
	// Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is an authenticated Harvest API client. Every request carries the
// Harvest-Account-ID header and a bearer token.
type Client struct {
	baseURL      *url.URL
	accountID    string
	userAgent    string
	probeTimeout time.Duration
	listTimeout  time.Duration
	httpClient   *http.Client
}

// NewClient creates a Client. The personal access token is attached by an
// oauth2 static token source.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.AccountID == "" || opts.AccessToken == "" {
		return nil, ErrMissingCredential
	}

	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", raw, err)
	}

	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}
	if opts.ListTimeout <= 0 {
		opts.ListTimeout = DefaultListTimeout
	}

	if opts.Transport != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: opts.Transport})
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken, TokenType: "Bearer"})

	return &Client{
		baseURL:      base,
		accountID:    opts.AccountID,
		userAgent:    opts.UserAgent,
		probeTimeout: opts.ProbeTimeout,
		listTimeout:  opts.ListTimeout,
		httpClient:   oauth2.NewClient(ctx, ts),
	}, nil
}

// ListOptions selects a page of a listing endpoint.
type ListOptions struct {
	ActiveOnly bool
	Page       int
	PerPage    int
	// Probe marks a capability check: it uses the short timeout.
	Probe bool
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.ActiveOnly {
		q.Set("is_active", "true")
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return q
}

// TimeEntryQuery filters GET /time_entries. Empty fields are omitted.
type TimeEntryQuery struct {
	UserID  ID
	From    string // YYYY-MM-DD
	To      string // YYYY-MM-DD
	Page    int
	PerPage int
	Probe   bool
}

func (q TimeEntryQuery) values() url.Values {
	v := ListOptions{Page: q.Page, PerPage: q.PerPage}.values()
	if q.UserID != "" {
		v.Set("user_id", q.UserID.String())
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	return v
}

// Company fetches the account summary. Used as a connectivity check.
func (c *Client) Company(ctx context.Context) (*Company, error) {
	var out Company
	if err := c.get(ctx, "company", nil, c.probeTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the user that owns the access token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "users/me", nil, c.probeTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (*UsersPage, error) {
	var out UsersPage
	if err := c.get(ctx, "users", opts.values(), c.timeout(opts.Probe), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects fetches one page of projects.
func (c *Client) ListProjects(ctx context.Context, opts ListOptions) (*ProjectsPage, error) {
	var out ProjectsPage
	if err := c.get(ctx, "projects", opts.values(), c.timeout(opts.Probe), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id ID) (*Project, error) {
	var out Project
	if err := c.get(ctx, "projects/"+url.PathEscape(id.String()), nil, c.probeTimeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTimeEntries fetches one page of time entries.
func (c *Client) ListTimeEntries(ctx context.Context, q TimeEntryQuery) (*TimeEntriesPage, error) {
	var out TimeEntriesPage
	if err := c.get(ctx, "time_entries", q.values(), c.timeout(q.Probe), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) timeout(probe bool) time.Duration {
	if probe {
		return c.probeTimeout
	}
	return c.listTimeout
}

// get issues a GET against path and decodes a 200 response into out. path is
// relative to the base URL and already escaped, so ids may carry reserved
// characters, including '/'.
func (c *Client) get(ctx context.Context, path string, query url.Values, timeout time.Duration, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parsing request path %q: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	endpoint := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Harvest-Account-ID", c.accountID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: http.MethodGet, URL: endpoint, Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return &TransportError{Op: http.MethodGet, URL: endpoint, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, URL: endpoint, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
