package harvest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an external identifier assigned by Harvest. The API sends integers,
// older exports and some embedded objects send strings; both decode to the
// same string form.
type ID string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Company is the account summary returned by GET /company.
type Company struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// User is a complete user record from /users or /users/me.
type User struct {
	ID        ID      `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	IsActive  bool    `json:"is_active"`
}

// Project is a complete project record from /projects or /projects/{id}.
type Project struct {
	ID       ID       `json:"id"`
	Name     *string  `json:"name"`
	Code     *string  `json:"code"`
	IsActive bool     `json:"is_active"`
	Budget   *float64 `json:"budget"`
}

// UserRef is the partial user object embedded in a time entry.
type UserRef struct {
	ID   ID      `json:"id"`
	Name *string `json:"name"`
}

// ProjectRef is the partial project object embedded in a time entry.
type ProjectRef struct {
	ID   ID      `json:"id"`
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// TimeEntry is a time entry record from /time_entries.
type TimeEntry struct {
	ID        ID          `json:"id"`
	SpentDate string      `json:"spent_date"`
	Hours     *float64    `json:"hours"`
	Notes     *string     `json:"notes"`
	IsLocked  bool        `json:"is_locked"`
	IsRunning bool        `json:"is_running"`
	User      *UserRef    `json:"user"`
	Project   *ProjectRef `json:"project"`
}

// UsersPage is one page of GET /users.
type UsersPage struct {
	Users      []User `json:"users"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

// ProjectsPage is one page of GET /projects.
type ProjectsPage struct {
	Projects   []Project `json:"projects"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// TimeEntriesPage is one page of GET /time_entries.
type TimeEntriesPage struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	Page        int         `json:"page"`
	TotalPages  int         `json:"total_pages"`
}
