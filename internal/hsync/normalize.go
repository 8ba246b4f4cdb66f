package hsync

import (
	"fmt"
	"strings"
	"time"

	"harvest-sync/internal/harvest"
)

// Variant tags how complete a canonical record is.
type Variant int

const (
	// Full records come from the authoritative listing or detail endpoint.
	Full Variant = iota
	// Proxy records are built from the partial objects embedded in a time entry.
	Proxy
)

func (v Variant) String() string {
	if v == Proxy {
		return "proxy"
	}
	return "full"
}

// UserRecord is the canonical form of a remote user.
type UserRecord struct {
	ExternalID string
	Name       string
	Email      string // empty when the remote omits it
	Active     bool
	Variant    Variant
}

// ProjectRecord is the canonical form of a remote project.
type ProjectRecord struct {
	ExternalID string
	Name       string
	Code       string
	Active     bool
	Budget     *float64
	Variant    Variant
}

// Synthetic reports whether Name is the placeholder derived from the external id.
func (p ProjectRecord) Synthetic() bool {
	return IsSyntheticProjectName(p.Name, p.ExternalID)
}

// TimeEntryRecord is the canonical form of a remote time entry.
// User is always a proxy; Project is a proxy or nil when the remote sent none.
type TimeEntryRecord struct {
	ExternalID string
	SpentDate  string
	Hours      float64
	Notes      *string
	Locked     bool
	Running    bool
	User       UserRecord
	Project    *ProjectRecord
}

// SyntheticProjectName is the placeholder used when a project arrives without a name.
func SyntheticProjectName(externalID string) string {
	return "Project " + externalID
}

// IsSyntheticProjectName reports whether name is the placeholder for externalID.
func IsSyntheticProjectName(name, externalID string) bool {
	return name == SyntheticProjectName(externalID)
}

// SyntheticUserName is the placeholder used when a user arrives without a name.
func SyntheticUserName(externalID string) string {
	return "User " + externalID
}

// NormalizeUser converts a complete remote user.
func NormalizeUser(u harvest.User) (UserRecord, error) {
	if u.ID == "" {
		return UserRecord{}, &DataIntegrityError{Kind: "user", Reason: "missing external id"}
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		name = SyntheticUserName(u.ID.String())
	}
	rec := UserRecord{
		ExternalID: u.ID.String(),
		Name:       name,
		Active:     u.IsActive,
		Variant:    Full,
	}
	if u.Email != nil {
		rec.Email = strings.TrimSpace(*u.Email)
	}
	return rec, nil
}

// NormalizeProject converts a complete remote project.
func NormalizeProject(p harvest.Project) (ProjectRecord, error) {
	if p.ID == "" {
		return ProjectRecord{}, &DataIntegrityError{Kind: "project", Reason: "missing external id"}
	}
	rec := ProjectRecord{
		ExternalID: p.ID.String(),
		Name:       projectName(p.Name, p.ID),
		Active:     p.IsActive,
		Budget:     p.Budget,
		Variant:    Full,
	}
	if p.Code != nil {
		rec.Code = *p.Code
	}
	return rec, nil
}

// NormalizeTimeEntry converts a remote time entry and its embedded user and project.
func NormalizeTimeEntry(e harvest.TimeEntry) (TimeEntryRecord, error) {
	if e.ID == "" {
		return TimeEntryRecord{}, &DataIntegrityError{Kind: "time_entry", Reason: "missing external id"}
	}
	if _, err := time.Parse(harvest.DateLayout, e.SpentDate); err != nil {
		return TimeEntryRecord{}, &DataIntegrityError{
			Kind:   "time_entry",
			Reason: fmt.Sprintf("entry %s has invalid spent_date %q", e.ID, e.SpentDate),
		}
	}
	if e.User == nil || e.User.ID == "" {
		return TimeEntryRecord{}, &DataIntegrityError{
			Kind:   "time_entry",
			Reason: fmt.Sprintf("entry %s has no user reference", e.ID),
		}
	}

	rec := TimeEntryRecord{
		ExternalID: e.ID.String(),
		SpentDate:  e.SpentDate,
		Notes:      e.Notes,
		Locked:     e.IsLocked,
		Running:    e.IsRunning,
		User:       normalizeUserRef(e.User),
	}
	if e.Hours != nil {
		rec.Hours = *e.Hours
	}

	if e.Project != nil {
		if e.Project.ID == "" {
			return TimeEntryRecord{}, &DataIntegrityError{
				Kind:   "time_entry",
				Reason: fmt.Sprintf("entry %s has a project reference without id", e.ID),
			}
		}
		p := normalizeProjectRef(e.Project)
		rec.Project = &p
	}
	return rec, nil
}

func normalizeUserRef(ref *harvest.UserRef) UserRecord {
	rec := UserRecord{ExternalID: ref.ID.String(), Active: true, Variant: Proxy}
	if ref.Name != nil && strings.TrimSpace(*ref.Name) != "" {
		rec.Name = strings.TrimSpace(*ref.Name)
	} else {
		rec.Name = SyntheticUserName(rec.ExternalID)
	}
	return rec
}

func normalizeProjectRef(ref *harvest.ProjectRef) ProjectRecord {
	rec := ProjectRecord{
		ExternalID: ref.ID.String(),
		Name:       projectName(ref.Name, ref.ID),
		Active:     true,
		Variant:    Proxy,
	}
	if ref.Code != nil {
		rec.Code = *ref.Code
	}
	return rec
}

func projectName(name *string, id harvest.ID) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return SyntheticProjectName(id.String())
	}
	return strings.TrimSpace(*name)
}
