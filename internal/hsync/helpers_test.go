package hsync_test

import (
	"testing"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/harvest"
	"harvest-sync/internal/hsync"
	"harvest-sync/internal/testutil"
)

type fixture struct {
	t     *testing.T
	db    hsync.Database
	fake  *testutil.FakeHarvest
	clock *testutil.StubClock
	svc   *hsync.SyncService
}

func newFixture(t *testing.T, perPage int) *fixture {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	fake := testutil.NewFakeHarvest(t)
	clock := testutil.FixedClock()
	svc := hsync.NewSyncService(db, fake.Factory(), nil, clock, testutil.NewStubIDGenerator(), hsync.Options{
		PerPage:       perPage,
		DefaultAPIURL: fake.URL(),
	})
	return &fixture{t: t, db: db, fake: fake, clock: clock, svc: svc}
}

// createConfig stores an active configuration that syncs all dates.
func (f *fixture) createConfig(company, level string) *sqlc.SyncConfig {
	f.t.Helper()
	cfg, err := f.svc.CreateSyncConfig(hsync.NewSyncConfig{
		Company:      company,
		AccountID:    "12345",
		AccessToken:  "token",
		SyncLevel:    level,
		SyncAllDates: true,
		Active:       true,
	})
	if err != nil {
		f.t.Fatalf("CreateSyncConfig() error = %v", err)
	}
	return cfg
}

func (f *fixture) reload(id int64) *sqlc.SyncConfig {
	f.t.Helper()
	cfg, err := f.db.FindSyncConfig(id)
	if err != nil || cfg == nil {
		f.t.Fatalf("FindSyncConfig(%d) = %v, %v", id, cfg, err)
	}
	return cfg
}

func (f *fixture) mirrorUser(configID int64, externalID string) *sqlc.MirrorUser {
	f.t.Helper()
	u, err := f.db.FindMirrorUser(configID, externalID)
	if err != nil {
		f.t.Fatalf("FindMirrorUser(%s) error = %v", externalID, err)
	}
	if u == nil {
		f.t.Fatalf("mirror user %s not found", externalID)
	}
	return u
}

func (f *fixture) mirrorProject(configID int64, externalID string) *sqlc.MirrorProject {
	f.t.Helper()
	p, err := f.db.FindMirrorProject(configID, externalID)
	if err != nil {
		f.t.Fatalf("FindMirrorProject(%s) error = %v", externalID, err)
	}
	if p == nil {
		f.t.Fatalf("mirror project %s not found", externalID)
	}
	return p
}

func (f *fixture) mirrorEntry(configID int64, externalID string) *sqlc.MirrorTimeEntry {
	f.t.Helper()
	e, err := f.db.FindMirrorTimeEntry(configID, externalID)
	if err != nil {
		f.t.Fatalf("FindMirrorTimeEntry(%s) error = %v", externalID, err)
	}
	if e == nil {
		f.t.Fatalf("mirror time entry %s not found", externalID)
	}
	return e
}

func (f *fixture) counts(configID int64) (users, projects, entries int64) {
	f.t.Helper()
	var err error
	if users, err = f.db.CountMirrorUsers(configID); err != nil {
		f.t.Fatalf("CountMirrorUsers() error = %v", err)
	}
	if projects, err = f.db.CountMirrorProjects(configID); err != nil {
		f.t.Fatalf("CountMirrorProjects() error = %v", err)
	}
	if entries, err = f.db.CountMirrorTimeEntries(configID); err != nil {
		f.t.Fatalf("CountMirrorTimeEntries() error = %v", err)
	}
	return users, projects, entries
}

func remoteUser(id, first, last, email string) harvest.User {
	u := harvest.User{ID: harvest.ID(id), FirstName: first, LastName: last, IsActive: true}
	if email != "" {
		u.Email = testutil.Ptr(email)
	}
	return u
}

func remoteProject(id, name, code string) harvest.Project {
	p := harvest.Project{ID: harvest.ID(id), Name: testutil.Ptr(name), IsActive: true}
	if code != "" {
		p.Code = testutil.Ptr(code)
	}
	return p
}

// remoteEntry builds a time entry embedding a named user and, when projectID
// is set, a named project.
func remoteEntry(id, date, userID, userName, projectID, projectName string, hours float64) harvest.TimeEntry {
	e := harvest.TimeEntry{
		ID:        harvest.ID(id),
		SpentDate: date,
		Hours:     testutil.Ptr(hours),
		User:      &harvest.UserRef{ID: harvest.ID(userID), Name: testutil.Ptr(userName)},
	}
	if projectID != "" {
		e.Project = &harvest.ProjectRef{ID: harvest.ID(projectID), Name: testutil.Ptr(projectName)}
	}
	return e
}
