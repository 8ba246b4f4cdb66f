package hsync_test

import (
	"context"
	"errors"
	"testing"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/hsync"
	"harvest-sync/internal/testutil"
)

type localSetup struct {
	cfg     *sqlc.SyncConfig
	emp     *sqlc.Employee
	project *sqlc.Project
	design  *sqlc.Task
	build   *sqlc.Task
	sale    *sqlc.SaleOrderLine
	done    *sqlc.SaleOrderLine
}

// setupLocal syncs five entries for user 1 (Ada, linked to an employee) and
// user 2 (no employee), and links remote project 10 to a local project with
// tasks and sale order lines. Project 90 stays unlinked.
func setupLocal(t *testing.T, f *fixture) localSetup {
	t.Helper()
	var s localSetup
	var err error

	if s.emp, err = f.svc.AddEmployee("Ada", "ada@example.com"); err != nil {
		t.Fatalf("AddEmployee() error = %v", err)
	}
	if s.project, err = f.svc.AddProject("Apollo"); err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if _, err = f.svc.AddTask(s.project.ID, "Archived", 1, true); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if s.build, err = f.svc.AddTask(s.project.ID, "Build", 10, false); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if s.design, err = f.svc.AddTask(s.project.ID, "Design", 5, false); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if s.sale, err = f.svc.AddSaleOrderLine(s.project.ID, "Phase 1", hsync.LineSale); err != nil {
		t.Fatalf("AddSaleOrderLine() error = %v", err)
	}
	if s.done, err = f.svc.AddSaleOrderLine(s.project.ID, "Phase 2", hsync.LineDone); err != nil {
		t.Fatalf("AddSaleOrderLine() error = %v", err)
	}
	if _, err = f.svc.AddSaleOrderLine(s.project.ID, "Phase 3", hsync.LineDraft); err != nil {
		t.Fatalf("AddSaleOrderLine() error = %v", err)
	}

	ada := remoteUser("1", "Ada", "Lovelace", "ada@example.com")
	f.fake.SetMe(ada)
	f.fake.SetUsers(ada, remoteUser("2", "Grace", "Hopper", ""))
	f.fake.SetProjects(remoteProject("10", "Apollo", "APO"), remoteProject("90", "Skunkworks", ""))
	withNotes := remoteEntry("100", "2024-01-10", "1", "Ada Lovelace", "10", "Apollo", 2)
	withNotes.Notes = testutil.Ptr("Write docs")
	f.fake.SetTimeEntries(
		withNotes,
		remoteEntry("101", "2024-01-11", "1", "Ada Lovelace", "10", "Apollo", 3),
		remoteEntry("102", "2024-01-11", "2", "Grace Hopper", "10", "Apollo", 4),
		remoteEntry("103", "2024-01-12", "1", "Ada Lovelace", "", "", 1),
		remoteEntry("104", "2024-01-12", "1", "Ada Lovelace", "90", "Skunkworks", 1),
	)

	s.cfg = f.createConfig("acme", hsync.LevelFull)
	if _, err := f.svc.RunSync(context.Background(), s.cfg.ID); err != nil {
		t.Fatalf("RunSync() error = %v", err)
	}
	if _, err := f.svc.LinkMirrorProject(s.cfg.ID, "10", s.project.ID); err != nil {
		t.Fatalf("LinkMirrorProject() error = %v", err)
	}
	return s
}

func TestCreateTimesheets_Auto(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)

	created, err := f.svc.CreatePendingTimesheets(s.cfg.ID, hsync.ProjectionOptions{})
	if err != nil {
		t.Fatalf("CreatePendingTimesheets() error = %v", err)
	}
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}

	sheets, err := f.svc.ListTimesheets()
	if err != nil {
		t.Fatalf("ListTimesheets() error = %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("len(timesheets) = %d, want 2", len(sheets))
	}
	names := map[float64]string{}
	for _, ts := range sheets {
		names[ts.Hours] = ts.Name
		if ts.EmployeeID != s.emp.ID || ts.ProjectID != s.project.ID {
			t.Errorf("timesheet %+v, want employee %s on project %s", ts, s.emp.ID, s.project.ID)
		}
		if ts.TaskID.String != s.design.ID {
			t.Errorf("TaskID = %v, want first open task %s", ts.TaskID, s.design.ID)
		}
		if ts.SaleOrderLineID.Int64 != s.done.ID {
			t.Errorf("SaleOrderLineID = %v, want latest confirmed line %d", ts.SaleOrderLineID, s.done.ID)
		}
	}
	if names[2] != "Write docs" || names[3] != hsync.DefaultTimesheetName {
		t.Errorf("names = %v, want notes and the default name", names)
	}

	entry := f.mirrorEntry(s.cfg.ID, "100")
	if !entry.TimesheetID.Valid {
		t.Fatal("entry 100 has no timesheet link")
	}
	ts, err := f.db.FindTimesheet(entry.TimesheetID.String)
	if err != nil || ts == nil {
		t.Fatalf("FindTimesheet() = %v, %v", ts, err)
	}
	if ts.Date != "2024-01-10" || ts.Hours != 2 {
		t.Errorf("timesheet = %+v, want 2h on 2024-01-10", ts)
	}

	// Skipped entries stay pending.
	for _, id := range []string{"102", "103", "104"} {
		if e := f.mirrorEntry(s.cfg.ID, id); e.TimesheetID.Valid {
			t.Errorf("entry %s got a timesheet", id)
		}
	}
}

func TestCreateTimesheets_NoDuplicates(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)
	entry := f.mirrorEntry(s.cfg.ID, "100")

	if n, err := f.svc.CreateTimesheets([]string{entry.ID}, hsync.ProjectionOptions{Mode: hsync.ModeAuto}); err != nil || n != 1 {
		t.Fatalf("first CreateTimesheets() = %d, %v; want 1", n, err)
	}
	if n, err := f.svc.CreateTimesheets([]string{entry.ID, entry.ID}, hsync.ProjectionOptions{Mode: hsync.ModeAuto}); err != nil || n != 0 {
		t.Errorf("second CreateTimesheets() = %d, %v; want 0", n, err)
	}
	if n, err := f.svc.CreatePendingTimesheets(s.cfg.ID, hsync.ProjectionOptions{}); err != nil || n != 1 {
		t.Errorf("CreatePendingTimesheets() = %d, %v; want 1 (entry 101)", n, err)
	}
	if n, err := f.svc.CreatePendingTimesheets(s.cfg.ID, hsync.ProjectionOptions{}); err != nil || n != 0 {
		t.Errorf("repeated CreatePendingTimesheets() = %d, %v; want 0", n, err)
	}

	count, err := f.db.CountTimesheets()
	if err != nil {
		t.Fatalf("CountTimesheets() error = %v", err)
	}
	if count != 2 {
		t.Errorf("timesheets = %d, want 2", count)
	}
}

func TestCreateTimesheets_SyncKeepsTimesheetLink(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)
	if _, err := f.svc.CreatePendingTimesheets(s.cfg.ID, hsync.ProjectionOptions{}); err != nil {
		t.Fatalf("CreatePendingTimesheets() error = %v", err)
	}
	before := f.mirrorEntry(s.cfg.ID, "100")

	changed := remoteEntry("100", "2024-01-10", "1", "Ada Lovelace", "10", "Apollo", 5)
	f.fake.SetTimeEntries(changed)
	res, err := f.svc.RunSync(context.Background(), s.cfg.ID)
	if err != nil {
		t.Fatalf("RunSync() error = %v", err)
	}
	if res.TimeEntries != 1 {
		t.Errorf("TimeEntries = %d, want 1", res.TimeEntries)
	}

	after := f.mirrorEntry(s.cfg.ID, "100")
	if after.Hours != 5 {
		t.Errorf("Hours = %v, want 5", after.Hours)
	}
	if after.TimesheetID != before.TimesheetID {
		t.Errorf("TimesheetID = %v, want %v kept", after.TimesheetID, before.TimesheetID)
	}
}

func TestCreateTimesheets_Manual(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)
	e100 := f.mirrorEntry(s.cfg.ID, "100")
	e101 := f.mirrorEntry(s.cfg.ID, "101")

	n, err := f.svc.CreateTimesheets([]string{e100.ID}, hsync.ProjectionOptions{
		Mode:            hsync.ModeManual,
		TaskID:          s.build.ID,
		SaleOrderLineID: s.sale.ID,
	})
	if err != nil || n != 1 {
		t.Fatalf("CreateTimesheets() = %d, %v; want 1", n, err)
	}
	ts, err := f.db.FindTimesheet(f.mirrorEntry(s.cfg.ID, "100").TimesheetID.String)
	if err != nil || ts == nil {
		t.Fatalf("FindTimesheet() = %v, %v", ts, err)
	}
	if ts.TaskID.String != s.build.ID || ts.SaleOrderLineID.Int64 != s.sale.ID {
		t.Errorf("timesheet = %+v, want task %s and line %d", ts, s.build.ID, s.sale.ID)
	}

	// Manual mode without a task or line leaves both empty.
	if n, err := f.svc.CreateTimesheets([]string{e101.ID}, hsync.ProjectionOptions{Mode: hsync.ModeManual}); err != nil || n != 1 {
		t.Fatalf("CreateTimesheets() = %d, %v; want 1", n, err)
	}
	ts, err = f.db.FindTimesheet(f.mirrorEntry(s.cfg.ID, "101").TimesheetID.String)
	if err != nil || ts == nil {
		t.Fatalf("FindTimesheet() = %v, %v", ts, err)
	}
	if ts.TaskID.Valid || ts.SaleOrderLineID.Valid {
		t.Errorf("timesheet = %+v, want no task and no line", ts)
	}
}

func TestCreateTimesheets_InvalidOptions(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)
	entry := f.mirrorEntry(s.cfg.ID, "100")

	tests := []struct {
		field string
		opts  hsync.ProjectionOptions
	}{
		{"mode", hsync.ProjectionOptions{Mode: "smart"}},
		{"task", hsync.ProjectionOptions{Mode: hsync.ModeManual, TaskID: "missing"}},
		{"sale_order_line", hsync.ProjectionOptions{Mode: hsync.ModeManual, SaleOrderLineID: 999}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			n, err := f.svc.CreateTimesheets([]string{entry.ID}, tt.opts)
			var ce *hsync.ConfigurationError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("CreateTimesheets() error = %v, want configuration error on %s", err, tt.field)
			}
			if n != 0 {
				t.Errorf("created = %d, want 0", n)
			}
		})
	}

	if count, _ := f.db.CountTimesheets(); count != 0 {
		t.Errorf("timesheets = %d, want 0", count)
	}
	runs, err := f.svc.GetHistory(1)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if runs[0].Operation != hsync.OperationTimesheets || runs[0].Status != hsync.RunError {
		t.Errorf("latest run = %+v, want failed timesheets run", runs[0])
	}
}

func TestCreateTimesheets_UnknownEntry(t *testing.T) {
	f := newFixture(t, 0)
	setupLocal(t, f)

	n, err := f.svc.CreateTimesheets([]string{"no-such-entry"}, hsync.ProjectionOptions{})
	if err != nil {
		t.Fatalf("CreateTimesheets() error = %v", err)
	}
	if n != 0 {
		t.Errorf("created = %d, want 0", n)
	}
}

func TestCreateTimesheets_AutoWithoutTasksOrLines(t *testing.T) {
	f := newFixture(t, 0)
	s := setupLocal(t, f)

	bare, err := f.svc.AddProject("Skunkworks")
	if err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if _, err := f.svc.LinkMirrorProject(s.cfg.ID, "90", bare.ID); err != nil {
		t.Fatalf("LinkMirrorProject() error = %v", err)
	}
	entry := f.mirrorEntry(s.cfg.ID, "104")

	if n, err := f.svc.CreateTimesheets([]string{entry.ID}, hsync.ProjectionOptions{}); err != nil || n != 1 {
		t.Fatalf("CreateTimesheets() = %d, %v; want 1", n, err)
	}
	ts, err := f.db.FindTimesheet(f.mirrorEntry(s.cfg.ID, "104").TimesheetID.String)
	if err != nil || ts == nil {
		t.Fatalf("FindTimesheet() = %v, %v", ts, err)
	}
	if ts.ProjectID != bare.ID || ts.TaskID.Valid || ts.SaleOrderLineID.Valid {
		t.Errorf("timesheet = %+v, want project %s with no task or line", ts, bare.ID)
	}
}
