package hsync

import (
	"database/sql"
	"fmt"

	"harvest-sync/internal/database/sqlc"
)

// ProjectionMode selects how timesheets get their task and sale order line.
type ProjectionMode string

const (
	// ModeAuto picks the first open task and the latest confirmed sale order line of the project.
	ModeAuto ProjectionMode = "auto"
	// ModeManual uses the task and line given in ProjectionOptions for every entry.
	ModeManual ProjectionMode = "manual"
)

// DefaultTimesheetName is used when a time entry has no notes.
const DefaultTimesheetName = "/"

// ProjectionOptions configures CreateTimesheets.
type ProjectionOptions struct {
	Mode            ProjectionMode
	TaskID          string // manual mode, optional
	SaleOrderLineID int64  // manual mode, optional
}

// CreateTimesheets turns mirror time entries into timesheet records. Entries
// that already have a timesheet, whose user has no employee or whose project
// has no local project are skipped. Returns the number of timesheets created.
func (s *SyncService) CreateTimesheets(entryIDs []string, opts ProjectionOptions) (int, error) {
	if opts.Mode == "" {
		opts.Mode = ModeAuto
	}
	if opts.Mode != ModeAuto && opts.Mode != ModeManual {
		return 0, &ConfigurationError{Field: "mode", Reason: fmt.Sprintf("unknown projection mode %q", opts.Mode)}
	}

	var created int
	err := s.recordRun(0, OperationTimesheets, func() (string, error) {
		err := s.database.WithTx(func(tx Database) error {
			p := &projector{db: tx, opts: opts, clock: s.clock, idgen: s.idgen, logger: s.logger}
			if err := p.loadManual(); err != nil {
				return err
			}
			for _, id := range entryIDs {
				ok, err := p.project(id)
				if err != nil {
					return err
				}
				if ok {
					created++
				}
			}
			return nil
		})
		if err != nil {
			created = 0
			return "", err
		}
		return fmt.Sprintf("created=%d of %d", created, len(entryIDs)), nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// CreatePendingTimesheets projects every entry of a configuration that has no timesheet yet.
func (s *SyncService) CreatePendingTimesheets(configID int64, opts ProjectionOptions) (int, error) {
	if _, err := s.GetSyncConfig(configID); err != nil {
		return 0, err
	}
	ids, err := s.database.ListMirrorTimeEntryIDsWithoutTimesheet(configID)
	if err != nil {
		return 0, fmt.Errorf("listing pending time entries: %w", err)
	}
	return s.CreateTimesheets(ids, opts)
}

type projector struct {
	db     Database
	opts   ProjectionOptions
	clock  Clock
	idgen  IDGenerator
	logger Logger

	task sql.NullString
	line sql.NullInt64
}

// loadManual validates the fixed task and line of a manual projection.
func (p *projector) loadManual() error {
	if p.opts.Mode != ModeManual {
		return nil
	}
	if p.opts.TaskID != "" {
		task, err := p.db.FindTask(p.opts.TaskID)
		if err != nil {
			return fmt.Errorf("finding task: %w", err)
		}
		if task == nil {
			return &ConfigurationError{Field: "task", Reason: fmt.Sprintf("task %s not found", p.opts.TaskID)}
		}
		p.task = sql.NullString{String: task.ID, Valid: true}
	}
	if p.opts.SaleOrderLineID != 0 {
		line, err := p.db.FindSaleOrderLine(p.opts.SaleOrderLineID)
		if err != nil {
			return fmt.Errorf("finding sale order line: %w", err)
		}
		if line == nil {
			return &ConfigurationError{Field: "sale_order_line", Reason: fmt.Sprintf("sale order line %d not found", p.opts.SaleOrderLineID)}
		}
		p.line = sql.NullInt64{Int64: line.ID, Valid: true}
	}
	return nil
}

// project creates the timesheet for one entry. It reports false when the entry was skipped.
func (p *projector) project(entryID string) (bool, error) {
	entry, err := p.db.FindMirrorTimeEntryByID(entryID)
	if err != nil {
		return false, fmt.Errorf("finding time entry %s: %w", entryID, err)
	}
	if entry == nil {
		p.logger.Warn("skipping unknown time entry", "entry_id", entryID)
		return false, nil
	}
	if entry.TimesheetID.Valid {
		return false, nil
	}

	user, err := p.db.FindMirrorUserByID(entry.MirrorUserID)
	if err != nil {
		return false, fmt.Errorf("finding user of time entry %s: %w", entryID, err)
	}
	if user == nil || !user.EmployeeID.Valid {
		return false, nil
	}
	if !entry.MirrorProjectID.Valid {
		return false, nil
	}
	project, err := p.db.FindMirrorProjectByID(entry.MirrorProjectID.String)
	if err != nil {
		return false, fmt.Errorf("finding project of time entry %s: %w", entryID, err)
	}
	if project == nil || !project.ProjectID.Valid {
		return false, nil
	}

	task, line := p.task, p.line
	if p.opts.Mode == ModeAuto {
		task, line, err = p.autoAssign(project.ProjectID.String)
		if err != nil {
			return false, err
		}
	}

	name := DefaultTimesheetName
	if entry.Notes.Valid && entry.Notes.String != "" {
		name = entry.Notes.String
	}

	ts := &sqlc.Timesheet{
		ID:              p.idgen.New(),
		Date:            entry.SpentDate,
		Hours:           entry.Hours,
		Name:            name,
		ProjectID:       project.ProjectID.String,
		EmployeeID:      user.EmployeeID.String,
		TaskID:          task,
		SaleOrderLineID: line,
		CreatedAt:       p.clock.Now(),
	}
	if err := p.db.CreateTimesheet(ts); err != nil {
		return false, fmt.Errorf("creating timesheet for time entry %s: %w", entryID, err)
	}
	if err := p.db.SetMirrorTimeEntryTimesheet(entry.ID, ts.ID); err != nil {
		return false, fmt.Errorf("linking timesheet to time entry %s: %w", entryID, err)
	}
	return true, nil
}

func (p *projector) autoAssign(projectID string) (sql.NullString, sql.NullInt64, error) {
	var task sql.NullString
	var line sql.NullInt64

	t, err := p.db.FindFirstOpenTask(projectID)
	if err != nil {
		return task, line, fmt.Errorf("finding open task: %w", err)
	}
	if t != nil {
		task = sql.NullString{String: t.ID, Valid: true}
	}

	l, err := p.db.FindLatestConfirmedSaleOrderLine(projectID)
	if err != nil {
		return task, line, fmt.Errorf("finding sale order line: %w", err)
	}
	if l != nil {
		line = sql.NullInt64{Int64: l.ID, Valid: true}
	}
	return task, line, nil
}
