package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"harvest-sync/internal/database/migrations"
	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/hsync"
)

// SQLiteDatabase implements the hsync.Database interface using SQLite.
type SQLiteDatabase struct {
	db      *sql.DB
	queries *sqlc.Queries
	path    string
	inTx    bool
}

// NewSQLiteDatabase creates a new SQLite database connection.
// path can be a file path or ":memory:" for in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteDatabase{
		db:      db,
		queries: sqlc.New(db),
		path:    path,
	}, nil
}

// NewSQLiteDatabaseFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteDatabaseFromDB(db *sql.DB) *SQLiteDatabase {
	return &SQLiteDatabase{
		db:      db,
		queries: sqlc.New(db),
		path:    "",
	}
}

// OpenConnection opens and configures a SQLite database connection with appropriate PRAGMAs.
// This is exported for use in tools and tests that need a properly configured SQLite connection.
// path can be a file path or ":memory:" for in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, and SQLite has a
	// single writer anyway.
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// WithTx runs fn in a transaction. Nested calls join the enclosing transaction.
func (s *SQLiteDatabase) WithTx(fn func(tx hsync.Database) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	txdb := &SQLiteDatabase{
		db:      s.db,
		queries: s.queries.WithTx(tx),
		path:    s.path,
		inTx:    true,
	}
	if err := fn(txdb); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code == sqlite3.ErrConstraint && sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// Sync configuration operations

func (s *SQLiteDatabase) CreateSyncConfig(cfg *sqlc.SyncConfig) (*sqlc.SyncConfig, error) {
	ctx := context.Background()
	res, err := s.queries.InsertSyncConfig(ctx, sqlc.InsertSyncConfigParams{
		Company:      cfg.Company,
		AccountID:    cfg.AccountID,
		AccessToken:  cfg.AccessToken,
		ApiUrl:       cfg.ApiUrl,
		SyncDaysBack: cfg.SyncDaysBack,
		SyncAllDates: cfg.SyncAllDates,
		SyncLevel:    cfg.SyncLevel,
		Active:       cfg.Active,
		CreatedAt:    cfg.CreatedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &hsync.ConfigurationError{
				Field:  "active",
				Reason: fmt.Sprintf("company %q already has an active sync configuration", cfg.Company),
			}
		}
		return nil, fmt.Errorf("inserting sync config: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading sync config id: %w", err)
	}
	created, err := s.queries.GetSyncConfig(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading created sync config: %w", err)
	}
	return &created, nil
}

func (s *SQLiteDatabase) FindSyncConfig(id int64) (*sqlc.SyncConfig, error) {
	cfg, err := s.queries.GetSyncConfig(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding sync config: %w", err)
	}
	return &cfg, nil
}

func (s *SQLiteDatabase) ListSyncConfigs() ([]*sqlc.SyncConfig, error) {
	rows, err := s.queries.ListSyncConfigs(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing sync configs: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) ListActiveSyncConfigs() ([]*sqlc.SyncConfig, error) {
	rows, err := s.queries.ListActiveSyncConfigs(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing active sync configs: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) SetSyncConfigActive(id int64, active bool) error {
	err := s.queries.UpdateSyncConfigActive(context.Background(), sqlc.UpdateSyncConfigActiveParams{
		Active: active,
		ID:     id,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return &hsync.ConfigurationError{
				Field:  "active",
				Reason: "another sync configuration is already active for this company",
			}
		}
		return fmt.Errorf("updating sync config active flag: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateSyncConfigAccess(cfg *sqlc.SyncConfig) error {
	err := s.queries.UpdateSyncConfigAccess(context.Background(), sqlc.UpdateSyncConfigAccessParams{
		CanAccessUsers:    cfg.CanAccessUsers,
		CanAccessProjects: cfg.CanAccessProjects,
		CanAccessAllTime:  cfg.CanAccessAllTime,
		CurrentUserID:     cfg.CurrentUserID,
		SyncLevel:         cfg.SyncLevel,
		ID:                cfg.ID,
	})
	if err != nil {
		return fmt.Errorf("updating sync config access: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateSyncConfigLastSync(id int64, at time.Time) error {
	err := s.queries.UpdateSyncConfigLastSync(context.Background(), sqlc.UpdateSyncConfigLastSyncParams{
		LastSync: sql.NullTime{Time: at, Valid: true},
		ID:       id,
	})
	if err != nil {
		return fmt.Errorf("updating last sync: %w", err)
	}
	return nil
}

// Local domain operations

func (s *SQLiteDatabase) CreateEmployee(e *sqlc.Employee) error {
	err := s.queries.InsertEmployee(context.Background(), sqlc.InsertEmployeeParams{
		ID:        e.ID,
		Name:      e.Name,
		WorkEmail: e.WorkEmail,
		CreatedAt: e.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindEmployee(id string) (*sqlc.Employee, error) {
	return findOne(s.queries.GetEmployee(context.Background(), id))
}

func (s *SQLiteDatabase) FindEmployeeByWorkEmail(email string) (*sqlc.Employee, error) {
	return findOne(s.queries.GetEmployeeByWorkEmail(context.Background(), sql.NullString{String: email, Valid: true}))
}

func (s *SQLiteDatabase) ListEmployees() ([]*sqlc.Employee, error) {
	rows, err := s.queries.ListEmployees(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CreateProject(p *sqlc.Project) error {
	err := s.queries.InsertProject(context.Background(), sqlc.InsertProjectParams{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindProject(id string) (*sqlc.Project, error) {
	return findOne(s.queries.GetProject(context.Background(), id))
}

func (s *SQLiteDatabase) ListProjects() ([]*sqlc.Project, error) {
	rows, err := s.queries.ListProjects(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CreateTask(t *sqlc.Task) error {
	err := s.queries.InsertTask(context.Background(), sqlc.InsertTaskParams{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		StageFolded: t.StageFolded,
		Sequence:    t.Sequence,
		CreatedAt:   t.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindTask(id string) (*sqlc.Task, error) {
	return findOne(s.queries.GetTask(context.Background(), id))
}

func (s *SQLiteDatabase) FindFirstOpenTask(projectID string) (*sqlc.Task, error) {
	return findOne(s.queries.GetFirstOpenTaskForProject(context.Background(), projectID))
}

func (s *SQLiteDatabase) ListTasks(projectID string) ([]*sqlc.Task, error) {
	rows, err := s.queries.ListTasksForProject(context.Background(), projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CreateSaleOrderLine(l *sqlc.SaleOrderLine) (*sqlc.SaleOrderLine, error) {
	ctx := context.Background()
	res, err := s.queries.InsertSaleOrderLine(ctx, sqlc.InsertSaleOrderLineParams{
		ProjectID: l.ProjectID,
		Name:      l.Name,
		State:     l.State,
		CreatedAt: l.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("inserting sale order line: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading sale order line id: %w", err)
	}
	created, err := s.queries.GetSaleOrderLine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading created sale order line: %w", err)
	}
	return &created, nil
}

func (s *SQLiteDatabase) FindSaleOrderLine(id int64) (*sqlc.SaleOrderLine, error) {
	return findOne(s.queries.GetSaleOrderLine(context.Background(), id))
}

func (s *SQLiteDatabase) FindLatestConfirmedSaleOrderLine(projectID string) (*sqlc.SaleOrderLine, error) {
	return findOne(s.queries.GetLatestConfirmedSaleOrderLineForProject(context.Background(),
		sql.NullString{String: projectID, Valid: true}))
}

func (s *SQLiteDatabase) ListSaleOrderLines(projectID string) ([]*sqlc.SaleOrderLine, error) {
	rows, err := s.queries.ListSaleOrderLinesForProject(context.Background(), sql.NullString{String: projectID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("listing sale order lines: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CreateTimesheet(ts *sqlc.Timesheet) error {
	err := s.queries.InsertTimesheet(context.Background(), sqlc.InsertTimesheetParams{
		ID:              ts.ID,
		Date:            ts.Date,
		Hours:           ts.Hours,
		Name:            ts.Name,
		ProjectID:       ts.ProjectID,
		EmployeeID:      ts.EmployeeID,
		TaskID:          ts.TaskID,
		SaleOrderLineID: ts.SaleOrderLineID,
		CreatedAt:       ts.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting timesheet: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) FindTimesheet(id string) (*sqlc.Timesheet, error) {
	return findOne(s.queries.GetTimesheet(context.Background(), id))
}

func (s *SQLiteDatabase) ListTimesheets() ([]*sqlc.Timesheet, error) {
	rows, err := s.queries.ListTimesheets(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing timesheets: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CountTimesheets() (int64, error) {
	n, err := s.queries.CountTimesheets(context.Background())
	if err != nil {
		return 0, fmt.Errorf("counting timesheets: %w", err)
	}
	return n, nil
}

// Mirror user operations

func (s *SQLiteDatabase) FindMirrorUser(configID int64, externalID string) (*sqlc.MirrorUser, error) {
	return findOne(s.queries.GetMirrorUserByExternalID(context.Background(), sqlc.GetMirrorUserByExternalIDParams{
		ConfigID:   configID,
		ExternalID: externalID,
	}))
}

func (s *SQLiteDatabase) FindMirrorUserByID(id string) (*sqlc.MirrorUser, error) {
	return findOne(s.queries.GetMirrorUser(context.Background(), id))
}

func (s *SQLiteDatabase) CreateMirrorUser(u *sqlc.MirrorUser) error {
	err := s.queries.InsertMirrorUser(context.Background(), sqlc.InsertMirrorUserParams{
		ID:         u.ID,
		ConfigID:   u.ConfigID,
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Email:      u.Email,
		IsActive:   u.IsActive,
		IsProxy:    u.IsProxy,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting mirror user: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateMirrorUser(u *sqlc.MirrorUser) error {
	err := s.queries.UpdateMirrorUser(context.Background(), sqlc.UpdateMirrorUserParams{
		Name:       u.Name,
		Email:      u.Email,
		IsActive:   u.IsActive,
		IsProxy:    u.IsProxy,
		EmployeeID: u.EmployeeID,
		UpdatedAt:  u.UpdatedAt,
		ID:         u.ID,
	})
	if err != nil {
		return fmt.Errorf("updating mirror user: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) ListMirrorUsers(configID int64) ([]*sqlc.MirrorUser, error) {
	rows, err := s.queries.ListMirrorUsers(context.Background(), configID)
	if err != nil {
		return nil, fmt.Errorf("listing mirror users: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CountMirrorUsers(configID int64) (int64, error) {
	n, err := s.queries.CountMirrorUsers(context.Background(), configID)
	if err != nil {
		return 0, fmt.Errorf("counting mirror users: %w", err)
	}
	return n, nil
}

// Mirror project operations

func (s *SQLiteDatabase) FindMirrorProject(configID int64, externalID string) (*sqlc.MirrorProject, error) {
	return findOne(s.queries.GetMirrorProjectByExternalID(context.Background(), sqlc.GetMirrorProjectByExternalIDParams{
		ConfigID:   configID,
		ExternalID: externalID,
	}))
}

func (s *SQLiteDatabase) FindMirrorProjectByID(id string) (*sqlc.MirrorProject, error) {
	return findOne(s.queries.GetMirrorProject(context.Background(), id))
}

func (s *SQLiteDatabase) CreateMirrorProject(p *sqlc.MirrorProject) error {
	err := s.queries.InsertMirrorProject(context.Background(), sqlc.InsertMirrorProjectParams{
		ID:         p.ID,
		ConfigID:   p.ConfigID,
		ExternalID: p.ExternalID,
		Name:       p.Name,
		Code:       p.Code,
		IsActive:   p.IsActive,
		Budget:     p.Budget,
		IsProxy:    p.IsProxy,
		ProjectID:  p.ProjectID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting mirror project: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateMirrorProject(p *sqlc.MirrorProject) error {
	err := s.queries.UpdateMirrorProject(context.Background(), sqlc.UpdateMirrorProjectParams{
		Name:      p.Name,
		Code:      p.Code,
		IsActive:  p.IsActive,
		Budget:    p.Budget,
		IsProxy:   p.IsProxy,
		ProjectID: p.ProjectID,
		UpdatedAt: p.UpdatedAt,
		ID:        p.ID,
	})
	if err != nil {
		return fmt.Errorf("updating mirror project: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) ListMirrorProjects(configID int64) ([]*sqlc.MirrorProject, error) {
	rows, err := s.queries.ListMirrorProjects(context.Background(), configID)
	if err != nil {
		return nil, fmt.Errorf("listing mirror projects: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) CountMirrorProjects(configID int64) (int64, error) {
	n, err := s.queries.CountMirrorProjects(context.Background(), configID)
	if err != nil {
		return 0, fmt.Errorf("counting mirror projects: %w", err)
	}
	return n, nil
}

// Mirror time entry operations

func (s *SQLiteDatabase) FindMirrorTimeEntry(configID int64, externalID string) (*sqlc.MirrorTimeEntry, error) {
	return findOne(s.queries.GetMirrorTimeEntryByExternalID(context.Background(), sqlc.GetMirrorTimeEntryByExternalIDParams{
		ConfigID:   configID,
		ExternalID: externalID,
	}))
}

func (s *SQLiteDatabase) FindMirrorTimeEntryByID(id string) (*sqlc.MirrorTimeEntry, error) {
	return findOne(s.queries.GetMirrorTimeEntry(context.Background(), id))
}

func (s *SQLiteDatabase) CreateMirrorTimeEntry(e *sqlc.MirrorTimeEntry) error {
	err := s.queries.InsertMirrorTimeEntry(context.Background(), sqlc.InsertMirrorTimeEntryParams{
		ID:              e.ID,
		ConfigID:        e.ConfigID,
		ExternalID:      e.ExternalID,
		SpentDate:       e.SpentDate,
		Hours:           e.Hours,
		Notes:           e.Notes,
		IsLocked:        e.IsLocked,
		IsRunning:       e.IsRunning,
		MirrorUserID:    e.MirrorUserID,
		MirrorProjectID: e.MirrorProjectID,
		TimesheetID:     e.TimesheetID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting mirror time entry: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateMirrorTimeEntry(e *sqlc.MirrorTimeEntry) error {
	err := s.queries.UpdateMirrorTimeEntry(context.Background(), sqlc.UpdateMirrorTimeEntryParams{
		SpentDate:       e.SpentDate,
		Hours:           e.Hours,
		Notes:           e.Notes,
		IsLocked:        e.IsLocked,
		IsRunning:       e.IsRunning,
		MirrorUserID:    e.MirrorUserID,
		MirrorProjectID: e.MirrorProjectID,
		UpdatedAt:       e.UpdatedAt,
		ID:              e.ID,
	})
	if err != nil {
		return fmt.Errorf("updating mirror time entry: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) SetMirrorTimeEntryTimesheet(entryID string, timesheetID string) error {
	err := s.queries.UpdateMirrorTimeEntryTimesheet(context.Background(), sqlc.UpdateMirrorTimeEntryTimesheetParams{
		TimesheetID: sql.NullString{String: timesheetID, Valid: timesheetID != ""},
		ID:          entryID,
	})
	if err != nil {
		return fmt.Errorf("linking timesheet: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) ListMirrorTimeEntries(configID int64) ([]*sqlc.MirrorTimeEntry, error) {
	rows, err := s.queries.ListMirrorTimeEntries(context.Background(), configID)
	if err != nil {
		return nil, fmt.Errorf("listing mirror time entries: %w", err)
	}
	return pointers(rows), nil
}

func (s *SQLiteDatabase) ListMirrorTimeEntryIDsWithoutTimesheet(configID int64) ([]string, error) {
	ids, err := s.queries.ListMirrorTimeEntryIDsWithoutTimesheet(context.Background(), configID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries without timesheet: %w", err)
	}
	return ids, nil
}

func (s *SQLiteDatabase) CountMirrorTimeEntries(configID int64) (int64, error) {
	n, err := s.queries.CountMirrorTimeEntries(context.Background(), configID)
	if err != nil {
		return 0, fmt.Errorf("counting mirror time entries: %w", err)
	}
	return n, nil
}

// Sync run tracking

func (s *SQLiteDatabase) CreateSyncRun(configID int64, operation string, startedAt time.Time) (*sqlc.SyncRun, error) {
	ctx := context.Background()
	res, err := s.queries.InsertSyncRun(ctx, sqlc.InsertSyncRunParams{
		ConfigID:  sql.NullInt64{Int64: configID, Valid: configID != 0},
		Operation: operation,
		StartedAt: startedAt,
		Status:    hsync.RunRunning,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading sync run id: %w", err)
	}
	return &sqlc.SyncRun{
		ID:        id,
		ConfigID:  sql.NullInt64{Int64: configID, Valid: configID != 0},
		Operation: operation,
		StartedAt: startedAt,
		Status:    hsync.RunRunning,
	}, nil
}

func (s *SQLiteDatabase) FinishSyncRun(id int64, finishedAt time.Time, status string, message string) error {
	err := s.queries.UpdateSyncRunFinished(context.Background(), sqlc.UpdateSyncRunFinishedParams{
		FinishedAt: sql.NullTime{Time: finishedAt, Valid: true},
		Status:     status,
		Message:    message,
		ID:         id,
	})
	if err != nil {
		return fmt.Errorf("finishing sync run: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) ListSyncRuns(limit int) ([]*sqlc.SyncRun, error) {
	runs, err := s.queries.GetSyncRuns(context.Background(), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	return pointers(runs), nil
}

func (s *SQLiteDatabase) MaxSyncRunID() (int64, error) {
	id, err := s.queries.GetMaxSyncRunID(context.Background())
	if err != nil {
		return 0, fmt.Errorf("getting max sync run ID: %w", err)
	}
	return id, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// BackupTo creates a complete copy of the database at destPath using VACUUM INTO.
func (s *SQLiteDatabase) BackupTo(destPath string) error {
	_, err := s.db.Exec("VACUUM INTO ?", destPath)
	if err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Close closes the database connection. Closing a transactional view is a no-op.
func (s *SQLiteDatabase) Close() error {
	if s.inTx {
		return nil
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// findOne converts a single-row query result to the (nil, nil) not-found convention.
func findOne[T any](row T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return &row, nil
}

func pointers[T any](rows []T) []*T {
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result
}

// Compile-time check that SQLiteDatabase implements hsync.Database interface
var _ hsync.Database = (*SQLiteDatabase)(nil)
