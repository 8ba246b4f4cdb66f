package hsync

import (
	"time"

	"harvest-sync/internal/database/sqlc"
)

// Database is the mirror store and the local domain the projector writes into.
// Find methods return (nil, nil) when the record does not exist.
type Database interface {
	// WithTx runs fn inside a single transaction. If fn returns an error every
	// mutation made through tx is rolled back. Calling WithTx on a Database
	// that is already transactional runs fn in the enclosing transaction.
	WithTx(fn func(tx Database) error) error

	// Sync configurations

	// CreateSyncConfig inserts a configuration and returns it with its assigned ID.
	// A second active configuration for the same company is rejected with a *ConfigurationError.
	CreateSyncConfig(cfg *sqlc.SyncConfig) (*sqlc.SyncConfig, error)
	FindSyncConfig(id int64) (*sqlc.SyncConfig, error)
	ListSyncConfigs() ([]*sqlc.SyncConfig, error)
	ListActiveSyncConfigs() ([]*sqlc.SyncConfig, error)
	SetSyncConfigActive(id int64, active bool) error

	// UpdateSyncConfigAccess persists the cached capability flags, the current
	// remote user id and the sync level of cfg.
	UpdateSyncConfigAccess(cfg *sqlc.SyncConfig) error
	UpdateSyncConfigLastSync(id int64, at time.Time) error

	// Local domain

	CreateEmployee(e *sqlc.Employee) error
	FindEmployee(id string) (*sqlc.Employee, error)
	// FindEmployeeByWorkEmail returns the oldest employee with exactly this work email.
	FindEmployeeByWorkEmail(email string) (*sqlc.Employee, error)
	ListEmployees() ([]*sqlc.Employee, error)

	CreateProject(p *sqlc.Project) error
	FindProject(id string) (*sqlc.Project, error)
	ListProjects() ([]*sqlc.Project, error)

	CreateTask(t *sqlc.Task) error
	FindTask(id string) (*sqlc.Task, error)
	// FindFirstOpenTask returns the first task of the project whose stage is not folded,
	// ordered by sequence, creation time and id.
	FindFirstOpenTask(projectID string) (*sqlc.Task, error)
	ListTasks(projectID string) ([]*sqlc.Task, error)

	// CreateSaleOrderLine inserts a line and returns it with its assigned ID.
	CreateSaleOrderLine(l *sqlc.SaleOrderLine) (*sqlc.SaleOrderLine, error)
	FindSaleOrderLine(id int64) (*sqlc.SaleOrderLine, error)
	// FindLatestConfirmedSaleOrderLine returns the most recently created line of
	// the project in state "sale" or "done".
	FindLatestConfirmedSaleOrderLine(projectID string) (*sqlc.SaleOrderLine, error)
	ListSaleOrderLines(projectID string) ([]*sqlc.SaleOrderLine, error)

	CreateTimesheet(ts *sqlc.Timesheet) error
	FindTimesheet(id string) (*sqlc.Timesheet, error)
	ListTimesheets() ([]*sqlc.Timesheet, error)
	CountTimesheets() (int64, error)

	// Mirror store

	FindMirrorUser(configID int64, externalID string) (*sqlc.MirrorUser, error)
	FindMirrorUserByID(id string) (*sqlc.MirrorUser, error)
	CreateMirrorUser(u *sqlc.MirrorUser) error
	UpdateMirrorUser(u *sqlc.MirrorUser) error
	ListMirrorUsers(configID int64) ([]*sqlc.MirrorUser, error)
	CountMirrorUsers(configID int64) (int64, error)

	FindMirrorProject(configID int64, externalID string) (*sqlc.MirrorProject, error)
	FindMirrorProjectByID(id string) (*sqlc.MirrorProject, error)
	CreateMirrorProject(p *sqlc.MirrorProject) error
	UpdateMirrorProject(p *sqlc.MirrorProject) error
	ListMirrorProjects(configID int64) ([]*sqlc.MirrorProject, error)
	CountMirrorProjects(configID int64) (int64, error)

	FindMirrorTimeEntry(configID int64, externalID string) (*sqlc.MirrorTimeEntry, error)
	FindMirrorTimeEntryByID(id string) (*sqlc.MirrorTimeEntry, error)
	CreateMirrorTimeEntry(e *sqlc.MirrorTimeEntry) error
	UpdateMirrorTimeEntry(e *sqlc.MirrorTimeEntry) error
	SetMirrorTimeEntryTimesheet(entryID string, timesheetID string) error
	ListMirrorTimeEntries(configID int64) ([]*sqlc.MirrorTimeEntry, error)
	ListMirrorTimeEntryIDsWithoutTimesheet(configID int64) ([]string, error)
	CountMirrorTimeEntries(configID int64) (int64, error)

	// Sync runs

	// CreateSyncRun records the start of an operation. configID is 0 for
	// operations that are not tied to a single configuration.
	CreateSyncRun(configID int64, operation string, startedAt time.Time) (*sqlc.SyncRun, error)
	FinishSyncRun(id int64, finishedAt time.Time, status string, message string) error
	ListSyncRuns(limit int) ([]*sqlc.SyncRun, error)
	// MaxSyncRunID is the snapshot version of the local store.
	MaxSyncRunID() (int64, error)

	// CheckMigrations verifies the database schema is up-to-date.
	CheckMigrations() error

	// BackupTo writes a consistent copy of the database to destPath.
	BackupTo(destPath string) error

	Close() error
}
