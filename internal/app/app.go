package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"harvest-sync/internal/config"
	"harvest-sync/internal/database"
	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/encryption"
	"harvest-sync/internal/harvest"
	"harvest-sync/internal/hsync"
	"harvest-sync/internal/vault"
)

// Options adjusts how an HSApp is built.
type Options struct {
	// Verbose enables debug logging.
	Verbose bool
	// Remotes replaces the Harvest client factory. Nil uses NewRemoteFactory.
	Remotes hsync.RemoteFactory
}

// HSApp is the application layer between the CLI and SyncService.
// It constructs all dependencies from config and manages the mirror-store
// lifecycle on Close.
type HSApp struct {
	cfg       *config.Config
	db        hsync.Database
	snapshots *hsync.Snapshotter // nil without a vault
	service   *hsync.SyncService
	logger    *slog.Logger
	op        *Operation
	logFile   io.Closer
}

// NewHSApp creates a fully wired HSApp from the given config.
// operation names the CLI command being run (e.g. "sync", "account add").
// The caller must call Close when done.
func NewHSApp(cfg *config.Config, operation string, opts Options) (*HSApp, error) {
	op := NewOperation(operation, time.Now())

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger, logFile, err := newLogger(cfg.LogDir, cfg.Log, op.ID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	db, err := database.NewDatabaseFromConfig(cfg.Database, cfg.InstanceID)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := db.CheckMigrations(); err != nil {
		db.Close()
		logFile.Close()
		return nil, fmt.Errorf("database schema out of date: %w", err)
	}

	adapter := &slogAdapter{l: logger}

	var snapshots *hsync.Snapshotter
	if len(cfg.Vaults) > 0 {
		v, err := vault.NewVaultFromConfig(cfg.Vaults[0])
		if err != nil {
			db.Close()
			logFile.Close()
			return nil, fmt.Errorf("creating vault: %w", err)
		}
		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			db.Close()
			logFile.Close()
			return nil, fmt.Errorf("creating encryptor: %w", err)
		}
		snapshots = hsync.NewSnapshotter(db, v, enc, cfg.InstanceID, adapter)

		if err := snapshots.CheckVersion(); err != nil {
			db.Close()
			logFile.Close()
			return nil, err
		}
	}

	remotes := opts.Remotes
	if remotes == nil {
		remotes = NewRemoteFactory(cfg.Harvest)
	}

	svc := hsync.NewSyncService(db, remotes, adapter, hsync.RealClock{}, hsync.UUIDGenerator{}, hsync.Options{
		PerPage:       cfg.Harvest.PerPage,
		DefaultAPIURL: cfg.Harvest.APIURL,
	})

	logger.Debug("starting operation", "operation", operation, "instance_id", cfg.InstanceID)

	return &HSApp{
		cfg:       cfg,
		db:        db,
		snapshots: snapshots,
		service:   svc,
		logger:    logger,
		op:        op,
		logFile:   logFile,
	}, nil
}

// NewRemoteFactory returns a factory that builds a Harvest client per sync
// configuration, using the timeouts and user agent from the app config.
func NewRemoteFactory(hc config.HarvestConfig) hsync.RemoteFactory {
	return func(ctx context.Context, sc *sqlc.SyncConfig) (hsync.RemoteAPI, error) {
		baseURL := sc.ApiUrl
		if baseURL == "" {
			baseURL = hc.APIURL
		}
		c, err := harvest.NewClient(ctx, harvest.Options{
			BaseURL:      baseURL,
			AccountID:    sc.AccountID,
			AccessToken:  sc.AccessToken,
			UserAgent:    hc.UserAgent,
			ProbeTimeout: hc.ProbeTimeout.Duration,
			ListTimeout:  hc.ListTimeout.Duration,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Sync configurations

func (a *HSApp) CreateSyncConfig(p hsync.NewSyncConfig) (*sqlc.SyncConfig, error) {
	a.op.MarkDirty()
	return a.service.CreateSyncConfig(p)
}

func (a *HSApp) ListSyncConfigs() ([]*sqlc.SyncConfig, error) {
	return a.service.ListSyncConfigs()
}

func (a *HSApp) SetSyncConfigActive(id int64, active bool) error {
	a.op.MarkDirty()
	return a.service.SetSyncConfigActive(id, active)
}

func (a *HSApp) TestConnection(ctx context.Context, configID int64) error {
	return a.service.TestConnection(ctx, configID)
}

func (a *HSApp) CheckAccess(ctx context.Context, configID int64) (*hsync.Access, error) {
	a.op.MarkDirty()
	return a.service.CheckAccess(ctx, configID)
}

// Sync runs one configuration.
func (a *HSApp) Sync(ctx context.Context, configID int64) (*hsync.SyncResult, error) {
	a.op.MarkDirty()
	return a.service.RunSync(ctx, configID)
}

// SyncAll runs every active configuration.
func (a *HSApp) SyncAll(ctx context.Context) ([]*hsync.SyncResult, error) {
	a.op.MarkDirty()
	return a.service.RunAllActive(ctx)
}

// GetHistory returns the most recent sync runs.
func (a *HSApp) GetHistory(limit int) ([]*sqlc.SyncRun, error) {
	return a.service.GetHistory(limit)
}

// Local domain

func (a *HSApp) AddEmployee(name, workEmail string) (*sqlc.Employee, error) {
	a.op.MarkDirty()
	return a.service.AddEmployee(name, workEmail)
}

func (a *HSApp) ListEmployees() ([]*sqlc.Employee, error) {
	return a.service.ListEmployees()
}

func (a *HSApp) AddProject(name string) (*sqlc.Project, error) {
	a.op.MarkDirty()
	return a.service.AddProject(name)
}

func (a *HSApp) ListProjects() ([]*sqlc.Project, error) {
	return a.service.ListProjects()
}

func (a *HSApp) AddTask(projectID, name string, sequence int64, folded bool) (*sqlc.Task, error) {
	a.op.MarkDirty()
	return a.service.AddTask(projectID, name, sequence, folded)
}

func (a *HSApp) ListTasks(projectID string) ([]*sqlc.Task, error) {
	return a.service.ListTasks(projectID)
}

func (a *HSApp) AddSaleOrderLine(projectID, name, state string) (*sqlc.SaleOrderLine, error) {
	a.op.MarkDirty()
	return a.service.AddSaleOrderLine(projectID, name, state)
}

func (a *HSApp) ListSaleOrderLines(projectID string) ([]*sqlc.SaleOrderLine, error) {
	return a.service.ListSaleOrderLines(projectID)
}

func (a *HSApp) ListTimesheets() ([]*sqlc.Timesheet, error) {
	return a.service.ListTimesheets()
}

// Mirror

func (a *HSApp) ListMirrorUsers(configID int64) ([]*sqlc.MirrorUser, error) {
	return a.service.ListMirrorUsers(configID)
}

func (a *HSApp) ListMirrorProjects(configID int64) ([]*sqlc.MirrorProject, error) {
	return a.service.ListMirrorProjects(configID)
}

func (a *HSApp) ListMirrorTimeEntries(configID int64) ([]*sqlc.MirrorTimeEntry, error) {
	return a.service.ListMirrorTimeEntries(configID)
}

func (a *HSApp) LinkMirrorProject(configID int64, externalID, projectID string) (*sqlc.MirrorProject, error) {
	a.op.MarkDirty()
	return a.service.LinkMirrorProject(configID, externalID, projectID)
}

func (a *HSApp) LinkMirrorUser(configID int64, externalID, employeeID string) (*sqlc.MirrorUser, error) {
	a.op.MarkDirty()
	return a.service.LinkMirrorUser(configID, externalID, employeeID)
}

// Timesheets

func (a *HSApp) CreateTimesheets(entryIDs []string, opts hsync.ProjectionOptions) (int, error) {
	a.op.MarkDirty()
	return a.service.CreateTimesheets(entryIDs, opts)
}

func (a *HSApp) CreatePendingTimesheets(configID int64, opts hsync.ProjectionOptions) (int, error) {
	a.op.MarkDirty()
	return a.service.CreatePendingTimesheets(configID, opts)
}

// Close finishes the operation and closes all resources. A dirty operation
// uploads a snapshot of the mirror store to the vault before the database
// is closed.
func (a *HSApp) Close() error {
	var firstErr error

	if a.op.Dirty && a.snapshots != nil {
		if _, err := a.snapshots.Upload(); err != nil {
			a.logger.Error("snapshot upload failed", "error", err)
			firstErr = err
		}
	}

	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	a.logger.Debug("operation finished", "operation", a.op.Name, "elapsed", time.Since(a.op.Started).Round(time.Millisecond))

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}

// RestoreSnapshot downloads the latest snapshot from the first vault,
// decrypts it with the passphrase and writes the SQLite file to outPath.
// It needs no local database, so it works on a fresh machine.
func RestoreSnapshot(cfg *config.Config, passphrase, outPath string) error {
	if len(cfg.Vaults) == 0 {
		return fmt.Errorf("no vaults configured")
	}
	v, err := vault.NewVaultFromConfig(cfg.Vaults[0])
	if err != nil {
		return fmt.Errorf("creating vault: %w", err)
	}
	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		return fmt.Errorf("creating encryptor: %w", err)
	}
	dc, err := enc.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking private key: %w", err)
	}

	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".restore-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	snap := hsync.NewSnapshotter(nil, v, enc, cfg.InstanceID, nil)
	if err := snap.Restore(dc, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing restored snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("moving restored snapshot into place: %w", err)
	}
	return nil
}

// SetupKeys generates the snapshot key pair.
func SetupKeys(cfg *config.Config, passphrase string) error {
	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		return fmt.Errorf("creating encryptor: %w", err)
	}
	if err := enc.Setup(passphrase); err != nil {
		return fmt.Errorf("setting up keys: %w", err)
	}
	return nil
}

// DatabasePath is where the sqlite mirror store of cfg lives.
func DatabasePath(cfg *config.Config) string {
	return filepath.Join(cfg.Database.DataDir, cfg.InstanceID+".db")
}
