package hsync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"harvest-sync/internal/database/sqlc"
)

// DefaultPerPage is the page size used for every remote listing.
const DefaultPerPage = 100

// Options tunes a SyncService.
type Options struct {
	// PerPage is the page size for remote listings. Defaults to DefaultPerPage.
	PerPage int
	// DefaultAPIURL is stored on new configurations that do not name one.
	DefaultAPIURL string
}

// SyncService is the orchestration layer behind the CLI: it runs syncs,
// manages sync configurations, links mirror records to the local domain and
// projects time entries into timesheets.
type SyncService struct {
	database Database
	remotes  RemoteFactory
	logger   Logger
	clock    Clock
	idgen    IDGenerator
	perPage  int
	apiURL   string
}

// NewSyncService creates a SyncService with the provided dependencies.
func NewSyncService(database Database, remotes RemoteFactory, logger Logger, clock Clock, idgen IDGenerator, opts Options) *SyncService {
	if logger == nil {
		logger = NewNopLogger()
	}
	if clock == nil {
		clock = RealClock{}
	}
	if idgen == nil {
		idgen = UUIDGenerator{}
	}
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	return &SyncService{
		database: database,
		remotes:  remotes,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
		perPage:  opts.PerPage,
		apiURL:   opts.DefaultAPIURL,
	}
}

// NewSyncConfig holds the operator-supplied fields of a sync configuration.
type NewSyncConfig struct {
	Company      string
	AccountID    string
	AccessToken  string
	APIURL       string
	SyncDaysBack int
	SyncAllDates bool
	SyncLevel    string
	Active       bool
}

// DefaultSyncDaysBack is the sync window used when none is given.
const DefaultSyncDaysBack = 30

// CreateSyncConfig validates and stores a new sync configuration.
func (s *SyncService) CreateSyncConfig(p NewSyncConfig) (*sqlc.SyncConfig, error) {
	if strings.TrimSpace(p.AccountID) == "" {
		return nil, &ConfigurationError{Field: "account_id", Reason: "required"}
	}
	if strings.TrimSpace(p.AccessToken) == "" {
		return nil, &ConfigurationError{Field: "access_token", Reason: "required"}
	}
	if p.Company == "" {
		p.Company = "default"
	}
	if p.APIURL == "" {
		p.APIURL = s.apiURL
	}
	if p.SyncLevel == "" {
		p.SyncLevel = LevelMyTime
	}
	if !ValidLevel(p.SyncLevel) {
		return nil, &ConfigurationError{Field: "sync_level", Reason: fmt.Sprintf("unknown level %q", p.SyncLevel)}
	}
	if p.SyncDaysBack < 0 {
		return nil, &ConfigurationError{Field: "sync_days_back", Reason: "must not be negative"}
	}
	if p.SyncDaysBack == 0 && !p.SyncAllDates {
		p.SyncDaysBack = DefaultSyncDaysBack
	}

	cfg, err := s.database.CreateSyncConfig(&sqlc.SyncConfig{
		Company:      p.Company,
		AccountID:    strings.TrimSpace(p.AccountID),
		AccessToken:  strings.TrimSpace(p.AccessToken),
		ApiUrl:       p.APIURL,
		SyncDaysBack: int64(p.SyncDaysBack),
		SyncAllDates: p.SyncAllDates,
		SyncLevel:    p.SyncLevel,
		Active:       p.Active,
		CreatedAt:    s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync configuration: %w", err)
	}
	s.logger.Info("created sync configuration", "config_id", cfg.ID, "company", cfg.Company, "level", cfg.SyncLevel)
	return cfg, nil
}

// GetSyncConfig returns the configuration with the given id or a *ConfigurationError.
func (s *SyncService) GetSyncConfig(id int64) (*sqlc.SyncConfig, error) {
	cfg, err := s.database.FindSyncConfig(id)
	if err != nil {
		return nil, fmt.Errorf("finding sync configuration: %w", err)
	}
	if cfg == nil {
		return nil, &ConfigurationError{Field: "config_id", Reason: fmt.Sprintf("sync configuration %d not found", id)}
	}
	return cfg, nil
}

// ListSyncConfigs returns every configuration, active or not.
func (s *SyncService) ListSyncConfigs() ([]*sqlc.SyncConfig, error) {
	return s.database.ListSyncConfigs()
}

// SetSyncConfigActive activates or deactivates a configuration. Activating a
// second configuration for the same company fails with a *ConfigurationError.
func (s *SyncService) SetSyncConfigActive(id int64, active bool) error {
	if _, err := s.GetSyncConfig(id); err != nil {
		return err
	}
	if err := s.database.SetSyncConfigActive(id, active); err != nil {
		return fmt.Errorf("updating sync configuration %d: %w", id, err)
	}
	return nil
}

// TestConnection checks that the credentials of a configuration reach the remote account.
func (s *SyncService) TestConnection(ctx context.Context, configID int64) error {
	cfg, err := s.GetSyncConfig(configID)
	if err != nil {
		return err
	}
	remote, err := s.remote(ctx, cfg)
	if err != nil {
		return err
	}
	company, err := remote.Company(ctx)
	if err != nil {
		return fmt.Errorf("testing connection: %w", err)
	}
	s.logger.Info("connection ok", "config_id", cfg.ID, "company", company.Name)
	return nil
}

// CheckAccess runs the permission probe unconditionally and stores the result.
func (s *SyncService) CheckAccess(ctx context.Context, configID int64) (*Access, error) {
	cfg, err := s.GetSyncConfig(configID)
	if err != nil {
		return nil, err
	}

	var access *Access
	err = s.recordRun(configID, OperationCheckAccess, func() (string, error) {
		remote, err := s.remote(ctx, cfg)
		if err != nil {
			return "", err
		}
		err = s.database.WithTx(func(tx Database) error {
			a, err := s.probeAndStore(ctx, tx, remote, cfg)
			access = a
			return err
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("level=%s users=%t projects=%t all_time=%t",
			access.Level, access.CanAccessUsers, access.CanAccessProjects, access.CanAccessAllTime), nil
	})
	if err != nil {
		return nil, err
	}
	return access, nil
}

// RunAllActive syncs every active configuration in id order. A failing
// configuration does not stop the others; all failures are joined.
func (s *SyncService) RunAllActive(ctx context.Context) ([]*SyncResult, error) {
	configs, err := s.database.ListActiveSyncConfigs()
	if err != nil {
		return nil, fmt.Errorf("listing active sync configurations: %w", err)
	}
	if len(configs) == 0 {
		return nil, ErrNoActiveConfig
	}

	var results []*SyncResult
	var errs []error
	for _, cfg := range configs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := s.RunSync(ctx, cfg.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// remote builds the API client for cfg. Missing credentials are a configuration problem.
func (s *SyncService) remote(ctx context.Context, cfg *sqlc.SyncConfig) (RemoteAPI, error) {
	if cfg.AccountID == "" {
		return nil, &ConfigurationError{Field: "account_id", Reason: "required"}
	}
	if cfg.AccessToken == "" {
		return nil, &ConfigurationError{Field: "access_token", Reason: "required"}
	}
	if s.remotes == nil {
		return nil, &ConfigurationError{Reason: "no remote client configured"}
	}
	remote, err := s.remotes(ctx, cfg)
	if err != nil {
		return nil, &ConfigurationError{Field: "api_url", Reason: err.Error()}
	}
	return remote, nil
}
