package hsync

import (
	"context"
	"fmt"
	"time"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/harvest"
)

// Phases of a sync run, as reported in SyncError.
const (
	PhaseSetup       = "setup"
	PhaseProbe       = "permission_probe"
	PhaseUsers       = "users"
	PhaseProjects    = "projects"
	PhaseTimeEntries = "time_entries"
	PhaseCommit      = "commit"
)

// SyncResult summarizes one successful sync run. Counts are records created or changed.
type SyncResult struct {
	ConfigID      int64
	Level         string
	Users         int
	Projects      int
	TimeEntries   int
	ProxyUsers    int
	ProxyProjects int
	Pages         int
	LastSync      time.Time
}

// window is the spent-date filter of a run; empty bounds mean unbounded.
type window struct {
	From string
	To   string
}

// syncWindow derives the date window of cfg from now.
func syncWindow(cfg *sqlc.SyncConfig, now time.Time) window {
	if cfg.SyncAllDates {
		return window{}
	}
	return window{
		From: now.AddDate(0, 0, -int(cfg.SyncDaysBack)).Format(harvest.DateLayout),
		To:   now.Format(harvest.DateLayout),
	}
}

// run carries the state of a single RunSync invocation.
type run struct {
	*reconciler
	svc    *SyncService
	remote RemoteAPI
	window window
	phase  string
}

// RunSync pulls users, projects and time entries for one configuration into
// the mirror store. All mirror mutations of the run commit together; on any
// failure nothing is kept and a *SyncError is returned.
func (s *SyncService) RunSync(ctx context.Context, configID int64) (*SyncResult, error) {
	cfg, err := s.GetSyncConfig(configID)
	if err != nil {
		return nil, &SyncError{ConfigID: configID, Phase: PhaseSetup, Err: err}
	}

	var result *SyncResult
	err = s.recordRun(cfg.ID, OperationSync, func() (string, error) {
		res, err := s.runSync(ctx, cfg)
		if err != nil {
			return "", err
		}
		result = res
		return fmt.Sprintf("level=%s users=%d projects=%d time_entries=%d pages=%d",
			res.Level, res.Users, res.Projects, res.TimeEntries, res.Pages), nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SyncService) runSync(ctx context.Context, cfg *sqlc.SyncConfig) (*SyncResult, error) {
	remote, err := s.remote(ctx, cfg)
	if err != nil {
		return nil, &SyncError{ConfigID: cfg.ID, Phase: PhaseSetup, Err: err}
	}

	result := &SyncResult{ConfigID: cfg.ID}
	r := &run{
		svc:    s,
		remote: remote,
		window: syncWindow(cfg, s.clock.Now()),
		phase:  PhaseSetup,
	}

	err = s.database.WithTx(func(tx Database) error {
		r.reconciler = &reconciler{
			db:     tx,
			cfg:    cfg,
			clock:  s.clock,
			idgen:  s.idgen,
			logger: s.logger,
			result: result,
		}

		if !cfg.CurrentUserID.Valid || cfg.CurrentUserID.String == "" {
			r.phase = PhaseProbe
			if _, err := s.probeAndStore(ctx, tx, remote, cfg); err != nil {
				return err
			}
		}
		result.Level = cfg.SyncLevel
		s.logger.Info("starting sync", "config_id", cfg.ID, "level", cfg.SyncLevel, "from", r.window.From, "to", r.window.To)

		if err := r.syncLevel(ctx); err != nil {
			return err
		}

		r.phase = PhaseCommit
		now := s.clock.Now()
		if err := tx.UpdateSyncConfigLastSync(cfg.ID, now); err != nil {
			return fmt.Errorf("updating last sync: %w", err)
		}
		result.LastSync = now
		return nil
	})
	if err != nil {
		return nil, &SyncError{ConfigID: cfg.ID, Phase: r.phase, Err: err}
	}

	s.logger.Info("sync finished", "config_id", cfg.ID,
		"users", result.Users, "projects", result.Projects, "time_entries", result.TimeEntries,
		"proxy_users", result.ProxyUsers, "proxy_projects", result.ProxyProjects, "pages", result.Pages)
	return result, nil
}

// syncLevel runs the phases selected by the configuration's sync level.
func (r *run) syncLevel(ctx context.Context) error {
	switch r.cfg.SyncLevel {
	case LevelFull:
		if r.cfg.CanAccessUsers {
			if err := r.syncUsers(ctx); err != nil {
				return err
			}
		}
		if r.cfg.CanAccessProjects {
			if err := r.syncProjects(ctx); err != nil {
				return err
			}
		}
		return r.syncTimeEntries(ctx, "")
	case LevelAllTime:
		if r.cfg.CanAccessProjects {
			if err := r.syncProjects(ctx); err != nil {
				return err
			}
		}
		return r.syncTimeEntries(ctx, "")
	case LevelMyTime:
		if !r.cfg.CurrentUserID.Valid || r.cfg.CurrentUserID.String == "" {
			return &ConfigurationError{Field: "current_user_id", Reason: "could not be resolved; required for my_time sync"}
		}
		userID := harvest.ID(r.cfg.CurrentUserID.String)
		if err := r.ensureCurrentUser(ctx, userID); err != nil {
			return err
		}
		if err := r.syncOwnProjects(ctx, userID); err != nil {
			return err
		}
		return r.syncTimeEntries(ctx, userID)
	default:
		return &ConfigurationError{Field: "sync_level", Reason: fmt.Sprintf("unknown level %q", r.cfg.SyncLevel)}
	}
}

// paginate calls fetch for page 1, 2, ... until the page number reaches the
// reported total. fetch returns the total page count from the response.
func (r *run) paginate(ctx context.Context, fetch func(page int) (int, error)) error {
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		total, err := fetch(page)
		if err != nil {
			return err
		}
		r.result.Pages++
		if page >= total {
			return nil
		}
	}
}

func (r *run) syncUsers(ctx context.Context) error {
	r.phase = PhaseUsers
	return r.paginate(ctx, func(page int) (int, error) {
		resp, err := r.remote.ListUsers(ctx, harvest.ListOptions{ActiveOnly: true, Page: page, PerPage: r.svc.perPage})
		if err != nil {
			return 0, fmt.Errorf("listing users page %d: %w", page, err)
		}
		for _, u := range resp.Users {
			rec, err := NormalizeUser(u)
			if err != nil {
				return 0, err
			}
			if _, err := r.upsertUser(rec); err != nil {
				return 0, err
			}
		}
		return resp.TotalPages, nil
	})
}

func (r *run) syncProjects(ctx context.Context) error {
	r.phase = PhaseProjects
	return r.paginate(ctx, func(page int) (int, error) {
		resp, err := r.remote.ListProjects(ctx, harvest.ListOptions{ActiveOnly: true, Page: page, PerPage: r.svc.perPage})
		if err != nil {
			return 0, fmt.Errorf("listing projects page %d: %w", page, err)
		}
		for _, p := range resp.Projects {
			rec, err := NormalizeProject(p)
			if err != nil {
				return 0, err
			}
			if _, err := r.upsertProject(rec); err != nil {
				return 0, err
			}
		}
		return resp.TotalPages, nil
	})
}

// syncTimeEntries pages through the entries in the run window, optionally
// restricted to one user.
func (r *run) syncTimeEntries(ctx context.Context, userID harvest.ID) error {
	r.phase = PhaseTimeEntries
	return r.paginate(ctx, func(page int) (int, error) {
		resp, err := r.remote.ListTimeEntries(ctx, harvest.TimeEntryQuery{
			UserID:  userID,
			From:    r.window.From,
			To:      r.window.To,
			Page:    page,
			PerPage: r.svc.perPage,
		})
		if err != nil {
			return 0, fmt.Errorf("listing time entries page %d: %w", page, err)
		}
		for _, e := range resp.TimeEntries {
			rec, err := NormalizeTimeEntry(e)
			if err != nil {
				return 0, err
			}
			if err := r.reconcileTimeEntry(rec); err != nil {
				return 0, err
			}
		}
		return resp.TotalPages, nil
	})
}

// ensureCurrentUser makes sure the token owner has a mirror record. A failing
// users/me call is skipped and a proxy is created from the id instead.
func (r *run) ensureCurrentUser(ctx context.Context, userID harvest.ID) error {
	r.phase = PhaseUsers
	me, err := r.remote.Me(ctx)
	if err != nil {
		r.logger.Warn("refreshing current user failed, using proxy", "user_id", userID, "error", err)
	} else if me.ID != userID {
		r.logger.Warn("users/me returned a different user, using proxy", "expected", userID, "got", me.ID)
	} else {
		rec, err := NormalizeUser(*me)
		if err != nil {
			return err
		}
		_, err = r.upsertUser(rec)
		return err
	}

	_, err = r.upsertUser(normalizeUserRef(&harvest.UserRef{ID: userID}))
	return err
}

// syncOwnProjects discovers the projects the user has logged time on by
// scanning the first page of their entries without a date filter, then fetches
// each project individually. A failed fetch falls back to a proxy built from
// the embedded reference.
func (r *run) syncOwnProjects(ctx context.Context, userID harvest.ID) error {
	r.phase = PhaseProjects
	resp, err := r.remote.ListTimeEntries(ctx, harvest.TimeEntryQuery{UserID: userID, Page: 1, PerPage: r.svc.perPage})
	if err != nil {
		return fmt.Errorf("discovering projects of user %s: %w", userID, err)
	}
	r.result.Pages++

	seen := make(map[harvest.ID]bool)
	var refs []*harvest.ProjectRef
	for _, e := range resp.TimeEntries {
		if e.Project == nil || e.Project.ID == "" || seen[e.Project.ID] {
			continue
		}
		seen[e.Project.ID] = true
		refs = append(refs, e.Project)
	}

	for _, ref := range refs {
		p, err := r.remote.GetProject(ctx, ref.ID)
		if err != nil {
			r.logger.Warn("project lookup failed, using proxy", "project_id", ref.ID, "error", err)
			if _, err := r.upsertProject(normalizeProjectRef(ref)); err != nil {
				return err
			}
			continue
		}
		rec, err := NormalizeProject(*p)
		if err != nil {
			return err
		}
		if _, err := r.upsertProject(rec); err != nil {
			return err
		}
	}
	return nil
}
