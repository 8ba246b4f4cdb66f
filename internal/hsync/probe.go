package hsync

import (
	"context"
	"database/sql"
	"fmt"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/harvest"
)

// Sync levels, from the narrowest to the widest grant.
const (
	LevelMyTime  = "my_time"
	LevelAllTime = "all_time"
	LevelFull    = "full"
)

var levelRank = map[string]int{
	LevelMyTime:  0,
	LevelAllTime: 1,
	LevelFull:    2,
}

// ValidLevel reports whether level is one of the known sync levels.
func ValidLevel(level string) bool {
	_, ok := levelRank[level]
	return ok
}

// Access is the outcome of a permission probe.
type Access struct {
	CurrentUserID     string // empty when users/me failed
	CanAccessUsers    bool
	CanAccessProjects bool
	CanAccessAllTime  bool
	Level             string // level after the ratchet
}

// probe runs the four capability checks. Each failure only clears its flag
// and is logged; the probe itself never fails.
func (s *SyncService) probe(ctx context.Context, remote RemoteAPI) Access {
	var a Access

	if me, err := remote.Me(ctx); err != nil {
		s.logger.Warn("probe: users/me unavailable", "error", err)
	} else if me.ID == "" {
		s.logger.Warn("probe: users/me returned no id")
	} else {
		a.CurrentUserID = me.ID.String()
	}

	if _, err := remote.ListUsers(ctx, harvest.ListOptions{PerPage: 1, Probe: true}); err != nil {
		s.logger.Warn("probe: users listing unavailable", "error", err)
	} else {
		a.CanAccessUsers = true
	}

	if _, err := remote.ListProjects(ctx, harvest.ListOptions{PerPage: 1, Probe: true}); err != nil {
		s.logger.Warn("probe: projects listing unavailable", "error", err)
	} else {
		a.CanAccessProjects = true
	}

	if _, err := remote.ListTimeEntries(ctx, harvest.TimeEntryQuery{PerPage: 1, Probe: true}); err != nil {
		s.logger.Warn("probe: time entries listing unavailable", "error", err)
	} else {
		a.CanAccessAllTime = true
	}

	return a
}

// ratchetLevel lowers current to what the probed grant allows. It never raises it.
// Only user and project listing decide the ceiling; the all-time entry flag is
// recorded but does not move the level.
func ratchetLevel(current string, a Access) string {
	ceiling := LevelAllTime
	switch {
	case !a.CanAccessUsers && !a.CanAccessProjects:
		ceiling = LevelMyTime
	case a.CanAccessUsers && a.CanAccessProjects:
		ceiling = LevelFull
	}

	rank, ok := levelRank[current]
	if !ok || levelRank[ceiling] < rank {
		return ceiling
	}
	return current
}

// applyAccess copies probe results onto cfg and ratchets its level.
func applyAccess(cfg *sqlc.SyncConfig, a *Access) {
	a.Level = ratchetLevel(cfg.SyncLevel, *a)
	cfg.CanAccessUsers = a.CanAccessUsers
	cfg.CanAccessProjects = a.CanAccessProjects
	cfg.CanAccessAllTime = a.CanAccessAllTime
	cfg.SyncLevel = a.Level
	if a.CurrentUserID != "" {
		cfg.CurrentUserID = sql.NullString{String: a.CurrentUserID, Valid: true}
	}
}

// probeAndStore runs the probe against remote and persists the result through db.
func (s *SyncService) probeAndStore(ctx context.Context, db Database, remote RemoteAPI, cfg *sqlc.SyncConfig) (*Access, error) {
	a := s.probe(ctx, remote)
	before := cfg.SyncLevel
	applyAccess(cfg, &a)
	if a.Level != before {
		s.logger.Info("sync level lowered by probe", "config_id", cfg.ID, "from", before, "to", a.Level)
	}
	if err := db.UpdateSyncConfigAccess(cfg); err != nil {
		return nil, fmt.Errorf("storing probe result: %w", err)
	}
	return &a, nil
}
