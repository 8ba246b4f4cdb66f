package hsync

import (
	"testing"

	"harvest-sync/internal/database/sqlc"
)

func TestRatchetLevel(t *testing.T) {
	all := Access{CanAccessUsers: true, CanAccessProjects: true, CanAccessAllTime: true}
	noUsers := Access{CanAccessProjects: true, CanAccessAllTime: true}
	noProjects := Access{CanAccessUsers: true, CanAccessAllTime: true}
	nothing := Access{CanAccessAllTime: true}
	noAllTime := Access{CanAccessUsers: true, CanAccessProjects: true}

	tests := []struct {
		name    string
		current string
		access  Access
		want    string
	}{
		{"full stays full", LevelFull, all, LevelFull},
		{"all_time is never raised", LevelAllTime, all, LevelAllTime},
		{"my_time is never raised", LevelMyTime, all, LevelMyTime},
		{"full without users", LevelFull, noUsers, LevelAllTime},
		{"full without projects", LevelFull, noProjects, LevelAllTime},
		{"all_time without users", LevelAllTime, noUsers, LevelAllTime},
		{"full without users and projects", LevelFull, nothing, LevelMyTime},
		{"all_time without users and projects", LevelAllTime, nothing, LevelMyTime},
		{"all time entries do not lower full", LevelFull, noAllTime, LevelFull},
		{"all time entries do not lower all_time", LevelAllTime, noAllTime, LevelAllTime},
		{"no access at all", LevelFull, Access{}, LevelMyTime},
		{"unknown level takes the ceiling", "everything", all, LevelFull},
		{"empty level takes the ceiling", "", noUsers, LevelAllTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ratchetLevel(tt.current, tt.access); got != tt.want {
				t.Errorf("ratchetLevel(%q, %+v) = %q, want %q", tt.current, tt.access, got, tt.want)
			}
		})
	}
}

func TestRatchetLevel_RepeatedProbesNeverRaise(t *testing.T) {
	level := LevelFull
	for _, a := range []Access{
		{CanAccessProjects: true, CanAccessAllTime: true},
		{CanAccessUsers: true, CanAccessProjects: true, CanAccessAllTime: true},
		{},
		{CanAccessUsers: true, CanAccessProjects: true, CanAccessAllTime: true},
	} {
		next := ratchetLevel(level, a)
		if levelRank[next] > levelRank[level] {
			t.Fatalf("ratchetLevel(%q, %+v) = %q raised the level", level, a, next)
		}
		level = next
	}
	if level != LevelMyTime {
		t.Errorf("final level = %q, want %q", level, LevelMyTime)
	}
}

func TestApplyAccess(t *testing.T) {
	cfg := &sqlc.SyncConfig{SyncLevel: LevelFull}
	a := &Access{CurrentUserID: "7", CanAccessProjects: true, CanAccessAllTime: true}

	applyAccess(cfg, a)

	if a.Level != LevelAllTime || cfg.SyncLevel != LevelAllTime {
		t.Errorf("level = %q / %q, want %q", a.Level, cfg.SyncLevel, LevelAllTime)
	}
	if cfg.CanAccessUsers || !cfg.CanAccessProjects || !cfg.CanAccessAllTime {
		t.Errorf("flags = %v/%v/%v, want false/true/true", cfg.CanAccessUsers, cfg.CanAccessProjects, cfg.CanAccessAllTime)
	}
	if !cfg.CurrentUserID.Valid || cfg.CurrentUserID.String != "7" {
		t.Errorf("CurrentUserID = %v, want 7", cfg.CurrentUserID)
	}

	// A probe without users/me keeps the known user id.
	applyAccess(cfg, &Access{CanAccessProjects: true, CanAccessAllTime: true})
	if cfg.CurrentUserID.String != "7" {
		t.Errorf("CurrentUserID = %v, want 7 kept", cfg.CurrentUserID)
	}
}
