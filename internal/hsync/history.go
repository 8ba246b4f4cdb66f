package hsync

import (
	"fmt"

	"harvest-sync/internal/database/sqlc"
)

// Operation names recorded in the sync run history.
const (
	OperationSync        = "sync"
	OperationCheckAccess = "check_access"
	OperationTimesheets  = "timesheets"
)

// Run statuses.
const (
	RunRunning = "running"
	RunSuccess = "success"
	RunError   = "error"
)

// GetHistory returns the most recent sync runs, ordered newest first.
func (s *SyncService) GetHistory(limit int) ([]*sqlc.SyncRun, error) {
	runs, err := s.database.ListSyncRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("listing sync runs: %w", err)
	}
	return runs, nil
}

// recordRun wraps fn in a sync run row. The row is written outside any
// transaction fn opens, so a rolled-back run is still visible in the history.
// fn returns the success message stored on the row.
func (s *SyncService) recordRun(configID int64, operation string, fn func() (string, error)) error {
	run, err := s.database.CreateSyncRun(configID, operation, s.clock.Now())
	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}

	msg, runErr := fn()
	status := RunSuccess
	if runErr != nil {
		status = RunError
		msg = runErr.Error()
		s.logger.Error("run failed", "run_id", run.ID, "operation", operation, "config_id", configID, "error", runErr)
	}

	if err := s.database.FinishSyncRun(run.ID, s.clock.Now(), status, msg); err != nil {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("finishing sync run %d: %w", run.ID, err)
	}
	return runErr
}
