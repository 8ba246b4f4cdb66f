package hsync

import (
	"errors"
	"fmt"
)

// ErrNoActiveConfig is returned when an operation needs an active sync configuration and none exists.
var ErrNoActiveConfig = errors.New("no active sync configuration")

// ConfigurationError reports a missing or invalid setting on a sync configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// DataIntegrityError reports a remote payload that cannot be reconciled,
// such as a record without an external id. It is never swallowed.
type DataIntegrityError struct {
	Kind   string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: %s: %s", e.Kind, e.Reason)
}

// SyncError is the single failure reported by RunSync after the run has been rolled back.
type SyncError struct {
	ConfigID int64
	Phase    string
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync of configuration %d failed during %s: %v", e.ConfigID, e.Phase, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsDataIntegrityError reports whether err wraps a *DataIntegrityError.
func IsDataIntegrityError(err error) bool {
	var de *DataIntegrityError
	return errors.As(err, &de)
}
