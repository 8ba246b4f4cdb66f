package hsync

import (
	"database/sql"
	"fmt"
)

// reconcileTimeEntry resolves the user and project references of rec against
// the mirror store, creating proxies from the embedded data, and then upserts
// the entry itself. An entry without a project keeps an empty project link.
func (r *reconciler) reconcileTimeEntry(rec TimeEntryRecord) error {
	user, err := r.upsertUser(rec.User)
	if err != nil {
		return fmt.Errorf("resolving user of time entry %s: %w", rec.ExternalID, err)
	}

	var projectID sql.NullString
	if rec.Project != nil {
		project, err := r.upsertProject(*rec.Project)
		if err != nil {
			return fmt.Errorf("resolving project of time entry %s: %w", rec.ExternalID, err)
		}
		projectID = sql.NullString{String: project.ID, Valid: true}
	} else {
		r.logger.Debug("time entry has no project", "external_id", rec.ExternalID)
	}

	if _, err := r.upsertTimeEntry(rec, user.ID, projectID); err != nil {
		return err
	}
	return nil
}
