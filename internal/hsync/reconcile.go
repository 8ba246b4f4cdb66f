package hsync

import (
	"database/sql"
	"fmt"

	"harvest-sync/internal/database/sqlc"
)

// reconciler upserts canonical records into the mirror store of one configuration.
// It is created per run and always operates on the run's transaction.
type reconciler struct {
	db     Database
	cfg    *sqlc.SyncConfig
	clock  Clock
	idgen  IDGenerator
	logger Logger
	result *SyncResult
}

// upsertUser finds or creates the mirror user for rec and applies the merge policy.
func (r *reconciler) upsertUser(rec UserRecord) (*sqlc.MirrorUser, error) {
	existing, err := r.db.FindMirrorUser(r.cfg.ID, rec.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("finding mirror user %s: %w", rec.ExternalID, err)
	}
	now := r.clock.Now()

	if existing == nil {
		u := &sqlc.MirrorUser{
			ID:         r.idgen.New(),
			ConfigID:   r.cfg.ID,
			ExternalID: rec.ExternalID,
			Name:       rec.Name,
			Email:      nullString(rec.Email),
			IsActive:   rec.Active,
			IsProxy:    rec.Variant == Proxy,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.linkEmployee(u); err != nil {
			return nil, err
		}
		if err := r.db.CreateMirrorUser(u); err != nil {
			return nil, fmt.Errorf("creating mirror user %s: %w", rec.ExternalID, err)
		}
		r.result.Users++
		if u.IsProxy {
			r.result.ProxyUsers++
		}
		return u, nil
	}

	updated := *existing
	mergeUser(&updated, rec)
	if !updated.EmployeeID.Valid {
		if err := r.linkEmployee(&updated); err != nil {
			return nil, err
		}
	}
	if updated == *existing {
		return existing, nil
	}
	updated.UpdatedAt = now
	if err := r.db.UpdateMirrorUser(&updated); err != nil {
		return nil, fmt.Errorf("updating mirror user %s: %w", rec.ExternalID, err)
	}
	r.result.Users++
	return &updated, nil
}

// mergeUser applies rec onto u. A full record overwrites every remote field,
// except that a real name is never replaced by a placeholder. A proxy only
// fills the name of a record that is itself still a proxy.
func mergeUser(u *sqlc.MirrorUser, rec UserRecord) {
	synthetic := rec.Name == SyntheticUserName(rec.ExternalID)
	keepName := synthetic && u.Name != SyntheticUserName(u.ExternalID)

	if rec.Variant == Full {
		if !keepName {
			u.Name = rec.Name
		}
		u.Email = nullString(rec.Email)
		u.IsActive = rec.Active
		u.IsProxy = false
		return
	}

	if u.IsProxy && !keepName {
		u.Name = rec.Name
	}
}

// linkEmployee sets the employee link of u by exact work email match.
func (r *reconciler) linkEmployee(u *sqlc.MirrorUser) error {
	if !u.Email.Valid || u.Email.String == "" {
		return nil
	}
	emp, err := r.db.FindEmployeeByWorkEmail(u.Email.String)
	if err != nil {
		return fmt.Errorf("finding employee for %s: %w", u.Email.String, err)
	}
	if emp != nil {
		u.EmployeeID = sql.NullString{String: emp.ID, Valid: true}
		r.logger.Debug("linked mirror user to employee", "external_id", u.ExternalID, "employee_id", emp.ID)
	}
	return nil
}

// upsertProject finds or creates the mirror project for rec and applies the merge policy.
func (r *reconciler) upsertProject(rec ProjectRecord) (*sqlc.MirrorProject, error) {
	existing, err := r.db.FindMirrorProject(r.cfg.ID, rec.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("finding mirror project %s: %w", rec.ExternalID, err)
	}
	now := r.clock.Now()

	if existing == nil {
		p := &sqlc.MirrorProject{
			ID:         r.idgen.New(),
			ConfigID:   r.cfg.ID,
			ExternalID: rec.ExternalID,
			Name:       rec.Name,
			Code:       rec.Code,
			IsActive:   rec.Active,
			Budget:     nullFloat(rec.Budget),
			IsProxy:    rec.Variant == Proxy,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.db.CreateMirrorProject(p); err != nil {
			return nil, fmt.Errorf("creating mirror project %s: %w", rec.ExternalID, err)
		}
		r.result.Projects++
		if p.IsProxy {
			r.result.ProxyProjects++
		}
		return p, nil
	}

	updated := *existing
	mergeProject(&updated, rec)
	if updated == *existing {
		return existing, nil
	}
	updated.UpdatedAt = now
	if err := r.db.UpdateMirrorProject(&updated); err != nil {
		return nil, fmt.Errorf("updating mirror project %s: %w", rec.ExternalID, err)
	}
	r.result.Projects++
	return &updated, nil
}

// mergeProject applies rec onto p.
//
// A full record overwrites name, code, active flag and budget and clears the
// proxy tag; a real name is never replaced by a placeholder. A proxy replaces
// the name only when it carries a real one and p still holds a proxy or a
// placeholder name, and replaces the code only when it carries one. Proxies
// never touch the active flag or the budget.
func mergeProject(p *sqlc.MirrorProject, rec ProjectRecord) {
	existingSynthetic := IsSyntheticProjectName(p.Name, p.ExternalID)

	if rec.Variant == Full {
		if !rec.Synthetic() || existingSynthetic {
			p.Name = rec.Name
		}
		p.Code = rec.Code
		p.IsActive = rec.Active
		p.Budget = nullFloat(rec.Budget)
		p.IsProxy = false
		return
	}

	if !rec.Synthetic() && (p.IsProxy || existingSynthetic) {
		p.Name = rec.Name
	}
	if rec.Code != "" {
		p.Code = rec.Code
	}
}

// upsertTimeEntry finds or creates the mirror entry for rec. The foreign keys
// must already be resolved. Remote fields are always overwritten; the
// timesheet link is preserved.
func (r *reconciler) upsertTimeEntry(rec TimeEntryRecord, userID string, projectID sql.NullString) (*sqlc.MirrorTimeEntry, error) {
	existing, err := r.db.FindMirrorTimeEntry(r.cfg.ID, rec.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("finding mirror time entry %s: %w", rec.ExternalID, err)
	}
	now := r.clock.Now()

	if existing == nil {
		e := &sqlc.MirrorTimeEntry{
			ID:              r.idgen.New(),
			ConfigID:        r.cfg.ID,
			ExternalID:      rec.ExternalID,
			SpentDate:       rec.SpentDate,
			Hours:           rec.Hours,
			Notes:           nullStringPtr(rec.Notes),
			IsLocked:        rec.Locked,
			IsRunning:       rec.Running,
			MirrorUserID:    userID,
			MirrorProjectID: projectID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.db.CreateMirrorTimeEntry(e); err != nil {
			return nil, fmt.Errorf("creating mirror time entry %s: %w", rec.ExternalID, err)
		}
		r.result.TimeEntries++
		return e, nil
	}

	updated := *existing
	updated.SpentDate = rec.SpentDate
	updated.Hours = rec.Hours
	updated.Notes = nullStringPtr(rec.Notes)
	updated.IsLocked = rec.Locked
	updated.IsRunning = rec.Running
	updated.MirrorUserID = userID
	updated.MirrorProjectID = projectID
	if updated == *existing {
		return existing, nil
	}
	updated.UpdatedAt = now
	if err := r.db.UpdateMirrorTimeEntry(&updated); err != nil {
		return nil, fmt.Errorf("updating mirror time entry %s: %w", rec.ExternalID, err)
	}
	r.result.TimeEntries++
	return &updated, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
