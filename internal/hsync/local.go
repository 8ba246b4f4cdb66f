package hsync

import (
	"database/sql"
	"fmt"
	"strings"

	"harvest-sync/internal/database/sqlc"
)

// Sale order line states. Only "sale" and "done" count as confirmed.
const (
	LineDraft  = "draft"
	LineSale   = "sale"
	LineDone   = "done"
	LineCancel = "cancel"
)

// AddEmployee creates a local employee. workEmail is used to link mirror users.
func (s *SyncService) AddEmployee(name, workEmail string) (*sqlc.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("employee name is required")
	}
	e := &sqlc.Employee{
		ID:        s.idgen.New(),
		Name:      strings.TrimSpace(name),
		WorkEmail: nullString(strings.TrimSpace(workEmail)),
		CreatedAt: s.clock.Now(),
	}
	if err := s.database.CreateEmployee(e); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}
	return e, nil
}

func (s *SyncService) ListEmployees() ([]*sqlc.Employee, error) {
	return s.database.ListEmployees()
}

// AddProject creates a local project.
func (s *SyncService) AddProject(name string) (*sqlc.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("project name is required")
	}
	p := &sqlc.Project{
		ID:        s.idgen.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: s.clock.Now(),
	}
	if err := s.database.CreateProject(p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return p, nil
}

func (s *SyncService) ListProjects() ([]*sqlc.Project, error) {
	return s.database.ListProjects()
}

// AddTask creates a task on a local project. folded marks a closed stage.
func (s *SyncService) AddTask(projectID, name string, sequence int64, folded bool) (*sqlc.Task, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}
	t := &sqlc.Task{
		ID:          s.idgen.New(),
		ProjectID:   projectID,
		Name:        name,
		StageFolded: folded,
		Sequence:    sequence,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.database.CreateTask(t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

func (s *SyncService) ListTasks(projectID string) ([]*sqlc.Task, error) {
	return s.database.ListTasks(projectID)
}

// AddSaleOrderLine creates a sale order line on a local project.
func (s *SyncService) AddSaleOrderLine(projectID, name, state string) (*sqlc.SaleOrderLine, error) {
	switch state {
	case LineDraft, LineSale, LineDone, LineCancel:
	default:
		return nil, fmt.Errorf("unknown sale order line state %q", state)
	}
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}
	l, err := s.database.CreateSaleOrderLine(&sqlc.SaleOrderLine{
		ProjectID: sql.NullString{String: projectID, Valid: true},
		Name:      name,
		State:     state,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating sale order line: %w", err)
	}
	return l, nil
}

func (s *SyncService) ListSaleOrderLines(projectID string) ([]*sqlc.SaleOrderLine, error) {
	return s.database.ListSaleOrderLines(projectID)
}

func (s *SyncService) ListTimesheets() ([]*sqlc.Timesheet, error) {
	return s.database.ListTimesheets()
}

func (s *SyncService) requireProject(projectID string) error {
	p, err := s.database.FindProject(projectID)
	if err != nil {
		return fmt.Errorf("finding project: %w", err)
	}
	if p == nil {
		return fmt.Errorf("project %s not found", projectID)
	}
	return nil
}

// LinkMirrorProject links the mirror project with the given external id to a local project.
func (s *SyncService) LinkMirrorProject(configID int64, externalID, projectID string) (*sqlc.MirrorProject, error) {
	mp, err := s.database.FindMirrorProject(configID, externalID)
	if err != nil {
		return nil, fmt.Errorf("finding mirror project: %w", err)
	}
	if mp == nil {
		return nil, fmt.Errorf("mirror project %s not found in configuration %d", externalID, configID)
	}
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}
	mp.ProjectID = sql.NullString{String: projectID, Valid: true}
	mp.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateMirrorProject(mp); err != nil {
		return nil, fmt.Errorf("linking mirror project: %w", err)
	}
	return mp, nil
}

// LinkMirrorUser links the mirror user with the given external id to an employee.
func (s *SyncService) LinkMirrorUser(configID int64, externalID, employeeID string) (*sqlc.MirrorUser, error) {
	mu, err := s.database.FindMirrorUser(configID, externalID)
	if err != nil {
		return nil, fmt.Errorf("finding mirror user: %w", err)
	}
	if mu == nil {
		return nil, fmt.Errorf("mirror user %s not found in configuration %d", externalID, configID)
	}
	emp, err := s.database.FindEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	if emp == nil {
		return nil, fmt.Errorf("employee %s not found", employeeID)
	}
	mu.EmployeeID = sql.NullString{String: emp.ID, Valid: true}
	mu.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateMirrorUser(mu); err != nil {
		return nil, fmt.Errorf("linking mirror user: %w", err)
	}
	return mu, nil
}

func (s *SyncService) ListMirrorUsers(configID int64) ([]*sqlc.MirrorUser, error) {
	return s.database.ListMirrorUsers(configID)
}

func (s *SyncService) ListMirrorProjects(configID int64) ([]*sqlc.MirrorProject, error) {
	return s.database.ListMirrorProjects(configID)
}

func (s *SyncService) ListMirrorTimeEntries(configID int64) ([]*sqlc.MirrorTimeEntry, error) {
	return s.database.ListMirrorTimeEntries(configID)
}
