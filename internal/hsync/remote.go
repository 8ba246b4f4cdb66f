package hsync

import (
	"context"

	"harvest-sync/internal/database/sqlc"
	"harvest-sync/internal/harvest"
)

// RemoteAPI is the subset of the Harvest v2 API the orchestrator consumes.
// *harvest.Client implements it.
type RemoteAPI interface {
	Company(ctx context.Context) (*harvest.Company, error)
	Me(ctx context.Context) (*harvest.User, error)
	ListUsers(ctx context.Context, opts harvest.ListOptions) (*harvest.UsersPage, error)
	ListProjects(ctx context.Context, opts harvest.ListOptions) (*harvest.ProjectsPage, error)
	GetProject(ctx context.Context, id harvest.ID) (*harvest.Project, error)
	ListTimeEntries(ctx context.Context, q harvest.TimeEntryQuery) (*harvest.TimeEntriesPage, error)
}

// RemoteFactory builds a RemoteAPI for one sync configuration's credentials.
type RemoteFactory func(ctx context.Context, cfg *sqlc.SyncConfig) (RemoteAPI, error)

var _ RemoteAPI = (*harvest.Client)(nil)
