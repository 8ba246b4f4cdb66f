package hsync

import (
	"database/sql"
	"testing"

	"harvest-sync/internal/database/sqlc"
)

func TestMergeUser(t *testing.T) {
	tests := []struct {
		name     string
		existing sqlc.MirrorUser
		rec      UserRecord
		want     sqlc.MirrorUser
	}{
		{
			name:     "full overwrites proxy",
			existing: sqlc.MirrorUser{ExternalID: "1", Name: "User 1", IsProxy: true, IsActive: true},
			rec:      UserRecord{ExternalID: "1", Name: "Ada Lovelace", Email: "ada@example.com", Variant: Full},
			want: sqlc.MirrorUser{ExternalID: "1", Name: "Ada Lovelace", IsActive: false,
				Email: sql.NullString{String: "ada@example.com", Valid: true}},
		},
		{
			name:     "full placeholder keeps real name",
			existing: sqlc.MirrorUser{ExternalID: "1", Name: "Ada Lovelace", IsActive: true},
			rec:      UserRecord{ExternalID: "1", Name: "User 1", Email: "ada@new.example.com", Active: true, Variant: Full},
			want: sqlc.MirrorUser{ExternalID: "1", Name: "Ada Lovelace", IsActive: true,
				Email: sql.NullString{String: "ada@new.example.com", Valid: true}},
		},
		{
			name:     "proxy leaves full record alone",
			existing: sqlc.MirrorUser{ExternalID: "1", Name: "Ada Lovelace", IsActive: false},
			rec:      UserRecord{ExternalID: "1", Name: "Ada L.", Active: true, Variant: Proxy},
			want:     sqlc.MirrorUser{ExternalID: "1", Name: "Ada Lovelace", IsActive: false},
		},
		{
			name:     "proxy renames proxy",
			existing: sqlc.MirrorUser{ExternalID: "1", Name: "User 1", IsProxy: true, IsActive: true},
			rec:      UserRecord{ExternalID: "1", Name: "Ada", Active: true, Variant: Proxy},
			want:     sqlc.MirrorUser{ExternalID: "1", Name: "Ada", IsProxy: true, IsActive: true},
		},
		{
			name:     "proxy placeholder keeps proxy name",
			existing: sqlc.MirrorUser{ExternalID: "1", Name: "Ada", IsProxy: true, IsActive: true},
			rec:      UserRecord{ExternalID: "1", Name: "User 1", Active: true, Variant: Proxy},
			want:     sqlc.MirrorUser{ExternalID: "1", Name: "Ada", IsProxy: true, IsActive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.existing
			mergeUser(&got, tt.rec)
			if got != tt.want {
				t.Errorf("mergeUser() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeProject(t *testing.T) {
	budget := 120.0

	tests := []struct {
		name     string
		existing sqlc.MirrorProject
		rec      ProjectRecord
		want     sqlc.MirrorProject
	}{
		{
			name:     "full overwrites proxy",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "OLD", IsProxy: true, IsActive: true},
			rec:      ProjectRecord{ExternalID: "10", Name: "Apollo Program", Code: "APO", Active: true, Budget: &budget, Variant: Full},
			want: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo Program", Code: "APO", IsActive: true,
				Budget: sql.NullFloat64{Float64: 120, Valid: true}},
		},
		{
			name:     "full placeholder keeps real name",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", IsActive: true},
			rec:      ProjectRecord{ExternalID: "10", Name: "Project 10", Code: "APO", Active: false, Variant: Full},
			want:     sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsActive: false},
		},
		{
			name:     "full clears budget",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", IsActive: true, Budget: sql.NullFloat64{Float64: 5, Valid: true}},
			rec:      ProjectRecord{ExternalID: "10", Name: "Apollo", Active: true, Variant: Full},
			want:     sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", IsActive: true},
		},
		{
			name:     "proxy never touches active flag or budget",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Project 10", IsActive: false, Budget: sql.NullFloat64{Float64: 5, Valid: true}},
			rec:      ProjectRecord{ExternalID: "10", Name: "Apollo", Code: "APO", Active: true, Variant: Proxy},
			want: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsActive: false,
				Budget: sql.NullFloat64{Float64: 5, Valid: true}},
		},
		{
			name:     "proxy keeps full name",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsActive: true},
			rec:      ProjectRecord{ExternalID: "10", Name: "Apollo (old)", Active: true, Variant: Proxy},
			want:     sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsActive: true},
		},
		{
			name:     "proxy without code keeps code",
			existing: sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsProxy: true, IsActive: true},
			rec:      ProjectRecord{ExternalID: "10", Name: "Project 10", Active: true, Variant: Proxy},
			want:     sqlc.MirrorProject{ExternalID: "10", Name: "Apollo", Code: "APO", IsProxy: true, IsActive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.existing
			mergeProject(&got, tt.rec)
			if got != tt.want {
				t.Errorf("mergeProject() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
