package testutil

import (
	"testing"

	"harvest-sync/internal/database"
	"harvest-sync/internal/hsync"
)

// NewTestDatabase returns an empty in-memory mirror store with the generated
// schema applied. It is closed when the test ends.
func NewTestDatabase(t *testing.T) hsync.Database {
	t.Helper()

	conn, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("opening mirror store: %v", err)
	}
	if _, err := conn.Exec(database.Schema); err != nil {
		conn.Close()
		t.Fatalf("applying schema: %v", err)
	}

	db := database.NewSQLiteDatabaseFromDB(conn)
	t.Cleanup(func() { db.Close() })
	return db
}
