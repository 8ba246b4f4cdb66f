package hsync_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"harvest-sync/internal/database"
	"harvest-sync/internal/hsync"
	"harvest-sync/internal/testutil"
)

func TestSnapshotter_UploadAndRestore(t *testing.T) {
	f := newFixture(t, 0)
	seedFullAccount(f.fake)
	cfg := f.createConfig("acme", hsync.LevelFull)
	if _, err := f.svc.RunSync(context.Background(), cfg.ID); err != nil {
		t.Fatalf("RunSync() error = %v", err)
	}

	v := testutil.NewTestVault()
	enc := testutil.NewTestEncryptor()
	snap := hsync.NewSnapshotter(f.db, v, enc, "instance-1", nil)

	if err := snap.CheckVersion(); err != nil {
		t.Fatalf("CheckVersion() on empty vault error = %v", err)
	}

	version, err := snap.Upload()
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	stored, err := v.GetSnapshotVersion("instance-1", hsync.SnapshotName)
	if err != nil {
		t.Fatalf("GetSnapshotVersion() error = %v", err)
	}
	if stored != version {
		t.Errorf("vault version = %d, want %d", stored, version)
	}
	if err := snap.CheckVersion(); err != nil {
		t.Errorf("CheckVersion() after upload error = %v", err)
	}

	// A store that has never synced is behind the vault.
	fresh := hsync.NewSnapshotter(testutil.NewTestDatabase(t), v, enc, "instance-1", nil)
	if err := fresh.CheckVersion(); err == nil {
		t.Error("CheckVersion() expected error for a store behind the vault")
	}

	dc, err := enc.Unlock("")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	var out bytes.Buffer
	if err := hsync.NewSnapshotter(nil, v, enc, "instance-1", nil).Restore(dc, &out); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("SQLite format 3\x00")) {
		t.Fatalf("restored snapshot is not a sqlite database")
	}

	path := filepath.Join(t.TempDir(), "restored.db")
	if err := os.WriteFile(path, out.Bytes(), 0600); err != nil {
		t.Fatalf("writing restored snapshot: %v", err)
	}
	restored, err := database.NewSQLiteDatabase(path)
	if err != nil {
		t.Fatalf("opening restored snapshot: %v", err)
	}
	defer restored.Close()

	entries, err := restored.CountMirrorTimeEntries(cfg.ID)
	if err != nil {
		t.Fatalf("CountMirrorTimeEntries() error = %v", err)
	}
	if entries != 4 {
		t.Errorf("restored entries = %d, want 4", entries)
	}
	maxID, err := restored.MaxSyncRunID()
	if err != nil {
		t.Fatalf("MaxSyncRunID() error = %v", err)
	}
	if maxID != version {
		t.Errorf("restored MaxSyncRunID = %d, want %d", maxID, version)
	}
}

func TestSnapshotter_RestoreWithoutSnapshot(t *testing.T) {
	enc := testutil.NewTestEncryptor()
	dc, err := enc.Unlock("")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	snap := hsync.NewSnapshotter(nil, testutil.NewTestVault(), enc, "instance-1", nil)

	var out bytes.Buffer
	if err := snap.Restore(dc, &out); err == nil {
		t.Error("Restore() expected error for an empty vault")
	}
}
