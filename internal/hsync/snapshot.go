package hsync

import (
	"fmt"
	"io"
	"os"
)

// SnapshotName is the vault name of the mirror-store snapshot.
const SnapshotName = "db"

// Snapshotter copies the mirror store into a vault and back. The snapshot
// version is the highest sync run id, so a vault ahead of the local store
// means another machine has synced since this copy was taken.
type Snapshotter struct {
	db         Database
	vault      Vault
	encryptor  Encryptor
	instanceID string
	logger     Logger
}

// NewSnapshotter creates a Snapshotter. db may be nil when only restoring.
func NewSnapshotter(db Database, vault Vault, encryptor Encryptor, instanceID string, logger Logger) *Snapshotter {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Snapshotter{
		db:         db,
		vault:      vault,
		encryptor:  encryptor,
		instanceID: instanceID,
		logger:     logger,
	}
}

// CheckVersion fails when the vault holds a newer snapshot than the local store.
func (s *Snapshotter) CheckVersion() error {
	remote, err := s.vault.GetSnapshotVersion(s.instanceID, SnapshotName)
	if err != nil {
		return fmt.Errorf("checking vault snapshot version: %w", err)
	}
	local, err := s.db.MaxSyncRunID()
	if err != nil {
		return fmt.Errorf("checking local snapshot version: %w", err)
	}
	if remote > local {
		return fmt.Errorf("local database is behind vault (local=%d, vault=%d): restore the snapshot or re-initialize", local, remote)
	}
	return nil
}

// Upload snapshots the database, encrypts it and stores it in the vault.
// Returns the version written.
func (s *Snapshotter) Upload() (int64, error) {
	version, err := s.db.MaxSyncRunID()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot version: %w", err)
	}

	plain, err := os.CreateTemp("", "hsync-db-snapshot-*.db")
	if err != nil {
		return 0, fmt.Errorf("creating temp file for snapshot: %w", err)
	}
	plainPath := plain.Name()
	plain.Close()
	// VACUUM INTO refuses to overwrite an existing file.
	os.Remove(plainPath)
	defer os.Remove(plainPath)

	if err := s.db.BackupTo(plainPath); err != nil {
		return 0, fmt.Errorf("snapshotting database: %w", err)
	}

	sealed, err := os.CreateTemp("", "hsync-db-snapshot-*.enc")
	if err != nil {
		return 0, fmt.Errorf("creating temp file for encrypted snapshot: %w", err)
	}
	defer os.Remove(sealed.Name())
	defer sealed.Close()

	in, err := os.Open(plainPath)
	if err != nil {
		return 0, fmt.Errorf("opening snapshot: %w", err)
	}
	err = s.encryptor.Encrypt(in, sealed)
	in.Close()
	if err != nil {
		return 0, fmt.Errorf("encrypting snapshot: %w", err)
	}

	size, err := sealed.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("sizing encrypted snapshot: %w", err)
	}
	if _, err := sealed.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding encrypted snapshot: %w", err)
	}

	if err := s.vault.PutSnapshot(s.instanceID, SnapshotName, sealed, size, version); err != nil {
		return 0, fmt.Errorf("uploading snapshot to vault: %w", err)
	}
	s.logger.Info("uploaded snapshot", "instance_id", s.instanceID, "version", version, "size", size)
	return version, nil
}

// Restore downloads the latest snapshot and writes the decrypted database to w.
func (s *Snapshotter) Restore(dc DecryptionContext, w io.Writer) error {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(s.vault.GetSnapshot(s.instanceID, SnapshotName, pw))
	}()

	if err := dc.Decrypt(pr, w); err != nil {
		pr.CloseWithError(err)
		return fmt.Errorf("decrypting snapshot: %w", err)
	}
	// Drain so the writer goroutine can finish and report its error.
	if _, err := io.Copy(io.Discard, pr); err != nil {
		return fmt.Errorf("downloading snapshot: %w", err)
	}
	return nil
}
