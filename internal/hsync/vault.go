package hsync

import "io"

// Vault stores encrypted snapshots of the mirror store.
// All operations stream through io.Reader/io.Writer.
type Vault interface {
	// PutSnapshot stores a named snapshot for a specific instance.
	// size is the number of bytes that will be read from r.
	// version is stored alongside the snapshot for consistency checks.
	PutSnapshot(instanceID string, name string, r io.Reader, size int64, version int64) error

	// GetSnapshot retrieves a named snapshot for a specific instance and writes it to w.
	GetSnapshot(instanceID string, name string, w io.Writer) error

	// GetSnapshotVersion returns the stored version for a named snapshot.
	// Returns 0 if nothing has been stored for this instance/name.
	GetSnapshotVersion(instanceID string, name string) (int64, error)

	// ValidateSetup verifies that the vault is accessible and properly configured.
	ValidateSetup() error
}
