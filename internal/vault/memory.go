package vault

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"harvest-sync/internal/hsync"
)

// MemoryVault is an in-memory implementation of the Vault interface.
// It stores all snapshots in memory, making it useful for testing.
// This implementation is safe for concurrent use.
type MemoryVault struct {
	name      string
	snapshots map[string][]byte // "instanceID/name" -> snapshot
	versions  map[string]int64  // "instanceID/name" -> version
	mu        sync.RWMutex
}

// NewMemoryVault creates a new in-memory vault with the given name.
func NewMemoryVault(name string) *MemoryVault {
	return &MemoryVault{
		name:      name,
		snapshots: make(map[string][]byte),
		versions:  make(map[string]int64),
	}
}

// snapshotKey returns the map key for an instance/name pair.
func snapshotKey(instanceID, name string) string {
	return instanceID + "/" + name
}

// PutSnapshot stores a named snapshot for a specific instance.
func (m *MemoryVault) PutSnapshot(instanceID string, name string, r io.Reader, size int64, version int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := snapshotKey(instanceID, name)
	m.snapshots[key] = data
	m.versions[key] = version
	return nil
}

// GetSnapshotVersion returns the version of a named snapshot on an instance.
// Returns 0 if nothing has been stored for this instance/name.
func (m *MemoryVault) GetSnapshotVersion(instanceID string, name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.versions[snapshotKey(instanceID, name)], nil
}

// GetSnapshot retrieves a named snapshot for a specific instance.
func (m *MemoryVault) GetSnapshot(instanceID string, name string, w io.Writer) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[snapshotKey(instanceID, name)]
	if !ok {
		return fmt.Errorf("snapshot %q not found for instance: %s", name, instanceID)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ValidateSetup always succeeds for in-memory vault.
func (m *MemoryVault) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryVault implements hsync.Vault interface
var _ hsync.Vault = (*MemoryVault)(nil)
