package testutil

import (
	"harvest-sync/internal/encryption"
	"harvest-sync/internal/hsync"
	"harvest-sync/internal/vault"
)

// NewTestVault returns an empty in-memory snapshot vault.
func NewTestVault() hsync.Vault {
	return vault.NewMemoryVault("test-vault")
}

// NewTestEncryptor returns an encryptor that frames snapshots with a fixed
// header instead of encrypting them. Unlock accepts any passphrase.
func NewTestEncryptor() hsync.Encryptor {
	return encryption.NewTestEncryptor()
}
