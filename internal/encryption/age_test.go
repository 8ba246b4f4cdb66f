package encryption

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"harvest-sync/internal/config"
)

func newTestAgeEncryptor(t *testing.T) (*AgeEncryptor, config.EncryptionConfig) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.EncryptionConfig{
		Type:           "age",
		PublicKeyPath:  filepath.Join(dir, "keys", "hsync.pub"),
		PrivateKeyPath: filepath.Join(dir, "keys", "hsync.key"),
	}
	return NewAgeEncryptor(cfg), cfg
}

func TestAgeEncryptor_SnapshotLifecycle(t *testing.T) {
	t.Parallel()
	e, cfg := newTestAgeEncryptor(t)
	snapshot := append([]byte("SQLite format 3\x00"), bytes.Repeat([]byte{0x0d}, 8192)...)

	if e.IsConfigured() {
		t.Fatal("IsConfigured() = true before Setup")
	}
	if err := e.Encrypt(bytes.NewReader(snapshot), &bytes.Buffer{}); err == nil {
		t.Error("Encrypt() before Setup should return error")
	}
	if _, err := e.Unlock("secret"); err == nil {
		t.Error("Unlock() before Setup should return error")
	}

	if err := e.Setup("secret"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !e.IsConfigured() {
		t.Fatal("IsConfigured() = false after Setup")
	}
	info, err := os.Stat(cfg.PrivateKeyPath)
	if err != nil {
		t.Fatalf("stat private key: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("private key mode = %o, want 600", perm)
	}

	var sealed bytes.Buffer
	if err := e.Encrypt(bytes.NewReader(snapshot), &sealed); err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if !bytes.HasPrefix(sealed.Bytes(), []byte("age-encryption.org/v1")) {
		t.Error("sealed snapshot does not carry the age header")
	}
	if bytes.Contains(sealed.Bytes(), []byte("SQLite format 3")) {
		t.Error("sealed snapshot leaks the sqlite header")
	}

	if _, err := e.Unlock("wrong"); err == nil {
		t.Error("Unlock() with wrong passphrase should return error")
	}

	// A second encryptor over the same key files restores what the first sealed.
	dc, err := NewAgeEncryptor(cfg).Unlock("secret")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	var opened bytes.Buffer
	if err := dc.Decrypt(&sealed, &opened); err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(opened.Bytes(), snapshot) {
		t.Errorf("restored %d bytes, want the original %d", opened.Len(), len(snapshot))
	}

	if err := e.Setup("other"); err == nil {
		t.Error("second Setup() should refuse to replace the key pair")
	}
	if _, err := e.Unlock("secret"); err != nil {
		t.Errorf("original passphrase no longer unlocks: %v", err)
	}
}

func TestAgeEncryptor_SetupEmptyPassphrase(t *testing.T) {
	t.Parallel()

	e, _ := newTestAgeEncryptor(t)
	if err := e.Setup(""); err == nil {
		t.Error("Setup() with empty passphrase should return error")
	}
	if e.IsConfigured() {
		t.Error("IsConfigured() = true after rejected Setup")
	}
}

func TestAgeDecryptionContext_RejectsPlainSnapshot(t *testing.T) {
	t.Parallel()

	e, _ := newTestAgeEncryptor(t)
	if err := e.Setup("secret"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	dc, err := e.Unlock("secret")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if err := dc.Decrypt(bytes.NewReader([]byte("SQLite format 3\x00")), &bytes.Buffer{}); err == nil {
		t.Error("Decrypt() of an unencrypted snapshot should return error")
	}
}
