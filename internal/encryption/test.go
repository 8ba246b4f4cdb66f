package encryption

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"harvest-sync/internal/hsync"
)

// testHeader marks a snapshot framed by TestEncryptor.
var testHeader = []byte("HSYNCT\x00\x00")

// ErrNotTestSnapshot is returned when a stream handed to the test decryption
// context was not framed by TestEncryptor, e.g. a raw SQLite file.
var ErrNotTestSnapshot = errors.New("not a test-framed snapshot")

// TestEncryptor frames snapshots with testHeader instead of encrypting them.
// Restores in tests can then tell framed snapshots from raw database files.
type TestEncryptor struct {
	setupCalled bool
}

var _ hsync.Encryptor = (*TestEncryptor)(nil)

func NewTestEncryptor() *TestEncryptor {
	return &TestEncryptor{}
}

func (e *TestEncryptor) Setup(string) error {
	e.setupCalled = true
	return nil
}

func (e *TestEncryptor) Encrypt(r io.Reader, w io.Writer) error {
	if _, err := w.Write(testHeader); err != nil {
		return fmt.Errorf("framing snapshot: %w", err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copying snapshot: %w", err)
	}
	return nil
}

// Unlock accepts any passphrase.
func (e *TestEncryptor) Unlock(string) (hsync.DecryptionContext, error) {
	return &TestDecryptionContext{}, nil
}

func (e *TestEncryptor) IsConfigured() bool { return true }

// TestDecryptionContext removes the frame added by TestEncryptor.
type TestDecryptionContext struct{}

var _ hsync.DecryptionContext = (*TestDecryptionContext)(nil)

func (c *TestDecryptionContext) Decrypt(r io.Reader, w io.Writer) error {
	header := make([]byte, len(testHeader))
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading snapshot frame: %w", err)
	}
	if n < len(testHeader) {
		return fmt.Errorf("%w: snapshot is %d bytes, shorter than the frame", ErrNotTestSnapshot, n)
	}
	if !bytes.Equal(header, testHeader) {
		return fmt.Errorf("%w: snapshot starts with %q", ErrNotTestSnapshot, header)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copying snapshot: %w", err)
	}
	return nil
}
