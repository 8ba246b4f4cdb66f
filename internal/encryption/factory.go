package encryption

import (
	"fmt"

	"harvest-sync/internal/config"
	"harvest-sync/internal/hsync"
)

// NewEncryptorFromConfig returns the snapshot encryptor selected by cfg.Type.
// age is the default and needs both key paths.
func NewEncryptorFromConfig(cfg config.EncryptionConfig) (hsync.Encryptor, error) {
	switch cfg.Type {
	case "age", "":
		if cfg.PublicKeyPath == "" || cfg.PrivateKeyPath == "" {
			return nil, fmt.Errorf("age encryption requires public_key_path and private_key_path")
		}
		return NewAgeEncryptor(cfg), nil
	case "test":
		return NewTestEncryptor(), nil
	case "none":
		return PlainEncryptor{}, nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
