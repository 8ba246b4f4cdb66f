package vault

import (
	"path/filepath"
	"testing"

	"harvest-sync/internal/config"
)

func TestNewVaultFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.VaultConfig
		wantErr  bool
		validate bool
	}{
		{
			name:     "memory vault",
			cfg:      config.VaultConfig{Type: "memory", Name: "test-memory"},
			validate: true,
		},
		{
			name:     "filesystem vault",
			cfg:      config.VaultConfig{Type: "filesystem", Name: "test-fs", FSVaultRoot: filepath.Join(t.TempDir(), "vault")},
			validate: true,
		},
		{
			name:    "filesystem vault without root",
			cfg:     config.VaultConfig{Type: "filesystem", Name: "test-fs"},
			wantErr: true,
		},
		{
			name: "s3 vault",
			cfg: config.VaultConfig{
				Type:       "s3",
				Name:       "test-s3",
				S3Bucket:   "my-bucket",
				S3Region:   "us-east-1",
				S3Endpoint: "http://127.0.0.1:9000",
			},
		},
		{
			name:    "s3 vault without bucket",
			cfg:     config.VaultConfig{Type: "s3", Name: "test-s3"},
			wantErr: true,
		},
		{
			name:    "unknown vault type",
			cfg:     config.VaultConfig{Type: "unknown", Name: "test-unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvS3AccessKeyID, "test-key")
			t.Setenv(EnvS3SecretAccessKey, "test-secret")

			got, err := NewVaultFromConfig(tt.cfg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewVaultFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got != nil {
					t.Errorf("NewVaultFromConfig() = %v, want nil on error", got)
				}
				return
			}
			if got == nil {
				t.Fatal("NewVaultFromConfig() returned nil vault")
			}

			if tt.validate {
				if err := got.ValidateSetup(); err != nil {
					t.Errorf("ValidateSetup() error = %v", err)
				}
			}
		})
	}
}

func TestS3Vault_Key(t *testing.T) {
	v := &S3Vault{bucket: "b", prefix: "team/hsync"}

	if got := v.key("instance-1", "db"); got != "team/hsync/snapshots/instance-1/db.snapshot" {
		t.Errorf("key() = %q", got)
	}

	v.prefix = ""
	if got := v.key("instance-1", "db"); got != "snapshots/instance-1/db.snapshot" {
		t.Errorf("key() without prefix = %q", got)
	}
}
