package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		InstanceID: "test-instance-abc",
		BaseDir:    "/home/user/.local/share/hsync",
		LogDir:     "/home/user/.local/share/hsync/log",
		Log:        LogConfig{MaxSizeMB: 5, MaxBackups: 2, MaxAgeDays: 7},
		Vaults: []VaultConfig{
			{Type: "filesystem", Name: "local", FSVaultRoot: "/backup/vault"},
			{Type: "s3", Name: "offsite", S3Bucket: "snapshots", S3Prefix: "hsync", S3Region: "eu-west-1"},
		},
		Encryption: EncryptionConfig{
			Type:           "age",
			PublicKeyPath:  "/home/user/.local/share/hsync/keys/hsync.pub",
			PrivateKeyPath: "/home/user/.local/share/hsync/keys/hsync.key",
		},
		Database: DatabaseConfig{Type: "sqlite", DataDir: "/home/user/.local/share/hsync/db"},
		Harvest: HarvestConfig{
			APIURL:       "https://harvest.example.com/v2/",
			UserAgent:    "hsync-test",
			ProbeTimeout: Duration{3 * time.Second},
			ListTimeout:  Duration{time.Minute},
			PerPage:      50,
		},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.InstanceID != original.InstanceID {
		t.Errorf("InstanceID = %q, want %q", got.InstanceID, original.InstanceID)
	}
	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Log != original.Log {
		t.Errorf("Log = %+v, want %+v", got.Log, original.Log)
	}
	if len(got.Vaults) != 2 {
		t.Fatalf("len(Vaults) = %d, want 2", len(got.Vaults))
	}
	if got.Vaults[0].FSVaultRoot != "/backup/vault" {
		t.Errorf("Vault.FSVaultRoot = %q, want %q", got.Vaults[0].FSVaultRoot, "/backup/vault")
	}
	if got.Vaults[1].S3Bucket != "snapshots" || got.Vaults[1].S3Region != "eu-west-1" {
		t.Errorf("Vaults[1] = %+v, want s3 fields", got.Vaults[1])
	}
	if got.Encryption != original.Encryption {
		t.Errorf("Encryption = %+v, want %+v", got.Encryption, original.Encryption)
	}
	if got.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", got.Database.Type, "sqlite")
	}
	if got.Harvest != original.Harvest {
		t.Errorf("Harvest = %+v, want %+v", got.Harvest, original.Harvest)
	}
}

func TestManager_Read_Durations(t *testing.T) {
	input := `
instance_id = "x"

[harvest]
api_url = "https://api.harvestapp.com/v2/"
probe_timeout = "1500ms"
list_timeout = "2m"
`
	m := &Manager{}
	cfg, err := m.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Harvest.ProbeTimeout.Duration != 1500*time.Millisecond {
		t.Errorf("ProbeTimeout = %v, want 1.5s", cfg.Harvest.ProbeTimeout)
	}
	if cfg.Harvest.ListTimeout.Duration != 2*time.Minute {
		t.Errorf("ListTimeout = %v, want 2m", cfg.Harvest.ListTimeout)
	}
}

func TestManager_Read_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bad duration", input: "[harvest]\nprobe_timeout = \"soon\"\n"},
		{name: "unknown database", input: "[database]\ntype = \"postgres\"\n"},
		{name: "unknown encryption", input: "[encryption]\ntype = \"rot13\"\n"},
		{name: "unknown vault", input: "[[vaults]]\ntype = \"ftp\"\nname = \"v\"\n"},
		{name: "per page too large", input: "[harvest]\nper_page = 5000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manager{}
			if _, err := m.Read(strings.NewReader(tt.input)); err == nil {
				t.Error("Read() expected error")
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("instance-1", "/data/hsync")

	if cfg.InstanceID != "instance-1" {
		t.Errorf("InstanceID = %q, want %q", cfg.InstanceID, "instance-1")
	}
	if cfg.BaseDir != "/data/hsync" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/data/hsync")
	}
	if cfg.LogDir != "/data/hsync/log" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/hsync/log")
	}
	if cfg.Database.DataDir != "/data/hsync/db" {
		t.Errorf("Database.DataDir = %q, want %q", cfg.Database.DataDir, "/data/hsync/db")
	}
	if cfg.Harvest.APIURL != DefaultAPIURL || cfg.Harvest.PerPage != DefaultPerPage {
		t.Errorf("Harvest = %+v, want defaults", cfg.Harvest)
	}
	if cfg.Harvest.ProbeTimeout.Duration != 10*time.Second || cfg.Harvest.ListTimeout.Duration != 30*time.Second {
		t.Errorf("timeouts = %v/%v, want 10s/30s", cfg.Harvest.ProbeTimeout, cfg.Harvest.ListTimeout)
	}
	if cfg.Encryption.PublicKeyPath != "/data/hsync/keys/hsync.pub" {
		t.Errorf("Encryption.PublicKeyPath = %q, want %q", cfg.Encryption.PublicKeyPath, "/data/hsync/keys/hsync.pub")
	}
	if cfg.Encryption.PrivateKeyPath != "/data/hsync/keys/hsync.key" {
		t.Errorf("Encryption.PrivateKeyPath = %q, want %q", cfg.Encryption.PrivateKeyPath, "/data/hsync/keys/hsync.key")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "hsync.toml")
		cfg := NewConfig("i1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}
	})

	t.Run("fails if file already exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "hsync.toml")
		cfg := NewConfig("i1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}

		err := Init(path, cfg)
		if err == nil {
			t.Fatal("second Init() expected error")
		}
	})
}

func TestReadFromFile(t *testing.T) {
	t.Run("reads valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "hsync.toml")
		cfg := NewConfig("read-test", dir)
		cfg.Database = DatabaseConfig{Type: "memory"}

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.InstanceID != "read-test" {
			t.Errorf("InstanceID = %q, want %q", got.InstanceID, "read-test")
		}
		if got.Harvest.ListTimeout.Duration != 30*time.Second {
			t.Errorf("ListTimeout = %v, want 30s", got.Harvest.ListTimeout)
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := ReadFromFile("/nonexistent/path/hsync.toml")
		if err == nil {
			t.Fatal("ReadFromFile() expected error for missing file")
		}
	})
}
