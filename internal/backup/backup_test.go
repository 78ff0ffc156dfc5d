package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/edtfloc/internal/config"
)

func setupTestConfig(t *testing.T, name string, cfg config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	path := setupTestConfig(t, "config.toml", config.Config{Locale: "fr_FR", Format: "long", Timezone: "UTC"})

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.GetBackupDir())
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, "config-") || !strings.HasSuffix(name, ".toml") {
		t.Errorf("unexpected backup name %q", name)
	}

	cfg, err := config.Load(backupPath)
	if err != nil {
		t.Fatalf("backup is not loadable: %v", err)
	}
	if cfg.Locale != "fr_FR" {
		t.Errorf("backup locale = %q, want fr_FR", cfg.Locale)
	}
}

func TestCreateBackup_MissingConfig(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected an error when the config file does not exist")
	}
}

func TestListBackups_Empty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestRotation(t *testing.T) {
	path := setupTestConfig(t, "config.yaml", config.Default())
	mgr := NewManager(path)

	var newest string
	for i := 0; i < MaxBackups+3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		newest = p
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("got %d backups after rotation, want %d", len(backups), MaxBackups)
	}
	if backups[0].Path != newest {
		t.Errorf("newest backup = %s, want %s", backups[0].Path, newest)
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	path := setupTestConfig(t, "config.toml", config.Default())
	mgr := NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	for _, name := range []string{"notes.txt", "config-latest.toml", "other-20240101-120000.toml"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	path := setupTestConfig(t, "config.toml", config.Config{Locale: "de_DE", Format: "short", Timezone: "UTC"})
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := config.Save(path, config.Config{Locale: "it_IT", Format: "full", Timezone: "UTC"}); err != nil {
		t.Fatal(err)
	}

	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if previous == "" {
		t.Error("RestoreBackup did not back up the current config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "de_DE" {
		t.Errorf("restored locale = %q, want de_DE", cfg.Locale)
	}

	prev, err := config.Load(previous)
	if err != nil {
		t.Fatal(err)
	}
	if prev.Locale != "it_IT" {
		t.Errorf("pre-restore backup locale = %q, want it_IT", prev.Locale)
	}
}

func TestRestoreBackup_RejectsInvalidConfig(t *testing.T) {
	path := setupTestConfig(t, "config.toml", config.Default())
	mgr := NewManager(path)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("locale = \"tlh\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("expected an error restoring an invalid config")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error restoring a missing file")
	}
}
