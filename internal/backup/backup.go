package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/edtfloc/internal/config"
	"github.com/julianstephens/edtfloc/internal/logger"
)

const (
	// MaxBackups is the maximum number of config backups to keep
	MaxBackups = 5
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"

	timestampLayout = "20060102-150405"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int // same-second counter
}

// Manager keeps timestamped copies of a config file next to it.
type Manager struct {
	configPath string
	backupDir  string
	prefix     string
	suffix     string
}

// NewManager creates a new backup manager for the config file at configPath.
// Backups of "config.toml" are named "config-YYYYMMDD-HHMMSS.toml".
func NewManager(configPath string) *Manager {
	base := filepath.Base(configPath)
	ext := filepath.Ext(base)
	return &Manager{
		configPath: configPath,
		backupDir:  filepath.Join(filepath.Dir(configPath), BackupDirName),
		prefix:     strings.TrimSuffix(base, ext) + "-",
		suffix:     ext,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup copies the current config file into the backup directory
// and prunes backups beyond MaxBackups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// skipRotation keeps restore from pruning the backup it is restoring.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return "", fmt.Errorf("config file does not exist: %s", m.configPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format(timestampLayout)
	backupPath := filepath.Join(m.backupDir, m.prefix+timestamp+m.suffix)

	// Same-second backups take the next unused counter
	existing, err := m.ListBackups()
	if err != nil {
		return "", err
	}
	seq := -1
	for _, b := range existing {
		if b.Timestamp.Format(timestampLayout) == timestamp && b.seq > seq {
			seq = b.seq
		}
	}
	if seq >= 0 {
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", m.prefix, timestamp, seq+1, m.suffix))
	}

	if err := copyFile(m.configPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up config: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old config backups", "error", err)
		}
	}
	return backupPath, nil
}

// ListBackups returns all backups, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, m.prefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, m.prefix), m.suffix)
		seq := 0
		if i := strings.LastIndex(stamp, "-"); i > len("20060102") {
			if seq, err = strconv.Atoi(stamp[i+1:]); err != nil {
				continue
			}
			stamp = stamp[:i]
		}
		timestamp, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the config file with a backup. The backup must
// load as a valid config, and the current file is backed up first.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if _, err := config.Load(backupPath); err != nil {
		return "", fmt.Errorf("backup is not a usable config: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.configPath); err == nil {
		if previous, err = m.createBackup(true); err != nil {
			return "", fmt.Errorf("failed to back up current config before restore: %w", err)
		}
	}

	tempPath := m.configPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.configPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return "", fmt.Errorf("failed to restore config: %w", err)
	}
	return previous, nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
