package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/edtfloc/internal/backup"
	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/internal/config"
	"github.com/julianstephens/edtfloc/internal/logger"
)

type ConfigCmd struct {
	Path    ConfigPathCmd    `cmd:"" help:"Show the config file path."`
	Show    ConfigShowCmd    `cmd:"" help:"Show the effective configuration." default:"1"`
	Init    ConfigInitCmd    `cmd:"" help:"Write the effective configuration to the config file."`
	Backups ConfigBackupsCmd `cmd:"" help:"List config backups."`
	Restore ConfigRestoreCmd `cmd:"" help:"Restore the config file from a backup."`
}

type ConfigPathCmd struct{}

func (cmd *ConfigPathCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.ConfigPath)
	return nil
}

type ConfigShowCmd struct {
	YAML bool `help:"Output as YAML instead of TOML."`
}

func (cmd *ConfigShowCmd) Run(ctx *cli.Context) error {
	data, err := config.Marshal(ctx.Config, cmd.YAML)
	if err != nil {
		return err
	}
	ctx.Printf("%s", data)
	return nil
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (cmd *ConfigInitCmd) Run(ctx *cli.Context) error {
	if ctx.ConfigPath == "" {
		return fmt.Errorf("no config path set")
	}

	_, err := os.Stat(ctx.ConfigPath)
	exists := err == nil
	switch {
	case exists && !cmd.Force:
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", ctx.ConfigPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := ctx.Config.Validate(); err != nil {
		return err
	}
	if exists {
		backupPath, err := backup.NewManager(ctx.ConfigPath).CreateBackup()
		if err != nil {
			return fmt.Errorf("failed to back up existing config: %w", err)
		}
		ctx.Printf("✓ Backed up previous config to %s\n", backupPath)
	}
	if err := config.Save(ctx.ConfigPath, ctx.Config); err != nil {
		return err
	}
	logger.Info("Wrote config file", "path", ctx.ConfigPath)

	format := strings.TrimPrefix(filepath.Ext(ctx.ConfigPath), ".")
	ctx.Printf("✓ Wrote %s config to %s\n", format, ctx.ConfigPath)
	return nil
}

type ConfigBackupsCmd struct{}

func (cmd *ConfigBackupsCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.ConfigPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ctx.Printf("No backups in %s\n", mgr.GetBackupDir())
		return nil
	}
	for _, b := range backups {
		ctx.Printf("%s  %6d B  %s\n", b.Timestamp.Format(time.DateTime), b.Size, b.Path)
	}
	return nil
}

type ConfigRestoreCmd struct {
	Backup string `arg:"" optional:"" help:"Backup file to restore. Defaults to the newest backup."`
}

func (cmd *ConfigRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.ConfigPath)

	path := cmd.Backup
	if path == "" {
		backups, err := mgr.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
		}
		path = backups[0].Path
	}

	previous, err := mgr.RestoreBackup(path)
	if err != nil {
		return err
	}
	logger.Info("Restored config backup", "backup", path, "previous", previous)

	if previous != "" {
		ctx.Printf("✓ Backed up previous config to %s\n", previous)
	}
	ctx.Printf("✓ Restored %s from %s\n", ctx.ConfigPath, path)
	return nil
}
