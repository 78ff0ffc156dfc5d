package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/edtfloc/internal/backup"
	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/internal/config"
	"github.com/julianstephens/edtfloc/internal/constants"
	"github.com/julianstephens/edtfloc/internal/utils"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

const doctorSample = "2004-06-05"

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	fail := func(name string, err error) {
		ctx.Printf("❌ %s: FAIL\n", name)
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	}
	warn := func(name string, err error) {
		ctx.Printf("⚠ %s: WARNING\n", name)
		ctx.Printf("   %v\n", err)
	}

	// Check 1: Config file loads
	if err := checkConfigFile(ctx.ConfigPath); errors.Is(err, fs.ErrNotExist) {
		warn("Config file", fmt.Errorf("no config file at %s - defaults are in use, create one with '%s config init'", ctx.ConfigPath, constants.AppName))
	} else if err != nil {
		fail("Config file", err)
	} else {
		ctx.Printf("✓ Config file: OK\n")
	}

	// Check 2: Locale resolves
	localeOK := false
	if locale, err := datefmt.ResolveLocale(ctx.Config.Locale); err != nil {
		fail("Locale", err)
	} else {
		ctx.Printf("✓ Locale: OK (%s)\n", locale.ID)
		localeOK = true
	}

	// Check 3: Format is a style or a supported pattern
	formatOK := false
	if err := datefmt.ValidateFormat(ctx.Format()); err != nil {
		fail("Format", err)
	} else {
		ctx.Printf("✓ Format: OK (%s)\n", ctx.Format())
		formatOK = true
	}

	// Check 4: Sample renders (only if locale and format are valid)
	if localeOK && formatOK {
		if out, err := ctx.Formatter.Format(doctorSample, ctx.Format()); err != nil {
			fail("Sample formatting", err)
		} else {
			ctx.Printf("✓ Sample formatting: OK (%s -> %s)\n", doctorSample, out)
		}
	} else {
		ctx.Printf("⊘ Sample formatting: SKIPPED (locale or format invalid)\n")
	}

	// Check 5: Backups present (warning only)
	if err := checkBackupsPresent(ctx.ConfigPath); err != nil {
		warn("Backups present", err)
	} else {
		ctx.Printf("✓ Backups present: OK\n")
	}

	// Check 6: Log directory writable (warning only, logging falls back to stderr)
	if err := checkLogDirWritable(ctx.ConfigPath); err != nil {
		warn("Log directory", err)
	} else {
		ctx.Printf("✓ Log directory: OK\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(ctx.Config.Timezone, ctx.Formatter.Now); err != nil {
		fail("Clock/timezone", err)
	} else {
		ctx.Printf("✓ Clock/timezone: OK\n")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkConfigFile(path string) error {
	if path == "" {
		return fmt.Errorf("no config path set")
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

func checkBackupsPresent(configPath string) error {
	mgr := backup.NewManager(configPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - '%s config init --force' backs up the previous file", constants.AppName)
	}

	return nil
}

func checkLogDirWritable(configPath string) error {
	dir := filepath.Join(filepath.Dir(configPath), constants.LogDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkClockTimezone(timezone string, now func() time.Time) error {
	if !utils.ValidateTimezone(timezone) {
		return fmt.Errorf("unknown timezone %q", timezone)
	}
	if now == nil {
		clock, err := utils.Clock(timezone)
		if err != nil {
			return err
		}
		now = clock
	}

	// Check if time is in a reasonable range (after 2020 and before 2100)
	t := now()
	if t.Year() < 2020 || t.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", t.Format(time.RFC3339))
	}

	return nil
}
