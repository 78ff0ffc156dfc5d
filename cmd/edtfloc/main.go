package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/internal/cli/convert"
	"github.com/julianstephens/edtfloc/internal/cli/system"
	"github.com/julianstephens/edtfloc/internal/config"
	"github.com/julianstephens/edtfloc/internal/constants"
	clierrors "github.com/julianstephens/edtfloc/internal/errors"
	"github.com/julianstephens/edtfloc/internal/logger"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path (.toml, .yaml or .yml)." type:"path" default:"${config_path}" env:"EDTFLOC_CONFIG"`
	Locale   string `short:"l" help:"Locale such as en_US, fr or de-DE. Defaults to the environment's locale." env:"EDTFLOC_LOCALE"`
	Pattern  string `name:"format" short:"f" help:"Style (full, long, medium, short) or CLDR date pattern." env:"EDTFLOC_FORMAT"`
	Timezone string `help:"Timezone used to determine today's date." env:"EDTFLOC_TIMEZONE"`
	Debug    bool   `help:"Mirror debug logs to stderr." env:"EDTFLOC_DEBUG"`

	Format   convert.FormatCmd   `cmd:"" help:"Format EDTF strings as localized dates." default:"withargs"`
	Parse    convert.ParseCmd    `cmd:"" help:"Show how an EDTF string is parsed."`
	Validate convert.ValidateCmd `cmd:"" help:"Check EDTF strings without formatting them."`
	Skeleton convert.SkeletonCmd `cmd:"" help:"Show the date skeleton for a precision and style."`
	Locales  system.LocalesCmd   `cmd:"" help:"List supported locales."`
	Cfg      system.ConfigCmd    `cmd:"" name:"config" help:"Inspect or create the config file."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive playground."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks on the configuration and environment."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Render EDTF level 0 dates and intervals as localized, human-readable text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": config.DefaultPath(),
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		// A broken file must not block "config init --force" from replacing
		// it, or doctor from reporting it.
		cmd := ctx.Command()
		if !strings.HasPrefix(cmd, "config") && cmd != "doctor" {
			clierrors.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, clierrors.Format(err))
		cfg = config.Default()
	}
	cfg.Override(CLI.Locale, CLI.Pattern, CLI.Timezone)

	logDir := filepath.Join(filepath.Dir(CLI.Config), constants.LogDirName)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, Level: cfg.LogLevel, Dir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "config", CLI.Config, "locale", cfg.Locale, "format", cfg.Format)

	if err := datefmt.ValidateFormat(cfg.Format); err != nil {
		clierrors.Fatal(err)
	}
	appCtx, err := cli.NewContext(cfg, CLI.Config)
	if err != nil {
		clierrors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		clierrors.Fatal(err)
	}
}
