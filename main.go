package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nconklindev/csvfix/internal/config"
	"github.com/nconklindev/csvfix/internal/converter"
	"github.com/nconklindev/csvfix/internal/locale"
	"github.com/nconklindev/csvfix/internal/logging"
	"github.com/nconklindev/csvfix/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type flags struct {
	configPath string
	recurse    bool
	verbose    bool
	skipLines  int
	locale     string
	logFormat  string
	tui        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "csvfix [flags] FILE...",
		Short: "Normalize numeric-looking cells in CSV files in place",
		Long: `csvfix finds cells formatted as grouped numbers ("1,234.56"), currency
("$1,000") or percentages ("12.50%") and rewrites them in canonical form.
Files are overwritten in place; no backup is made.`,
		Version: fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", version, commit, date),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !f.tui {
				return errors.New("requires at least one file")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&f.recurse, "recurse", "r", false, "traverse directories")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "be loud")
	cmd.Flags().IntVarP(&f.skipLines, "skiplines", "s", config.DefaultSkipLines, "number of lines to skip before the header")
	cmd.Flags().StringVar(&f.locale, "locale", "", "numeric locale, e.g. en_US.UTF-8 (default: from LC_ALL, LC_NUMERIC or LANG)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	cmd.Flags().BoolVar(&f.tui, "tui", false, "show progress in a terminal UI; pick a file when none is given")

	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logOut := cmd.ErrOrStderr()
	if f.tui {
		logOut = io.Discard
	}
	logger := logging.Setup(logOut, cfg.Level(), cfg.LogFormat)

	opts := converter.Options{
		SkipLines: cfg.SkipLines,
		Recurse:   cfg.Recurse,
		Locale:    resolveLocale(cfg.Locale, logger),
		Logger:    logger,
	}
	logger.Debug("starting batch", "paths", len(args), "locale", opts.Locale.Name, "skip_lines", opts.SkipLines)

	if f.tui {
		p := tea.NewProgram(ui.InitialModel(args, opts), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
		if m, ok := final.(ui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	}

	if _, err := converter.Run(args, opts, nil); err != nil {
		return err
	}
	return nil
}

// loadConfig layers explicitly set flags over the config file (if any) over
// the defaults.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("recurse") {
		cfg.Recurse = f.recurse
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("skiplines") {
		cfg.SkipLines = f.skipLines
	}
	if changed("locale") {
		cfg.Locale = f.locale
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}

	return cfg, cfg.Validate()
}

func resolveLocale(name string, logger *slog.Logger) locale.Locale {
	var (
		loc locale.Locale
		err error
	)
	if name != "" {
		loc, err = locale.Parse(name)
	} else {
		loc, err = locale.FromEnv(os.Getenv)
	}
	if err != nil {
		logger.Warn("falling back to C locale", "error", err)
		return locale.C()
	}
	return loc
}
