package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/config"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/logging"
	"github.com/faizmokh/jam/internal/timesheet"
	"github.com/faizmokh/jam/internal/ui"
	"github.com/faizmokh/jam/internal/version"
)

// App carries the collaborators shared by every command.
type App struct {
	Manager *files.Manager
	Config  config.Config
	Logger  *slog.Logger
	// Now is the clock sampled when a session starts; nil means time.Now.
	Now ledger.NowFunc
	// IsInteractive decides whether the bare command opens the TUI.
	IsInteractive func() bool
}

func (a *App) newLedger(atFlag string, seed bool) (*ledger.Ledger, error) {
	now, err := clockSource(a.Now, atFlag)
	if err != nil {
		return nil, err
	}
	l := ledger.New(ledger.WithClock(now), ledger.WithSeed(seed))
	a.Logger.Debug("session started", "session", l.SessionID(), "login", l.Captured().String(), "seeded", seed)
	return l, nil
}

// NewRootCommand creates the top-level command. With no subcommand it opens
// the widget on a terminal and reads a script from stdin otherwise.
func NewRootCommand(ctx context.Context, app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:     "jam",
		Short:   "Track login/logout times for a session from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return runScript(ctx, cmd, app, cmd.InOrStdin(), atFlag, app.Config.SeedEntry)
			}

			l, err := app.newLedger(atFlag, app.Config.SeedEntry)
			if err != nil {
				return err
			}
			m := ui.NewModel(ctx, ui.Deps{
				Ledger: l,
				Writer: timesheet.NewWriter(app.Manager),
				Logger: app.Logger,
				Styles: ui.NewStyles(app.Config.Colors),
			})
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Session start time in HH:MM (default: now)")

	cmd.AddCommand(
		newScriptCommand(ctx, app),
		newCalcCommand(),
		newSumCommand(),
		newReportCommand(ctx, app),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand wires config, logging and files, then runs the root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}

	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return err
	}

	logger, err := logging.New(manager.LogPath(), cfg.Level())
	if err != nil {
		return err
	}
	defer logger.Close()

	app := &App{
		Manager: manager,
		Config:  cfg,
		Logger:  logger.Logger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	if err := NewRootCommand(ctx, app).Execute(); err != nil {
		logger.Error("command failed", "err", err)
		return err
	}
	return nil
}

// Main is called by cmd/jam/main.go to keep wiring in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
