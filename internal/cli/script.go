package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/timesheet"
)

func newScriptCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		atFlag     string
		noSeedFlag bool
	)

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Drive a session from a list of commands.",
		Long: `script reads one command per line from file (or stdin) and applies it to a fresh session:

  add                   append a row logged in at the session start time
  logout <index> HH:MM  record a logout and recompute (omit HH:MM to reopen)
  remove <index>        delete a row; later rows shift down
  list                  print the rows
  total                 print the running total
  recompute             recompute and print the running total
  export                write the session to this month's timesheet

Indices are 0-based. Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			seed := app.Config.SeedEntry && !noSeedFlag
			return runScript(ctx, cmd, app, in, atFlag, seed)
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Session start time in HH:MM (default: now)")
	cmd.Flags().BoolVar(&noSeedFlag, "no-seed", false, "Start with no rows")

	return cmd
}

func runScript(ctx context.Context, cmd *cobra.Command, app *App, in io.Reader, atFlag string, seed bool) error {
	l, err := app.newLedger(atFlag, seed)
	if err != nil {
		return err
	}

	s := &scriptRunner{
		ctx:    ctx,
		app:    app,
		ledger: l,
		out:    cmd.OutOrStdout(),
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(strings.Fields(line)); err != nil {
			app.Logger.Warn("script command failed", "line", lineNo, "command", line, "err", err)
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

type scriptRunner struct {
	ctx    context.Context
	app    *App
	ledger *ledger.Ledger
	out    io.Writer
}

func (s *scriptRunner) exec(fields []string) error {
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "add":
		if len(args) != 0 {
			return fmt.Errorf("add takes no arguments")
		}
		entry := s.ledger.AddEntry()
		index := s.ledger.Len() - 1
		s.app.Logger.Debug("entry added", "index", index, "login", entry.LoginString())
		fmt.Fprintf(s.out, "Added %s\n", formatEntry(index, entry))

	case "logout":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: logout <index> [HH:MM]")
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		entry, err := s.ledger.RecordLogoutAndRecompute(index, value)
		if err != nil {
			return err
		}
		s.app.Logger.Debug("logout recorded", "index", index, "logout", entry.LogoutString())
		fmt.Fprintf(s.out, "Updated %s\n", formatEntry(index, entry))

	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: remove <index>")
		}
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		entry, err := s.ledger.RemoveEntry(index)
		if err != nil {
			return err
		}
		s.app.Logger.Debug("entry removed", "index", index)
		fmt.Fprintf(s.out, "Removed %s\n", formatEntry(index, entry))

	case "list":
		printEntries(s.out, s.ledger)

	case "total":
		fmt.Fprintf(s.out, "Total: %s\n", s.ledger.Total())

	case "recompute":
		fmt.Fprintf(s.out, "Total: %s\n", s.ledger.Recompute())

	case "export":
		path, err := timesheet.NewWriter(s.app.Manager).Write(s.ctx, timesheet.FromLedger(s.ledger))
		if err != nil {
			return err
		}
		s.app.Logger.Info("timesheet exported", "path", path, "session", s.ledger.SessionID())
		fmt.Fprintf(s.out, "Wrote %s\n", path)

	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}
