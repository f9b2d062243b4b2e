package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/timesheet"
)

func newReportCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		dateFlag   string
		daysFlag   int
		weekFlag   bool
		outputJSON bool
		sessionID  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Sum exported sessions across a range of days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			days := daysFlag
			if weekFlag {
				days = 7
			}
			if days <= 0 {
				days = 1
			}
			start := date.AddDate(0, 0, -(days - 1))

			reader := timesheet.NewReader(app.Manager)
			var sessions []timesheet.Session
			if sessionID != "" {
				session, err := reader.Session(ctx, date, sessionID)
				if err != nil {
					return fmt.Errorf("session %s on %s: %w", sessionID, date.Format("2006-01-02"), err)
				}
				sessions = append(sessions, session)
			} else {
				sessions, err = reader.SessionsBetween(ctx, start, date)
				if err != nil {
					return err
				}
			}

			lines, grand, err := summarize(sessions)
			if err != nil {
				return err
			}
			if outputJSON {
				return printReportJSON(cmd, lines, grand)
			}

			out := cmd.OutOrStdout()
			if len(lines) == 0 {
				fmt.Fprintf(out, "No sessions between %s and %s\n",
					start.Format("2006-01-02"), date.Format("2006-01-02"))
				return nil
			}
			for _, line := range lines {
				fmt.Fprintf(out, "%s %s  %d rows  %s\n", line.Date, line.Session, line.Rows, line.Total)
			}
			fmt.Fprintf(out, "Total: %s\n", grand)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "End date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "Number of days to include ending on the end date")
	cmd.Flags().BoolVar(&weekFlag, "week", false, "Shortcut for --days=7")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().StringVar(&sessionID, "session", "", "Report a single session exported on --date")

	return cmd
}

type reportLine struct {
	Date    string `json:"date"`
	Session string `json:"session"`
	Rows    int    `json:"rows"`
	Total   string `json:"total"`
	Minutes int    `json:"minutes"`
}

func summarize(sessions []timesheet.Session) ([]reportLine, ledger.Duration, error) {
	var grand ledger.Duration
	lines := make([]reportLine, 0, len(sessions))
	for _, s := range sessions {
		sum, err := s.Sum()
		if err != nil {
			return nil, ledger.Duration{}, fmt.Errorf("session %s on %s: %w", s.ID, s.Date.Format("2006-01-02"), err)
		}
		grand = grand.Add(sum)
		lines = append(lines, reportLine{
			Date:    s.Date.Format("2006-01-02"),
			Session: s.ID,
			Rows:    len(s.Rows),
			Total:   sum.String(),
			Minutes: sum.TotalMinutes(),
		})
	}
	return lines, grand, nil
}

func printReportJSON(cmd *cobra.Command, lines []reportLine, grand ledger.Duration) error {
	type dto struct {
		Sessions []reportLine `json:"sessions"`
		Total    string       `json:"total"`
		Minutes  int          `json:"minutes"`
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto{Sessions: lines, Total: grand.String(), Minutes: grand.TotalMinutes()})
}
