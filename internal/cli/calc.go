package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/ledger"
)

func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <login> <logout>",
		Short: "Print the time between two HH:MM values on the same day.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			login, err := ledger.ParseClock(args[0])
			if err != nil {
				return err
			}
			logout, err := ledger.ParseClock(args[1])
			if err != nil {
				return err
			}
			if logout < login {
				return fmt.Errorf("%w: %s < %s", ledger.ErrLogoutBeforeLogin, logout, login)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ledger.DurationBetween(login, logout))
			return nil
		},
	}
}

func newSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `sum "<H> hours and <M> minutes"...`,
		Short: "Add up durations, carrying minutes into hours.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := ledger.SumStrings(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}
