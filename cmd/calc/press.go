package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"remote-calc/internal/keypad"
)

func newPressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press KEYS...",
		Short: "Replay keypresses without the interactive UI and print the display",
		Long: `Replay keypresses against a fresh calculator and print what the display
shows afterwards. Keys are 0-9, '.', + - * / =, and 'c' to clear;
whitespace is ignored.

  calc press "5 + 3 ="
  calc press 7 / 0 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, calc keypad.Calculator) error {
				s := keypad.NewSession()
				if err := keypad.Replay(ctx, s, calc, strings.Join(args, " ")); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Display())
				return err
			})
		},
	}
}
