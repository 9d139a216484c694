// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

const (
	cliName        = "tty-select"
	cliDescription = "Ask the user to pick one of several options on the terminal"
)

var (
	verbose bool

	// ErrNoCommand is returned when tty-select runs without a subcommand.
	ErrNoCommand = errors.New("no command given")
)

// RootCmd builds the tty-select command tree. Run without a subcommand it
// prints its usage to stderr and fails.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: cliDescription + `.

The menu, prompts and error messages are written to stderr and the answer
is read from the controlling terminal, so the command can be used inside
pipes and command substitutions:

  color=$(tty-select select -p "Pick a color" -d 2 Red Green Blue)
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(cmd.ErrOrStderr())
			if err := cmd.Usage(); err != nil {
				return err
			}
			return ErrNoCommand
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		NewCommandVersion(),
		NewCommandSelect(),
	)

	return rootCmd
}
