// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thediveo/lxkns/log"

	_ "github.com/thediveo/lxkns/log/logrus" // route logging through logrus
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the dired root command with all its subcommands, so that
// tests get a fresh command tree each time.
func newRootCmd() *cobra.Command {
	var debug bool
	rootCmd := &cobra.Command{
		Use:   "dired",
		Short: "dired lists file attributes and system accounts",
		Long: `dired shows the attributes of files and directory entries as used
in directory listings, and the user and group accounts known to the system.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(
		newUsersCmd(),
		newGroupsCmd(),
		newAttrsCmd(),
		newLsCmd(),
		newLesspCmd(),
	)
	return rootCmd
}

// noArgs is a cobra positional args validator for commands not taking any
// arguments, reporting an error wrapping fileattrs.ErrWrongArity otherwise.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s takes no arguments, but got %d",
		errWrongArity, cmd.Name(), len(args))
}

// exactArgs returns a cobra positional args validator for commands taking
// exactly n arguments.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		return fmt.Errorf("%w: %s takes %d arguments, but got %d",
			errWrongArity, cmd.Name(), n, len(args))
	}
}

// minArgs returns a cobra positional args validator for commands taking at
// least n arguments.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= n {
			return nil
		}
		return fmt.Errorf("%w: %s takes at least %d argument(s), but got %d",
			errWrongArity, cmd.Name(), n, len(args))
	}
}
