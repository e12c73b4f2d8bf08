// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/siemens/fileattrs"
	"github.com/siemens/fileattrs/accounts"
	"github.com/spf13/cobra"
	"github.com/thediveo/lxkns/model"
)

var errWrongArity = fileattrs.ErrWrongArity

func newUsersCmd() *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "users",
		Short: "list the user accounts registered with the system",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pid <= 0 {
				return printNames(cmd, accounts.Users())
			}
			names, err := accounts.UsersOfProcess(model.PIDType(pid))
			if err != nil {
				return err
			}
			return printNames(cmd, names)
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "list users as seen by the process with this PID")
	return cmd
}

func newGroupsCmd() *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "list the group accounts registered with the system",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pid <= 0 {
				return printNames(cmd, accounts.Groups())
			}
			names, err := accounts.GroupsOfProcess(model.PIDType(pid))
			if err != nil {
				return err
			}
			return printNames(cmd, names)
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "list groups as seen by the process with this PID")
	return cmd
}

func printNames(cmd *cobra.Command, names []string) error {
	out := cmd.OutOrStdout()
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
