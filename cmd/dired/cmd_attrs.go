// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/docker/go-units"
	"github.com/siemens/fileattrs"
	"github.com/spf13/cobra"
)

// timeFormat is the “ls -l --time-style=long-iso” format.
const timeFormat = "2006-01-02 15:04"

func newAttrsCmd() *cobra.Command {
	var idformat string
	var human bool
	cmd := &cobra.Command{
		Use:   "attrs FILE...",
		Short: "show the attributes of files, without following symbolic links",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fileattrs.ParseIDFormat(idformat)
			if err != nil {
				return err
			}
			for _, path := range args {
				attrs, err := fileattrs.Of(path, f)
				if err != nil {
					return err
				}
				if err := printAttributes(cmd.OutOrStdout(), path, attrs, human); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&idformat, "id-format", "integer", "owner and group format: integer or string")
	cmd.Flags().BoolVar(&human, "human", false, "print sizes in human readable format")
	return cmd
}

func newLsCmd() *cobra.Command {
	var match string
	var full, nosort, byowner, human bool
	var workers int
	cmd := &cobra.Command{
		Use:   "ls DIR",
		Short: "list the entries of a directory with their attributes",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []fileattrs.ListOption
			if match != "" {
				re, err := regexp.Compile(match)
				if err != nil {
					return fmt.Errorf("invalid --match regular expression, reason: %w", err)
				}
				opts = append(opts, fileattrs.WithMatch(re))
			}
			if full {
				opts = append(opts, fileattrs.WithFullNames())
			}
			if nosort {
				opts = append(opts, fileattrs.WithoutSorting())
			}
			lister := fileattrs.New(
				fileattrs.WithWorkers(workers),
				fileattrs.WithIDFormat(fileattrs.IDString))
			entries, err := lister.Directory(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			if byowner {
				if err := fileattrs.SortByOwner(entries); err != nil {
					return err
				}
			}
			for _, entry := range entries {
				if err := printAttributes(cmd.OutOrStdout(), entry.Name, entry.Attributes, human); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "only list entries matching this regular expression")
	cmd.Flags().BoolVar(&full, "full", false, "show absolute entry names")
	cmd.Flags().BoolVar(&nosort, "nosort", false, "don't sort entries by name")
	cmd.Flags().BoolVar(&byowner, "by-owner", false, "sort entries by owner names")
	cmd.Flags().BoolVar(&human, "human", false, "print sizes in human readable format")
	cmd.Flags().IntVar(&workers, "workers", 0, "maximum parallel attribute reads; 0 for GOMAXPROCS")
	return cmd
}

// newLesspCmd returns the command comparing two owner names as the first
// fields of two single-field attribute records.
func newLesspCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessp OWNER OWNER",
		Short: "print t if the first owner sorts before the second, nil otherwise",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			less, err := fileattrs.Less(fileattrs.Record{args[0]}, fileattrs.Record{args[1]})
			if err != nil {
				return err
			}
			result := "nil"
			if less {
				result = "t"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

// printAttributes prints the attributes of a single file in the style of a
// “ls -l” line.
func printAttributes(w io.Writer, name string, attrs *fileattrs.Attributes, human bool) error {
	size := strconv.FormatInt(attrs.Size, 10)
	if human {
		size = units.HumanSize(float64(attrs.Size))
	}
	if attrs.IsSymlink {
		name += " -> " + attrs.LinkTarget
	}
	_, err := fmt.Fprintf(w, "%s %3d %-8s %-8s %9s %s %s\n",
		attrs.Modes,
		attrs.Links,
		attrs.Owner.String(),
		attrs.Group.String(),
		size,
		attrs.ModificationTime.Format(timeFormat),
		name)
	return err
}
