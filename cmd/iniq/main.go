// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniq queries and edits INI configuration files from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/yourbase/iniconf/ini"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Errorf(context.Background(), "iniq: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "iniq",
		Short: "Query and edit INI configuration files",
		Long: "iniq reads and writes INI-style configuration files.\n\n" +
			"Commands that take no FILE argument fall back to the file named by\n" +
			"the INIQ_FILE environment variable.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		newGetCommand(),
		newSetCommand(),
		newSectionsCommand(),
		newFmtCommand(),
	)
	return root
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [FILE...] SECTION KEY",
		Short: "Print the value of a key",
		Long: "Print the value of KEY in SECTION. When several FILEs are given,\n" +
			"they are searched in order and the first match wins.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(args[:len(args)-2])
			if err != nil {
				return err
			}
			section, key := args[len(args)-2], args[len(args)-1]
			set, err := ini.Load(files...)
			if err != nil {
				return err
			}
			warnMissing(cmd.Context(), files, set)
			v, ok := set.Lookup(section, key)
			if !ok {
				return fmt.Errorf("%s.%s not found", section, key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [FILE] SECTION KEY VALUE",
		Short: "Append a key-value pair to a section",
		Long: "Append the pair KEY = VALUE to every section named SECTION,\n" +
			"creating the section (and the file) if needed.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(args[:len(args)-3])
			if err != nil {
				return err
			}
			path := files[0]
			section, key, value := args[len(args)-3], args[len(args)-2], args[len(args)-1]
			cfg, err := ini.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				log.Infof(cmd.Context(), "%s does not exist; creating it", path)
				cfg = new(ini.Config)
			} else if err != nil {
				return err
			}
			cfg.AddValue(section, key, value)
			return cfg.WriteFile(path)
		},
	}
}

func newSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [FILE...]",
		Short: "List section names in order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(args)
			if err != nil {
				return err
			}
			set, err := ini.Load(files...)
			if err != nil {
				return err
			}
			warnMissing(cmd.Context(), files, set)
			for _, name := range set.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFmtCommand() *cobra.Command {
	write := false
	c := &cobra.Command{
		Use:   "fmt [FILE]",
		Short: "Print a file in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := resolveFiles(args)
			if err != nil {
				return err
			}
			path := files[0]
			cfg, err := ini.ReadFile(path)
			if err != nil {
				return err
			}
			if write {
				if err := cfg.WriteFile(path); err != nil {
					return err
				}
				log.Infof(cmd.Context(), "rewrote %s", path)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}
	c.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")
	return c
}

// resolveFiles fills in the INIQ_FILE environment variable when no file
// arguments were given.
func resolveFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if path := os.Getenv("INIQ_FILE"); path != "" {
		return []string{path}, nil
	}
	return nil, errors.New("no file given and INIQ_FILE not set")
}

func warnMissing(ctx context.Context, files []string, set ini.Set) {
	for i, cfg := range set {
		if cfg == nil {
			log.Warnf(ctx, "%s does not exist; skipping", files[i])
		}
	}
}
