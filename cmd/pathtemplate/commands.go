// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package main

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/spf13/cobra"
	"github.com/woozymasta/pathtemplate"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <template> [key=value...]",
		Short: "Render a path from a template and field values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := a.fieldsFromArgs(args[1:])
			if err != nil {
				return err
			}

			p, err := a.manager.Path(args[0], fields)
			if err != nil {
				return err
			}

			return a.printLine("path", p)
		},
	}
}

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <template> <path>",
		Short: "Extract field values from a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := a.manager.Fields(args[0], args[1])
			if err != nil {
				return err
			}

			if len(fields) == 0 {
				a.log.Debug("path does not match template", "template", args[0], "path", args[1])
			}

			return a.printFields(fields)
		},
	}
}

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <path>",
		Short: "Find the single template that produces a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.manager.TemplateName(args[0])
			if err != nil {
				var ambiguous *pathtemplate.AmbiguousTemplateError
				if errors.As(err, &ambiguous) {
					a.log.Debug("template lookup failed", "path", ambiguous.Path, "candidates", ambiguous.Candidates)
				}

				return err
			}

			return a.printLine("template", name)
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "paths <template> [key=value...]",
		Short: "List existing paths matching a template; omitted fields match anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := a.fieldsFromArgs(args[1:])
			if err != nil {
				return err
			}

			var seq iter.Seq2[string, error]
			if root != "" {
				seq, err = a.manager.PathsFS(os.DirFS(root), args[0], fields)
			} else {
				seq, err = a.manager.Paths(args[0], fields)
			}
			if err != nil {
				return err
			}

			count := 0
			for p, err := range seq {
				if err != nil {
					a.log.Warn("skip unreadable directory", "path", p, "error", err)
					continue
				}

				if err := a.printLine("path", p); err != nil {
					return err
				}
				count++
			}

			a.log.Debug("enumeration finished", "template", args[0], "matches", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "enumerate inside this directory instead of the working directory")
	return cmd
}

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <template>",
		Short: "Print the fully expanded template string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded, err := a.manager.Expand(args[0])
			if err != nil {
				return err
			}

			return a.printLine("template", expanded)
		},
	}
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List registered templates with their expansion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.manager.Templates()
			expanded := make(map[string]string, len(names))
			for _, name := range names {
				e, err := a.manager.Expand(name)
				if err != nil {
					return err
				}
				expanded[name] = e
			}

			if a.cfg.GetBool(cfgKeyJSON) {
				return a.printJSON(expanded)
			}

			for _, name := range names {
				if _, err := fmt.Fprintf(a.out, "%s\t%s\n", name, expanded[name]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
