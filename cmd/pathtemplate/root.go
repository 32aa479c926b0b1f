// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/woozymasta/pathtemplate"
)

// app holds per-invocation state shared by subcommands.
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfg     *viper.Viper
	log     *slog.Logger
	manager *pathtemplate.Manager

	configFile string
}

func newRootCmd(out io.Writer, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "pathtemplate",
		Short:         "Build and parse paths from named templates",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			return a.setup(cmd)
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./pathtemplate.yaml)")
	root.PersistentFlags().StringSlice(cfgKeyDefinitions, nil, "template definition files (.yaml, .yml, .toml), later files override earlier ones")
	root.PersistentFlags().Bool(cfgKeyJSON, false, "output as JSON")
	root.PersistentFlags().Bool(cfgKeyVerbose, false, "log diagnostics to stderr")

	root.AddCommand(
		newPathCmd(a),
		newFieldsCmd(a),
		newNameCmd(a),
		newPathsCmd(a),
		newExpandCmd(a),
		newTemplatesCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads config and definitions into a fresh manager.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.GetBool(cfgKeyVerbose) {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	files := cfg.GetStringSlice(cfgKeyDefinitions)
	defs, err := pathtemplate.LoadDefinitionsFiles(files...)
	if err != nil {
		return err
	}

	a.manager = pathtemplate.NewManager()
	if err := a.manager.Load(defs); err != nil {
		return err
	}

	a.log.Debug("definitions loaded",
		"files", files,
		"templates", len(defs.Templates),
		"rules", len(defs.Rules),
		"config", cfg.ConfigFileUsed(),
	)

	return nil
}
