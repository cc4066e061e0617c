// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/jsxfix/cmd/jsxfix/commands"
	"github.com/walteh/jsxfix/cmd/jsxfix/opts"
	"github.com/walteh/jsxfix/pkg/config"
	"github.com/walteh/jsxfix/pkg/log"
	"github.com/walteh/jsxfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile string
	root       string
	debug      bool
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "jsxfix",
		Short: "Apply the app's JSX source fixes",
		Long: `jsxfix rewrites a handful of JSX files in place with fixed regex and
literal rules: the chevron icon style on the account screen and the header
back titles in the root layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(cmd.ErrOrStderr(), flags.debug)
			ctx := zlog.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			return initRootOpts(ctx, cmd, &flags, rootOpts, zlog)
		},
	}

	addRootFlags(cmd, &flags)

	cmd.AddCommand(
		commands.NewChevronsCmd(rootOpts),
		commands.NewLayoutCmd(rootOpts),
		commands.NewAllCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

func initRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, o *opts.RootOpts, zlog zerolog.Logger) error {
	cfg, err := config.LoadOrDefault(ctx, flags.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if flags.root != "" {
		cfg.Root = flags.root
	}

	zlog.Debug().Str("config", cfg.String()).Bool("dry_run", flags.dryRun).Msg("configuration loaded")

	o.Config = cfg
	o.Files = status.New(cfg.Root, &zlog, status.Options{InPlace: cfg.InPlace, Backup: cfg.Backup})
	o.Logger = log.NewWithZerolog(cmd.OutOrStdout(), zlog)
	o.DryRun = flags.dryRun
	return nil
}

func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", "directory the targets are relative to")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "print a diff instead of writing")
}

func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
