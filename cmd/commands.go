// Copyright 2025.
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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Adembc/fleetssh/internal/adapters/config"
	"github.com/Adembc/fleetssh/internal/adapters/data/file"
	"github.com/Adembc/fleetssh/internal/adapters/flags"
	"github.com/Adembc/fleetssh/internal/adapters/ui"
	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newListCmd(fp ports.FlagsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List servers with their addresses and group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			ui.PrintServers(cmd.OutOrStdout(), app.inventory.ListServers())
			return nil
		},
	}
}

func newGroupsCmd(fp ports.FlagsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List server groups and their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			ui.PrintGroups(cmd.OutOrStdout(), app.inventory.ListGroups())
			return nil
		},
	}
}

func newTestCmd(fp ports.FlagsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "test <server>",
		Short: "Test that a server accepts an ssh connection",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("✗ Please specify a server name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			if !app.dispatcher.Test(cmd.Context(), args[0]) {
				return errReported
			}
			return nil
		},
	}
}

func newExecCmd(fp ports.FlagsProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <server> <command...>",
		Short: "Run a command on a server and print its output",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("✗ Please specify a server name and a command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			command := strings.Join(args[1:], " ")
			if _, ok := app.dispatcher.Execute(cmd.Context(), args[0], command); !ok {
				return errReported
			}
			return nil
		},
	}
	// Everything after the server name belongs to the remote command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newResolveCmd(fp ports.FlagsProvider) *cobra.Command {
	var copyCommand bool

	cmd := &cobra.Command{
		Use:   "resolve <server>",
		Short: "Show the effective connection parameters for a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			conn, err := app.resolver.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("✗ %w", err)
			}

			line := app.commandLine(conn)
			ui.PrintResolved(cmd.OutOrStdout(), conn, line)

			if copyCommand {
				if err := clipboard.WriteAll(line); err != nil {
					app.logger.Warnw("clipboard write failed", "error", err)
					return fmt.Errorf("✗ failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyCommand, "copy", "c", false, "Copy the ssh command line to the clipboard")
	return cmd
}

func newSSHConfigCmd(fp ports.FlagsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "ssh-config",
		Short: "Print the fleet as an OpenSSH client config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			exporter := file.NewSSHConfigExporter(app.logger, app.resolver)
			skipped, err := exporter.Export(cmd.OutOrStdout(), app.inventory.ListServers())
			if err != nil {
				return err
			}
			for _, name := range skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Skipped %s: connection cannot be resolved\n", name)
			}
			return nil
		},
	}
}

func newBrowseCmd(fp ports.FlagsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the inventory interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApplication(fp, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			tui := ui.NewTUI(app.logger, app.inventory, app.resolver, app.dispatcher, app.commandLine)
			return tui.Run(cmd.Context())
		},
	}
}

func newInitCmd(fp ports.FlagsProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file into the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewOSConfig(fp.GetFlag(flags.FlagConfigDir))
			log, err := newLogger(fp, cfg)
			if err != nil {
				return err
			}
			//nolint:errcheck // log.Sync may return an error which is safe to ignore here
			defer log.Sync()

			// File paths are written relative so the directory can be moved.
			path := cfg.ConfigPath(domain.SettingsFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("✗ %s already exists (use --force to overwrite)", path)
			}

			if err := file.NewSettingsManager(path).Save(domain.DefaultSettings("")); err != nil {
				log.Errorw("failed to write settings", "path", path, "error", err)
				return fmt.Errorf("✗ failed to write settings: %w", err)
			}
			log.Infow("settings written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing settings file")
	return cmd
}
