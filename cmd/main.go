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

	"github.com/Adembc/fleetssh/internal/adapters/flags"
	"github.com/Adembc/fleetssh/internal/adapters/ui"
	"github.com/spf13/cobra"
)

var (
	version   = "develop"
	gitCommit = "unknown"
)

// errReported marks failures that were already shown to the operator.
var errReported = errors.New("failure already reported")

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     ui.AppName,
		Short:   "Resolve connection parameters and run commands across a server fleet",
		Version: fmt.Sprintf("%s (%s)", version, gitCommit),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✗ Unknown action: %s\n\n", args[0])
			}
			_ = cmd.Usage()
			return errReported
		},
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	fp := flags.NewCobraFlags(rootCmd)
	rootCmd.AddCommand(
		newListCmd(fp),
		newGroupsCmd(fp),
		newTestCmd(fp),
		newExecCmd(fp),
		newResolveCmd(fp),
		newSSHConfigCmd(fp),
		newBrowseCmd(fp),
		newInitCmd(fp),
	)

	return rootCmd
}
