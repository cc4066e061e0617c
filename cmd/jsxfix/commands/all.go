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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/jsxfix/cmd/jsxfix/opts"
	"github.com/walteh/jsxfix/pkg/fix"
)

func NewAllCmd(o *opts.RootOpts) *cobra.Command {
	var async bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every fix",
		Long: `All runs the chevron fix and then the layout fix. With --async both
run concurrently; they touch different files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runAsync := async || o.Config.Async
			if runAsync {
				if err := o.Config.ValidateAsync(); err != nil {
					return err
				}
			}

			o.Logger.Header("running all fixes")
			return runFixes(cmd.Context(), o, runAsync, fix.ChevronName, fix.LayoutName)
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "run the fixes concurrently")

	return cmd
}
