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

func NewLayoutCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Fill empty header back titles",
		Long: `Layout rewrites the root layout so that:
1. Empty headerBackTitle values become the configured label ("Retour")
2. The application screen drops its headerBackTitle entirely`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Logger.Header("updating back titles")
			return runFixes(cmd.Context(), o, false, fix.LayoutName)
		},
	}

	return cmd
}
