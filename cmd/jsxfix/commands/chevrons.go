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

func NewChevronsCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chevrons",
		Short: "Enlarge and lighten the ChevronRight icons",
		Long: `Chevrons rewrites the account screen so that every ChevronRight icon:
1. Uses size 'xl' instead of 'lg'
2. Uses #d1d5db instead of #9ca3af in dark mode
3. Uses #9ca3af instead of #6b7280 in light mode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Logger.Header("updating chevrons")
			return runFixes(cmd.Context(), o, false, fix.ChevronName)
		},
	}

	return cmd
}
