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
	"context"

	"github.com/walteh/jsxfix/cmd/jsxfix/opts"
	"github.com/walteh/jsxfix/pkg/log"
	"github.com/walteh/jsxfix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// runFixes builds the named fixes, runs them and prints the summary table
func runFixes(ctx context.Context, o *opts.RootOpts, async bool, names ...string) error {
	ops, err := operation.Build(o.Config, o.Files, o.DryRun, true, names...)
	if err != nil {
		return errors.Errorf("building operations: %w", err)
	}

	ctx = log.NewContext(ctx, o.Logger)
	runner := operation.NewRunner(o.Logger.Zerolog(), async)
	if err := runner.Run(ctx, ops...); err != nil {
		return err
	}

	o.Logger.LogNewline()
	if err := o.Logger.Summary(); err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}

	if o.DryRun {
		pending := 0
		for _, op := range o.Logger.Operations() {
			if op.IsModified {
				pending++
			}
		}
		o.Logger.Infof("dry run: %d file(s) would change, nothing was written", pending)
	}
	return nil
}
