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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/jsxfix/pkg/config"
	"github.com/walteh/jsxfix/pkg/fix"
	"github.com/walteh/jsxfix/pkg/log"
	"github.com/walteh/jsxfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one fix run: load the target, transform it, write it back
// and report.
type Operation interface {
	// Name returns the fix name (chevrons, layout)
	Name() string
	// Execute runs the fix against every file its target designates
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Fix is the rule set to apply
	Fix *fix.Fix
	// Files reads and writes the targets
	Files *status.Manager
	// DryRun prints a diff instead of writing
	DryRun bool
	// Verbose prints a line per processed file before the report
	Verbose bool
}

// 🏭 New creates a new operation with the given options
func New(opts Options) (Operation, error) {
	if opts.Fix == nil {
		return nil, errors.Errorf("fix is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if err := opts.Fix.Validate(); err != nil {
		return nil, errors.Errorf("invalid fix: %w", err)
	}
	return &patchOperation{
		fix:     opts.Fix,
		files:   opts.Files,
		dryRun:  opts.DryRun,
		verbose: opts.Verbose,
	}, nil
}

// 🏗️ Build creates the named operations from cfg, in the order given.
func Build(cfg *config.Config, files *status.Manager, dryRun, verbose bool, names ...string) ([]Operation, error) {
	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		var f *fix.Fix
		switch name {
		case fix.ChevronName:
			var err error
			f, err = fix.ChevronStyle(cfg.ChevronOptions())
			if err != nil {
				return nil, errors.Errorf("building %s: %w", name, err)
			}
		case fix.LayoutName:
			f = fix.LayoutBackTitle(cfg.LayoutOptions())
		default:
			return nil, errors.Errorf("unknown fix %q", name)
		}

		op, err := New(Options{Fix: f, Files: files, DryRun: dryRun, Verbose: verbose})
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// 🎮 patchOperation implements the Operation interface
type patchOperation struct {
	fix     *fix.Fix
	files   *status.Manager
	dryRun  bool
	verbose bool
}

func (o *patchOperation) Name() string {
	return o.fix.Name
}

// 🔄 Execute resolves the target, rewrites each file and prints the fix
// report. The report is fixed text and is printed whether or not any rule
// matched; nothing is printed when a file fails.
func (o *patchOperation) Execute(ctx context.Context) error {
	logger := log.FromContext(ctx)

	zerolog.Ctx(ctx).Debug().
		Str("fix", o.fix.Name).
		Str("root", o.files.BaseDir()).
		Str("target", o.fix.Target).
		Msg("resolving target")

	targets, err := o.files.Resolve(ctx, o.fix.Target)
	if err != nil {
		return errors.Errorf("%s: resolving target: %w", o.fix.Name, err)
	}

	for _, target := range targets {
		if err := o.processFile(ctx, logger, target); err != nil {
			return errors.Errorf("%s: %w", o.fix.Name, err)
		}
	}

	logger.Report(o.fix.Report.Headline, o.fix.Report.Details)
	return nil
}

func (o *patchOperation) processFile(ctx context.Context, logger *log.Logger, target string) error {
	zlog := zerolog.Ctx(ctx).With().Str("fix", o.fix.Name).Str("file", target).Logger()

	content, err := o.files.ReadFile(ctx, target)
	if err != nil {
		return err
	}

	result, err := o.fix.Apply(ctx, string(content))
	if err != nil {
		return err
	}

	for _, r := range result.Rules {
		zlog.Debug().Str("rule", r.Name).Int("count", r.Count).Msg("rule applied")
	}
	if result.ReplacementCount == 0 {
		zlog.Warn().Msg("no rule matched, file left as is")
		if o.verbose {
			logger.Warningf("%s: no %s rule matched", target, o.fix.Name)
		}
	}

	fileStatus := status.StatusUnchanged
	if result.WasModified {
		fileStatus = status.StatusModified
	}

	if o.dryRun {
		fileStatus = status.StatusPreview
		logger.Raw(status.FormatDiff(target, content, result.ModifiedContent))
	} else {
		// written back even when unchanged, matching a plain read/replace/write run
		if err := o.files.WriteFile(ctx, target, result.ModifiedContent); err != nil {
			return err
		}
	}

	op := log.FileOperation{
		Path:         target,
		Fix:          o.fix.Name,
		Status:       fileStatus.String(),
		IsModified:   result.WasModified,
		IsPreview:    o.dryRun,
		Replacements: result.ReplacementCount,
	}
	if o.verbose {
		logger.LogFileOperation(ctx, op)
	} else {
		logger.RecordFileOperation(ctx, op)
	}
	return nil
}
