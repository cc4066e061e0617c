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

package fix

import (
	"context"
	"strings"

	"github.com/walteh/jsxfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📣 Report is the fixed message printed after a fix runs. It never depends
// on how many rules matched.
type Report struct {
	Headline string
	Details  []string
}

var replacer text.TextReplacer = text.NewSimpleTextReplacer()

// 🔧 Fix is an ordered rule set bound to one target file
type Fix struct {
	Name   string                 // short name used by the CLI and logs
	Target string                 // path or glob, relative to the working root
	Rules  []text.ReplacementRule // applied in order
	Report Report
}

// 🔄 Apply runs the rules against content.
func (f *Fix) Apply(ctx context.Context, content string) (*text.ReplacementResult, error) {
	result, err := replacer.ReplaceText(ctx, strings.NewReader(content), f.Rules)
	if err != nil {
		return nil, errors.Errorf("applying %s: %w", f.Name, err)
	}
	return result, nil
}

// 🔍 Validate checks the fix is usable.
func (f *Fix) Validate() error {
	if f.Name == "" {
		return errors.Errorf("fix name is required")
	}
	if f.Target == "" {
		return errors.Errorf("%s: target is required", f.Name)
	}
	if err := replacer.ValidateRules(f.Rules); err != nil {
		return errors.Errorf("%s: %w", f.Name, err)
	}
	return nil
}
