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
	"github.com/walteh/jsxfix/pkg/text"
)

const (
	LayoutName   = "layout"
	LayoutTarget = "app/_layout.jsx"

	// DefaultBackTitle is the label given to empty back buttons
	DefaultBackTitle = "Retour"

	// ExemptScreen keeps no back-title at all
	ExemptScreen = "application"

	// exemptIndent is the indentation of the options line under the exempt screen
	exemptIndent = "\t\t\t\t\t\t\t"
)

// LayoutOptions tunes the layout rule set
type LayoutOptions struct {
	Target    string
	BackTitle string

	// ExceptionFirst evaluates the exempt screen rule before the general
	// ones. With the declared order the general closing-brace rule already
	// rewrote the exempt block, which leaves the exception unreachable.
	ExceptionFirst bool
}

// DefaultLayoutOptions returns the options used by the fixlayout binary.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Target:    LayoutTarget,
		BackTitle: DefaultBackTitle,
	}
}

// LayoutBackTitle builds the fix filling empty navigation back-titles.
func LayoutBackTitle(opts LayoutOptions) *Fix {
	if opts.Target == "" {
		opts.Target = LayoutTarget
	}
	if opts.BackTitle == "" {
		opts.BackTitle = DefaultBackTitle
	}

	trailingComma := text.Literal("back-title-trailing-comma",
		`headerBackTitle: "",`,
		`headerBackTitle: "`+opts.BackTitle+`",`)

	closingBraces := text.Literal("back-title-closing-braces",
		`headerBackTitle: "" }}`,
		`headerBackTitle: "`+opts.BackTitle+`" }}`)

	exempt := text.Literal("application-back-title",
		"name='"+ExemptScreen+"'\n"+exemptIndent+`options={{ headerShown: true, headerBackTitle: "" }}`,
		"name='"+ExemptScreen+"'\n"+exemptIndent+`options={{ headerShown: true }}`)

	rules := []text.ReplacementRule{trailingComma, closingBraces, exempt}
	if opts.ExceptionFirst {
		rules = []text.ReplacementRule{exempt, trailingComma, closingBraces}
	}

	return &Fix{
		Name:   LayoutName,
		Target: opts.Target,
		Rules:  rules,
		Report: Report{Headline: "File fixed!"},
	}
}
