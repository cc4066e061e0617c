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

package text

import (
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// ReplacementRule defines a single text replacement operation.
//
// A rule matches either a literal substring (FromText) or a compiled
// pattern (Pattern). When Pattern is set, FromText is ignored and ToText is
// expanded as a template, so ${1} refers to the first capture group.
type ReplacementRule struct {
	// Name identifies the rule in logs and results
	Name string

	// FromText is the literal text to replace
	FromText string

	// Pattern is the expression to replace, takes precedence over FromText
	Pattern *regexp.Regexp

	// ToText is the replacement text or template
	ToText string
}

// Literal creates a rule replacing every occurrence of from with to.
func Literal(name, from, to string) ReplacementRule {
	return ReplacementRule{Name: name, FromText: from, ToText: to}
}

// Compile creates a pattern rule. template may reference capture groups
// with the ${n} syntax.
func Compile(name, expr, template string) (ReplacementRule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return ReplacementRule{}, errors.Errorf("compiling rule %q: %w", name, err)
	}
	return ReplacementRule{Name: name, Pattern: re, ToText: template}, nil
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(name, expr, template string) ReplacementRule {
	r, err := Compile(name, expr, template)
	if err != nil {
		panic(err)
	}
	return r
}

// IsPattern reports whether the rule matches with a regular expression.
func (r ReplacementRule) IsPattern() bool {
	return r.Pattern != nil
}

// Matcher returns the literal text or the pattern source, for display.
func (r ReplacementRule) Matcher() string {
	if r.IsPattern() {
		return r.Pattern.String()
	}
	return r.FromText
}

// RuleResult records how many times one rule matched
type RuleResult struct {
	Name  string
	Count int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// Rules holds the per-rule counts, in application order
	Rules []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules in order, each one to the output of the previous
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
