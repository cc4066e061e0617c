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
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer by applying rules one after another
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result, err := r.ReplaceString(ctx, string(originalContent), rules)
	if err != nil {
		return nil, err
	}
	result.OriginalContent = originalContent
	return result, nil
}

// ReplaceString applies the rules to an in-memory string.
func (r *SimpleTextReplacer) ReplaceString(ctx context.Context, content string, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	result := &ReplacementResult{
		OriginalContent: []byte(content),
		Rules:           make([]RuleResult, 0, len(rules)),
	}

	current := content
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying rule %q: %w", rule.Name, err)
		}

		next, count := apply(current, rule)
		result.Rules = append(result.Rules, RuleResult{Name: rule.Name, Count: count})
		result.ReplacementCount += count

		logger.Debug().
			Str("rule", rule.Name).
			Str("matcher", rule.Matcher()).
			Int("matches", count).
			Msg("applied replacement rule")

		current = next
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != content
	return result, nil
}

// apply runs a single rule and returns the new text with the number of matches.
func apply(content string, rule ReplacementRule) (string, int) {
	if rule.IsPattern() {
		matches := rule.Pattern.FindAllStringIndex(content, -1)
		if len(matches) == 0 {
			return content, 0
		}
		return rule.Pattern.ReplaceAllString(content, rule.ToText), len(matches)
	}

	// empty literal would match between every rune
	if rule.FromText == "" {
		return content, 0
	}

	count := strings.Count(content, rule.FromText)
	if count == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, rule.FromText, rule.ToText), count
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[rule.Name] {
			return errors.Errorf("rule %d: duplicate name %q", i, rule.Name)
		}
		seen[rule.Name] = true
		if !rule.IsPattern() && rule.FromText == "" {
			return errors.Errorf("rule %d: from_text or pattern is required", i)
		}
	}
	return nil
}
