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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/jsxfix/pkg/text"
)

const applicationBlock = "<Stack.Screen\n\t\t\t\t\t\t\tname='application'\n\t\t\t\t\t\t\toptions={{ headerShown: true, headerBackTitle: \"\" }}\n\t\t\t\t\t\t/>"

func applyLayout(t *testing.T, opts LayoutOptions, content string) *text.ReplacementResult {
	t.Helper()
	result, err := LayoutBackTitle(opts).Apply(context.Background(), content)
	require.NoError(t, err, "applying layout fix should succeed")
	return result
}

func TestLayoutBackTitle(t *testing.T) {
	tests := []struct {
		name    string
		opts    LayoutOptions
		content string
		want    string
	}{
		{
			name:    "trailing_comma",
			opts:    DefaultLayoutOptions(),
			content: "screenOptions={{\n\theaderShown: false,\n\theaderBackTitle: \"\",\n}}",
			want:    "screenOptions={{\n\theaderShown: false,\n\theaderBackTitle: \"Retour\",\n}}",
		},
		{
			name:    "closing_braces",
			opts:    DefaultLayoutOptions(),
			content: `options={{ headerShown: true, headerBackTitle: "" }}`,
			want:    `options={{ headerShown: true, headerBackTitle: "Retour" }}`,
		},
		{
			name:    "filled_titles_untouched",
			opts:    DefaultLayoutOptions(),
			content: `options={{ headerBackTitle: "Back" }} headerBackTitle: "Home",`,
			want:    `options={{ headerBackTitle: "Back" }} headerBackTitle: "Home",`,
		},
		{
			name:    "declared_order_leaves_application_titled",
			opts:    DefaultLayoutOptions(),
			content: applicationBlock,
			want:    strings.Replace(applicationBlock, `headerBackTitle: ""`, `headerBackTitle: "Retour"`, 1),
		},
		{
			name:    "exception_first_removes_application_title",
			opts:    LayoutOptions{ExceptionFirst: true},
			content: applicationBlock,
			want:    strings.Replace(applicationBlock, `headerShown: true, headerBackTitle: "" }}`, `headerShown: true }}`, 1),
		},
		{
			name:    "exception_needs_exact_indentation",
			opts:    LayoutOptions{ExceptionFirst: true},
			content: "name='application'\n\t\t\t\t\t\t\t\t\toptions={{ headerShown: true, headerBackTitle: \"\" }}",
			want:    "name='application'\n\t\t\t\t\t\t\t\t\toptions={{ headerShown: true, headerBackTitle: \"Retour\" }}",
		},
		{
			name:    "exception_only_for_application",
			opts:    LayoutOptions{ExceptionFirst: true},
			content: "name='profile'\n\t\t\t\t\t\t\toptions={{ headerShown: true, headerBackTitle: \"\" }}",
			want:    "name='profile'\n\t\t\t\t\t\t\toptions={{ headerShown: true, headerBackTitle: \"Retour\" }}",
		},
		{
			name:    "custom_label",
			opts:    LayoutOptions{BackTitle: "Back"},
			content: `headerBackTitle: "", headerBackTitle: "" }}`,
			want:    `headerBackTitle: "Back", headerBackTitle: "Back" }}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyLayout(t, tt.opts, tt.content)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
		})
	}
}

func TestLayoutBackTitle_EndToEnd(t *testing.T) {
	entry := "\t\t\t\t\t\t\toptions={{\n\t\t\t\t\t\t\t\theaderBackTitle: \"\",\n\t\t\t\t\t\t\t}}\n"
	content := entry + entry + entry + applicationBlock + "\n"

	tests := []struct {
		name       string
		opts       LayoutOptions
		wantCounts map[string]int
		wantApp    string
	}{
		{
			name: "declared_order",
			opts: DefaultLayoutOptions(),
			wantCounts: map[string]int{
				"back-title-trailing-comma": 3,
				"back-title-closing-braces": 1,
				"application-back-title":    0,
			},
			wantApp: `options={{ headerShown: true, headerBackTitle: "Retour" }}`,
		},
		{
			name: "exception_first",
			opts: LayoutOptions{ExceptionFirst: true},
			wantCounts: map[string]int{
				"back-title-trailing-comma": 3,
				"back-title-closing-braces": 0,
				"application-back-title":    1,
			},
			wantApp: `options={{ headerShown: true }}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := applyLayout(t, tt.opts, content)
			require.True(t, first.WasModified)

			counts := map[string]int{}
			for _, r := range first.Rules {
				counts[r.Name] = r.Count
			}
			assert.Equal(t, tt.wantCounts, counts)
			assert.Equal(t, 3, strings.Count(string(first.ModifiedContent), `headerBackTitle: "Retour",`))
			assert.Contains(t, string(first.ModifiedContent), tt.wantApp)
			assert.NotContains(t, string(first.ModifiedContent), `headerBackTitle: ""`)

			second := applyLayout(t, tt.opts, string(first.ModifiedContent))
			assert.False(t, second.WasModified, "second run should not change anything")
			assert.Equal(t, 0, second.ReplacementCount)
		})
	}
}

func TestLayoutBackTitle_RuleOrder(t *testing.T) {
	names := func(f *Fix) []string {
		var out []string
		for _, r := range f.Rules {
			out = append(out, r.Name)
		}
		return out
	}

	declared := LayoutBackTitle(DefaultLayoutOptions())
	require.NoError(t, declared.Validate())
	assert.Equal(t, []string{"back-title-trailing-comma", "back-title-closing-braces", "application-back-title"}, names(declared))
	assert.Equal(t, LayoutTarget, declared.Target)
	assert.Equal(t, "File fixed!", declared.Report.Headline)
	assert.Empty(t, declared.Report.Details)

	exceptionFirst := LayoutBackTitle(LayoutOptions{ExceptionFirst: true})
	assert.Equal(t, []string{"application-back-title", "back-title-trailing-comma", "back-title-closing-braces"}, names(exceptionFirst))
}
