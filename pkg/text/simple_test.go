package text

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTextReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []ReplacementRule
		want         string
		wantCount    int
		wantPerRule  []int
		wantModified bool
	}{
		{
			name:    "simple_replacement",
			content: "Hello World",
			rules: []ReplacementRule{
				Literal("world", "World", "Universe"),
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantPerRule:  []int{1},
			wantModified: true,
		},
		{
			name:    "multiple_replacements",
			content: "Hello World World",
			rules: []ReplacementRule{
				Literal("world", "World", "Universe"),
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantPerRule:  []int{2},
			wantModified: true,
		},
		{
			name:    "rules_apply_sequentially",
			content: "a",
			rules: []ReplacementRule{
				Literal("a_to_b", "a", "b"),
				Literal("b_to_c", "b", "c"),
			},
			want:         "c",
			wantCount:    2,
			wantPerRule:  []int{1, 1},
			wantModified: true,
		},
		{
			name:    "pattern_with_groups",
			content: "size='lg'\n  size='lg'",
			rules: []ReplacementRule{
				MustCompile("size", `(\s*)size='lg'`, "${1}size='xl'"),
			},
			want:         "size='xl'\n  size='xl'",
			wantCount:    2,
			wantPerRule:  []int{2},
			wantModified: true,
		},
		{
			name:    "pattern_then_literal",
			content: "key: 1",
			rules: []ReplacementRule{
				MustCompile("digits", `(\d+)`, "<${1}>"),
				Literal("brackets", "<1>", "one"),
			},
			want:         "key: one",
			wantCount:    2,
			wantPerRule:  []int{1, 1},
			wantModified: true,
		},
		{
			name:    "no_match",
			content: "Hello World",
			rules: []ReplacementRule{
				Literal("goodbye", "Goodbye", "Hi"),
			},
			want:         "Hello World",
			wantPerRule:  []int{0},
			wantModified: false,
		},
		{
			name:    "replacement_equal_to_source",
			content: "Hello",
			rules: []ReplacementRule{
				Literal("same", "Hello", "Hello"),
			},
			want:         "Hello",
			wantCount:    1,
			wantPerRule:  []int{1},
			wantModified: false,
		},
		{
			name:    "empty_content",
			content: "",
			rules: []ReplacementRule{
				Literal("world", "World", "Universe"),
			},
			want:         "",
			wantPerRule:  []int{0},
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        []ReplacementRule{},
			want:         "Hello World",
			wantPerRule:  []int{},
			wantModified: false,
		},
		{
			name:    "empty_literal_is_skipped",
			content: "Hello",
			rules: []ReplacementRule{
				Literal("empty", "", "x"),
			},
			want:         "Hello",
			wantPerRule:  []int{0},
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer()
			result, err := replacer.ReplaceText(
				context.Background(),
				strings.NewReader(tt.content),
				tt.rules,
			)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)

			counts := make([]int, 0, len(result.Rules))
			for i, rr := range result.Rules {
				assert.Equal(t, tt.rules[i].Name, rr.Name)
				counts = append(counts, rr.Count)
			}
			assert.Equal(t, tt.wantPerRule, counts)
		})
	}
}

func TestSimpleTextReplacer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimpleTextReplacer().ReplaceString(ctx, "abc", []ReplacementRule{
		Literal("a", "a", "b"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimpleTextReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []ReplacementRule{
				Literal("foo", "foo", "bar"),
				{Name: "re", Pattern: regexp.MustCompile(`x+`), ToText: "y"},
			},
		},
		{
			name: "missing_name",
			rules: []ReplacementRule{
				{FromText: "foo", ToText: "bar"},
			},
			wantError: "name is required",
		},
		{
			name: "missing_matcher",
			rules: []ReplacementRule{
				{Name: "empty", ToText: "bar"},
			},
			wantError: "from_text or pattern is required",
		},
		{
			name: "duplicate_name",
			rules: []ReplacementRule{
				Literal("foo", "a", "b"),
				Literal("foo", "c", "d"),
			},
			wantError: `duplicate name "foo"`,
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSimpleTextReplacer().ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCompile(t *testing.T) {
	_, err := Compile("broken", `(unclosed`, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `compiling rule "broken"`)

	assert.Panics(t, func() {
		MustCompile("broken", `(unclosed`, "")
	})

	r, err := Compile("ok", `a(b)`, "${1}")
	require.NoError(t, err)
	assert.True(t, r.IsPattern())
	assert.Equal(t, `a(b)`, r.Matcher())
	assert.Equal(t, "foo", Literal("l", "foo", "bar").Matcher())
}
