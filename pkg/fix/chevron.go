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
	"fmt"
	"regexp"

	"github.com/walteh/jsxfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	ChevronName   = "chevrons"
	ChevronTarget = "app/account.jsx"

	// ChevronMarker is the icon marker preceding every chevron style block
	ChevronMarker = "as={ChevronRight}"

	DefaultMarkerWindow = 100
	DefaultColorWindow  = 50

	// MaxWindow is the largest bounded repetition RE2 accepts
	MaxWindow = 1000
)

const (
	darkColorOld  = "#9ca3af"
	darkColorNew  = "#d1d5db"
	lightColorOld = "#6b7280"
	lightColorNew = "#9ca3af"
)

// ChevronOptions tunes the chevron rule set
type ChevronOptions struct {
	Target string

	// MarkerWindow bounds the distance between the marker and the dark color
	MarkerWindow int

	// ColorWindow bounds the distance between the dark and the light color
	ColorWindow int

	// Strict only rewrites colors inside the exact `color: isDark ? ... : ...`
	// block that follows a resized chevron, ignoring the windows.
	Strict bool
}

// DefaultChevronOptions returns the options the account screen was tuned against.
func DefaultChevronOptions() ChevronOptions {
	return ChevronOptions{
		Target:       ChevronTarget,
		MarkerWindow: DefaultMarkerWindow,
		ColorWindow:  DefaultColorWindow,
	}
}

// ChevronStyle builds the fix that enlarges chevrons from lg to xl and
// lightens their dark/light mode colors.
func ChevronStyle(opts ChevronOptions) (*Fix, error) {
	if opts.Target == "" {
		opts.Target = ChevronTarget
	}
	if err := checkWindow("marker window", opts.MarkerWindow); err != nil {
		return nil, err
	}
	if err := checkWindow("color window", opts.ColorWindow); err != nil {
		return nil, err
	}

	marker := regexp.QuoteMeta(ChevronMarker)

	// the size line must directly follow the marker line
	size := text.MustCompile("chevron-size",
		`(`+marker+`)\n([ \t]+)size='lg'`,
		"${1}\n${2}size='xl'")

	var colors text.ReplacementRule
	var err error
	if opts.Strict {
		colors, err = text.Compile("chevron-colors",
			`(`+marker+`\n\s+size='xl'\n\s+style=\{\{\n\s+color: isDark\n\s+\? )"`+darkColorOld+`"(\n\s+: )"`+lightColorOld+`"`,
			`${1}"`+darkColorNew+`"${2}"`+lightColorNew+`"`)
	} else {
		colors, err = text.Compile("chevron-colors",
			fmt.Sprintf(`(%s[\s\S]{0,%d}?)%s([\s\S]{0,%d}?)%s`,
				marker, opts.MarkerWindow, darkColorOld, opts.ColorWindow, lightColorOld),
			"${1}"+darkColorNew+"${2}"+lightColorNew)
	}
	if err != nil {
		return nil, err
	}

	return &Fix{
		Name:   ChevronName,
		Target: opts.Target,
		Rules:  []text.ReplacementRule{size, colors},
		Report: Report{
			Headline: "All chevrons updated!",
			Details: []string{
				"size: lg → xl",
				"colors: " + darkColorOld + " → " + darkColorNew + " (dark mode)",
				"colors: " + lightColorOld + " → " + lightColorNew + " (light mode)",
			},
		},
	}, nil
}

func checkWindow(name string, n int) error {
	if n < 0 || n > MaxWindow {
		return errors.Errorf("%s must be between 0 and %d, got %d", name, MaxWindow, n)
	}
	return nil
}
