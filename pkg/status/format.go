package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormatDiff renders the lines that differ between before and after, removed
// lines prefixed with "-" and added lines with "+". Returns an empty string
// when the contents are equal.
func FormatDiff(path string, before, after []byte) string {
	if string(before) == string(after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", color.New(color.Bold).Sprint("---"), path)
	fmt.Fprintf(&sb, "%s %s\n", color.New(color.Bold).Sprint("+++"), path)

	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", color.New(color.FgRed)
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", color.New(color.FgGreen)
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(c.Sprint(prefix+line) + "\n")
		}
	}

	return sb.String()
}
