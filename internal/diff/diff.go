// Package diff produces unified patches between the generated artifacts on
// disk and their regenerated content, using
// github.com/pmezard/go-difflib/difflib.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines around each hunk.
const DefaultContext = 3

// Unified returns the unified patch turning a into b, or an empty string
// when both are equal. A nil a is treated as a missing file.
func Unified(name string, a, b []byte, context int) string {
	if a != nil && bytes.Equal(a, b) {
		return ""
	}

	if context <= 0 {
		context = DefaultContext
	}

	fromFile := "a/" + name
	if a == nil {
		fromFile = "/dev/null"
	}

	if len(a) == 0 && len(b) == 0 {
		return omitted(fromFile, "b/"+name)
	}

	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(a)),
		B:        splitLinesKeepNL(string(b)),
		FromFile: fromFile,
		ToFile:   "b/" + name,
		Context:  context,
	}

	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil || s == "" {
		return omitted(fromFile, "b/"+name)
	}

	return s
}

// splitLinesKeepNL splits into lines and keeps newline characters,
// which produces better unified hunks.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}

	return strings.SplitAfter(s, "\n")
}

// omitted is used when difflib has no lines to compare or yields nothing
// for differing input.
func omitted(aName, bName string) string {
	return fmt.Sprintf("--- %s\n+++ %s\n@@\n# content differs\n", aName, bName)
}
