// Package controller provides the operator facing output of res2cpp.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// ListFormat selects how resource listings are rendered.
type ListFormat string

// Available list formats.
const (
	FormatTable ListFormat = "table"
	FormatYAML  ListFormat = "yaml"
)

// UI defines how results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResources(ctx context.Context, resources []m.ResourceInfo, format ListFormat) error
	DisplayGenerateResult(ctx context.Context, result m.GenerateResult) error
	DisplayDiff(ctx context.Context, diffs []m.FileDiff) error
}

// NewUI returns the TUI when writing to a terminal and the SimpleUI
// otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
