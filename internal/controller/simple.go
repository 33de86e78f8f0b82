package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// SimpleUI implements UI by printing to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResources prints the resources as a table or YAML document.
func (s *SimpleUI) DisplayResources(ctx context.Context, resources []m.ResourceInfo, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderResources(resources, format)
	if err != nil {
		return err
	}

	s.printf("%s", text)

	return nil
}

// DisplayGenerateResult prints which artifacts were written.
func (s *SimpleUI) DisplayGenerateResult(ctx context.Context, result m.GenerateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderGenerateResult(result))

	return nil
}

// DisplayDiff prints the patches of all changed artifacts.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderDiffs(diffs))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderResources(resources []m.ResourceInfo, format ListFormat) (string, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(resources)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}

		return string(out), nil
	case FormatTable, "":
		return renderResourceTable(resources), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func renderResourceTable(resources []m.ResourceInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Identifier", "Path", "Shares"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	embedded := 0

	for _, resource := range resources {
		table.Append([]string{resource.ID, string(resource.Path), resource.SharedWith})

		if resource.SharedWith == "" {
			embedded++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Resources %d", len(resources)),
		fmt.Sprintf("Embedded Files %d", embedded),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderGenerateResult(result m.GenerateResult) string {
	return fmt.Sprintf("%d resource(s)\n%s: %s\n%s: %s\n",
		result.Resources,
		result.HeaderFile, writtenLabel(result.HeaderWritten),
		result.SourceFile, writtenLabel(result.SourceWritten),
	)
}

func writtenLabel(written bool) string {
	if written {
		return "written"
	}

	return "up to date"
}

func renderDiffs(diffs []m.FileDiff) string {
	var b bytes.Buffer

	for _, diff := range diffs {
		switch {
		case diff.Skipped:
			fmt.Fprintf(&b, "%s: not stale, skipped\n", diff.Path)
		case diff.Patch == "":
			fmt.Fprintf(&b, "%s: up to date\n", diff.Path)
		default:
			b.WriteString(diff.Patch)
		}
	}

	return b.String()
}
