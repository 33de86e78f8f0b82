package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

const (
	defaultPagerWidth  = 120
	defaultPagerHeight = 24
	// header and footer lines around the viewport
	pagerChromeLines = 2
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI with a Bubble Tea pager for long output.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayResources shows the resource table, paged when it does not fit.
func (t *TUI) DisplayResources(ctx context.Context, resources []m.ResourceInfo, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := renderResources(resources, format)
	if err != nil {
		return err
	}

	if format == FormatYAML {
		return t.print(text)
	}

	return t.page(fmt.Sprintf("%d resource(s)", len(resources)), text)
}

// DisplayGenerateResult prints which artifacts were written.
func (t *TUI) DisplayGenerateResult(ctx context.Context, result m.GenerateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.print(titleStyle.Render("res2cpp") + " " + renderGenerateResult(result))
}

// DisplayDiff shows the colored patches, paged when they do not fit.
func (t *TUI) DisplayDiff(ctx context.Context, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page("changes", colorizeDiff(renderDiffs(diffs)))
}

func (t *TUI) output() io.Writer {
	return t.cmd.OutOrStdout()
}

func (t *TUI) print(text string) error {
	_, err := fmt.Fprint(t.output(), text)
	return err
}

// page prints content directly when it fits the terminal, otherwise it
// opens a scrollable viewport until the user quits.
func (t *TUI) page(title, content string) error {
	width, height := defaultPagerWidth, defaultPagerHeight

	if f, ok := t.output().(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	model := newPagerModel(title, content, width, height)
	if !model.needsPagination() {
		return t.print(content)
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is a Bubble Tea model scrolling through pre-rendered text.
type pagerModel struct {
	title    string
	lines    int
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChromeLines, 1))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		lines:    strings.Count(content, "\n") + 1,
		viewport: vp,
	}
}

func (pm pagerModel) needsPagination() bool {
	return pm.lines > pm.viewport.Height+pagerChromeLines
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChromeLines, 1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100)

	return titleStyle.Render(pm.title) + "\n" + pm.viewport.View() + "\n" + footerStyle.Render(footer)
}

func colorizeDiff(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
