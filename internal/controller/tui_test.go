package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

func TestTUI_ShortOutputIsPrintedDirectly(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewTUI(cmd).DisplayResources(context.Background(), testResources(), FormatTable))
	assert.Contains(t, out.String(), "gfx::icon")
}

func TestTUI_DisplayResourcesYAML(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewTUI(cmd).DisplayResources(context.Background(), testResources(), FormatYAML))
	assert.True(t, strings.HasPrefix(out.String(), "- id: gfx::icon\n"))
}

func TestTUI_DisplayGenerateResult(t *testing.T) {
	cmd, out := newTestCommand()

	result := m.GenerateResult{Resources: 1, HeaderFile: "res.h", SourceFile: "res.cpp", HeaderWritten: true}
	require.NoError(t, NewTUI(cmd).DisplayGenerateResult(context.Background(), result))

	assert.Contains(t, out.String(), "res2cpp")
	assert.Contains(t, out.String(), "res.h: written\n")
	assert.Contains(t, out.String(), "res.cpp: up to date\n")
}

func TestTUI_DisplayDiff(t *testing.T) {
	cmd, out := newTestCommand()

	diffs := []m.FileDiff{{Path: "res.h", Patch: "--- a/res.h\n+++ b/res.h\n@@ -1 +1 @@\n-old\n+new\n"}}
	require.NoError(t, NewTUI(cmd).DisplayDiff(context.Background(), diffs))

	assert.Contains(t, out.String(), "old")
	assert.Contains(t, out.String(), "new")
}

func TestPagerModel(t *testing.T) {
	short := newPagerModel("title", "a\nb", 80, 24)
	assert.False(t, short.needsPagination())

	long := newPagerModel("title", strings.Repeat("line\n", 100), 80, 24)
	assert.True(t, long.needsPagination())
	assert.Nil(t, long.Init())

	updated, _ := long.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	resized := updated.(pagerModel)
	assert.Equal(t, 40, resized.viewport.Width)
	assert.Equal(t, 8, resized.viewport.Height)

	_, cmd := resized.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	assert.Contains(t, resized.View(), "title")
	assert.Contains(t, resized.View(), "q quit")
}

func TestColorizeDiff(t *testing.T) {
	text := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n same"

	got := colorizeDiff(text)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "-old")
	assert.Contains(t, lines[4], "+new")
	assert.Equal(t, " same", lines[5])
}
