package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)

	return cmd, &out
}

func testResources() []m.ResourceInfo {
	return []m.ResourceInfo{
		{ID: "gfx::icon", Path: "assets/icon.png"},
		{ID: "ui::icon", Path: "assets/icon.png", SharedWith: "gfx::icon"},
	}
}

func TestSimpleUI_DisplayResourcesTable(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayResources(context.Background(), testResources(), FormatTable))

	text := strings.ToLower(out.String())
	assert.Contains(t, text, "identifier")
	assert.Contains(t, text, "gfx::icon")
	assert.Contains(t, text, "assets/icon.png")
	assert.Contains(t, text, "total resources 2")
	assert.Contains(t, text, "embedded files 1")
}

func TestSimpleUI_DisplayResourcesYAML(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayResources(context.Background(), testResources(), FormatYAML))

	want := "- id: gfx::icon\n" +
		"  path: assets/icon.png\n" +
		"- id: ui::icon\n" +
		"  path: assets/icon.png\n" +
		"  shared_with: gfx::icon\n"
	assert.Equal(t, want, out.String())
}

func TestSimpleUI_DisplayResourcesUnknownFormat(t *testing.T) {
	cmd, out := newTestCommand()

	err := NewSimpleUI(cmd).DisplayResources(context.Background(), testResources(), ListFormat("xml"))

	assert.EqualError(t, err, `unknown format "xml"`)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayGenerateResult(t *testing.T) {
	cmd, out := newTestCommand()

	result := m.GenerateResult{
		Resources:     3,
		HeaderFile:    "res.h",
		SourceFile:    "res.cpp",
		HeaderWritten: false,
		SourceWritten: true,
	}
	require.NoError(t, NewSimpleUI(cmd).DisplayGenerateResult(context.Background(), result))

	assert.Equal(t, "3 resource(s)\nres.h: up to date\nres.cpp: written\n", out.String())
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	cmd, out := newTestCommand()

	diffs := []m.FileDiff{
		{Path: "res.h"},
		{Path: "res.cpp", Skipped: true},
		{Path: "other.h", Patch: "--- a/other.h\n+++ b/other.h\n"},
	}
	require.NoError(t, NewSimpleUI(cmd).DisplayDiff(context.Background(), diffs))

	want := "res.h: up to date\nres.cpp: not stale, skipped\n--- a/other.h\n+++ b/other.h\n"
	assert.Equal(t, want, out.String())
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, out := newTestCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	assert.ErrorIs(t, ui.DisplayResources(ctx, nil, FormatTable), context.Canceled)
	assert.ErrorIs(t, ui.DisplayGenerateResult(ctx, m.GenerateResult{}), context.Canceled)
	assert.ErrorIs(t, ui.DisplayDiff(ctx, nil), context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
