// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

func sampleDoc() types.Document {
	return types.Document{
		Kind:           types.DocFRAGO,
		Classification: "UNCLASSIFIED",
		TitleBlock:     []string{"UNCLASSIFIED", "", "JOINT TASK FORCE - GROVE GUARDIAN"},
		Blocks: []types.Block{
			types.Heading{Text: "1. SITUATION", Level: 1},
			types.Paragraph{Text: "a. Enemy strength holding steady."},
			types.Paragraph{Text: "- detail line", Indent: 1},
			types.Paragraph{Text: "--- CUT LINE ---", Bold: true},
			types.Table{
				Header:  []string{"COL A", "COL B"},
				Rows:    [][]string{{"left", "right | piped"}},
				Shading: "D9E2F3",
			},
		},
	}
}

func TestSaveWritesUnderKindDir(t *testing.T) {
	root := t.TempDir()
	m, err := NewMarkdown(root)
	require.NoError(t, err)

	path, err := m.Save(sampleDoc(), "FRAGO_0001-26_Day_001")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "FRAGO", "FRAGO_0001-26_Day_001.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "**UNCLASSIFIED**"))
	assert.True(t, strings.HasSuffix(text, "**UNCLASSIFIED**\n"))
	assert.Contains(t, text, "# 1. SITUATION")
	assert.Contains(t, text, "  - detail line")
	assert.Contains(t, text, "**--- CUT LINE ---**")
	assert.Contains(t, text, "<!-- header shading: D9E2F3 -->")
	assert.Contains(t, text, "| COL A | COL B |")
	assert.Contains(t, text, "| --- | --- |")
	// Pipes inside cells must not break the table.
	assert.Contains(t, text, `right \| piped`)
}

func TestSaveDeterministic(t *testing.T) {
	m, err := NewMarkdown(t.TempDir())
	require.NoError(t, err)

	p1, err := m.Save(sampleDoc(), "doc")
	require.NoError(t, err)
	first, err := os.ReadFile(p1)
	require.NoError(t, err)

	p2, err := m.Save(sampleDoc(), "doc")
	require.NoError(t, err)
	second, err := os.ReadFile(p2)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestNewMarkdownBadRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewMarkdown(filepath.Join(file, "nested"))
	assert.Error(t, err)
}

func TestSaveKindDirError(t *testing.T) {
	dir := t.TempDir()
	m, err := NewMarkdown(dir)
	require.NoError(t, err)

	// A file occupying the kind path blocks directory creation.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FRAGO"), []byte("x"), 0o644))

	_, err = m.Save(sampleDoc(), "doc")
	assert.Error(t, err)
}
