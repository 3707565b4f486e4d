// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render persists document content trees as files. The Markdown
// renderer writes one file per document under a per-kind subdirectory of the
// output root.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// Markdown renders content trees as GitHub-flavored Markdown files.
type Markdown struct {
	root string
}

// NewMarkdown creates the output root (if absent) and returns a renderer
// writing beneath it.
func NewMarkdown(root string) (*Markdown, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating output root: %w", err)
	}
	return &Markdown{root: root}, nil
}

// Save renders doc and writes it to <root>/<kind>/<name>.md, returning the
// written path.
func (m *Markdown) Save(doc types.Document, name string) (string, error) {
	dir := filepath.Join(m.root, string(doc.Kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", doc.Kind, err)
	}

	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(m.renderDoc(doc)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

func (m *Markdown) renderDoc(doc types.Document) string {
	var b strings.Builder

	if doc.Classification != "" {
		fmt.Fprintf(&b, "**%s**\n\n", doc.Classification)
	}
	for _, line := range doc.TitleBlock {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "**%s**\n", line)
	}
	b.WriteString("\n")

	for _, block := range doc.Blocks {
		switch v := block.(type) {
		case types.Heading:
			fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", v.Level), v.Text)
		case types.Paragraph:
			renderParagraph(&b, v)
		case types.Table:
			renderTable(&b, v)
		}
	}

	if doc.Classification != "" {
		fmt.Fprintf(&b, "**%s**\n", doc.Classification)
	}
	return b.String()
}

func renderParagraph(b *strings.Builder, p types.Paragraph) {
	if p.Text == "" {
		b.WriteString("\n")
		return
	}
	text := p.Text
	if p.Bold {
		text = "**" + text + "**"
	}
	b.WriteString(strings.Repeat("  ", p.Indent))
	b.WriteString(text)
	b.WriteString("\n\n")
}

func renderTable(b *strings.Builder, t types.Table) {
	if t.Shading != "" {
		fmt.Fprintf(b, "<!-- header shading: %s -->\n", t.Shading)
	}
	writeRow(b, t.Header)
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(b, sep)
	for _, row := range t.Rows {
		writeRow(b, row)
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(c, "|", "\\|"))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
