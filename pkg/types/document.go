// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocKind identifies a document family. The renderer groups output by kind
// and the scheduler tracks per-kind serials.
type DocKind string

const (
	DocOPORD DocKind = "OPORD"
	DocFRAGO DocKind = "FRAGO"
	DocATO   DocKind = "ATO"
	DocACO   DocKind = "ACO"
	DocJIPTL DocKind = "JIPTL"
	DocROE   DocKind = "ROE"
	DocCCIR  DocKind = "CCIR"
	DocPIR   DocKind = "PIR"
)

// DocKinds lists every document kind in a stable order.
var DocKinds = []DocKind{
	DocOPORD, DocFRAGO, DocATO, DocACO, DocJIPTL, DocROE, DocCCIR, DocPIR,
}

// Block is one element of a document content tree: a Heading, a Paragraph,
// or a Table.
type Block interface {
	block()
}

// Heading is a numbered or titled section header with a nesting level
// (1 = top level).
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a text run with presentation flags.
type Paragraph struct {
	Text string

	// Bold renders the whole paragraph emphasized.
	Bold bool

	// Indent is the indentation depth in half-inch steps (0 = flush left).
	Indent int
}

// Table is a header row plus data rows. Shading is an optional header fill
// hint for renderers that support it.
type Table struct {
	Header  []string
	Rows    [][]string
	Shading string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Table) block()     {}

// Document is a complete content tree ready for rendering. Builders produce
// Documents; the renderer persists them.
type Document struct {
	// Kind selects the output grouping and serial family.
	Kind DocKind

	// Classification renders as the page header and footer marking.
	Classification string

	// TitleBlock is the centered, emphasized line stack above the body.
	TitleBlock []string

	// Blocks is the document body in order.
	Blocks []Block
}
