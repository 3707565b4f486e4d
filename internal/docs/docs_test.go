// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/internal/scenario"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// stateFor derives a full daily state for the given day using a fixed seed.
func stateFor(t *testing.T, day int) (*catalog.Catalog, types.DailyState) {
	t.Helper()
	cat := catalog.Default()
	return cat, scenario.NewDeriver(cat, 42).Derive(day)
}

// docText flattens every text-bearing block for substring assertions.
func docText(doc types.Document) string {
	var b strings.Builder
	for _, line := range doc.TitleBlock {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, block := range doc.Blocks {
		switch v := block.(type) {
		case types.Heading:
			b.WriteString(v.Text)
		case types.Paragraph:
			b.WriteString(v.Text)
		case types.Table:
			for _, row := range v.Rows {
				b.WriteString(strings.Join(row, " "))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func tables(doc types.Document) []types.Table {
	var out []types.Table
	for _, block := range doc.Blocks {
		if tbl, ok := block.(types.Table); ok {
			out = append(out, tbl)
		}
	}
	return out
}

func TestBuildOPORD(t *testing.T) {
	cat, st := stateFor(t, 0)
	doc := BuildOPORD(cat, st)

	assert.Equal(t, types.DocOPORD, doc.Kind)
	require.NotEmpty(t, doc.TitleBlock)
	assert.Contains(t, docText(doc), "OPORD 001-26")
	assert.Contains(t, docText(doc), "PHASE I: SHAPE")
	assert.Contains(t, docText(doc), cat.Narrative.EnemySituation[1])
	assert.Contains(t, docText(doc), cat.Narrative.MainEfforts[1])

	// Day 0 has no previous phase to reference.
	assert.NotContains(t, docText(doc), "Previous Phase")
}

func TestBuildOPORDLaterPhase(t *testing.T) {
	cat, st := stateFor(t, 121)
	doc := BuildOPORD(cat, st)

	text := docText(doc)
	assert.Contains(t, text, "OPORD 003-26")
	assert.Contains(t, text, "OPORD 002-26 (Previous Phase)")
	assert.Contains(t, text, cat.Narrative.EnemySituation[3])
	for _, task := range cat.Narrative.UnitTasks[3] {
		assert.Contains(t, text, task.Unit)
	}
}

func TestBuildFRAGOTaskChanges(t *testing.T) {
	_, st := stateFor(t, 5)
	st.Events = []types.Event{
		{Text: "contact event", Impact: types.ImpactContact},
		{Text: "ceasefire feeler", Impact: types.ImpactDiplomatic},
	}

	doc := BuildFRAGO(st, 6, false)
	text := docText(doc)

	assert.Contains(t, text, "FRAGMENTARY ORDER 0006-26")
	assert.Contains(t, text, "contact event")
	assert.Contains(t, text, taskChanges[types.ImpactContact])
	// Unmapped impact tags fall back to the generic line.
	assert.Contains(t, text, fmt.Sprintf("All units: Continue Phase %s operations as directed.", st.Phase.Label))
	// A contact event adds the MEDEVAC sustainment check.
	assert.Contains(t, text, "Confirm DUSTOFF status")
	assert.Contains(t, text, "No change to CCIR.")
}

func TestBuildFRAGONoEvents(t *testing.T) {
	_, st := stateFor(t, 0)
	st.Events = nil

	doc := BuildFRAGO(st, 1, true)
	text := docText(doc)

	assert.Contains(t, text, "No significant activities")
	assert.Contains(t, text, fmt.Sprintf("No changes. Continue Phase %s operations", st.Phase.Label))
	assert.Contains(t, text, "See updated CCIR document this period.")
	assert.NotContains(t, text, "Confirm DUSTOFF status")
}

func TestBuildFRAGOCrossReferences(t *testing.T) {
	_, st := stateFor(t, 4)
	doc := BuildFRAGO(st, 5, false)
	text := docText(doc)

	// Same-day siblings are referenced by the day-derived serial.
	assert.Contains(t, text, "ATO 005-26")
	assert.Contains(t, text, "ACO 005-26")
	assert.Contains(t, text, "JIPTL 005-26")
}

func TestBuildATO(t *testing.T) {
	_, st := stateFor(t, 2)
	doc := BuildATO(st)

	assert.Equal(t, types.DocATO, doc.Kind)
	assert.Contains(t, docText(doc), "AIR TASKING ORDER 003-26")

	tbls := tables(doc)
	require.Len(t, tbls, 1)
	assert.Len(t, tbls[0].Rows, len(st.Missions))
	assert.Contains(t, docText(doc), fmt.Sprintf("Total missions this ATO: %d.", len(st.Missions)))
}

func TestBuildACO(t *testing.T) {
	cat, st := stateFor(t, 2)
	doc := BuildACO(cat, st)

	tbls := tables(doc)
	require.Len(t, tbls, 2)
	assert.Len(t, tbls[0].Rows, len(st.ACMRows))
	assert.Len(t, tbls[1].Rows, st.FSCMCount)

	for _, row := range tbls[1].Rows {
		assert.Equal(t, "JTF CDR", row[len(row)-1])
	}
}

func TestBuildJIPTL(t *testing.T) {
	_, st := stateFor(t, 3)
	doc := BuildJIPTL(st)

	tbls := tables(doc)
	require.Len(t, tbls, 2)
	assert.Len(t, tbls[0].Rows, len(st.AboveCut))
	assert.Len(t, tbls[1].Rows, len(st.BelowCut))

	cutLine := false
	for _, block := range doc.Blocks {
		if p, ok := block.(types.Paragraph); ok && p.Text == "--- CUT LINE ---" {
			cutLine = true
			assert.True(t, p.Bold)
		}
	}
	assert.True(t, cutLine, "cut line marker missing")

	// Rank continues across the cut.
	assert.Equal(t, "1", tbls[0].Rows[0][0])
	assert.Equal(t, fmt.Sprint(len(st.AboveCut)+1), tbls[1].Rows[0][0])
	assert.Equal(t, "NOMINATED", tbls[0].Rows[0][len(tbls[0].Rows[0])-1])
	assert.Equal(t, "BELOW CUT", tbls[1].Rows[0][len(tbls[1].Rows[0])-1])
}

func TestBuildROE(t *testing.T) {
	cat, st := stateFor(t, 0)
	doc := BuildROE(cat, st, 1)

	text := docText(doc)
	assert.Contains(t, text, "RULES OF ENGAGEMENT (VERSION 1)")
	assert.Contains(t, text, "NOT declared hostile force")
	// Phase 1 carries no amendments.
	assert.NotContains(t, text, "PHASE-SPECIFIC AMENDMENTS")
}

func TestBuildROEAmendments(t *testing.T) {
	cat, st := stateFor(t, 31)
	doc := BuildROE(cat, st, 2)

	text := docText(doc)
	assert.Contains(t, text, "PHASE-SPECIFIC AMENDMENTS")
	for _, a := range cat.Narrative.ROEAmendments[2] {
		assert.Contains(t, text, a)
	}
}

func TestBuildCCIR(t *testing.T) {
	cat, st := stateFor(t, 3)
	doc := BuildCCIR(cat, st, 2, 3)

	text := docText(doc)
	assert.Contains(t, text, "CCIR UPDATE 002")
	assert.Contains(t, text, fmt.Sprintf("(current: %d%%)", st.HNSFReadiness))
	assert.Contains(t, text, "Next CCIR review: "+scenario.MilDTG(st.Date.AddDate(0, 0, 3)))

	tbls := tables(doc)
	require.Len(t, tbls, 2)
	assert.Len(t, tbls[0].Rows, len(cat.Narrative.CCIRRows[st.Phase.ID]))
	assert.Len(t, tbls[1].Rows, 6)
}

func TestBuildPIR(t *testing.T) {
	cat, st := stateFor(t, 6)
	doc := BuildPIR(cat, st, 3, 3)

	text := docText(doc)
	assert.Contains(t, text, "PRIORITY INTELLIGENCE REQUIREMENTS UPDATE 003")
	for _, cfg := range cat.Narrative.PIRConfigs[st.Phase.ID] {
		assert.Contains(t, text, cfg.Title)
		assert.Contains(t, text, cfg.Collection)
	}
	assert.Contains(t, text, fmt.Sprintf("Cumulative amnesty surrenders: %d", st.AmnestySurrenders))
	assert.Contains(t, text, "Next PIR review: "+scenario.MilDTG(st.Date.AddDate(0, 0, 3)))
}

func TestWeather(t *testing.T) {
	assert.Contains(t, weather(0, true), "Dry season")
	assert.Contains(t, weather(149, false), "Dry season")
	assert.Contains(t, weather(150, true), "Wet season")
	assert.Contains(t, weather(200, false), "Wet season")
}

func TestClassificationMarkings(t *testing.T) {
	cat, st := stateFor(t, 0)

	built := []types.Document{
		BuildOPORD(cat, st),
		BuildFRAGO(st, 1, false),
		BuildATO(st),
		BuildACO(cat, st),
		BuildJIPTL(st),
		BuildROE(cat, st, 1),
		BuildCCIR(cat, st, 1, 3),
		BuildPIR(cat, st, 1, 3),
	}
	for _, doc := range built {
		assert.Equal(t, "UNCLASSIFIED", doc.Classification, "kind %s", doc.Kind)
		require.NotEmpty(t, doc.TitleBlock, "kind %s", doc.Kind)
		assert.Equal(t, "UNCLASSIFIED", doc.TitleBlock[0], "kind %s", doc.Kind)
	}
}
