// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// BuildJIPTL builds the daily joint integrated prioritized target list.
// Rank equals list position; a cut-line marker separates the actionable
// targets from the deferred remainder.
func BuildJIPTL(st types.DailyState) types.Document {
	doc := types.Document{
		Kind:           types.DocJIPTL,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			"JTF-GROVE GUARDIAN — JIPTL",
			fmt.Sprintf("JIPTL %s | DTG: %s | ATO DAY %03d", daySerial(st.Day), st.DTG, st.Day+1),
			fmt.Sprintf("PHASE %s: %s", st.Phase.Label, strings.ToUpper(st.Phase.Name)),
			"APPROVED: JTCB / JTF COMMANDER",
		},
	}

	doc.Blocks = append(doc.Blocks,
		para("Targeting guidance: Priority (1) SLM logistics/external support; (2) SLM C2; (3) SLM sanctuaries; (4) SLM info ops. CDE required. HNSF concurrence required. Non-lethal preferred."),
	)

	header := []string{"PRI", "TGT ID", "TARGET NAME", "CAT", "LOCATION", "DESIRED EFFECT", "CDE", "NOMINATOR", "OBJ", "STATUS"}

	above := types.Table{Header: header, Shading: "D9E2F3"}
	for i, row := range st.AboveCut {
		above.Rows = append(above.Rows, jiptlRow(i+1, row, "NOMINATED"))
	}
	doc.Blocks = append(doc.Blocks, above)

	if len(st.BelowCut) > 0 {
		doc.Blocks = append(doc.Blocks, boldPara("--- CUT LINE ---"))

		below := types.Table{Header: header, Shading: "FFF2CC"}
		for i, row := range st.BelowCut {
			below.Rows = append(below.Rows, jiptlRow(len(st.AboveCut)+i+1, row, "BELOW CUT"))
		}
		doc.Blocks = append(doc.Blocks, below)
	}

	return doc
}

func jiptlRow(rank int, row types.TargetRow, status string) []string {
	return []string{
		strconv.Itoa(rank),
		row.Target.ID,
		row.Target.Name,
		string(row.Target.Category),
		row.Location,
		row.DesiredEffect,
		string(row.Target.CDE),
		row.Nominator,
		row.Objective,
		status,
	}
}
