// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/internal/scenario"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

var eefis = []string{
	"SOF team locations/patterns", "ISR capabilities/gaps", "Intel sharing arrangements",
	"CUAS capabilities", "MEDEVAC/PR procedures", "Comms architecture", "HNSF op timelines",
}

// BuildCCIR builds the commander's critical information requirements update.
// serial is the campaign CCIR counter; interval is the review cadence in
// days, used only for the next-review line.
func BuildCCIR(cat *catalog.Catalog, st types.DailyState, serial, interval int) types.Document {
	doc := types.Document{
		Kind:           types.DocCCIR,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			"JTF-GROVE GUARDIAN",
			fmt.Sprintf("CCIR UPDATE %03d | DTG: %s", serial, st.DTG),
			fmt.Sprintf("PHASE %s: %s | DAY %03d", st.Phase.Label, strings.ToUpper(st.Phase.Name), st.Day+1),
		},
	}

	doc.Blocks = append(doc.Blocks, heading("PRIORITY INTELLIGENCE REQUIREMENTS (PIR)", 1))

	pir := types.Table{
		Header:  []string{"PIR", "REQUIREMENT", "DECISION POINT"},
		Shading: "D9E2F3",
	}
	for _, row := range cat.Narrative.CCIRRows[st.Phase.ID] {
		pir.Rows = append(pir.Rows, []string{row.ID, row.Requirement, row.DecisionPoint})
	}
	doc.Blocks = append(doc.Blocks, pir,
		heading("FRIENDLY FORCE INFORMATION REQUIREMENTS (FFIR)", 1),
	)

	ffir := types.Table{
		Header:  []string{"FFIR", "REQUIREMENT", "DECISION POINT"},
		Shading: "E2EFDA",
	}
	ffir.Rows = [][]string{
		{"FFIR 1", "Loss of comms with any advisory team > 30 min", "Initiate PR procedures"},
		{"FFIR 2", "U.S. KIA/WIA/MIA", "MEDEVAC/PR; notify higher"},
		{"FFIR 3", fmt.Sprintf("HNSF readiness below 70%% (current: %d%%)", st.HNSFReadiness), "Reassess advisory priorities"},
		{"FFIR 4", "HNSF disloyalty or refusal to operate", "Reassess partner vetting"},
		{"FFIR 5", "Corridor physical disruption", "Initiate rapid repair"},
		{"FFIR 6", "ROE violation or unauthorized use of force", "Initiate investigation"},
	}
	doc.Blocks = append(doc.Blocks, ffir,
		heading("EEFI", 1),
	)

	for i, e := range eefis {
		doc.Blocks = append(doc.Blocks, indentPara(fmt.Sprintf("EEFI %d: %s", i+1, e), 1))
	}

	doc.Blocks = append(doc.Blocks,
		para(""),
		boldPara("Next CCIR review: "+scenario.MilDTG(st.Date.AddDate(0, 0, interval))),
		para(commander+", MG, USA — Commander, JTF-GG"),
	)

	return doc
}
