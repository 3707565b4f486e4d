// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/internal/scenario"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// BuildPIR builds the detailed priority-intelligence-requirements update.
// serial is the campaign PIR counter; interval is the review cadence in
// days.
func BuildPIR(cat *catalog.Catalog, st types.DailyState, serial, interval int) types.Document {
	doc := types.Document{
		Kind:           types.DocPIR,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			"JTF-GROVE GUARDIAN",
			fmt.Sprintf("PRIORITY INTELLIGENCE REQUIREMENTS UPDATE %03d", serial),
			fmt.Sprintf("DTG: %s | DAY %03d | PHASE %s", st.DTG, st.Day+1, st.Phase.Label),
		},
	}

	for _, cfg := range cat.Narrative.PIRConfigs[st.Phase.ID] {
		doc.Blocks = append(doc.Blocks,
			heading(cfg.Title, 2),
			boldPara("Indicators:"),
		)
		for _, ind := range cfg.Indicators {
			doc.Blocks = append(doc.Blocks, indentPara("- "+ind, 1))
		}
		doc.Blocks = append(doc.Blocks,
			para("Collection: "+cfg.Collection),
			para("LTIOV: "+cfg.LTIOV),
			para(""),
		)
	}

	doc.Blocks = append(doc.Blocks,
		boldPara("Current reference metrics:"),
		indentPara(fmt.Sprintf("- Tip-line volume: ~%d/day", st.TipLineCalls), 1),
		indentPara(fmt.Sprintf("- Cumulative amnesty surrenders: %d", st.AmnestySurrenders), 1),
		indentPara(fmt.Sprintf("- HNSF independent capability: %d%%", st.HNSFReadiness), 1),
		para(""),
		boldPara("Next PIR review: "+scenario.MilDTG(st.Date.AddDate(0, 0, interval))),
		para("S.K. NORTON, COL, MI — JTF J-2"),
	)

	return doc
}
