// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// taskChanges maps an event impact tag to the unit-specific follow-up action
// the fragmentary order directs. Unmapped tags fall back to a generic
// continue-operations line.
var taskChanges = map[types.ImpactType]string{
	types.ImpactContact:      "SOTF-K: Increase CSG patrol frequency in sector of contact. Surge ISR to affected area.",
	types.ImpactSabotage:     "SOTF-K: Coordinate with HNSF engineers for rapid repair. Adjust CSG patrol pattern to cover vulnerability.",
	types.ImpactIntel:        "J-2: Develop intelligence lead. Nominate for ISR collection on next ATO cycle.",
	types.ImpactInterdiction: "SOTF-B: Exploit captured material. Update border interdiction priorities.",
	types.ImpactInfo:         "MISTF: Develop counter-narrative. Coordinate with Radio Solara Libre for broadcast.",
	types.ImpactCUAS:         "J-3: Review CUAS posture at all FOBs. Report hostile UAS characteristics to J-2 for analysis.",
	types.ImpactCyber:        "J-6/DCO: Elevate network monitoring. Implement recommended OPSEC changes.",
	types.ImpactClearing:     "SOTF-C: Exploit site for intelligence. Coordinate with J-2 for detainee processing via HNSF.",
	types.ImpactCivil:        "CATF: Continue engagement. Report atmospherics to J-2 and MISTF.",
}

// BuildFRAGO builds the daily fragmentary order. serial is the campaign
// FRAGO counter; ccirDue reports whether a CCIR update was emitted this
// period.
func BuildFRAGO(st types.DailyState, serial int, ccirDue bool) types.Document {
	doc := types.Document{
		Kind:           types.DocFRAGO,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			taskForce,
			fmt.Sprintf("FRAGMENTARY ORDER %04d-26", serial),
			fmt.Sprintf("TO OPORD %s (PHASE %s: %s)", opordSerial(st.Phase.ID), st.Phase.Label, strings.ToUpper(st.Phase.Name)),
			st.DTG,
		},
	}

	doc.Blocks = append(doc.Blocks,
		boldPara(fmt.Sprintf("References: JTF-GG OPORD %s; ATO %s; ACO %s.",
			opordSerial(st.Phase.ID), daySerial(st.Day), daySerial(st.Day))),
		para(fmt.Sprintf("Time Zone: ZULU (Z). ATO Day: %03d.", st.Day+1)),

		heading("1. SITUATION", 1),
		para(fmt.Sprintf("a. Enemy. SLM strength estimated at %d. Corridor threat level: %d/10. HNSF readiness: %d%%. GoS popular support: ~%d%%.",
			st.SLMStrength, st.CorridorThreat, st.HNSFReadiness, st.PopularSupport)),
	)

	if len(st.Events) > 0 {
		doc.Blocks = append(doc.Blocks, boldPara("b. Significant Activities (last 24 hours):"))
		for _, evt := range st.Events {
			doc.Blocks = append(doc.Blocks, indentPara("- "+evt.Text, 1))
		}
	} else {
		doc.Blocks = append(doc.Blocks, para("b. No significant activities in the last 24 hours."))
	}

	tips := st.TipLineCalls + st.TipLineDelta
	if tips < 0 {
		tips = 0
	}
	doc.Blocks = append(doc.Blocks,
		para(fmt.Sprintf("c. Tip-line calls (24hr): %d. Cumulative amnesty surrenders: %d.", tips, st.AmnestySurrenders)),

		heading("2. MISSION", 1),
		para("No change to OPORD mission statement."),

		heading("3. EXECUTION", 1),
		para(fmt.Sprintf("a. Main Effort: No change. Phase %s (%s) operations continue.", st.Phase.Label, st.Phase.Name)),
		boldPara("b. Changes to tasks:"),
	)

	changes := taskChangeLines(st)
	for i, tc := range changes {
		doc.Blocks = append(doc.Blocks, indentPara(fmt.Sprintf("(%d) %s", i+1, tc), 1))
	}

	ccirNote := "No change to CCIR."
	if ccirDue {
		ccirNote = "See updated CCIR document this period."
	}
	doc.Blocks = append(doc.Blocks,
		para("c. CCIR update: "+ccirNote),
		para(fmt.Sprintf("d. JIPTL: See JIPTL %s for current target priorities.", daySerial(st.Day))),
		para(fmt.Sprintf("e. ATO/ACO: See ATO %s and ACO %s.", daySerial(st.Day), daySerial(st.Day))),

		heading("4. SUSTAINMENT", 1),
		para("No change unless specified below."),
	)

	for _, evt := range st.Events {
		if evt.Impact == types.ImpactContact {
			doc.Blocks = append(doc.Blocks,
				indentPara("- MEDEVAC: Confirm DUSTOFF status and blood product availability following contact.", 1))
			break
		}
	}

	doc.Blocks = append(doc.Blocks,
		heading("5. COMMAND AND SIGNAL", 1),
		para("No change."),
		para(""),
		boldPara("ACKNOWLEDGE:"),
		para("For the Commander:"),
		para("D.L. SANTOS, COL, USA"),
		para("Chief of Staff, JTF-GROVE GUARDIAN"),
	)

	return doc
}

func taskChangeLines(st types.DailyState) []string {
	var changes []string
	for _, evt := range st.Events {
		if tc, ok := taskChanges[evt.Impact]; ok {
			changes = append(changes, tc)
		} else {
			changes = append(changes, fmt.Sprintf("All units: Continue Phase %s operations as directed.", st.Phase.Label))
		}
	}
	if len(changes) == 0 {
		changes = append(changes, fmt.Sprintf("No changes. Continue Phase %s operations IAW OPORD %s.",
			st.Phase.Label, opordSerial(st.Phase.ID)))
	}
	return changes
}
