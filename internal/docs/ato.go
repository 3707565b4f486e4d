// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// BuildATO builds the daily air tasking order. Its serial is day-derived.
func BuildATO(st types.DailyState) types.Document {
	doc := types.Document{
		Kind:           types.DocATO,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			taskForce,
			fmt.Sprintf("AIR TASKING ORDER %s", daySerial(st.Day)),
			"DTG: " + st.DTG,
			fmt.Sprintf("EFFECTIVE: %s TO %s", st.EffectiveDTG, st.EndDTG),
			fmt.Sprintf("ATO DAY: %03d | PHASE %s: %s", st.Day+1, st.Phase.Label, strings.ToUpper(st.Phase.Name)),
		},
	}

	doc.Blocks = append(doc.Blocks,
		heading("SECTION 1: GENERAL", 1),
		para(fmt.Sprintf("References: OPORD %s; ACO %s; ROE (current).", opordSerial(st.Phase.ID), daySerial(st.Day))),
		para(fmt.Sprintf("Situation: Phase %s operations. SLM threat level along corridor: %d/10. HNSF readiness: %d%%.",
			st.Phase.Label, st.CorridorThreat, st.HNSFReadiness)),
		para("Weather: "+weather(st.Day, true)),

		heading("SECTION 2: MISSION TASKING", 1),
	)

	table := types.Table{
		Header:  []string{"MSN #", "CALLSIGN", "ACFT TYPE", "UNIT", "MSN TYPE", "TARGET/AREA", "TOT/ON-STATION", "REMARKS"},
		Shading: "D9E2F3",
	}
	for _, m := range st.Missions {
		table.Rows = append(table.Rows, []string{
			m.Number, m.Callsign, m.Aircraft, m.Unit, m.Type, m.TargetArea, m.TimeOnTarget, m.Remarks,
		})
	}
	doc.Blocks = append(doc.Blocks, table)

	isr := 0
	for _, m := range st.Missions {
		if m.Type == "ISR" {
			isr++
		}
	}

	doc.Blocks = append(doc.Blocks,
		heading("SECTION 3: SPINS (SUMMARY)", 1),
		para("a. All UAS ops comply with ACO. Lost link: RTB profile. Notify JTF JOC immediately."),
		para("b. UAS will not overfly populated areas below 500ft AGL without JTF JOC approval."),
		para("c. MEDEVAC: DUSTOFF on standby; 60-min response. FM 38.50 / SATCOM GROVE-MED-1."),
		para("d. CUAS: Report hostile UAS to JTF JOC. EW engagement authorized; kinetic requires CDR approval except self-defense."),
		para("e. ROE: Per current ROE. PID required for all engagements."),
		para(fmt.Sprintf("f. Total missions this ATO: %d. ISR: %d. Support: %d.",
			len(st.Missions), isr, len(st.Missions)-isr)),
	)

	return doc
}
