// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

var opordAnnexes = []string{
	"A-Task Organization", "B-Intelligence", "C-Operations", "D-Fires", "E-Protection",
	"F-Sustainment", "G-Engineer", "H-Signal", "I-Air/Missile Defense", "J-Public Affairs",
	"K-Civil Affairs", "L-Information Collection", "M-Assessment", "N-Space Ops",
	"O-Omitted", "P-Host-Nation Support", "Q-KM", "R-Reports", "S-STO", "T-Omitted",
	"U-IG", "V-Interagency", "W-OCS", "X-Omitted", "Y-Omitted", "Z-Distribution",
}

// BuildOPORD builds the phase operations order. One is emitted per phase
// transition; its serial is the phase number.
func BuildOPORD(cat *catalog.Catalog, st types.DailyState) types.Document {
	phase := st.Phase.ID
	nar := cat.Narrative

	doc := types.Document{
		Kind:           types.DocOPORD,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			"Copy 1 of 15 Copies",
			taskForce,
			headquarters,
			st.DTG,
			"",
			fmt.Sprintf("OPORD %s (OPERATION GROVE GUARDIAN - PHASE %s: %s) (UNCLASSIFIED)",
				opordSerial(phase), st.Phase.Label, strings.ToUpper(st.Phase.Name)),
		},
	}

	doc.Blocks = append(doc.Blocks, boldPara("References:"))
	refs := []string{
		"a. Map, Series Z901, Republic of Solara, Sheets 1-4, Edition 3, 1:250,000.",
		"b. USSOCOM OPORD 25-007 (OPERATION SOUTHERN RESOLVE), DTG 150800ZDEC25.",
		"c. U.S. Embassy Solara Country Team Assessment, 01 Dec 2025.",
		"d. FM 5-0, Planning and Orders Production.",
		"e. JP 3-22, Foreign Internal Defense.",
		"f. JP 3-24, Counterinsurgency.",
	}
	if phase > 1 {
		refs = append(refs, fmt.Sprintf("g. JTF-GG OPORD %s (Previous Phase).", opordSerial(phase-1)))
	}
	for _, r := range refs {
		doc.Blocks = append(doc.Blocks, indentPara(r, 1))
	}

	doc.Blocks = append(doc.Blocks,
		boldPara("Time Zone: ZULU (Z)"),
		boldPara("Task Organization: See Annex A (Task Organization)."),

		heading("1. SITUATION", 1),
		heading("a. Area of Interest", 2),
		para("The JOA encompasses the Republic of Solara and the border region extending 50km beyond the international boundary, including maritime approaches to Port Manatee. Refer to Annex B (Intelligence)."),

		heading("b. Assigned Area", 2),
		para("(1) Terrain. Republic of Solara: landlocked nation dominated by swampy watershed, pine scrub, cattle ranches, and citrus groves. Key terrain: Port Manatee corridor, capital Arcadia, citrus processing facilities, SLM swamp sanctuaries. Refer to Annex B."),
		para(fmt.Sprintf("(2) Weather. %s Refer to Annex B.", weather(st.Day, false))),

		heading("c. Enemy Forces", 2),
		para(fmt.Sprintf("(1) The SLM is an irregular force currently estimated at %d fighters in 15-20 cells. Recruited from Grove Laborers; sheltered by Scrub Folk. Funded by neighboring adversary.", st.SLMStrength)),
		para("(2) "+nar.EnemySituation[phase]),

		heading("d. Friendly Forces", 2),
		para("(1) Higher HQ Two Levels Up. USSOCOM."),
		para("(2) Higher HQ One Level Up. USSOUTHCOM/TSOC."),
		para(fmt.Sprintf("(3) HNSF readiness assessed at %d%%. GoS popular support at approximately %d%%.", st.HNSFReadiness, st.PopularSupport)),

		heading("e. Civil Considerations", 2),
		para(civilConsiderations(st)),

		heading("g. Assumptions", 2),
		para("(1) GoS maintains political will. (2) HNSF remains loyal. (3) Neighboring adversary continues covert (not overt) support. (4) Port Manatee corridor remains sole economic export route."),

		heading("2. MISSION", 1),
		boldPara(fmt.Sprintf("Effective %s, JTF-GROVE GUARDIAN %s by, with, and through Host Nation Security Forces in the Republic of Solara in order to neutralize the SLM, secure the Port Manatee economic corridor, and address root socio-economic grievances, setting conditions for a stable Republic of Solara.",
			st.EffectiveDTG, nar.MissionVerbs[phase])),

		heading("3. EXECUTION", 1),
		heading("a. Commander's Intent", 2),
		para("Purpose: "+nar.Intents[phase]),
		para("Main Effort: "+nar.MainEfforts[phase]),
		para("End State: GoS and HNSF independently maintain security; corridor secure; SLM neutralized; governance reforms underway."),

		heading("b. Concept of Operations", 2),
		para(fmt.Sprintf("Phase %s (%s) operations focus on %s. Four LOEs remain mutually supporting. OPERATION RESOLUTE VOICE (MISO) supports all LOEs.",
			st.Phase.Label, st.Phase.Name, nar.MainEfforts[phase])),

		heading("c. Tasks to Subordinate Units", 2),
	)

	for i, ut := range nar.UnitTasks[phase] {
		doc.Blocks = append(doc.Blocks, indentPara(fmt.Sprintf("(%d) %s. %s", i+1, ut.Unit, ut.Task), 1))
	}

	doc.Blocks = append(doc.Blocks,
		heading("d. Coordinating Instructions", 2),
		para(fmt.Sprintf("(1) This OPORD effective %s.", st.EffectiveDTG)),
		para("(2) CCIR: See separate CCIR document."),
		para("(3) ROE: See separate ROE document. U.S. forces under USSOUTHCOM ROE as supplemented."),
		para("(4) Fire Support/Airspace: See ACO and ATO."),

		heading("4. SUSTAINMENT", 1),
		para("Priority: (1) Main effort SOTF; (2) Other SOTFs; (3) MISTF; (4) CATF. Refer to Annex F."),
		para("a. Logistics. Resupply via air to Camp Citrus. Role 1 medical at Camp Citrus; MEDEVAC within 60 min."),

		heading("5. COMMAND AND SIGNAL", 1),
		para("a. CDR JTF-GG at Camp Citrus. PACE: SATCOM / HF / Iridium / Runner."),
		para("b. Succession: CDR JTF-GG > DCDR > CDR SOTF-K > CDR SOTF-C."),

		para(""),
		boldPara("ACKNOWLEDGE:"),
		para("Acknowledgement means received and understood."),
		para(""),
		boldPara(commander),
		para("Major General, USA"),
		para("Commanding"),
		boldPara("ANNEXES:"),
	)

	for _, a := range opordAnnexes {
		doc.Blocks = append(doc.Blocks, indentPara("Annex "+a, 1))
	}

	return doc
}

func civilConsiderations(st types.DailyState) string {
	base := "Population divided into Orchard Barons, Grove Laborers (center of gravity), and Scrub Folk. "
	if st.Day == 0 {
		return base + "Initial engagement underway."
	}
	return base + fmt.Sprintf("Tip-line calls averaging %d/day. %d total amnesty surrenders to date.",
		st.TipLineCalls, st.AmnestySurrenders)
}
