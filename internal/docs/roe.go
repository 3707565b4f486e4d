// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"
	"strings"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

var generalROE = []string{
	"2.1 Self-Defense: Inherent right retained at all times.",
	"2.2 Defense of HNSF: Authorized when HNSF subject to hostile act/intent and unable to self-defend. Authority: On-scene CDR (O-5+) or SOTF CDR.",
	"2.3 Defense of Designated Persons: Authorized per SJA-maintained designated persons list.",
	"2.4 Proportionality: Force proportional to threat; minimum necessary.",
	"2.5 Discrimination: PID required before engagement.",
	"2.6 Minimum Force: Use least force necessary. EOF procedures when time permits.",
}

// BuildROE builds the rules-of-engagement document. A new version is emitted
// at each phase transition; version is the campaign ROE counter.
func BuildROE(cat *catalog.Catalog, st types.DailyState, version int) types.Document {
	doc := types.Document{
		Kind:           types.DocROE,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			taskForce,
			fmt.Sprintf("RULES OF ENGAGEMENT (VERSION %d)", version),
			"DTG: " + st.DTG,
			fmt.Sprintf("EFFECTIVE PHASE %s: %s", st.Phase.Label, strings.ToUpper(st.Phase.Name)),
		},
	}

	doc.Blocks = append(doc.Blocks,
		heading("1. SITUATION", 1),
		para(fmt.Sprintf("JTF-GG conducts FID/COIN in the Republic of Solara. Phase %s (%s). SLM est. strength: %d. These ROE supplement USSOUTHCOM Standing ROE.",
			st.Phase.Label, st.Phase.Name, st.SLMStrength)),

		heading("2. GENERAL ROE", 1),
	)

	for _, r := range generalROE {
		doc.Blocks = append(doc.Blocks, para(r))
	}

	doc.Blocks = append(doc.Blocks,
		heading("3. SPECIFIC PROVISIONS", 1),
		para("3.1 SLM Status: NOT declared hostile force. Engagement requires hostile act/hostile intent only."),
		para("3.2 Detention: NOT authorized. Transfer to HNSF immediately."),
		para("3.3 Sensitive Sites: 500m standoff without JTF CDR approval."),
		para("3.4 Cross-Border: NOT authorized without JTF CDR + USSOUTHCOM approval."),
		para("3.5 UAS: ISR only (unarmed). EW CUAS authorized; kinetic CUAS requires CDR approval except self-defense."),
	)

	if amendments := cat.Narrative.ROEAmendments[st.Phase.ID]; len(amendments) > 0 {
		doc.Blocks = append(doc.Blocks, heading("4. PHASE-SPECIFIC AMENDMENTS", 1))
		for _, a := range amendments {
			doc.Blocks = append(doc.Blocks, para(a))
		}
	}

	doc.Blocks = append(doc.Blocks,
		heading("5. EOF PROCEDURES", 1),
		para("SHOUT > SHOW > SHOVE > SHOOT (Warning) > SHOOT (Neutralize)"),

		heading("6. REPORTING", 1),
		para("All uses of force: Immediate report to JTF JOC. SIGACT within 1hr. Written statement within 24hr. SJA review within 72hr."),

		para(""),
		boldPara(commander+", MG, USA — Commander, JTF-GG"),
		para("Legal Review: T.M. HARGROVE, COL, JA — SJA, JTF-GG"),
	)

	return doc
}
