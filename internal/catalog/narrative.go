// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// UnitTask is one subordinate-unit tasking line in the primary order.
type UnitTask struct {
	Unit string
	Task string
}

// CCIRRow is one priority-intelligence-requirement line in the CCIR update.
type CCIRRow struct {
	ID            string
	Requirement   string
	DecisionPoint string
}

// PIRConfig is one detailed intelligence requirement in the PIR update.
type PIRConfig struct {
	Title      string
	Indicators []string
	Collection string
	LTIOV      string
}

// Narrative holds the phase-keyed lookup tables the document builders select
// from. Every declared phase must have an entry in every table; validate
// enforces this at startup so a missing key never surfaces inside a builder.
type Narrative struct {
	// EnemySituation is the primary order's enemy assessment paragraph.
	EnemySituation map[int]string

	// MissionVerbs completes the primary order's mission statement.
	MissionVerbs map[int]string

	// Intents is the commander's intent purpose line.
	Intents map[int]string

	// MainEfforts names the phase's main line of effort.
	MainEfforts map[int]string

	// UnitTasks lists the subordinate-unit taskings.
	UnitTasks map[int][]UnitTask

	// ROEAmendments lists phase-specific rules-of-engagement provisions.
	// Phase 1 has none; the entry is present and empty.
	ROEAmendments map[int][]string

	// CCIRRows lists the CCIR update's PIR table rows.
	CCIRRows map[int][]CCIRRow

	// PIRConfigs lists the detailed PIR update entries.
	PIRConfigs map[int][]PIRConfig
}

func (n Narrative) validate(phases []types.Phase) error {
	tables := map[string]func(id int) bool{
		"enemy situation": func(id int) bool { _, ok := n.EnemySituation[id]; return ok },
		"mission verbs":   func(id int) bool { _, ok := n.MissionVerbs[id]; return ok },
		"intents":         func(id int) bool { _, ok := n.Intents[id]; return ok },
		"main efforts":    func(id int) bool { _, ok := n.MainEfforts[id]; return ok },
		"unit tasks":      func(id int) bool { return len(n.UnitTasks[id]) > 0 },
		"roe amendments":  func(id int) bool { _, ok := n.ROEAmendments[id]; return ok },
		"ccir rows":       func(id int) bool { return len(n.CCIRRows[id]) > 0 },
		"pir configs":     func(id int) bool { return len(n.PIRConfigs[id]) > 0 },
	}
	for _, p := range phases {
		for name, has := range tables {
			if !has(p.ID) {
				return fmt.Errorf("narrative table %q missing entry for phase %d (%s)", name, p.ID, p.Name)
			}
		}
	}
	return nil
}

var narrative = Narrative{
	EnemySituation: map[int]string{
		1: "SLM maintains initiative along the corridor with frequent sabotage. Swamp sanctuaries are largely uncontested. External support flowing freely across the border.",
		2: "SLM corridor attacks continuing but HNSF response improving. ISR providing increased early warning. SLM adapting tactics, shifting to nighttime operations. Border interdiction beginning to constrain supply.",
		3: "SLM under pressure across all operating areas. Corridor attacks reduced. Swamp sanctuaries being contested. Amnesty program generating defections. SLM leadership showing signs of internal friction.",
		4: "SLM significantly degraded. Remnants operating in small, isolated cells. Leadership fragmented. External support severely disrupted. SLM propaganda losing effectiveness.",
	},

	MissionVerbs: map[int]string{
		1: "establishes the JTF, conducts initial assessments, and begins advisory operations",
		2: "conducts intensive HNSF training and establishes corridor security",
		3: "conducts HNSF-led clearing operations and expands security",
		4: "transitions security lead to HNSF and prepares for redeployment",
	},

	Intents: map[int]string{
		1: "Establish advisory relationships and ISR architecture to set conditions for decisive operations in subsequent phases.",
		2: "Build HNSF capacity to independently secure the corridor while degrading SLM freedom of movement.",
		3: "Press the advantage. HNSF-led operations deny SLM sanctuary while MISO and CA efforts accelerate population support for the GoS.",
		4: "Ensure HNSF sustainability. Complete transition of all operations. Residual SOF capability for CT only.",
	},

	MainEfforts: map[int]string{
		1: "LOE 1 (Develop HNSF)",
		2: "LOE 2 (Secure Corridor)",
		3: "LOE 3 (Counter SLM)",
		4: "LOE 1 (Sustain HNSF)",
	},

	UnitTasks: map[int][]UnitTask{
		1: {
			{Unit: "SOTF-C", Task: "Conduct initial assessment of Solaran Army units; begin Swamp Rangers training program."},
			{Unit: "SOTF-K", Task: "Establish ISR architecture along Port Manatee corridor; begin CSG advisory operations."},
			{Unit: "SOTF-B", Task: "Assess border security gaps; begin Border Guard training."},
			{Unit: "MISTF", Task: "Establish Radio Solara Libre; begin MISO Phase I (Prepare and Legitimize)."},
			{Unit: "CATF", Task: "Conduct initial civil-military engagement in priority company towns."},
		},
		2: {
			{Unit: "SOTF-C", Task: "Conduct intensive Swamp Rangers training; begin accompanied patrols into swamp periphery."},
			{Unit: "SOTF-K", Task: "MAIN EFFORT. Establish layered corridor defense with CSG; achieve initial operating capability."},
			{Unit: "SOTF-B", Task: "Conduct border interdiction training; execute joint patrols with HNSF Border Guard."},
			{Unit: "MISTF", Task: "Execute MISO Phase II (Disrupt and Persuade); heavily market amnesty program."},
			{Unit: "CATF", Task: "Scale civil-military projects; begin governance reform advocacy."},
		},
		3: {
			{Unit: "SOTF-C", Task: "MAIN EFFORT. Advise and accompany Swamp Rangers in clearing SLM sanctuaries."},
			{Unit: "SOTF-K", Task: "Sustain and expand corridor security; achieve full operating capability."},
			{Unit: "SOTF-B", Task: "Intensify border interdiction; dismantle SLM smuggling networks."},
			{Unit: "MISTF", Task: "Intensify MISO targeting SLM leadership; begin Grey/Black operations."},
			{Unit: "CATF", Task: "Expand CA projects to secondary company towns; advocate land reform."},
		},
		4: {
			{Unit: "SOTF-C", Task: "Transition Swamp Rangers to independent operations; maintain advisory presence."},
			{Unit: "SOTF-K", Task: "Transfer corridor security lead to CSG; reduce advisory footprint."},
			{Unit: "SOTF-B", Task: "Transition border operations to HNSF; prepare for redeployment."},
			{Unit: "MISTF", Task: "Transfer MISO lead to GoS Ministry of Information."},
			{Unit: "CATF", Task: "Transition CA programs to USAID and GoS agencies."},
		},
	},

	ROEAmendments: map[int][]string{
		1: {},
		2: {
			"4.1 Accompanied Operations: U.S. advisors accompanying HNSF on corridor patrols may use force in collective self-defense of the combined element.",
			"4.2 Escalation: During HNSF-led checkpoint operations, U.S. advisors will defer to HNSF EOF procedures unless U.S. lives are directly threatened.",
		},
		3: {
			"4.1 Clearing Operations: During HNSF-led clearing operations in designated areas, U.S. advisors may call for fire support in coordination with HNSF commander when combined element is decisively engaged.",
			"4.2 FFA Activation: JTF CDR may activate FFA SWAMP CLEAR (FSCM-07) for specific HNSF-led clearing operations. All fires require HNSF commander approval.",
		},
		4: {
			"4.1 Reduced Posture: As HNSF assumes security lead, U.S. force protection posture remains unchanged. No reduction in self-defense authorities.",
			"4.2 Residual CT: Any CT operations require JTF CDR + USSOUTHCOM approval.",
		},
	},

	CCIRRows: map[int][]CCIRRow{
		1: {
			{ID: "PIR 1", Requirement: "SLM intentions/timeline for corridor attacks", DecisionPoint: "Adjust CSG posture"},
			{ID: "PIR 2", Requirement: "SLM OOB, cell structure, leadership", DecisionPoint: "Prioritize SOTF-C ops"},
			{ID: "PIR 3", Requirement: "Cross-border logistics routes/methods", DecisionPoint: "Adjust SOTF-B interdiction"},
			{ID: "PIR 4", Requirement: "Popular support levels (Grove Laborers/Scrub Folk)", DecisionPoint: "Shape MISO strategy"},
			{ID: "PIR 5", Requirement: "SLM advanced weapons (MANPADS, UAS)", DecisionPoint: "Adjust force protection"},
			{ID: "PIR 6", Requirement: "SLM/sponsor cyber capabilities", DecisionPoint: "Elevate DCO posture"},
		},
		2: {
			{ID: "PIR 1", Requirement: "SLM adaptation to corridor security measures", DecisionPoint: "Adjust CSG TTPs"},
			{ID: "PIR 2", Requirement: "SLM OOB changes and leadership movements", DecisionPoint: "Sequence clearing ops"},
			{ID: "PIR 3", Requirement: "Cross-border logistics; effectiveness of interdiction", DecisionPoint: "Adjust border ops"},
			{ID: "PIR 4", Requirement: "Population response to MISO and CA programs", DecisionPoint: "Redirect MISO/CA"},
			{ID: "PIR 5", Requirement: "SLM advanced weapons acquisition", DecisionPoint: "Adjust force protection"},
			{ID: "PIR 6", Requirement: "SLM cyber targeting of HNSF C2 systems", DecisionPoint: "Harden networks"},
		},
		3: {
			{ID: "PIR 1", Requirement: "SLM intentions to escalate or negotiate", DecisionPoint: "Inform CDR decision on operational tempo"},
			{ID: "PIR 2", Requirement: "SLM remaining capability and cohesion", DecisionPoint: "Prioritize remaining clearing ops"},
			{ID: "PIR 3", Requirement: "Foreign sponsor commitment level", DecisionPoint: "Inform diplomatic approach"},
			{ID: "PIR 4", Requirement: "Population confidence in GoS reforms", DecisionPoint: "Advise GoS on reform pace"},
			{ID: "PIR 5", Requirement: "SLM IED/sabotage residual capability", DecisionPoint: "Maintain corridor security"},
			{ID: "PIR 6", Requirement: "SLM information ops effectiveness", DecisionPoint: "Counter remaining propaganda"},
		},
		4: {
			{ID: "PIR 1", Requirement: "SLM reconstitution potential", DecisionPoint: "Determine residual CT requirement"},
			{ID: "PIR 2", Requirement: "HNSF sustainability without U.S. support", DecisionPoint: "Determine transition timeline"},
			{ID: "PIR 3", Requirement: "Foreign sponsor future intentions", DecisionPoint: "Inform post-transition posture"},
			{ID: "PIR 4", Requirement: "Population confidence trajectory", DecisionPoint: "Advise GoS on long-term stability"},
			{ID: "PIR 5", Requirement: "Residual SLM cells and spoiler potential", DecisionPoint: "Maintain awareness"},
			{ID: "PIR 6", Requirement: "GoS governance reform follow-through", DecisionPoint: "Shape final advisory messaging"},
		},
	},

	PIRConfigs: map[int][]PIRConfig{
		1: {
			{
				Title:      "PIR 1: SLM Corridor Attack Intentions",
				Indicators: []string{"Increased comms along corridor", "Personnel/equipment movement toward infrastructure", "IED material pre-positioning", "Recon of CSG patrols"},
				Collection: "SIGINT, HUMINT (tip-line), UAS ISR (SHADOW)",
				LTIOV:      "Continuous; 24hr cycle",
			},
			{
				Title:      "PIR 2: SLM Order of Battle",
				Indicators: []string{"New cell identification", "Strength/org changes", "Training activities", "Leadership movement", "Recruitment in company towns"},
				Collection: "HUMINT (informants, defectors), SIGINT, UAS ISR, OSINT",
				LTIOV:      "72hr update; immediate for leadership",
			},
			{
				Title:      "PIR 3: Cross-Border Logistics",
				Indicators: []string{"Boat movement along coast", "Vehicle/pack movement at border", "New cache sites", "Financial transactions", "New weapons in SLM inventory"},
				Collection: "SIGINT, GEOINT, UAS ISR, HUMINT (border), liaison intel",
				LTIOV:      "72hr prep; immediate for active ops",
			},
		},
		2: {
			{
				Title:      "PIR 1: SLM Tactical Adaptation",
				Indicators: []string{"Changes to attack TTPs", "Shift to nighttime ops", "Use of new IED types", "Counter-ISR measures", "Targeting of HNSF leadership"},
				Collection: "SIGINT, HUMINT, UAS ISR, TECHINT (recovered IEDs)",
				LTIOV:      "Continuous; 24hr cycle",
			},
			{
				Title:      "PIR 2: SLM Leadership and Cohesion",
				Indicators: []string{"Leadership disputes per SIGINT", "Cell fragmentation", "Defections/amnesty surrenders", "Changes in SLM messaging tone"},
				Collection: "SIGINT, HUMINT (defectors), OSINT (social media)",
				LTIOV:      "48hr update",
			},
			{
				Title:      "PIR 3: Interdiction Effectiveness",
				Indicators: []string{"Reduction in border crossings", "SLM supply shortages", "Foreign sponsor response to interdiction", "New smuggling routes"},
				Collection: "SIGINT, HUMINT, GEOINT, UAS ISR, liaison intel",
				LTIOV:      "Weekly assessment",
			},
		},
		3: {
			{
				Title:      "PIR 1: SLM Escalation vs Negotiation Intent",
				Indicators: []string{"SLM leadership communications re: ceasefire", "Escalation of attacks as desperation", "Outreach to intermediaries", "Foreign sponsor guidance to SLM"},
				Collection: "SIGINT, HUMINT, diplomatic channels",
				LTIOV:      "Immediate; 24hr cycle",
			},
			{
				Title:      "PIR 2: SLM Remaining Capability",
				Indicators: []string{"Functional cells remaining", "Weapons/ammo stockpile status", "Recruit pipeline", "Morale indicators"},
				Collection: "All sources; defector debriefs critical",
				LTIOV:      "48hr update",
			},
			{
				Title:      "PIR 3: Population Sentiment Trajectory",
				Indicators: []string{"Tip-line volume trend", "Amnesty surrender rate", "GoS program participation", "Social media sentiment"},
				Collection: "HUMINT (CA), OSINT, polling",
				LTIOV:      "Weekly",
			},
		},
		4: {
			{
				Title:      "PIR 1: SLM Reconstitution Potential",
				Indicators: []string{"Remaining leadership at large", "Foreign sponsor willingness to re-arm", "Recruitment potential", "Residual safe havens"},
				Collection: "All sources",
				LTIOV:      "Weekly assessment",
			},
			{
				Title:      "PIR 2: HNSF Sustainability",
				Indicators: []string{"HNSF independent capability", "Leadership quality", "Logistics self-sufficiency", "Intel collection capacity"},
				Collection: "Advisory team assessments, HNSF reporting",
				LTIOV:      "Weekly",
			},
			{
				Title:      "PIR 3: GoS Reform Follow-Through",
				Indicators: []string{"Land reform implementation", "Labor law enforcement", "GoS spending on company town services", "Orchard Baron cooperation"},
				Collection: "CA teams, Embassy reporting, OSINT",
				LTIOV:      "Bi-weekly",
			},
		},
	},
}
