// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the static scenario reference data: campaign phases,
// the opposing-force target and event pools, mission archetypes, airspace
// and fire support control measures, and the phase-keyed narrative tables.
// Catalog data is immutable at runtime; per-day availability, selection, and
// neutralization are derived views computed elsewhere.
package catalog

import (
	"fmt"
	"time"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// BaseDate is D-Day: 200600ZJAN26.
var BaseDate = time.Date(2026, time.January, 20, 6, 0, 0, 0, time.UTC)

// Catalog bundles every reference pool a generation run reads.
type Catalog struct {
	Phases           []types.Phase
	Leaders          []types.Leader
	Targets          []types.Target
	Events           []types.Event
	ISRPlatforms     []types.Platform
	SupportPlatforms []types.Platform
	ISRAreas         []string
	ACMTypes         []string
	ACMSites         []types.ACMSite
	FSCMRows         []types.FSCMRow
	Narrative        Narrative
}

// Default returns the built-in Grove Guardian catalog.
func Default() *Catalog {
	return &Catalog{
		Phases:           phases,
		Leaders:          leaders,
		Targets:          targets,
		Events:           events,
		ISRPlatforms:     isrPlatforms,
		SupportPlatforms: supportPlatforms,
		ISRAreas:         isrAreas,
		ACMTypes:         acmTypes,
		ACMSites:         acmSites,
		FSCMRows:         fscmRows,
		Narrative:        narrative,
	}
}

// Validate fails fast on a catalog that cannot drive a complete run: empty
// pools, inverted event windows, too few day-0 targets, or a phase-keyed
// narrative table missing an entry for a declared phase. An incomplete
// narrative table is a configuration defect, not a runtime condition.
func (c *Catalog) Validate() error {
	if len(c.Phases) == 0 {
		return fmt.Errorf("catalog declares no phases")
	}
	for i, p := range c.Phases {
		if p.Start > p.End {
			return fmt.Errorf("phase %d (%s): start %d after end %d", p.ID, p.Name, p.Start, p.End)
		}
		if i > 0 && p.Start != c.Phases[i-1].End+1 {
			return fmt.Errorf("phase %d (%s): range not contiguous with phase %d", p.ID, p.Name, c.Phases[i-1].ID)
		}
	}
	if c.Phases[0].Start != 0 {
		return fmt.Errorf("first phase must start at day 0, got %d", c.Phases[0].Start)
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("catalog declares no targets")
	}
	dayZero := 0
	for _, t := range c.Targets {
		if t.AvailableFrom < 0 {
			return fmt.Errorf("target %s: negative available-from day", t.ID)
		}
		if t.AvailableFrom == 0 {
			dayZero++
		}
	}
	if dayZero < 5 {
		return fmt.Errorf("catalog needs at least 5 targets available from day 0, got %d", dayZero)
	}

	if len(c.Events) == 0 {
		return fmt.Errorf("catalog declares no events")
	}
	for _, e := range c.Events {
		if e.TriggerMin > e.TriggerMax {
			return fmt.Errorf("event %q: trigger window inverted (%d > %d)", e.Text, e.TriggerMin, e.TriggerMax)
		}
	}

	if len(c.ISRPlatforms) == 0 || len(c.SupportPlatforms) < 2 {
		return fmt.Errorf("catalog needs ISR platforms and at least 2 support platforms")
	}
	if len(c.ISRAreas) < 3 {
		return fmt.Errorf("catalog needs at least 3 ISR areas, got %d", len(c.ISRAreas))
	}

	return c.Narrative.validate(c.Phases)
}

// phases defines the four campaign phases. The last range end is a practical
// upper bound; days beyond it still resolve to Transition.
var phases = []types.Phase{
	{ID: 1, Name: "Shape", Label: "I", Start: 0, End: 30},
	{ID: 2, Name: "Train and Secure", Label: "II", Start: 31, End: 120},
	{ID: 3, Name: "Operate and Expand", Label: "III", Start: 121, End: 270},
	{ID: 4, Name: "Transition", Label: "IV", Start: 271, End: 999},
}

var leaders = []types.Leader{
	{Codename: "VIPER", Name: "Comandante Elias Fuentes", Role: "SLM Supreme Commander"},
	{Codename: "SCORPION", Name: "Sub-Cmdr. Rafael Tovar", Role: "SLM Military Chief"},
	{Codename: "GECKO", Name: "Javier 'El Sombra' Mena", Role: "SLM Corridor Cell Leader"},
	{Codename: "CORAL", Name: "Lucia Varga", Role: "SLM Propaganda Chief"},
	{Codename: "BUSHMASTER", Name: "Carlos Delgado", Role: "SLM Border Logistics Chief"},
	{Codename: "MOCCASIN", Name: "Diego Soto", Role: "SLM Swamp Sector Commander"},
	{Codename: "PYTHON", Name: "Unknown True Name", Role: "SLM Finance Cell Leader"},
	{Codename: "IGUANA", Name: "Pablo Rios", Role: "SLM Urban Cell Leader"},
	{Codename: "CAIMAN", Name: "Hector Rivas", Role: "SLM Maritime/Smuggling Coordinator"},
	{Codename: "ANACONDA", Name: "Marco Gutierrez", Role: "SLM Training Camp Commander"},
}

var targets = []types.Target{
	{ID: "SLM-LOG-001", Name: "Primary Weapons Cache (Border Region)", Category: types.CategoryLogistics, MGRS: "17R NM 4523 78", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-LOG-002", Name: "Cross-Border Smuggling LZ Alpha", Category: types.CategoryLogistics, MGRS: "17R NM 5678 89", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-LOG-003", Name: "Fuel/Supply Point (Scrubland East)", Category: types.CategoryLogistics, MGRS: "17R NM 4012 72", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-LOG-004", Name: "IED/Demolitions Workshop", Category: types.CategoryLogistics, MGRS: "17R NM 3678 68", CDE: types.CDEModerate, AvailableFrom: 0},
	{ID: "SLM-LOG-005", Name: "Safe House Network (Company Town 3)", Category: types.CategoryLogistics, MGRS: "17R NM 3500 71", CDE: types.CDEHigh, AvailableFrom: 0},
	{ID: "SLM-LOG-006", Name: "Secondary Weapons Cache (Swamp Edge)", Category: types.CategoryLogistics, MGRS: "17R NM 3100 65", CDE: types.CDELow, AvailableFrom: 15},
	{ID: "SLM-LOG-007", Name: "Smuggling LZ Bravo (Coastal Relay)", Category: types.CategoryLogistics, MGRS: "17R NM 5890 91", CDE: types.CDELow, AvailableFrom: 10},
	{ID: "SLM-LOG-008", Name: "Medical Supply Cache", Category: types.CategoryLogistics, MGRS: "17R NM 3345 69", CDE: types.CDEModerate, AvailableFrom: 30},
	{ID: "SLM-LOG-009", Name: "Vehicle Staging Area", Category: types.CategoryLogistics, MGRS: "17R NM 4200 74", CDE: types.CDELow, AvailableFrom: 45},
	{ID: "SLM-LOG-010", Name: "Boat Cache (River Junction)", Category: types.CategoryLogistics, MGRS: "17R NM 2800 62", CDE: types.CDELow, AvailableFrom: 20},
	{ID: "SLM-C2-001", Name: "Regional Commander CP (Swamp Central)", Category: types.CategoryC2, MGRS: "17R NM 3456 67", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-C2-002", Name: "Communications Relay (Hill 247)", Category: types.CategoryC2, MGRS: "17R NM 3890 70", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-C2-003", Name: "Finance/Funding Cell (Arcadia)", Category: types.CategoryC2, MGRS: "17R NM 3210 65", CDE: types.CDEHigh, AvailableFrom: 0},
	{ID: "SLM-C2-004", Name: "Alternate CP (Scrubland North)", Category: types.CategoryC2, MGRS: "17R NM 3780 72", CDE: types.CDELow, AvailableFrom: 40},
	{ID: "SLM-C2-005", Name: "Courier Network Hub", Category: types.CategoryC2, MGRS: "17R NM 3560 68", CDE: types.CDEModerate, AvailableFrom: 25},
	{ID: "SLM-INF-001", Name: "Propaganda Media Center (Arcadia Urban)", Category: types.CategoryInfoOps, MGRS: "17R NM 3200 65", CDE: types.CDEHigh, AvailableFrom: 0},
	{ID: "SLM-INF-002", Name: "Social Media Operations Cell", Category: types.CategoryInfoOps, MGRS: "17R NM 3250 64", CDE: types.CDEHigh, AvailableFrom: 0},
	{ID: "SLM-INF-003", Name: "Underground Print Shop (Company Town 7)", Category: types.CategoryInfoOps, MGRS: "17R NM 3400 66", CDE: types.CDEModerate, AvailableFrom: 20},
	{ID: "SLM-TRN-001", Name: "Training Camp Alpha (Deep Swamp)", Category: types.CategoryForce, MGRS: "17R NM 2890 62", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-TRN-002", Name: "Training Camp Bravo (Scrubland West)", Category: types.CategoryForce, MGRS: "17R NM 2560 67", CDE: types.CDELow, AvailableFrom: 0},
	{ID: "SLM-TRN-003", Name: "Recruit Assembly Point (Lake Region)", Category: types.CategoryForce, MGRS: "17R NM 2700 64", CDE: types.CDELow, AvailableFrom: 35},
	{ID: "SLM-SAB-001", Name: "Corridor Sabotage Cell (KM 30-50)", Category: types.CategoryForce, MGRS: "17R NM 3900 75", CDE: types.CDELow, AvailableFrom: 5},
	{ID: "SLM-SAB-002", Name: "Corridor Sabotage Cell (KM 80-100)", Category: types.CategoryForce, MGRS: "17R NM 4100 78", CDE: types.CDELow, AvailableFrom: 5},
	{ID: "SLM-SAB-003", Name: "Bridge Assault Team (Rio Verde Bridge)", Category: types.CategoryForce, MGRS: "17R NM 4300 80", CDE: types.CDEModerate, AvailableFrom: 15},
	{ID: "SLM-MAR-001", Name: "Port Manatee Sleeper Cell", Category: types.CategoryForce, MGRS: "17R NM 5500 88", CDE: types.CDEHigh, AvailableFrom: 30},
	{ID: "SLM-CYB-001", Name: "Cyber Operations Cell (Unknown Location)", Category: types.CategoryC2, MGRS: "17R NM 3200 65", CDE: types.CDEHigh, AvailableFrom: 60},
}

var events = []types.Event{
	{TriggerMin: 1, TriggerMax: 5, Text: "SLM propaganda leaflets distributed in Company Town 2", Impact: types.ImpactInfo},
	{TriggerMin: 2, TriggerMax: 8, Text: "HNSF tip-line reports SLM movement near KM 45 of corridor", Impact: types.ImpactIntel},
	{TriggerMin: 3, TriggerMax: 10, Text: "Small arms fire exchanged between HNSF patrol and SLM cell near the swamp edge", Impact: types.ImpactContact},
	{TriggerMin: 5, TriggerMax: 15, Text: "IED discovered and neutralized on rail line at KM 67", Impact: types.ImpactSabotage},
	{TriggerMin: 7, TriggerMax: 20, Text: "SLM propaganda video posted on social media showing staged attack", Impact: types.ImpactInfo},
	{TriggerMin: 8, TriggerMax: 25, Text: "HUMINT source reports SLM planning meeting in Scrubland East", Impact: types.ImpactIntel},
	{TriggerMin: 10, TriggerMax: 30, Text: "Cross-border smuggling boat interdicted by HNSF Border Guard; weapons recovered", Impact: types.ImpactInterdiction},
	{TriggerMin: 12, TriggerMax: 35, Text: "CA team conducts well-digging project in Company Town 4; positive reception", Impact: types.ImpactCivil},
	{TriggerMin: 15, TriggerMax: 40, Text: "SLM ambush of CSG patrol near KM 92; 2x HNSF WIA, SLM repelled", Impact: types.ImpactContact},
	{TriggerMin: 18, TriggerMax: 50, Text: "Radio Solara Libre begins broadcasting; initial listener metrics positive", Impact: types.ImpactInfo},
	{TriggerMin: 20, TriggerMax: 55, Text: "First SLM defector surrenders via amnesty program; debriefed by J-2", Impact: types.ImpactIntel},
	{TriggerMin: 25, TriggerMax: 60, Text: "CUAS system detects and defeats hostile drone near Camp Citrus", Impact: types.ImpactCUAS},
	{TriggerMin: 30, TriggerMax: 70, Text: "Swamp Rangers conduct first independent patrol; no contact", Impact: types.ImpactHNSFProgress},
	{TriggerMin: 35, TriggerMax: 80, Text: "SLM attacks citrus processing plant in Sector 3; minimal damage", Impact: types.ImpactSabotage},
	{TriggerMin: 40, TriggerMax: 90, Text: "Second amnesty defector provides SLM OOB information", Impact: types.ImpactIntel},
	{TriggerMin: 45, TriggerMax: 100, Text: "CSG interdicts SLM sabotage cell preparing to attack Rio Verde Bridge", Impact: types.ImpactInterdiction},
	{TriggerMin: 50, TriggerMax: 110, Text: "SLM cyber intrusion detected on HNSF email server; isolated and eradicated", Impact: types.ImpactCyber},
	{TriggerMin: 60, TriggerMax: 130, Text: "Swamp Rangers clear SLM camp; 12 SLM detained by HNSF", Impact: types.ImpactClearing},
	{TriggerMin: 75, TriggerMax: 150, Text: "SLM corridor attacks decrease 40% from baseline", Impact: types.ImpactProgress},
	{TriggerMin: 90, TriggerMax: 180, Text: "GoS announces land reform pilot program for Grove Laborers", Impact: types.ImpactCivil},
	{TriggerMin: 100, TriggerMax: 200, Text: "SLM VIPER (supreme commander) communicates frustration to foreign sponsor per SIGINT", Impact: types.ImpactIntel},
	{TriggerMin: 120, TriggerMax: 240, Text: "HNSF conducts first fully independent corridor security rotation", Impact: types.ImpactHNSFProgress},
	{TriggerMin: 150, TriggerMax: 270, Text: "SLM recruitment rate down estimated 60% per HUMINT", Impact: types.ImpactProgress},
	{TriggerMin: 200, TriggerMax: 300, Text: "SLM offers ceasefire negotiations through intermediary", Impact: types.ImpactDiplomatic},
	{TriggerMin: 250, TriggerMax: 350, Text: "GoS Ministry of Information assumes lead for Radio Solara Libre", Impact: types.ImpactTransition},
}

var isrPlatforms = []types.Platform{
	{Callsign: "SHADOW", Aircraft: "MQ-1C", Unit: "UAS PLT/SOTF-K", MissionType: "ISR"},
	{Callsign: "RAVEN", Aircraft: "RQ-20B", Unit: "SOTF-C", MissionType: "ISR"},
	{Callsign: "PUMA", Aircraft: "RQ-11B", Unit: "CATF", MissionType: "ISR"},
	{Callsign: "SCAN EAGLE", Aircraft: "RQ-21A", Unit: "SOTF-K", MissionType: "ISR"},
}

// supportPlatforms: the first two (MEDEVAC, airlift) fly every day; the rest
// are assault-support options added in phase 3 and later.
var supportPlatforms = []types.Platform{
	{Callsign: "DUSTOFF", Aircraft: "UH-60M", Unit: "MEDEVAC DET", MissionType: "MEDEVAC"},
	{Callsign: "ATLAS", Aircraft: "C-146A", Unit: "AFSOC DET", MissionType: "AIRLIFT"},
	{Callsign: "TALON", Aircraft: "MC-130J", Unit: "AFSOC DET", MissionType: "INFILTRATION"},
	{Callsign: "NIGHTHAWK", Aircraft: "MH-60M", Unit: "160th SOAR DET", MissionType: "ASSAULT SUPPORT"},
}

var isrAreas = []string{
	"CORRIDOR NORTH (COR-N)", "CORRIDOR SOUTH (COR-S)", "SWAMP CENTRAL (SWP-C)",
	"BORDER EAST (BDR-E)", "BORDER WEST (BDR-W)", "ARCADIA URBAN (ARC-U)",
	"PORT MANATEE APPROACH (PM-A)", "SCRUBLAND NORTH (SCR-N)", "SCRUBLAND SOUTH (SCR-S)",
	"LAKE REGION (LK-R)", "RIVER JUNCTION (RVR-J)", "COMPANY TOWN CLUSTER (CT-C)",
}

var acmTypes = []string{"ROZ", "UA", "HIDACZ", "ACA"}

var acmSites = []types.ACMSite{
	{Name: "SHADOW NORTH", Location: "N27 30 00 W081 45 00 / 20nm", Altitude: "SFC-15000ft MSL"},
	{Name: "SHADOW SOUTH", Location: "N27 00 00 W081 30 00 / 20nm", Altitude: "SFC-15000ft MSL"},
	{Name: "RAVEN CENTRAL", Location: "N27 15 00 W081 50 00 / 10nm", Altitude: "SFC-1200ft AGL"},
	{Name: "RAVEN BORDER", Location: "N27 20 00 W081 15 00 / 10nm", Altitude: "SFC-1200ft AGL"},
	{Name: "SCAN PORT", Location: "N27 40 00 W082 30 00 / 15nm", Altitude: "SFC-10000ft MSL"},
	{Name: "CORRIDOR SHIELD", Location: "N27 00-40 W081 30-W082 30 / 5nm corridor", Altitude: "SFC-5000ft AGL"},
	{Name: "CAMP CITRUS", Location: "N27 12 00 W081 46 00 / 3nm", Altitude: "SFC-3000ft AGL"},
	{Name: "PUMA URBAN", Location: "N27 12 00 W081 46 00 / 5nm", Altitude: "SFC-500ft AGL"},
	{Name: "SWAMP OVERWATCH", Location: "N27 10 00 W081 55 00 / 12nm", Altitude: "SFC-8000ft MSL"},
	{Name: "BORDER WATCH", Location: "N27 25 00 W081 10 00 / 10nm", Altitude: "SFC-5000ft AGL"},
}

var fscmRows = []types.FSCMRow{
	{Type: "NFA", Name: "ARCADIA CITY", Location: "5km radius Arcadia center", Effective: "CONTINUOUS"},
	{Type: "NFA", Name: "PORT MANATEE", Location: "3km radius Port Manatee", Effective: "CONTINUOUS"},
	{Type: "RFA", Name: "CORRIDOR ZONE", Location: "5km either side PM corridor", Effective: "CONTINUOUS"},
	{Type: "NFA", Name: "EMBASSY COMPOUND", Location: "1km radius U.S. Embassy", Effective: "CONTINUOUS"},
	{Type: "CFL", Name: "BORDER CFL", Location: "Along international border", Effective: "CONTINUOUS"},
	{Type: "NFA", Name: "HOSPITAL ZONE", Location: "500m radius Arcadia General", Effective: "CONTINUOUS"},
	{Type: "FFA", Name: "SWAMP CLEAR", Location: "Designated SLM sanctuary area", Effective: "ON ORDER"},
	{Type: "RFA", Name: "COMPANY TOWN BUFFER", Location: "2km radius Company Towns 1-5", Effective: "CONTINUOUS"},
}
