// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared domain types for the scenario generator:
// catalog entries, the per-day derived state, the document content tree, and
// configuration.
package types

import "time"

// Phase is a named, day-ranged stage of the campaign. Exactly one phase is
// active on any operational day; ranges are contiguous and days beyond the
// last declared range resolve to the last phase.
type Phase struct {
	// ID is the 1-based phase number.
	ID int `json:"id" yaml:"id"`

	// Name is the phase display name (e.g. "Train and Secure").
	Name string `json:"name" yaml:"name"`

	// Label is the Roman-numeral phase label (e.g. "II").
	Label string `json:"label" yaml:"label"`

	// Start and End bound the phase's day range, inclusive.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// TargetCategory classifies a target in the opposing-force catalog.
type TargetCategory string

const (
	CategoryLogistics TargetCategory = "LOGISTICS"
	CategoryC2        TargetCategory = "C2"
	CategoryInfoOps   TargetCategory = "INFO OPS"
	CategoryForce     TargetCategory = "FORCE"
)

// CDETier is the collateral-damage-estimate tier for a target.
type CDETier string

const (
	CDELow      CDETier = "LOW"
	CDEModerate CDETier = "MOD"
	CDEHigh     CDETier = "HIGH"
)

// Target is an immutable entry in the opposing-force target catalog.
// Availability and neutralization are per-day derived views, never mutations
// of the catalog entry.
type Target struct {
	// ID is the stable target identifier (e.g. "SLM-LOG-001").
	ID string `json:"id" yaml:"id"`

	// Name is the target display name.
	Name string `json:"name" yaml:"name"`

	// Category classifies the target.
	Category TargetCategory `json:"category" yaml:"category"`

	// MGRS is the base coordinate string; per-day jitter is applied on top.
	MGRS string `json:"mgrs" yaml:"mgrs"`

	// CDE is the collateral-damage-estimate tier.
	CDE CDETier `json:"cde" yaml:"cde"`

	// AvailableFrom is the first day on which the target is a candidate.
	AvailableFrom int `json:"available_from" yaml:"available_from"`
}

// ImpactType tags a scenario event with the kind of operational impact it
// carries. Downstream task-change generation keys off this tag.
type ImpactType string

const (
	ImpactInfo         ImpactType = "INFO"
	ImpactIntel        ImpactType = "INTEL"
	ImpactContact      ImpactType = "CONTACT"
	ImpactSabotage     ImpactType = "SABOTAGE"
	ImpactInterdiction ImpactType = "INTERDICTION"
	ImpactCivil        ImpactType = "CIVIL"
	ImpactCUAS         ImpactType = "CUAS"
	ImpactCyber        ImpactType = "CYBER"
	ImpactClearing     ImpactType = "CLEARING"
	ImpactProgress     ImpactType = "PROGRESS"
	ImpactHNSFProgress ImpactType = "HNSF_PROGRESS"
	ImpactDiplomatic   ImpactType = "DIPLOMATIC"
	ImpactTransition   ImpactType = "TRANSITION"
)

// Event is an immutable catalog entry describing a possible scenario
// occurrence. Per-day selection is derived state, not a catalog mutation.
type Event struct {
	// TriggerMin and TriggerMax bound the day window in which the event may
	// be selected, inclusive.
	TriggerMin int `json:"trigger_min" yaml:"trigger_min"`
	TriggerMax int `json:"trigger_max" yaml:"trigger_max"`

	// Text is the human-readable narrative line.
	Text string `json:"text" yaml:"text"`

	// Impact tags the event for task-change generation.
	Impact ImpactType `json:"impact" yaml:"impact"`
}

// Leader is an opposing-force leadership catalog entry.
type Leader struct {
	Codename string `json:"codename" yaml:"codename"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
}

// Platform is an air platform archetype used for mission generation.
type Platform struct {
	// Callsign is the base callsign; missions append a random numeric suffix.
	Callsign string `json:"callsign" yaml:"callsign"`

	// Aircraft is the airframe designation (e.g. "MQ-1C").
	Aircraft string `json:"aircraft" yaml:"aircraft"`

	// Unit is the owning unit identifier.
	Unit string `json:"unit" yaml:"unit"`

	// MissionType is the tasking category (e.g. "ISR", "MEDEVAC").
	MissionType string `json:"mission_type" yaml:"mission_type"`
}

// ACMSite is a reusable airspace coordinating measure definition. The daily
// airspace order samples a subset of these.
type ACMSite struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Altitude string `json:"altitude" yaml:"altitude"`
}

// FSCMRow is a fire support coordination measure definition.
type FSCMRow struct {
	Type      string `json:"type" yaml:"type"`
	Name      string `json:"name" yaml:"name"`
	Location  string `json:"location" yaml:"location"`
	Effective string `json:"effective" yaml:"effective"`
}

// Mission is a generated air tasking line. Missions are derived per day,
// owned by that day's state, and discarded after rendering.
type Mission struct {
	// Number is the 1-based, zero-padded mission serial (e.g. "ATO-003").
	Number string `json:"number" yaml:"number"`

	Callsign   string `json:"callsign" yaml:"callsign"`
	Aircraft   string `json:"aircraft" yaml:"aircraft"`
	Unit       string `json:"unit" yaml:"unit"`
	Type       string `json:"type" yaml:"type"`
	TargetArea string `json:"target_area" yaml:"target_area"`

	// TimeOnTarget is the DTG window (or single DTG) the mission flies.
	TimeOnTarget string `json:"time_on_target" yaml:"time_on_target"`

	Remarks string `json:"remarks" yaml:"remarks"`
}

// TargetRow is a prioritized target-list entry: a catalog target plus the
// per-day annotations the target list renders. The jittered location and the
// annotation picks are fixed at derivation time so the builders stay pure.
type TargetRow struct {
	Target Target

	// Location is the day-jittered coordinate string.
	Location string

	// DesiredEffect, Nominator, and Objective are the day's annotation picks.
	DesiredEffect string
	Nominator     string
	Objective     string
}

// ACMRow is a rendered airspace coordinating measure line for one day.
type ACMRow struct {
	ID        string
	Type      string
	Name      string
	Location  string
	Altitude  string
	Effective string
	Agency    string
}

// DailyState is the derived, day-scoped snapshot every document builder for
// that day reads. It is constructed once per day and not retained across
// days.
type DailyState struct {
	// Day is the 0-based operational day index.
	Day int

	// Date is the calendar timestamp for the day (base date + Day).
	Date time.Time

	// DTG, EffectiveDTG, and EndDTG are the formatted military date-time
	// groups for the day and its 18-hour effective window.
	DTG          string
	EffectiveDTG string
	EndDTG       string

	// Phase is the resolved campaign phase.
	Phase Phase

	// Evolving scalar metrics. Strength trends down, readiness and popular
	// support trend up, corridor threat trends down; tip-line volume and
	// amnesty surrenders are cumulative counters trending up.
	SLMStrength       int
	HNSFReadiness     int
	CorridorThreat    int
	PopularSupport    int
	TipLineCalls      int
	AmnestySurrenders int

	// TipLineDelta is the fragmentary order's 24-hour adjustment to the
	// tip-line figure, fixed here so the builder carries no randomness.
	TipLineDelta int

	// Events are today's selected occurrences (1-3 of the window-eligible
	// catalog entries).
	Events []Event

	// ActiveTargets are the available, non-neutralized targets in shuffled
	// presentation order. AboveCut and BelowCut split the same set at the
	// day's priority cut.
	ActiveTargets []Target
	AboveCut      []TargetRow
	BelowCut      []TargetRow

	// Missions is the day's air tasking list.
	Missions []Mission

	// ACMRows and FSCMCount control the airspace order's control-measure
	// tables.
	ACMRows   []ACMRow
	FSCMCount int
}
