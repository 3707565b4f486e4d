// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scenario

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// Annotation pools for target-list rows. The first four effects are the
// lethal-preferred set used above the cut line.
var (
	effects    = []string{"DESTROY", "NEUTRALIZE", "DENY", "DISRUPT", "DISRUPT (NON-LETHAL)", "DEGRADE"}
	nominators = []string{"SOTF-C", "SOTF-K", "SOTF-B", "MISTF", "CATF", "J-2"}
	objectives = []string{"OBJ 1: Secure Corridor", "OBJ 2: Neutralize SLM", "OBJ 3: Counter SLM", "OBJ 4: Isolate"}

	acmAgencies = []string{"SOTF-C", "SOTF-K", "SOTF-B", "CATF"}
)

// Deriver produces the daily state for successive days of a campaign. It
// holds the ambient random stream; two derivers built with the same catalog
// and seed and walked in the same day order produce identical states.
//
// Target neutralization deliberately does not use the ambient stream: it
// draws from a generator keyed by seed+day, so the neutralized set for a
// given day is identical regardless of how many days were derived before
// it.
type Deriver struct {
	cat  *catalog.Catalog
	seed int64
	rng  *rand.Rand
}

// NewDeriver returns a deriver over cat with the given campaign seed.
func NewDeriver(cat *catalog.Catalog, seed int64) *Deriver {
	return &Deriver{cat: cat, seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// MilDTG formats t as a military date-time group (e.g. "200600ZJAN26").
func MilDTG(t time.Time) string {
	return strings.ToUpper(t.Format("021504ZJan06"))
}

// DayDate returns the calendar timestamp for an operational day offset.
func DayDate(day int) time.Time {
	return catalog.BaseDate.AddDate(0, 0, day)
}

// Derive computes the full daily state for day. It never fails: every
// derived quantity has a defined value for any non-negative day.
func (d *Deriver) Derive(day int) types.DailyState {
	date := DayDate(day)
	st := types.DailyState{
		Day:          day,
		Date:         date,
		DTG:          MilDTG(date),
		EffectiveDTG: MilDTG(date),
		EndDTG:       MilDTG(date.Add(18 * time.Hour)),
		Phase:        Resolve(d.cat.Phases, day),
	}

	// Evolving metrics: linear trend plus bounded noise, clamped.
	st.SLMStrength = max(500, 3000-int(float64(day)*6.5)+d.uniform(-100, 100))
	st.HNSFReadiness = min(95, 35+int(float64(day)*0.18)+d.uniform(-5, 5))
	st.CorridorThreat = max(1, 10-int(float64(day)*0.02)+d.uniform(-1, 1))
	st.PopularSupport = min(80, 30+int(float64(day)*0.14)+d.uniform(-3, 3))
	st.TipLineCalls = max(0, int(float64(day)*0.8)+d.uniform(-5, 10))
	st.AmnestySurrenders = max(0, int(float64(day)*0.15)+d.uniform(-2, 3))

	st.Events = d.selectEvents(day)

	dayRNG := rand.New(rand.NewSource(d.seed + int64(day)))
	st.ActiveTargets = d.activeTargets(day, dayRNG)

	cut := min(len(st.ActiveTargets), d.uniform(6, 10))
	st.AboveCut = annotateTargets(st.ActiveTargets[:cut], true, dayRNG)
	st.BelowCut = annotateTargets(st.ActiveTargets[cut:], false, dayRNG)

	st.Missions = d.generateMissions(&st)

	st.ACMRows = d.airspaceMeasures(&st, dayRNG)
	st.FSCMCount = min(len(d.cat.FSCMRows), 5+dayRNG.Intn(4))

	st.TipLineDelta = d.uniform(-3, 3)

	return st
}

// uniform draws from the ambient stream, inclusive on both bounds.
func (d *Deriver) uniform(lo, hi int) int {
	return lo + d.rng.Intn(hi-lo+1)
}

// selectEvents filters the event pool to the day's window and draws 1-3 of
// the eligible entries without replacement.
func (d *Deriver) selectEvents(day int) []types.Event {
	var eligible []types.Event
	for _, e := range d.cat.Events {
		if e.TriggerMin <= day && day <= e.TriggerMax {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	k := min(len(eligible), d.uniform(1, 3))
	d.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return eligible[:k]
}

// activeTargets returns the day's available, non-neutralized targets in
// shuffled presentation order. The neutralized count grows with the day but
// is re-clamped against the current available pool so at least 5 candidates
// always remain; the specific neutralized set comes from dayRNG.
func (d *Deriver) activeTargets(day int, dayRNG *rand.Rand) []types.Target {
	var available []types.Target
	for _, t := range d.cat.Targets {
		if t.AvailableFrom <= day {
			available = append(available, t)
		}
	}

	neutralized := day * 3 / 100
	if neutralized > len(available)-5 {
		neutralized = len(available) - 5
	}
	if neutralized < 0 {
		neutralized = 0
	}

	removed := make(map[string]bool, neutralized)
	if neutralized > 0 {
		idx := dayRNG.Perm(len(available))
		for _, i := range idx[:neutralized] {
			removed[available[i].ID] = true
		}
	}

	active := make([]types.Target, 0, len(available)-neutralized)
	for _, t := range available {
		if !removed[t.ID] {
			active = append(active, t)
		}
	}

	// Presentation order uses the ambient stream, not dayRNG.
	d.rng.Shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})
	return active
}

// annotateTargets fixes the target-list row annotations (jittered location,
// desired effect, nominator, objective) at derivation time. Above the cut
// line only the lethal-preferred effects are drawn, and information
// operations targets always take the non-lethal effect.
func annotateTargets(targets []types.Target, aboveCut bool, rng *rand.Rand) []types.TargetRow {
	rows := make([]types.TargetRow, len(targets))
	for i, t := range targets {
		effect := effects[rng.Intn(len(effects))]
		if aboveCut {
			effect = effects[rng.Intn(4)]
		}
		if t.Category == types.CategoryInfoOps {
			effect = "DISRUPT (NON-LETHAL)"
		}
		rows[i] = types.TargetRow{
			Target:        t,
			Location:      jitterMGRS(t.MGRS, rng),
			DesiredEffect: effect,
			Nominator:     nominators[rng.Intn(len(nominators))],
			Objective:     objectives[rng.Intn(len(objectives))],
		}
	}
	return rows
}

// jitterMGRS perturbs the easting and northing of an MGRS string by up to
// 50 in each direction. Malformed strings fall back to the original value
// unchanged; jitter never fails.
func jitterMGRS(base string, rng *rand.Rand) string {
	parts := strings.Fields(base)
	if len(parts) < 4 {
		return base
	}
	e, err := strconv.Atoi(parts[2])
	if err != nil {
		return base
	}
	n, err := strconv.Atoi(parts[3])
	if err != nil {
		return base
	}
	e += rng.Intn(101) - 50
	n += rng.Intn(101) - 50
	return fmt.Sprintf("%s %s %04d %02d", parts[0], parts[1], e, n)
}

// airspaceMeasures samples the day's airspace coordinating measures from the
// site catalog using dayRNG, matching the run-order independence of the
// neutralization draw.
func (d *Deriver) airspaceMeasures(st *types.DailyState, dayRNG *rand.Rand) []types.ACMRow {
	count := min(len(d.cat.ACMSites), 6+dayRNG.Intn(5))
	idx := dayRNG.Perm(len(d.cat.ACMSites))[:count]

	rows := make([]types.ACMRow, count)
	for i, sel := range idx {
		site := d.cat.ACMSites[sel]
		acmType := d.cat.ACMTypes[sel%len(d.cat.ACMTypes)]

		effective := st.EffectiveDTG + "-" + st.EndDTG
		if acmType == "ACA" {
			effective = "CONTINUOUS"
		}

		agency := "JTF JOC"
		if acmType == "UA" {
			agency = acmAgencies[dayRNG.Intn(len(acmAgencies))]
		}

		rows[i] = types.ACMRow{
			ID:        fmt.Sprintf("ACM-%02d", i+1),
			Type:      acmType,
			Name:      site.Name,
			Location:  site.Location,
			Altitude:  site.Altitude,
			Effective: effective,
			Agency:    agency,
		}
	}
	return rows
}
