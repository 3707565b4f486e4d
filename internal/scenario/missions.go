// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scenario

import (
	"fmt"
	"time"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// generateMissions builds the day's air tasking list: one ISR mission per
// sampled collection area, the two standing support missions, and one extra
// assault-support mission once phase 3 begins. Serials are assigned in
// emission order, contiguous and 1-based.
func (d *Deriver) generateMissions(st *types.DailyState) []types.Mission {
	var missions []types.Mission
	next := 1

	serial := func() string {
		s := fmt.Sprintf("ATO-%03d", next)
		next++
		return s
	}

	areaCount := min(len(d.cat.ISRAreas), d.uniform(4, 7))
	areas := make([]string, len(d.cat.ISRAreas))
	copy(areas, d.cat.ISRAreas)
	d.rng.Shuffle(len(areas), func(i, j int) { areas[i], areas[j] = areas[j], areas[i] })

	for _, area := range areas[:areaCount] {
		p := d.cat.ISRPlatforms[d.rng.Intn(len(d.cat.ISRPlatforms))]
		startHr := d.uniform(6, 10)
		endHr := min(23, startHr+d.uniform(4, 12))
		start := st.Date.Add(time.Duration(startHr) * time.Hour)
		end := st.Date.Add(time.Duration(endHr) * time.Hour)

		missions = append(missions, types.Mission{
			Number:       serial(),
			Callsign:     fmt.Sprintf("%s %02d", p.Callsign, d.uniform(1, 99)),
			Aircraft:     p.Aircraft,
			Unit:         p.Unit,
			Type:         p.MissionType,
			TargetArea:   area,
			TimeOnTarget: MilDTG(start) + "-" + MilDTG(end),
			Remarks:      fmt.Sprintf("ISR coverage; ATO Day %03d", st.Day+1),
		})
	}

	// Standing support: MEDEVAC and airlift fly every day, full window.
	for _, p := range d.cat.SupportPlatforms[:2] {
		remarks := "Resupply run"
		if p.MissionType == "MEDEVAC" {
			remarks = "Standing mission"
		}
		missions = append(missions, types.Mission{
			Number:       serial(),
			Callsign:     fmt.Sprintf("%s %02d", p.Callsign, d.uniform(1, 20)),
			Aircraft:     p.Aircraft,
			Unit:         p.Unit,
			Type:         p.MissionType,
			TargetArea:   "CAMP CITRUS / JOA-WIDE",
			TimeOnTarget: MilDTG(st.Date) + "-" + st.EndDTG,
			Remarks:      remarks,
		})
	}

	if extras := d.cat.SupportPlatforms[2:]; st.Phase.ID >= 3 && len(extras) > 0 {
		p := extras[d.rng.Intn(len(extras))]
		tot := st.Date.Add(time.Duration(d.uniform(1, 6)) * time.Hour)
		missions = append(missions, types.Mission{
			Number:       serial(),
			Callsign:     fmt.Sprintf("%s %02d", p.Callsign, d.uniform(1, 20)),
			Aircraft:     p.Aircraft,
			Unit:         p.Unit,
			Type:         p.MissionType,
			TargetArea:   d.cat.ISRAreas[d.rng.Intn(3)],
			TimeOnTarget: MilDTG(tot),
			Remarks:      "HNSF-led operation support",
		})
	}

	return missions
}
