// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docs

import (
	"fmt"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// BuildACO builds the daily airspace control order. The measure selection is
// fixed in the daily state; the fire support table takes the first
// FSCMCount catalog rows.
func BuildACO(cat *catalog.Catalog, st types.DailyState) types.Document {
	doc := types.Document{
		Kind:           types.DocACO,
		Classification: classification,
		TitleBlock: []string{
			classification,
			"",
			taskForce,
			fmt.Sprintf("AIRSPACE CONTROL ORDER %s", daySerial(st.Day)),
			"DTG: " + st.DTG,
			fmt.Sprintf("EFFECTIVE: %s TO %s", st.EffectiveDTG, st.EndDTG),
		},
	}

	doc.Blocks = append(doc.Blocks,
		heading("1. GENERAL", 1),
		para(fmt.Sprintf("ACMs approved by ACA (JTF J-3/Air) for ATO Day %03d. Disseminated via this ACO.", st.Day+1)),

		heading("2. AIRSPACE COORDINATING MEASURES (ACMs)", 1),
	)

	acm := types.Table{
		Header:  []string{"ACM #", "TYPE", "NAME", "LOCATION", "ALTITUDE", "EFFECTIVE", "CTRL AGENCY"},
		Shading: "D9E2F3",
	}
	for _, row := range st.ACMRows {
		acm.Rows = append(acm.Rows, []string{
			row.ID, row.Type, row.Name, row.Location, row.Altitude, row.Effective, row.Agency,
		})
	}
	doc.Blocks = append(doc.Blocks, acm,
		heading("3. FIRE SUPPORT COORDINATION MEASURES (FSCMs)", 1),
	)

	fscm := types.Table{
		Header:  []string{"FSCM #", "TYPE", "NAME", "LOCATION", "EFFECTIVE", "EST. AUTH."},
		Shading: "E2EFDA",
	}
	n := st.FSCMCount
	if n > len(cat.FSCMRows) {
		n = len(cat.FSCMRows)
	}
	for i := 0; i < n; i++ {
		fd := cat.FSCMRows[i]
		fscm.Rows = append(fscm.Rows, []string{
			fmt.Sprintf("FSCM-%02d", i+1), fd.Type, fd.Name, fd.Location, fd.Effective, "JTF CDR",
		})
	}
	doc.Blocks = append(doc.Blocks, fscm,
		para(""),
		boldPara("Approved: R.P. THORNTON, COL, USAF — ACA (Delegated)"),
	)

	return doc
}
