// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docs builds document content trees from a daily state snapshot.
// Each builder is a pure function: all randomness is fixed in the DailyState
// before a builder runs, so rebuilding a document from the same state yields
// the same content tree.
package docs

import (
	"fmt"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

const classification = "UNCLASSIFIED"

const (
	taskForce    = "JOINT TASK FORCE - GROVE GUARDIAN"
	headquarters = "Camp Citrus, Arcadia, Republic of Solara"
	commander    = "J.R. MACKENZIE"
)

// daySerial is the day-derived serial shared by the always-daily document
// kinds (FRAGO body references, ATO, ACO, JIPTL). Day-derived serials let a
// document reference its same-day siblings without knowing emission order.
func daySerial(day int) string {
	return fmt.Sprintf("%03d-26", day+1)
}

// opordSerial is the phase-derived serial of the primary order.
func opordSerial(phase int) string {
	return fmt.Sprintf("%03d-26", phase)
}

func heading(text string, level int) types.Heading {
	return types.Heading{Text: text, Level: level}
}

func para(text string) types.Paragraph {
	return types.Paragraph{Text: text}
}

func boldPara(text string) types.Paragraph {
	return types.Paragraph{Text: text, Bold: true}
}

func indentPara(text string, indent int) types.Paragraph {
	return types.Paragraph{Text: text, Indent: indent}
}

// weather returns the seasonal weather line; the wet season begins at day
// 150 regardless of phase.
func weather(day int, air bool) string {
	if air {
		if day < 150 {
			return "Dry season; CAVU expected. Morning fog in swamp areas 0500-0800L."
		}
		return "Wet season; scattered thunderstorms possible. Ceiling variable 800-unlimited."
	}
	if day < 150 {
		return "Dry season; optimal conditions for ground ops and ISR."
	}
	return "Wet season approaching; degraded ground mobility in swamp regions anticipated."
}
