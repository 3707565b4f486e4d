// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scenario derives the per-day operational picture: the resolved
// campaign phase plus the full daily state (metrics, events, target
// priorities, air missions) every document builder reads. Derivation is
// deterministic given the catalog, the campaign seed, and the day order.
package scenario

import "github.com/Devin-Washington/Data-Gen/pkg/types"

// Resolve returns the phase whose day range contains day. Days beyond the
// last declared range resolve to the last phase, so Resolve is total for any
// non-negative day.
func Resolve(phases []types.Phase, day int) types.Phase {
	for _, p := range phases {
		if day >= p.Start && day <= p.End {
			return p
		}
	}
	return phases[len(phases)-1]
}

// IsTransition reports whether day is the first day of some phase. Day 0 is
// always a transition.
func IsTransition(phases []types.Phase, day int) bool {
	for _, p := range phases {
		if p.Start == day {
			return true
		}
	}
	return false
}
