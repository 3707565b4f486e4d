// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scenario

import (
	"testing"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
)

func TestResolve(t *testing.T) {
	phases := catalog.Default().Phases

	tests := []struct {
		day  int
		want int
	}{
		{0, 1},
		{15, 1},
		{30, 1},
		{31, 2},
		{120, 2},
		{121, 3},
		{270, 3},
		{271, 4},
		{999, 4},
		{5000, 4}, // beyond the last declared range, still resolves
	}
	for _, tt := range tests {
		got := Resolve(phases, tt.day)
		if got.ID != tt.want {
			t.Errorf("Resolve(day=%d) = phase %d, want %d", tt.day, got.ID, tt.want)
		}
	}
}

func TestIsTransition(t *testing.T) {
	phases := catalog.Default().Phases

	tests := []struct {
		day  int
		want bool
	}{
		{0, true},
		{1, false},
		{30, false},
		{31, true},
		{120, false},
		{121, true},
		{271, true},
		{272, false},
		{5000, false},
	}
	for _, tt := range tests {
		if got := IsTransition(phases, tt.day); got != tt.want {
			t.Errorf("IsTransition(day=%d) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
