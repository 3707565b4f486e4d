// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

func writeOverlay(t *testing.T, o Overlay) string {
	t.Helper()
	data, err := yaml.Marshal(&o)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNoOverlay(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Targets) != len(Default().Targets) {
		t.Errorf("got %d targets, want built-in pool", len(c.Targets))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing overlay file")
	}
}

func TestLoadMalformedOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("targets: [not a target"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed overlay")
	}
}

func TestLoadOverlayReplacesTargets(t *testing.T) {
	var replacement []types.Target
	for i := 0; i < 6; i++ {
		replacement = append(replacement, types.Target{
			ID:       "TST-" + string(rune('A'+i)),
			Name:     "Test Target",
			Category: types.CategoryLogistics,
			MGRS:     "17R NM 1000 50",
			CDE:      types.CDELow,
		})
	}
	path := writeOverlay(t, Overlay{Targets: replacement})

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Targets) != 6 {
		t.Errorf("got %d targets, want overlay pool of 6", len(c.Targets))
	}
	if len(c.Events) != len(Default().Events) {
		t.Error("omitted overlay section should keep the built-in events")
	}
}

func TestLoadOverlayStillValidated(t *testing.T) {
	// One target cannot satisfy the day-zero minimum.
	path := writeOverlay(t, Overlay{Targets: []types.Target{
		{ID: "TST-A", Name: "Lone Target", Category: types.CategoryC2, MGRS: "17R NM 1000 50", CDE: types.CDELow},
	}})
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for undersized target pool")
	}
}

func TestExport(t *testing.T) {
	data, err := Default().Export()
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Phases  []types.Phase  `yaml:"phases"`
		Targets []types.Target `yaml:"targets"`
		Events  []types.Event  `yaml:"events"`
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("exported catalog does not parse: %v", err)
	}
	if len(out.Phases) != 4 {
		t.Errorf("exported %d phases, want 4", len(out.Phases))
	}
	if len(out.Targets) != len(Default().Targets) || len(out.Events) != len(Default().Events) {
		t.Error("exported pools do not match the built-in catalog")
	}
}
