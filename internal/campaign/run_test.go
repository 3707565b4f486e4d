// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package campaign

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// memRenderer captures every save in emission order.
type memRenderer struct {
	names []string
	docs  []types.Document
	fail  bool
}

func (m *memRenderer) Save(doc types.Document, name string) (string, error) {
	if m.fail {
		return "", fmt.Errorf("disk full")
	}
	m.names = append(m.names, name)
	m.docs = append(m.docs, doc)
	return name + ".md", nil
}

func testConfig(days int) types.GeneratorConfig {
	return types.GeneratorConfig{
		Days:         days,
		OutputDir:    "out",
		Seed:         42,
		CCIRInterval: 3,
		PIRInterval:  3,
	}
}

func TestRunEightDays(t *testing.T) {
	r := &memRenderer{}
	sum, err := Run(testConfig(8), catalog.Default(), r, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Days)
	assert.NotEmpty(t, sum.RunID)

	want := map[types.DocKind]int{
		types.DocOPORD: 1,
		types.DocROE:   1,
		types.DocFRAGO: 8,
		types.DocATO:   8,
		types.DocACO:   8,
		types.DocJIPTL: 8,
		types.DocCCIR:  3, // days 1, 4, 7
		types.DocPIR:   3,
	}
	assert.Equal(t, want, sum.Counts)
	assert.Equal(t, 40, sum.Total)
	assert.Len(t, r.names, sum.Total)
}

func TestRunSingleDay(t *testing.T) {
	r := &memRenderer{}
	sum, err := Run(testConfig(1), catalog.Default(), r, zap.NewNop())
	require.NoError(t, err)

	// Day 0 is a phase transition and a cadence day, so one of everything.
	for _, kind := range types.DocKinds {
		assert.Equal(t, 1, sum.Counts[kind], "kind %s", kind)
	}
	assert.Equal(t, 8, sum.Total)
}

func TestRunNames(t *testing.T) {
	r := &memRenderer{}
	_, err := Run(testConfig(2), catalog.Default(), r, zap.NewNop())
	require.NoError(t, err)

	want := []string{
		"OPORD_001-26_Phase_I_Shape",
		"ROE_V01_Phase_I_Shape",
		"FRAGO_0001-26_Day_001",
		"ATO_001-26_Day_001",
		"ACO_001-26_Day_001",
		"JIPTL_001-26_Day_001",
		"CCIR_001_Day_001",
		"PIR_001_Day_001",
		"FRAGO_0002-26_Day_002",
		"ATO_002-26_Day_002",
		"ACO_002-26_Day_002",
		"JIPTL_002-26_Day_002",
	}
	assert.Equal(t, want, r.names)
}

// An off-cadence phase transition still forces the intelligence updates,
// and a coinciding cadence day emits at most one per kind.
func TestRunOffCadenceTransition(t *testing.T) {
	cfg := testConfig(35)
	cfg.CCIRInterval = 5
	cfg.PIRInterval = 5

	r := &memRenderer{}
	sum, err := Run(cfg, catalog.Default(), r, zap.NewNop())
	require.NoError(t, err)

	// Cadence days 0,5,...,30 plus the phase 2 transition on day 31.
	assert.Equal(t, 8, sum.Counts[types.DocCCIR])
	assert.Equal(t, 2, sum.Counts[types.DocOPORD])
	assert.Equal(t, 2, sum.Counts[types.DocROE])

	day32 := 0
	for _, name := range r.names {
		if strings.HasPrefix(name, "CCIR_") && strings.HasSuffix(name, "_Day_032") {
			day32++
		}
	}
	assert.Equal(t, 1, day32, "transition day should emit exactly one CCIR")
	assert.Contains(t, r.names, "OPORD_002-26_Phase_II_Train_and_Secure")
}

func TestRunDeterministic(t *testing.T) {
	a := &memRenderer{}
	_, err := Run(testConfig(5), catalog.Default(), a, zap.NewNop())
	require.NoError(t, err)

	b := &memRenderer{}
	_, err = Run(testConfig(5), catalog.Default(), b, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, a.names, b.names)
	require.Equal(t, len(a.docs), len(b.docs))
	for i := range a.docs {
		if !reflect.DeepEqual(a.docs[i], b.docs[i]) {
			t.Errorf("document %d (%s) differs between identical runs", i, a.names[i])
		}
	}
}

func TestRunSeedChangesContent(t *testing.T) {
	a := &memRenderer{}
	_, err := Run(testConfig(3), catalog.Default(), a, zap.NewNop())
	require.NoError(t, err)

	cfg := testConfig(3)
	cfg.Seed = 7
	b := &memRenderer{}
	_, err = Run(cfg, catalog.Default(), b, zap.NewNop())
	require.NoError(t, err)

	// Names depend only on cadence, content on the seed.
	assert.Equal(t, a.names, b.names)
	assert.False(t, reflect.DeepEqual(a.docs, b.docs))
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *types.GeneratorConfig)
	}{
		{"zero days", func(cfg *types.GeneratorConfig) { cfg.Days = 0 }},
		{"negative days", func(cfg *types.GeneratorConfig) { cfg.Days = -3 }},
		{"empty output", func(cfg *types.GeneratorConfig) { cfg.OutputDir = "" }},
		{"zero ccir interval", func(cfg *types.GeneratorConfig) { cfg.CCIRInterval = 0 }},
		{"zero pir interval", func(cfg *types.GeneratorConfig) { cfg.PIRInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(8)
			tt.mutate(&cfg)
			_, err := Run(cfg, catalog.Default(), &memRenderer{}, zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestRunRendererFailure(t *testing.T) {
	_, err := Run(testConfig(2), catalog.Default(), &memRenderer{fail: true}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
