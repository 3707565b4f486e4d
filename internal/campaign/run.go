// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package campaign orchestrates a generation run: it walks the day range in
// order, detects phase transitions, applies the per-kind emission cadence,
// and dispatches daily states to the document builders.
package campaign

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/internal/docs"
	"github.com/Devin-Washington/Data-Gen/internal/scenario"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// Renderer persists a built document under a unique name and returns the
// written path.
type Renderer interface {
	Save(doc types.Document, name string) (string, error)
}

// Summary reports what a run produced.
type Summary struct {
	// RunID is the identifier logged with every line of the run.
	RunID string

	// Days is the number of operational days generated.
	Days int

	// Counts is the number of documents emitted per kind.
	Counts map[types.DocKind]int

	// Total is the overall document count.
	Total int
}

// Run generates all documents for cfg.Days operational days. The emission
// rules per day: primary order and ROE fire only on a phase change (day 0
// always counts as one); FRAGO, ATO, ACO, and JIPTL fire every day; CCIR
// and PIR fire on their cadence day or on a phase change, at most once per
// day each. Counters advance in day order, so for a fixed seed and day
// count the sequence and content of every document is reproducible.
func Run(cfg types.GeneratorConfig, cat *catalog.Catalog, r Renderer, log *zap.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if err := cat.Validate(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		RunID:  uuid.NewString(),
		Days:   cfg.Days,
		Counts: make(map[types.DocKind]int),
	}
	log = log.With(zap.String("run_id", sum.RunID))
	log.Info("starting generation",
		zap.Int("days", cfg.Days),
		zap.Int64("seed", cfg.Seed),
		zap.String("output", cfg.OutputDir),
	)

	deriver := scenario.NewDeriver(cat, cfg.Seed)

	var (
		fragoCounter int
		ccirCounter  int
		pirCounter   int
		roeVersion   int
		lastPhase    int
	)

	emit := func(doc types.Document, name string) error {
		if _, err := r.Save(doc, name); err != nil {
			return fmt.Errorf("saving %s %s: %w", doc.Kind, name, err)
		}
		sum.Counts[doc.Kind]++
		sum.Total++
		return nil
	}

	for day := 0; day < cfg.Days; day++ {
		st := deriver.Derive(day)
		phaseChanged := st.Phase.ID != lastPhase

		dayDocs := sum.Total

		if phaseChanged {
			if err := emit(docs.BuildOPORD(cat, st), opordName(st)); err != nil {
				return sum, err
			}
			roeVersion++
			if err := emit(docs.BuildROE(cat, st, roeVersion), roeName(st, roeVersion)); err != nil {
				return sum, err
			}
		}

		fragoCounter++
		ccirDue := day%cfg.CCIRInterval == 0
		if err := emit(docs.BuildFRAGO(st, fragoCounter, ccirDue), fragoName(st, fragoCounter)); err != nil {
			return sum, err
		}
		if err := emit(docs.BuildATO(st), dayName("ATO", st)); err != nil {
			return sum, err
		}
		if err := emit(docs.BuildACO(cat, st), dayName("ACO", st)); err != nil {
			return sum, err
		}
		if err := emit(docs.BuildJIPTL(st), dayName("JIPTL", st)); err != nil {
			return sum, err
		}

		if ccirDue || phaseChanged {
			ccirCounter++
			if err := emit(docs.BuildCCIR(cat, st, ccirCounter, cfg.CCIRInterval), serialName("CCIR", ccirCounter, st)); err != nil {
				return sum, err
			}
		}
		if day%cfg.PIRInterval == 0 || phaseChanged {
			pirCounter++
			if err := emit(docs.BuildPIR(cat, st, pirCounter, cfg.PIRInterval), serialName("PIR", pirCounter, st)); err != nil {
				return sum, err
			}
		}

		lastPhase = st.Phase.ID

		log.Info("day generated",
			zap.Int("day", day+1),
			zap.String("phase", st.Phase.Label),
			zap.Int("slm_strength", st.SLMStrength),
			zap.Int("hnsf_readiness", st.HNSFReadiness),
			zap.Int("documents", sum.Total-dayDocs),
		)
	}

	log.Info("generation complete",
		zap.Int("total_documents", sum.Total),
		zap.Int("days", cfg.Days),
	)
	return sum, nil
}

func phaseSlug(p types.Phase) string {
	return fmt.Sprintf("Phase_%s_%s", p.Label, strings.ReplaceAll(p.Name, " ", "_"))
}

func opordName(st types.DailyState) string {
	return fmt.Sprintf("OPORD_%03d-26_%s", st.Phase.ID, phaseSlug(st.Phase))
}

func roeName(st types.DailyState, version int) string {
	return fmt.Sprintf("ROE_V%02d_%s", version, phaseSlug(st.Phase))
}

func fragoName(st types.DailyState, serial int) string {
	return fmt.Sprintf("FRAGO_%04d-26_Day_%03d", serial, st.Day+1)
}

func dayName(kind string, st types.DailyState) string {
	return fmt.Sprintf("%s_%03d-26_Day_%03d", kind, st.Day+1, st.Day+1)
}

func serialName(kind string, serial int, st types.DailyState) string {
	return fmt.Sprintf("%s_%03d_Day_%03d", kind, serial, st.Day+1)
}
