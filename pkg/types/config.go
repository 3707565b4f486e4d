// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// GeneratorConfig holds the settings for one generation run.
type GeneratorConfig struct {
	// Days is the number of operational days to generate (default 8).
	Days int `json:"days" yaml:"days"`

	// OutputDir is the output root; one subdirectory per document kind is
	// created beneath it.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Seed is the campaign random seed. Runs with the same seed and day
	// count produce identical output.
	Seed int64 `json:"seed" yaml:"seed"`

	// CCIRInterval and PIRInterval are the cadences, in days, of the two
	// periodic intelligence-requirement updates. Phase transitions force an
	// emission regardless of cadence.
	CCIRInterval int `json:"ccir_interval" yaml:"ccir_interval"`
	PIRInterval  int `json:"pir_interval" yaml:"pir_interval"`

	// CatalogFile optionally points at a YAML catalog overlay replacing the
	// built-in target and event pools.
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty"`
}

// Validate rejects configurations that cannot drive a run. It is called
// before any generation begins.
func (c GeneratorConfig) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must be set")
	}
	if c.CCIRInterval <= 0 {
		return fmt.Errorf("ccir interval must be positive, got %d", c.CCIRInterval)
	}
	if c.PIRInterval <= 0 {
		return fmt.Errorf("pir interval must be positive, got %d", c.PIRInterval)
	}
	return nil
}
