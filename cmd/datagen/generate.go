// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Devin-Washington/Data-Gen/internal/campaign"
	"github.com/Devin-Washington/Data-Gen/internal/catalog"
	"github.com/Devin-Washington/Data-Gen/internal/render"
	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the document corpus for a range of operational days",
	Long: `Generate runs the full campaign: for each operational day it derives the
scenario state and emits that day's documents into per-kind subdirectories
of the output root.

Daily documents (FRAGO, ATO, ACO, JIPTL) are emitted every day. The primary
order (OPORD) and rules of engagement (ROE) are emitted on phase
transitions. CCIR and PIR updates follow their configured cadence, with
phase transitions forcing an off-cadence emission.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return err
	}

	renderer, err := render.NewMarkdown(cfg.OutputDir)
	if err != nil {
		return err
	}

	sum, err := campaign.Run(cfg, cat, renderer, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %d documents across %d days in %s\n", sum.Total, sum.Days, cfg.OutputDir)
	for _, kind := range types.DocKinds {
		if n := sum.Counts[kind]; n > 0 {
			fmt.Fprintf(os.Stdout, "  %-6s %d\n", kind, n)
		}
	}
	return nil
}

// resolveConfig merges flags over the viper configuration: flag > config
// file / env > default. Validation happens before any generation begins.
func resolveConfig(cmd *cobra.Command) (types.GeneratorConfig, error) {
	bindings := map[string]string{
		"days":          "days",
		"output_dir":    "output",
		"seed":          "seed",
		"ccir_interval": "ccir-interval",
		"pir_interval":  "pir-interval",
		"catalog_file":  "catalog",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return types.GeneratorConfig{}, fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	cfg := types.GeneratorConfig{
		Days:         viper.GetInt("days"),
		OutputDir:    viper.GetString("output_dir"),
		Seed:         viper.GetInt64("seed"),
		CCIRInterval: viper.GetInt("ccir_interval"),
		PIRInterval:  viper.GetInt("pir_interval"),
		CatalogFile:  viper.GetString("catalog_file"),
	}
	if err := cfg.Validate(); err != nil {
		return types.GeneratorConfig{}, err
	}
	return cfg, nil
}

func init() {
	generateCmd.Flags().Int("days", 8, "number of operational days to generate")
	generateCmd.Flags().StringP("output", "o", "./output", "output root directory (created if absent)")
	generateCmd.Flags().Int64("seed", 42, "campaign random seed")
	generateCmd.Flags().Int("ccir-interval", 3, "CCIR update cadence in days")
	generateCmd.Flags().Int("pir-interval", 3, "PIR update cadence in days")
	generateCmd.Flags().String("catalog", "", "path to a YAML catalog overlay file")

	rootCmd.AddCommand(generateCmd)
}
