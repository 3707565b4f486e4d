// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Devin-Washington/Data-Gen/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the scenario catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective catalog (built-in plus optional overlay)",
	Long: `Validate checks the catalog the generator would run with: pool sizes,
event trigger windows, target availability, and completeness of every
phase-keyed narrative table. A missing narrative entry for a declared phase
is a configuration defect rejected here rather than mid-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("catalog")
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Catalog OK: %d phases, %d targets, %d events\n",
			len(cat.Phases), len(cat.Targets), len(cat.Events))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the effective catalog pools as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("catalog")
		format, _ := cmd.Flags().GetString("format")
		outFile, _ := cmd.Flags().GetString("out")

		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}

		var data []byte
		switch format {
		case "yaml":
			data, err = cat.Export()
		case "json":
			data, err = json.MarshalIndent(struct {
				Phases  any `json:"phases"`
				Leaders any `json:"leaders"`
				Targets any `json:"targets"`
				Events  any `json:"events"`
			}{cat.Phases, cat.Leaders, cat.Targets, cat.Events}, "", "  ")
		default:
			return fmt.Errorf("unknown format %q: use yaml or json", format)
		}
		if err != nil {
			return err
		}

		if outFile == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(outFile, data, 0o644)
	},
}

func init() {
	catalogCmd.PersistentFlags().String("catalog", "", "path to a YAML catalog overlay file")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("out", "", "write to file instead of stdout")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
