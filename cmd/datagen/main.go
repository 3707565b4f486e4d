// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the datagen CLI, the Operation Grove
// Guardian synthetic planning-document generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is initialized before any subcommand runs.
var logger *zap.Logger

var verbose bool

// rootCmd is the base command for the datagen CLI.
var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Synthetic military planning-document generator",
	Long: `datagen procedurally generates a corpus of cross-referenced military-style
planning documents (orders, tasking lists, intelligence updates) for the
fictional Operation Grove Guardian counterinsurgency scenario.

Each run walks a configurable number of simulated operational days, derives
the day's scenario state (evolving metrics, events, target priorities, air
missions), and emits the day's documents on a fixed cadence. Runs are fully
reproducible given the same seed and day count.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./datagen.yaml or ~/.config/datagen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("datagen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "datagen"))
		}
	}

	viper.SetEnvPrefix("DATAGEN")
	viper.AutomaticEnv()

	viper.SetDefault("days", 8)
	viper.SetDefault("output_dir", "./output")
	viper.SetDefault("seed", 42)
	viper.SetDefault("ccir_interval", 3)
	viper.SetDefault("pir_interval", 3)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
