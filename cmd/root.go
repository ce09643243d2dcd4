package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/ruheeh/waterchatbot/internal/config"
	"github.com/ruheeh/waterchatbot/internal/datastore"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile   string
	debug     bool
	flagData  string
	flagSheet string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "waterchat",
	Short: "waterchat: ask questions about water quality monitoring data",
	Long: `waterchat answers natural-language questions about a water quality
monitoring spreadsheet. Queries run locally against the data file, no
network or model calls involved.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.waterchat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "path to the data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "workbook sheet name for .xlsx files (overrides config)")
}

func loadConfig() {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagData != "" {
		cfg.DataFile = flagData
	}
	if f.Changed("sheet") && flagSheet != "" {
		cfg.SheetName = flagSheet
	}
}

// openStore builds the dataset store from the effective configuration.
func openStore() (*datastore.Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("no data file configured (set --data or data_file in config)")
	}
	if _, err := os.Stat(cfg.DataFile); err != nil {
		return nil, fmt.Errorf("data file %s: %w", cfg.DataFile, err)
	}
	return datastore.New(cfg.DataFile, cfg.SheetName), nil
}
