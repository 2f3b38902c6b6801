package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/symscreen/symscreen-cli/internal/config"
	"github.com/symscreen/symscreen-cli/internal/logging"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "symscreen",
	Short: "SymScreen CLI: analyze co-occurring symptoms in screening datasets",
	Long: `SymScreen is a CLI tool for clinical screening datasets. It extracts
reported symptoms from embedded summary payloads, builds a symptom
co-occurrence matrix, and emits ranked relationship pairs, related-symptom
tables, and a relationship graph for external rendering.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.symscreen/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	logging.SetDebug(debug)
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration or built-in defaults,
// so commands work without a config file (and in tests that bypass Execute).
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Default()
}
