package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/symscreen/symscreen-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set SymScreen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		if c.DatasetPath != "" {
			fmt.Printf("dataset_path: %s\n", c.DatasetPath)
		}
		if c.RecommendationsPath != "" {
			fmt.Printf("recommendations_path: %s\n", c.RecommendationsPath)
		}
		if c.OutputDir != "" {
			fmt.Printf("output_dir: %s\n", c.OutputDir)
		}
		fmt.Printf("payload_column: %s\n", c.PayloadColumn)
		fmt.Printf("search_column: %s\n", c.SearchColumn)
		if len(c.ExcludeLabels) > 0 {
			fmt.Printf("exclude_labels: %s\n", strings.Join(c.ExcludeLabels, ", "))
		}
		fmt.Printf("min_support: %d\n", c.MinSupport)
		fmt.Printf("top_n: %d\n", c.TopN)
		fmt.Printf("denominator: %s\n", c.Denominator)
		fmt.Printf("min_edge_weight: %d\n", c.MinEdgeWeight)
		fmt.Printf("related_top_n: %d\n", c.RelatedTopN)
		fmt.Printf("max_rows: %d\n", c.MaxRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset_path":
			cfg.DatasetPath = val
		case "recommendations_path":
			cfg.RecommendationsPath = val
		case "output_dir":
			cfg.OutputDir = val
		case "payload_column":
			cfg.PayloadColumn = val
		case "search_column":
			cfg.SearchColumn = val
		case "exclude_labels":
			cfg.ExcludeLabels = splitList(val)
		case "denominator":
			cfg.Denominator = val
		case "min_support", "top_n", "min_edge_weight", "related_top_n", "max_rows":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("value for %s must be an integer: %w", key, err)
			}
			switch key {
			case "min_support":
				cfg.MinSupport = n
			case "top_n":
				cfg.TopN = n
			case "min_edge_weight":
				cfg.MinEdgeWeight = n
			case "related_top_n":
				cfg.RelatedTopN = n
			case "max_rows":
				cfg.MaxRows = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
