package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/symscreen/symscreen-cli/internal/dataset"
	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

var (
	preRecommendations string
	preForce           bool
	preSheetName       string
	preSheetIndex      int
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess <dataset>",
	Short: "Extract the symptom catalog and seed the recommendations template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		dsOpt := dataset.DefaultOptions()
		dsOpt.SheetName = preSheetName
		dsOpt.SheetIndex = preSheetIndex
		dsOpt.MaxRows = c.MaxRows
		table, err := dataset.Load(args[0], dsOpt)
		if err != nil {
			return err
		}

		extract := symptoms.ExtractOptions{
			PayloadColumn: c.PayloadColumn,
			Replacements:  c.TermReplacements,
		}
		all := symptoms.All(table.Rows, extract)
		withAnswers := symptoms.WithAnswers(table.Rows, extract, c.ExcludeLabels)
		fmt.Printf("✓ Found %d unique symptoms (%d with answers)\n", len(all), len(withAnswers))

		out := preRecommendations
		if out == "" {
			out = c.RecommendationsPath
		}
		if out == "" {
			return fmt.Errorf("no recommendations path: pass --recommendations or set recommendations_path in config")
		}
		if _, err := os.Stat(out); err == nil && !preForce {
			fmt.Printf("⚠ Recommendations file already exists at %s (use --force to overwrite)\n", out)
			return nil
		}
		if err := symptoms.WriteTemplate(out, withAnswers); err != nil {
			return err
		}
		fmt.Printf("✓ Created recommendations template at %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
	preprocessCmd.Flags().StringVarP(&preRecommendations, "recommendations", "r", "", "path for the recommendations CSV template")
	preprocessCmd.Flags().BoolVar(&preForce, "force", false, "overwrite an existing recommendations file")
	preprocessCmd.Flags().StringVar(&preSheetName, "sheet-name", "", "XLSX: sheet name to load")
	preprocessCmd.Flags().IntVar(&preSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
