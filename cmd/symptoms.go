package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/symscreen/symscreen-cli/internal/dataset"
	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

var (
	symName       string
	symSheetName  string
	symSheetIndex int
)

var symptomsCmd = &cobra.Command{
	Use:   "symptoms <dataset>",
	Short: "List symptoms, or show one symptom's answers and recommendations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		dsOpt := dataset.DefaultOptions()
		dsOpt.SheetName = symSheetName
		dsOpt.SheetIndex = symSheetIndex
		dsOpt.MaxRows = c.MaxRows
		table, err := dataset.Load(args[0], dsOpt)
		if err != nil {
			return err
		}
		extract := symptoms.ExtractOptions{
			PayloadColumn: c.PayloadColumn,
			Replacements:  c.TermReplacements,
		}

		if symName == "" {
			for _, s := range symptoms.WithAnswers(table.Rows, extract, c.ExcludeLabels) {
				fmt.Println(s)
			}
			return nil
		}

		answers := symptoms.Answers(table.Rows, extract, symName)
		if len(answers) == 0 {
			fmt.Printf("⚠ No answers recorded for symptom %q\n", symName)
		}
		for _, g := range symptoms.GroupAnswers(answers) {
			fmt.Printf("%s:\n", g.Key)
			for _, o := range symptoms.DropdownOptions(g.Answers) {
				fmt.Printf("  - %s\n", o.Label)
			}
		}

		recs := symptoms.Recommendations{}
		if c.RecommendationsPath != "" {
			loaded, err := symptoms.LoadRecommendations(c.RecommendationsPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
			} else {
				recs = loaded
			}
		}
		fmt.Println("Recommendations:")
		for _, rec := range recs.For(symName) {
			fmt.Printf("  - %s\n", rec)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symptomsCmd)
	symptomsCmd.Flags().StringVarP(&symName, "symptom", "s", "", "show answers and recommendations for one symptom")
	symptomsCmd.Flags().StringVar(&symSheetName, "sheet-name", "", "XLSX: sheet name to load")
	symptomsCmd.Flags().IntVar(&symSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
