package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/symscreen/symscreen-cli/internal/analysis"
	cfgpkg "github.com/symscreen/symscreen-cli/internal/config"
	"github.com/symscreen/symscreen-cli/internal/dataset"
	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

var (
	anaOutputDir     string
	anaPayloadColumn string
	anaMinSupport    int
	anaTopN          int
	anaDenominator   string
	anaMinEdgeWeight int
	anaRelatedTopN   int
	anaSimilarity    bool
	anaSheetName     string
	anaSheetIndex    int
	anaMaxRows       int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Build the symptom co-occurrence matrix and rank related pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		path := args[0]

		dsOpt := dataset.DefaultOptions()
		dsOpt.SheetName = anaSheetName
		dsOpt.SheetIndex = anaSheetIndex
		if cmd.Flags().Changed("max-rows") {
			dsOpt.MaxRows = anaMaxRows
		} else {
			dsOpt.MaxRows = c.MaxRows
		}
		table, err := dataset.Load(path, dsOpt)
		if err != nil {
			return err
		}

		opt := pipelineOptions(cmd, c)
		res, err := analysis.Analyze(table.Rows, opt)
		if err != nil {
			return err
		}

		if anaOutputDir != "" {
			written, err := res.ExportCSV(anaOutputDir)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Printf("✓ Wrote %s\n", filepath.Base(p))
			}
			return nil
		}
		fmt.Println(res.Markdown())
		return nil
	},
}

// pipelineOptions merges config defaults with explicitly set flags.
func pipelineOptions(cmd *cobra.Command, c *cfgpkg.Global) analysis.Options {
	opt := analysis.DefaultPipelineOptions()
	opt.Extract = symptoms.ExtractOptions{
		PayloadColumn: c.PayloadColumn,
		Replacements:  c.TermReplacements,
	}
	opt.ExcludeLabels = c.ExcludeLabels
	opt.Rank.MinSupport = c.MinSupport
	opt.Rank.TopN = c.TopN
	opt.Rank.Denominator = analysis.Denominator(c.Denominator)
	opt.MinEdgeWeight = c.MinEdgeWeight
	opt.RelatedTopN = c.RelatedTopN

	f := cmd.Flags()
	if f.Changed("payload-column") {
		opt.Extract.PayloadColumn = anaPayloadColumn
	}
	if f.Changed("min-support") {
		opt.Rank.MinSupport = anaMinSupport
	}
	if f.Changed("top") {
		opt.Rank.TopN = anaTopN
	}
	if f.Changed("denominator") {
		opt.Rank.Denominator = analysis.Denominator(anaDenominator)
	}
	if f.Changed("min-edge-weight") {
		opt.MinEdgeWeight = anaMinEdgeWeight
	}
	if f.Changed("related-top") {
		opt.RelatedTopN = anaRelatedTopN
	}
	opt.Similarity = anaSimilarity
	return opt
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputDir, "output", "o", "", "directory for CSV/DOT artifacts (stdout report if omitted)")
	analyzeCmd.Flags().StringVar(&anaPayloadColumn, "payload-column", "", "dataset column holding the summary payload")
	analyzeCmd.Flags().IntVar(&anaMinSupport, "min-support", 1, "minimum per-symptom total for a pair to be ranked")
	analyzeCmd.Flags().IntVar(&anaTopN, "top", 0, "keep only the top N ranked pairs (0 = all)")
	analyzeCmd.Flags().StringVar(&anaDenominator, "denominator", "", "normalization denominator: min|max|union")
	analyzeCmd.Flags().IntVar(&anaMinEdgeWeight, "min-edge-weight", 2, "minimum co-occurrence count for a graph edge")
	analyzeCmd.Flags().IntVar(&anaRelatedTopN, "related-top", 5, "related symptoms listed per symptom (0 = all)")
	analyzeCmd.Flags().BoolVar(&anaSimilarity, "similarity", false, "compute answer-based symptom similarity")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to load")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().IntVar(&anaMaxRows, "max-rows", 0, "maximum data rows to load (0 = unlimited)")
}
