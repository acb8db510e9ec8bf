package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Automated exploratory analysis for tabular datasets",
	Long: `excel-data-analyzer

Reads one spreadsheet (.xlsx or .csv), profiles its schema, computes
descriptive statistics, renders a fixed battery of charts, surfaces
rule-based insights, and writes a markdown report bundling everything.

Examples:
  analyzer analyze data.xlsx
  analyzer analyze data.csv -o out
  analyzer serve -o out -p 8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (default from OUTPUT_DIR or report_output)")
}
