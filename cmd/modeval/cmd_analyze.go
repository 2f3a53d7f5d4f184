package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modeval/internal/analyzer"
	"modeval/internal/catalog"
)

// analyzeCmd runs the bare analyzer without scenario requirements.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [code-file]",
	Short: "Analyze a code file against the module catalog",
	Long: `Runs the generic analysis over a C source file, without scenario
requirements, and prints the module usage report. Useful for a quick look
at how much of the internal API surface a file exercises.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read code file: %w", err)
	}

	a := analyzer.New(catalog.Default())
	result := a.Analyze(string(source), nil)
	fmt.Println(analyzer.Report(result))
	return nil
}
