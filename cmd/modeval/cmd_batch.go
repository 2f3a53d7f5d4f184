package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"modeval/internal/batch"
	"modeval/internal/scenario"
)

var (
	batchOutput   string
	batchReport   string
	batchParallel bool
	batchWatch    bool
)

// batchCmd evaluates every tool directory under a parent directory.
var batchCmd = &cobra.Command{
	Use:   "batch [tools-directory]",
	Short: "Evaluate multiple AI tools across all scenarios",
	Long: `Evaluates every subdirectory of the given directory as one AI tool.
Each tool directory is expected to contain one C file per scenario
(basic_gpio.c, sensor_reading.c, motor_control.c, protocol_gateway.c);
missing files are skipped with a warning.

Per-tool results are written as <tool>_results.json. With two or more
tools a cross-tool comparison and a markdown report are generated.

Example:
  modeval batch generated/ --output results/ --parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "evaluation_results", "Output directory for results")
	batchCmd.Flags().StringVarP(&batchReport, "report", "r", "", "Output file for comparison report")
	batchCmd.Flags().BoolVar(&batchParallel, "parallel", false, "Evaluate each tool's scenarios concurrently")
	batchCmd.Flags().BoolVar(&batchWatch, "watch", false, "Keep running and re-evaluate tools on code changes")
}

func runBatch(cmd *cobra.Command, args []string) error {
	toolsDir := args[0]

	if err := os.MkdirAll(batchOutput, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	runner := batch.NewRunner(scenario.NewEvaluator())
	runner.Parallel = batchParallel

	results, err := runner.EvaluateAll(toolsDir, batchOutput)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.SummaryMetrics.ScenariosCompleted == 0 {
			fmt.Printf("%s: no scenarios completed\n", res.ToolName)
			continue
		}
		fmt.Printf("%s: average score %.1f\n", res.ToolName, res.SummaryMetrics.AverageScore)
	}

	if len(results) > 1 {
		fmt.Println("\nGenerating comparison analysis...")
		comparison, err := runner.CompareTools(results, batchOutput)
		if err != nil {
			return err
		}

		reportFile := batchReport
		if reportFile == "" {
			reportFile = filepath.Join(batchOutput, "comparison_report.md")
		}
		if err := batch.WriteReport(reportFile, comparison); err != nil {
			return err
		}
		fmt.Printf("Comparison report saved to: %s\n", reportFile)

		fmt.Println("\n==================================================")
		fmt.Println("EVALUATION SUMMARY")
		fmt.Println("==================================================")
		for i, entry := range comparison.OverallRanking {
			fmt.Printf("%d. %s: %.1f/10.0\n", i+1, entry.Tool, entry.AverageScore)
		}
	} else {
		fmt.Println("Need at least 2 tools to generate comparison analysis")
	}

	if batchWatch {
		return watchTools(runner, toolsDir)
	}
	return nil
}

// watchTools blocks re-evaluating changed tools until interrupted.
func watchTools(runner *batch.Runner, toolsDir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := batch.NewWatcher(runner, toolsDir, batchOutput)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	logger.Info("watching for code changes", zap.String("dir", toolsDir))
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)...\n", toolsDir)
	<-ctx.Done()
	return nil
}
