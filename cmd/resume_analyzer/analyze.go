package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze one or more résumé files",
	Long: `Extracts text from each résumé (PDF, DOCX, HTML or plain text), runs the analysis pipeline and writes the analysis envelopes as JSON.

A single file produces one JSON object; several files produce an array in argument order.
Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeConfigPath       string
	analyzeOut              string
	analyzeTargetDepartment string
	analyzeCatalog          string
	analyzeConcurrency      int
	analyzeVerbose          bool
	analyzeValidate         bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output JSON file (defaults to stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeTargetDepartment, "target-department", "d", "", "Department scored as a match")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Path to a YAML skills catalog (defaults to the built-in catalog)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Files analyzed in parallel")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable report")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate each envelope against the JSON schemas")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile(analyzeConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("target-department") {
		cfg.TargetDepartment = analyzeTargetDepartment
	}
	if cmd.Flags().Changed("catalog") {
		cfg.SkillsCatalog = analyzeCatalog
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = analyzeConcurrency
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = analyzeValidate
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	if cfg.Concurrency < 0 {
		return fmt.Errorf("--concurrency must be non-negative")
	}

	envelopes, err := analyzeFiles(cmd.Context(), args, cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		// Keep the report off stdout when the JSON goes there
		var report io.Writer = cmd.OutOrStdout()
		if analyzeOut == "" {
			report = cmd.ErrOrStderr()
		}
		printReport(report, envelopes)
	}

	var output any = envelopes
	if len(envelopes) == 1 {
		output = envelopes[0]
	}
	if err := writeJSON(cmd.OutOrStdout(), analyzeOut, output); err != nil {
		return err
	}

	if analyzeOut != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Analyzed %d file(s), wrote %s\n", len(envelopes), analyzeOut)
	}
	return nil
}

// analyzeFiles reads and analyzes the files concurrently, validating each
// envelope when the config asks for it
func analyzeFiles(ctx context.Context, paths []string, cfg config.Config) ([]types.AnalysisEnvelope, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := loadCatalog(cfg.SkillsCatalog)
	if err != nil {
		return nil, err
	}

	docs, err := readDocuments(paths)
	if err != nil {
		return nil, err
	}

	opts := pipeline.Options{
		Catalog:          catalog,
		TargetDepartment: cfg.TargetDepartment,
	}
	envelopes, err := pipeline.AnalyzeBatch(ctx, docs, opts, cfg.Concurrency)
	if err != nil {
		return nil, err
	}

	if cfg.ValidateOutput {
		for i := range envelopes {
			if err := schemas.ValidateEnvelope(envelopes[i]); err != nil {
				return nil, fmt.Errorf("schema validation failed for %s: %w", envelopes[i].FileName, err)
			}
		}
	}
	return envelopes, nil
}

func printReport(w io.Writer, envelopes []types.AnalysisEnvelope) {
	printer := observability.NewPrinter(w)
	for i := range envelopes {
		printer.PrintAnalysis(envelopes[i].FileName, &envelopes[i].Advanced)
	}
	if len(envelopes) > 1 {
		printer.PrintBatchSummary(envelopes)
	}
}
