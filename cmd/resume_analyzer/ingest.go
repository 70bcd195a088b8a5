package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract and clean the text of a résumé file",
	Long:  "Extracts the text of a résumé (PDF, DOCX, HTML or plain text), cleans it, and writes the cleaned text with metadata to the output directory.",
	RunE:  runIngest,
}

var (
	ingestFile   string
	ingestOutDir string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to résumé file (required)")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")

	if err := ingestCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	if err := ingestCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cleanedText, metadata, err := ingestion.IngestFromFile(ingestFile)
	if err != nil {
		return fmt.Errorf("failed to ingest from file: %w", err)
	}

	baseName := ingestBaseName(ingestFile)
	if err := ingestion.WriteOutput(ingestOutDir, baseName, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Successfully ingested %s (%d lines)\n", metadata.FileName, metadata.LineCount)
	_, _ = fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(ingestOutDir, baseName+".cleaned.txt"))
	_, _ = fmt.Fprintf(out, "Metadata: %s\n", filepath.Join(ingestOutDir, baseName+".meta.json"))
	return nil
}

// ingestBaseName is the file name without directory or extension
func ingestBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
