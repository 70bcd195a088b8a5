package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Split a résumé into labeled sections",
	Long:  "Extracts the text of a résumé and prints its sections as a JSON object keyed by section label. Lines before the first recognized heading go to GENERAL.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

var (
	sectionsOut     string
	sectionsVerbose bool
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsOut, "out", "o", "", "Output JSON file (defaults to stdout)")
	sectionsCmd.Flags().BoolVarP(&sectionsVerbose, "verbose", "v", false, "Print a preview of each section")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	sections, err := sectionsOf(args[0])
	if err != nil {
		return err
	}

	if sectionsVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintSections(sections)
	}
	return writeJSON(cmd.OutOrStdout(), sectionsOut, sections)
}

// sectionsOf extracts and segments the text of the file at path
func sectionsOf(path string) (types.Sections, error) {
	text, err := extractFile(path)
	if err != nil {
		return nil, err
	}
	return parsing.ExtractSections(ingestion.Normalize(text).Lines), nil
}

// extractFile reads a résumé file and returns its raw extracted text
func extractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := ingestion.ExtractText(filepath.Base(path), data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}
