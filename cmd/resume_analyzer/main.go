// Package main provides the entry point for the résumé analyzer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Résumé Analyzer CLI and HTTP API Server",
	Long:  "Resume Analyzer extracts contact details, education, experience, skills and publications from résumés (PDF, DOCX, HTML or text) and scores each candidate, from the command line or via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
