package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against an embedded schema",
	Long:  "Validates an analysis result or an analysis envelope JSON file against the schemas compiled into the binary. Exits with code 1 when validation fails.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "envelope", "Schema to validate against: envelope or analysis_result")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaName, err := resolveSchemaName(validateSchema)
	if err != nil {
		return err
	}

	if err := schemas.ValidateJSONFile(schemaName, validateJSON); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %s does not match %s\n", validateJSON, schemaName)
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("failed to validate %s: %w", validateJSON, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s matches %s\n", validateJSON, schemaName)
	return nil
}

// resolveSchemaName maps a short schema name or a schema file name to an embedded schema
func resolveSchemaName(name string) (string, error) {
	switch strings.TrimSuffix(strings.ToLower(name), ".schema.json") {
	case "envelope":
		return schemafiles.Envelope, nil
	case "analysis_result", "analysis", "result":
		return schemafiles.AnalysisResult, nil
	}
	return "", fmt.Errorf("unknown schema %q: use envelope or analysis_result", name)
}
