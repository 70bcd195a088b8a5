package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token",
	Long:  "Signs a bearer token for the REST API with JWT_SECRET. JWT_EXPIRATION_HOURS and JWT_ISSUER configure its lifetime and issuer.",
	RunE:  runToken,
}

var tokenSubject string

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Client name recorded in the token (required)")

	if err := tokenCmd.MarkFlagRequired("subject"); err != nil {
		panic(fmt.Sprintf("failed to mark subject flag as required: %v", err))
	}

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	token, err := issueToken(tokenSubject)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

func issueToken(subject string) (string, error) {
	jwtConfig, err := config.LoadJWTConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load JWT config: %w", err)
	}
	if jwtConfig == nil {
		return "", fmt.Errorf("JWT_SECRET environment variable is required")
	}
	return server.NewJWTService(jwtConfig).GenerateToken(subject)
}
