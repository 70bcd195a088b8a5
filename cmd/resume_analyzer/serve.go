package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for analyzing résumés.

Analyses are stored in PostgreSQL when DATABASE_URL (or --db-url) is set and in memory otherwise.
PORT sets the listen port when neither --port nor the config file does.
Bearer token authentication is enabled when JWT_SECRET is set.`,
	RunE: runServe,
}

var (
	serveConfigPath       string
	servePort             int
	serveDatabaseURL      string
	serveTargetDepartment string
	serveCatalog          string
	serveMaxUploadBytes   int64
	serveValidate         bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVarP(&serveTargetDepartment, "target-department", "d", "", "Default department scored as a match")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a YAML skills catalog (defaults to the built-in catalog)")
	serveCmd.Flags().Int64Var(&serveMaxUploadBytes, "max-upload-bytes", config.DefaultMaxUploadBytes, "Largest accepted upload in bytes")
	serveCmd.Flags().BoolVar(&serveValidate, "validate", false, "Validate each envelope against the JSON schemas before storing it")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("target-department") {
		cfg.TargetDepartment = serveTargetDepartment
	}
	if cmd.Flags().Changed("catalog") {
		cfg.SkillsCatalog = serveCatalog
	}
	if cmd.Flags().Changed("max-upload-bytes") {
		cfg.MaxUploadBytes = serveMaxUploadBytes
	}
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = serveValidate
	}
	defaults := config.Config{DatabaseURL: os.Getenv("DATABASE_URL")}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		defaults.Port = p
	}
	cfg = cfg.MergeWithDefaults(defaults)
	if err := cfg.Validate(); err != nil {
		return err
	}

	srvCfg, err := serverConfig(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// serverConfig builds the server configuration from merged CLI settings and
// the JWT environment
func serverConfig(cfg config.Config) (server.Config, error) {
	catalog, err := loadCatalog(cfg.SkillsCatalog)
	if err != nil {
		return server.Config{}, err
	}

	jwtConfig, err := config.LoadJWTConfig()
	if err != nil {
		return server.Config{}, fmt.Errorf("failed to load JWT config: %w", err)
	}

	return server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Analysis: pipeline.Options{
			Catalog:          catalog,
			TargetDepartment: cfg.TargetDepartment,
		},
		ValidateOutput: cfg.ValidateOutput,
		JWT:            jwtConfig,
	}, nil
}
