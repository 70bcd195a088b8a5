package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

// loadConfigFile loads and validates a config file; an empty path yields an empty config
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// loadCatalog returns the built-in catalog unless a YAML catalog path is given
func loadCatalog(path string) (*skills.Catalog, error) {
	if path == "" {
		return skills.DefaultCatalog(), nil
	}
	catalog, err := skills.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills catalog: %w", err)
	}
	return catalog, nil
}

// readDocuments reads each file into a pipeline document named by its base name
func readDocuments(paths []string) ([]pipeline.Document, error) {
	docs := make([]pipeline.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, pipeline.Document{FileName: filepath.Base(path), Data: data})
	}
	return docs, nil
}

// writeJSON writes v as indented JSON to outPath, or to w when outPath is empty
func writeJSON(w io.Writer, outPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = w.Write(data)
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
