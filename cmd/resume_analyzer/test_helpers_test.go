package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResume = "John Doe\n" +
	"john.doe@example.com\n" +
	"+1-555-123-4567\n" +
	"B.Tech Computer Science, ABC University, 2015-2019"

const sectionedResume = "Jane Smith\n" +
	"jane@example.com\n" +
	"Education\n" +
	"Ph.D. in Physics, 2015-2020\n" +
	"SKILLS & INTERESTS\n" +
	"Python, MATLAB"

// getBinaryPath returns the path to the resume_analyzer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_analyzer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_analyzer ./cmd/resume_analyzer'", binaryPath)
	}

	return binaryPath
}

// writeTempFile writes content to name inside a fresh temp directory
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
