package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata contains metadata about an ingested résumé
type Metadata struct {
	FileName  string `json:"file_name,omitempty"`
	Format    Format `json:"format,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	LineCount int    `json:"line_count"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, fileName string, format Format) *Metadata {
	return &Metadata{
		FileName:  fileName,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ContentHash(content),
		LineCount: len(SplitLines(content)),
	}
}

// ContentHash computes the SHA256 hash of content and returns it as hex
func ContentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
