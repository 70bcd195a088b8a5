// Package skills matches résumé text against a category -> keyword skill catalog.
package skills

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

var defaultCatalog = mustParseCatalog(defaultCatalogYAML)

// CatalogError represents an invalid or unreadable skill catalog
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Catalog is an immutable set of skill keywords grouped by category.
// It is safe for concurrent use.
type Catalog struct {
	categories []category
}

type category struct {
	name   string
	skills []skill
}

type skill struct {
	display string
	pattern *regexp.Regexp
}

// DefaultCatalog returns the built-in technical skill catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from a category -> keywords mapping.
// Categories are ordered by name; keywords keep their given order.
func NewCatalog(entries map[string][]string) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, &CatalogError{Message: "catalog has no categories"}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	c := &Catalog{categories: make([]category, 0, len(names))}
	for _, name := range names {
		if strings.TrimSpace(name) == "" || name == types.AllSkillsKey {
			return nil, &CatalogError{Message: fmt.Sprintf("invalid category name %q", name)}
		}
		cat := category{name: name}
		for _, keyword := range entries[name] {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			cat.skills = append(cat.skills, skill{
				display: CanonicalName(keyword),
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`),
			})
		}
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// ParseCatalog decodes a YAML document mapping category names to keyword lists
func ParseCatalog(data []byte) (*Catalog, error) {
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, &CatalogError{Message: "failed to parse YAML", Cause: err}
	}
	return NewCatalog(entries)
}

// LoadCatalog reads a YAML catalog from path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return ParseCatalog(data)
}

// Categories returns the category names in match order
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.name)
	}
	return names
}

// Keywords returns the display names of a category's skills, or nil if the category is unknown
func (c *Catalog) Keywords(categoryName string) []string {
	for _, cat := range c.categories {
		if cat.name != categoryName {
			continue
		}
		keywords := make([]string, 0, len(cat.skills))
		for _, s := range cat.skills {
			keywords = append(keywords, s.display)
		}
		return keywords
	}
	return nil
}

// Size returns the total number of keywords across categories
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.skills)
	}
	return n
}

func mustParseCatalog(data []byte) *Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}
