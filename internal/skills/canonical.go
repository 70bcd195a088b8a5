package skills

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// skillNormalizations maps lowercase catalog keywords to their display names
var skillNormalizations = map[string]string{
	"golang":       "Go",
	"go lang":      "Go",
	"javascript":   "JavaScript",
	"typescript":   "TypeScript",
	"node.js":      "Node.js",
	"nodejs":       "Node.js",
	"vue":          "Vue",
	"vue.js":       "Vue",
	"fastapi":      "FastAPI",
	"html":         "HTML",
	"css":          "CSS",
	"php":          "PHP",
	"c#":           "C#",
	"c++":          "C++",
	"mysql":        "MySQL",
	"postgresql":   "PostgreSQL",
	"sqlite":       "SQLite",
	"mongodb":      "MongoDB",
	"sql server":   "SQL Server",
	"aws":          "AWS",
	"gcp":          "GCP",
	"github":       "GitHub",
	"gitlab":       "GitLab",
	"numpy":        "NumPy",
	"pytorch":      "PyTorch",
	"tensorflow":   "TensorFlow",
	"scikit-learn": "scikit-learn",
	"ci/cd":        "CI/CD",
	"k8s":          "Kubernetes",
}

var titleCaser = cases.Title(language.English)

// CanonicalName returns the display form of a catalog keyword. Known names map
// to their usual spelling, mixed-case input is kept as written and plain
// lowercase keywords are title-cased.
func CanonicalName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Already has uppercase letters, trust the catalog
	if normalized != lower {
		return normalized
	}

	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}
	return titleCaser.String(normalized)
}
