package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ExtractSkills matches every catalog keyword as a whole word against the
// lowercased text. Categories without matches are omitted; the all_skills
// entry is always present. A nil catalog means the default catalog.
func ExtractSkills(text string, catalog *Catalog) types.SkillSet {
	if catalog == nil {
		catalog = defaultCatalog
	}
	lower := strings.ToLower(text)

	found := make(types.SkillSet)
	all := make(map[string]bool)

	for _, cat := range catalog.categories {
		matched := make(map[string]bool)
		for _, s := range cat.skills {
			if s.pattern.MatchString(lower) {
				matched[s.display] = true
			}
		}
		if len(matched) == 0 {
			continue
		}
		found[cat.name] = sortedKeys(matched)
		for name := range matched {
			all[name] = true
		}
	}

	found[types.AllSkillsKey] = sortedKeys(all)
	return found
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
