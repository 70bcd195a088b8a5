// Package ranking infers a candidate's department and scores a profile against a target department.
package ranking

import (
	"strings"
)

// UnknownDepartment is reported when no department keyword matches
const UnknownDepartment = "Unknown"

// departmentKeywords is checked in order; the first keyword found wins
var departmentKeywords = []struct {
	keyword    string
	department string
}{
	// Commerce / Management
	{"department of commerce", "Commerce"},
	{"m.com", "Commerce"},
	{"b.com", "Commerce"},
	{"commerce", "Commerce"},
	{"accounting and finance", "Commerce"},
	{"accounting", "Commerce"},
	{"auditing", "Commerce"},
	{"financial management", "Commerce"},
	{"business studies", "Commerce"},
	{"business administration", "Management"},
	{"school of management", "Management"},
	{"department of management", "Management"},

	// English / Humanities
	{"english language and literature", "English"},
	{"department of english language and literature", "English"},
	{"english literature", "English"},
	{"department of english", "English"},
	{"m.a (english)", "English"},
	{"ma (english)", "English"},
	{"b.a (english)", "English"},
	{"b.a (english literature)", "English"},
	{"ba (english)", "English"},

	// Computer Science / IT
	{"computer science and engineering", "Computer Science"},
	{"computer science & engineering", "Computer Science"},
	{"computer science", "Computer Science"},
	{"information technology", "Computer Science"},
	{"information systems", "Computer Science"},
	{"cse", "Computer Science"},
	{"it engineering", "Computer Science"},
	{"data science", "Computer Science"},
	{"data structures", "Computer Science"},
	{"algorithms", "Computer Science"},
	{"machine learning", "Computer Science"},
	{"artificial intelligence", "Computer Science"},
	{"operating systems", "Computer Science"},
	{"database systems", "Computer Science"},
	{"databases", "Computer Science"},
	{"software engineering", "Computer Science"},

	// Electronics / Electrical
	{"electronics and communication", "Electronics"},
	{"electronics & communication", "Electronics"},
	{"ece", "Electronics"},
	{"electronics engineering", "Electronics"},
	{"vlsi", "Electronics"},
	{"signal processing", "Electronics"},
	{"embedded systems", "Electronics"},
	{"electrical engineering", "Electrical"},
	{"eee", "Electrical"},

	// Mechanical
	{"mechanical engineering", "Mechanical"},
	{"thermal engineering", "Mechanical"},
	{"thermodynamics", "Mechanical"},
	{"fluid mechanics", "Mechanical"},

	// Civil
	{"civil engineering", "Civil"},
	{"structural engineering", "Civil"},

	// Sciences
	{"applied physics", "Physics"},
	{"physics", "Physics"},
	{"applied mathematics", "Mathematics"},
	{"mathematics", "Mathematics"},
	{"statistics", "Mathematics"},
	{"chemistry", "Chemistry"},
	{"biotechnology", "Biotechnology"},
}

// InferDepartment maps the fields of study to a department, falling back to
// the full text when no field names one.
func InferDepartment(fieldsOfStudy []string, text string) string {
	for _, field := range fieldsOfStudy {
		if dept, ok := matchDepartment(field); ok {
			return dept
		}
	}
	if dept, ok := matchDepartment(text); ok {
		return dept
	}
	return UnknownDepartment
}

func matchDepartment(s string) (string, bool) {
	low := strings.ToLower(s)
	for _, entry := range departmentKeywords {
		if strings.Contains(low, entry.keyword) {
			return entry.department, true
		}
	}
	return "", false
}
