package db

// DefaultListLimit caps ListAnalyses when no limit is given
const DefaultListLimit = 50

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	Department string
	MinScore   int
	Limit      int
}
