// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DegreeType is a coarse academic level
type DegreeType string

const (
	DegreeHighSchool DegreeType = "HighSchool"
	DegreeDiploma    DegreeType = "Diploma"
	DegreeBachelor   DegreeType = "Bachelor"
	DegreeMaster     DegreeType = "Master"
	DegreePhD        DegreeType = "PhD"
	DegreeUnknown    DegreeType = "Unknown"
)

// DegreeStatus describes how far along a degree is
type DegreeStatus string

const (
	StatusCompleted       DegreeStatus = "Completed"
	StatusPursuing        DegreeStatus = "Pursuing"
	StatusThesisSubmitted DegreeStatus = "Thesis Submitted"
	StatusAwarded         DegreeStatus = "Awarded"
)

// ExperienceCategory classifies a work history entry
type ExperienceCategory string

const (
	CategoryTeaching ExperienceCategory = "Teaching"
	CategoryIndustry ExperienceCategory = "Industry"
	CategoryOther    ExperienceCategory = "Other"
)

// NormalizedText is the cleaned form of an extracted résumé
type NormalizedText struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}

// Sections maps a section label (EDUCATION, EXPERIENCE, GENERAL, ...) to its body
type Sections map[string]string

// SkillSet maps a catalog category to the sorted skills found for it.
// The synthetic AllSkillsKey entry holds the sorted union.
type SkillSet map[string][]string

// AllSkillsKey is the SkillSet key holding every matched skill
const AllSkillsKey = "all_skills"

// DegreeRecord is one degree entry recovered from the education section
type DegreeRecord struct {
	DegreeType         DegreeType   `json:"degree_type"`
	RawText            string       `json:"raw_text"`
	FieldOfStudy       *string      `json:"field_of_study"`
	Institution        *string      `json:"institution"`
	StartYear          *int         `json:"start_year"`
	EndYear            *int         `json:"end_year"`
	Status             DegreeStatus `json:"status"`
	PhDThesisSubmitted *bool        `json:"phd_thesis_submitted"`
	PhDAwarded         *bool        `json:"phd_awarded"`
}

// ExperienceRecord is one dated work history entry
type ExperienceRecord struct {
	Title          *string            `json:"title"`
	Organization   *string            `json:"organization"`
	Location       *string            `json:"location"`
	Category       ExperienceCategory `json:"category"`
	StartYear      *int               `json:"start_year"`
	StartMonth     *int               `json:"start_month"`
	EndYear        *int               `json:"end_year"`
	EndMonth       *int               `json:"end_month"`
	Ongoing        bool               `json:"ongoing"`
	DurationMonths *int               `json:"duration_months"`
	StartDate      *string            `json:"start_date_str"`
	EndDate        *string            `json:"end_date_str"`
	Description    *string            `json:"description"`
	RawText        string             `json:"raw_text"`
}

// ExperienceYears holds total years per category. Nil means no positive duration was found.
type ExperienceYears struct {
	Teaching *float64 `json:"teaching_experience_years"`
	Industry *float64 `json:"industry_experience_years"`
	Other    *float64 `json:"other_experience_years"`
	Total    *float64 `json:"total_experience_years"`
}

// ExperienceRow is the tabular view of an ExperienceRecord
type ExperienceRow struct {
	Organization   string   `json:"organization"`
	JoiningDate    string   `json:"joining_date"`
	RelievingDate  string   `json:"relieving_date"`
	ExperienceType string   `json:"experience_type"`
	DurationYears  *float64 `json:"duration_years"`
}

// ContactInfo holds identity and contact fields found near the top of a résumé
type ContactInfo struct {
	Name                *string  `json:"name"`
	Email               *string  `json:"email"`
	AllEmails           []string `json:"all_emails"`
	Phone               *string  `json:"phone"`
	AllPhones           []string `json:"all_phones"`
	Location            *string  `json:"current_location"`
	IndianStates        []string `json:"indian_states_found"`
	CurrentOrganization *string  `json:"current_organization"`
	CurrentRole         *string  `json:"current_role"`
	LinkedIn            *string  `json:"linkedin"`
	GitHub              *string  `json:"github"`
}

// PublicationCounts tallies numbered entries in the publications section
type PublicationCounts struct {
	Total       int `json:"total_publications"`
	Articles    int `json:"articles"`
	Books       int `json:"books"`
	Conferences int `json:"conferences"`
}

// EducationSummary aggregates the degree records
type EducationSummary struct {
	HighestDegree   DegreeType     `json:"highest_degree"`
	HasPhD          bool           `json:"has_phd"`
	PhDStartYear    *int           `json:"phd_start_year"`
	PhDEndYear      *int           `json:"phd_end_year"`
	DegreesDetected []DegreeType   `json:"degrees_detected"`
	Degrees         []DegreeRecord `json:"degrees_info"`
	FieldsOfStudy   []string       `json:"fields_of_study"`
	Department      string         `json:"department"`
}

// ExperienceSummary aggregates the experience history
type ExperienceSummary struct {
	Years   ExperienceYears    `json:"years"`
	History []ExperienceRecord `json:"history"`
	Rows    []ExperienceRow    `json:"rows"`
}

// AnalysisResult is the full structured analysis of one résumé
type AnalysisResult struct {
	ContactInfo
	Skills       SkillSet          `json:"skills"`
	Education    EducationSummary  `json:"education"`
	Experience   ExperienceSummary `json:"experience"`
	Publications PublicationCounts `json:"publications"`
	Score        int               `json:"score"`
}
