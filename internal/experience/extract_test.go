package experience

import (
	"testing"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestExtractHistory_OngoingIndustryRole(t *testing.T) {
	history := ExtractHistory("Software Engineer, XYZ Technologies, Jan 2020 - Present", testNow)

	require.Len(t, history, 1)
	rec := history[0]
	assert.Equal(t, types.CategoryIndustry, rec.Category)
	assert.True(t, rec.Ongoing)
	assert.Equal(t, "Present", *rec.EndDate)
	assert.Equal(t, "Jan 2020", *rec.StartDate)
	assert.Nil(t, rec.EndYear)
	assert.Nil(t, rec.EndMonth)
	require.NotNil(t, rec.DurationMonths)
	assert.Equal(t, 65, *rec.DurationMonths)
	assert.Equal(t, "XYZ Technologies", *rec.Organization)
	assert.Equal(t, "Engineer", *rec.Title)
	assert.Nil(t, rec.Location)
}

func TestExtractHistory_MultipleEntriesNewestFirst(t *testing.T) {
	text := "WORK EXPERIENCE\n" +
		"Assistant Professor, ABC College, Pune\n" +
		"June 2015 - May 2018\n" +
		"Taught undergraduate physics courses\n" +
		"\n" +
		"Manager, Big Retail Group, Mumbai\n" +
		"01/06/2018 - 31/12/2020\n" +
		"Led regional sales"

	history := ExtractHistory(text, testNow)

	require.Len(t, history, 2)

	retail := history[0]
	assert.Equal(t, "Manager", *retail.Title)
	assert.Equal(t, "Big Retail Group", *retail.Organization)
	assert.Equal(t, "Mumbai", *retail.Location)
	assert.Equal(t, types.CategoryIndustry, retail.Category)
	assert.Equal(t, "Jun 2018", *retail.StartDate)
	assert.Equal(t, "Dec 2020", *retail.EndDate)
	assert.Equal(t, 30, *retail.DurationMonths)
	assert.Equal(t, "Led regional sales", *retail.Description)
	assert.Equal(t, "01/06/2018 - 31/12/2020 Led regional sales", retail.RawText)

	college := history[1]
	assert.Equal(t, "Assistant Professor", *college.Title)
	assert.Equal(t, "ABC College", *college.Organization)
	assert.Equal(t, "Pune", *college.Location)
	assert.Equal(t, types.CategoryTeaching, college.Category)
	assert.Equal(t, intPtr(2015), college.StartYear)
	assert.Equal(t, intPtr(6), college.StartMonth)
	assert.Equal(t, intPtr(2018), college.EndYear)
	assert.Equal(t, intPtr(5), college.EndMonth)
	assert.False(t, college.Ongoing)
	assert.Equal(t, 35, *college.DurationMonths)
	assert.Equal(t, "Taught undergraduate physics courses", *college.Description)
}

func TestExtractHistory_LookbackSkipsBullets(t *testing.T) {
	text := "Professor, XYZ Institute, Nagpur\n" +
		"- Coordinated admissions\n" +
		"2016 - 2019"

	history := ExtractHistory(text, testNow)

	require.Len(t, history, 1)
	rec := history[0]
	assert.Equal(t, "Professor", *rec.Title)
	assert.Equal(t, "XYZ Institute", *rec.Organization)
	assert.Equal(t, "Nagpur", *rec.Location)
	assert.Equal(t, "Jan 2016", *rec.StartDate)
	assert.Equal(t, "Dec 2019", *rec.EndDate)
	assert.Equal(t, 47, *rec.DurationMonths)
	assert.Nil(t, rec.Description)
}

func TestExtractHistory_KeywordFromDescription(t *testing.T) {
	text := "EXPERIENCE\n2018 - 2020\nWorked as lecturer in physics"

	history := ExtractHistory(text, testNow)

	require.Len(t, history, 1)
	rec := history[0]
	assert.Nil(t, rec.Title)
	assert.Nil(t, rec.Organization)
	assert.Equal(t, types.CategoryTeaching, rec.Category)
	assert.Equal(t, "Worked as lecturer in physics", *rec.Description)
}

func TestExtractHistory_Skips(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no job keyword", "Vacation, 2019 - 2020"},
		{"backwards range", "Engineer, Acme Systems, Mar 2020 - Jan 2020"},
		{"same month", "Officer, Mar 2020 - Mar 2020"},
		{"no dates", "Assistant Professor at ABC College"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := ExtractHistory(tt.text, testNow)
			assert.NotNil(t, history)
			assert.Empty(t, history)
		})
	}
}

func TestExtractHistory_PositiveDurations(t *testing.T) {
	text := "Lecturer, ABC College, 2010 - 2012\n" +
		"Engineer, Acme Systems, Mar 2020 - Jan 2020\n" +
		"Analyst, Sun Bank, 03/2014 - 05/2013\n" +
		"Consultant, Delta Solutions, Feb 2021 - Present"

	for _, rec := range ExtractHistory(text, testNow) {
		require.NotNil(t, rec.DurationMonths)
		assert.Positive(t, *rec.DurationMonths)
	}
}

func TestParseLineDate(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		fromYear  int
		fromMonth int
		toYear    int
		toMonth   int
		ongoing   bool
	}{
		{"month names with day", "Since 5th March 2019 to Present", true, 2019, 3, 0, 0, true},
		{"abbreviated months en dash", "Sept 2012 – Aug 2014", true, 2012, 9, 2014, 8, false},
		{"numeric two digit year", "12.07.15 - Till today", true, 2015, 7, 0, 0, true},
		{"numeric full", "01-04-2001 to 31-03-2004", true, 2001, 4, 2004, 3, false},
		{"numeric invalid month", "01/13/2019 - 01/02/2020", false, 0, 0, 0, 0, false},
		{"bare years", "1998-2001", true, 1998, 1, 2001, 12, false},
		{"open year", "2021 - current", true, 2021, 1, 0, 0, true},
		{"no date", "Worked at ABC", false, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := parseLineDate(tt.line, testNow)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.fromYear, span.fromYear)
			assert.Equal(t, tt.fromMonth, span.fromMonth)
			assert.Equal(t, tt.toYear, span.toYear)
			assert.Equal(t, tt.toMonth, span.toMonth)
			assert.Equal(t, tt.ongoing, span.ongoing)
		})
	}
}

func TestParseRoleOrgLocation(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantRole     *string
		wantOrg      *string
		wantLocation *string
	}{
		{
			name:         "organization name anchors split",
			header:       "Assistant Professor, ABC College, Pune",
			wantRole:     strPtr("Assistant Professor"),
			wantOrg:      strPtr("ABC College"),
			wantLocation: strPtr("Pune"),
		},
		{
			name:         "of clause joins organization",
			header:       "Assistant Professor, ABC University of Technology, Pune",
			wantRole:     strPtr("Assistant Professor"),
			wantOrg:      strPtr("ABC University of Technology"),
			wantLocation: strPtr("Pune"),
		},
		{
			name:         "university administration moves to role",
			header:       "Accountant, Finance Wing University Administration XYZ College",
			wantRole:     strPtr("Accountant Finance Wing University Administration"),
			wantOrg:      strPtr("XYZ College"),
			wantLocation: nil,
		},
		{
			name:         "dash and commas",
			header:       "Lecturer - Department of Physics, Pune",
			wantRole:     strPtr("Lecturer"),
			wantOrg:      strPtr("Department of Physics"),
			wantLocation: strPtr("Pune"),
		},
		{
			name:         "university administration with non-ASCII organization",
			header:       "Clerk - İstanbul university administration Registry, Pune",
			wantRole:     strPtr("Clerk İstanbul university administration"),
			wantOrg:      strPtr("Registry"),
			wantLocation: strPtr("Pune"),
		},
		{
			name:   "empty",
			header: " ,- ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, org, location := parseRoleOrgLocation(tt.header)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantOrg, org)
			assert.Equal(t, tt.wantLocation, location)
		})
	}
}

func TestLeadInEnd(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"job keyword first", "Joined as Lecturer, ABC College", "Lecturer, ABC College"},
		{"organization first", "worked at ABC College as Lecturer", "ABC College as Lecturer"},
		{"non-ASCII lead-in", "Joined İzmir campus as Lecturer, ABC College", "Lecturer, ABC College"},
		{"uppercase keyword", "Joined Ürün team as ENGINEER", "ENGINEER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cut := leadInEnd(tt.header)
			require.GreaterOrEqual(t, cut, 0)
			assert.Equal(t, tt.want, tt.header[cut:])
		})
	}

	assert.Equal(t, -1, leadInEnd("Volunteer, city library"))
}
