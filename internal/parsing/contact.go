package parsing

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	nameScanLines     = 30
	contactScanLines  = 25
	orgFallbackWindow = 25
	minPhoneDigits    = 10
	maxPhoneDigits    = 13
)

var (
	emailRE       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneBlockRE  = regexp.MustCompile(`\+?\d[\d\-\s/]{8,}\d`)
	phoneSplitRE  = regexp.MustCompile(`[/,|]`)
	nonDigitRE    = regexp.MustCompile(`\D`)
	digitRE       = regexp.MustCompile(`\d`)
	linkedInRE    = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/[A-Za-z0-9_/.-]+`)
	gitHubRE      = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[A-Za-z0-9_/.-]+`)
	countryHintRE = regexp.MustCompile(`\b(india|usa|united states|canada|uk|united kingdom|australia|germany|` +
		`france|italy|spain|singapore|uae|dubai|qatar|saudi arabia|china|japan)\b`)
	currentRoleRE = regexp.MustCompile(`(?i)^(?P<role_org>.+?)\s+` + MonthPattern + `\s+\d{4}\s*[-–]\s*` +
		`(?:Present|Current|Currently Working|Till Date|Now)\b`)
)

var nameBoilerplate = []string{"resume", "curriculum vitae", "curriculum vitæ", "bio-data", "biodata", "profile", "cv"}

var namePrefixes = []string{"mr. ", "mr ", "ms. ", "ms ", "mrs. ", "mrs ", "dr. ", "dr ", "prof. ", "prof "}

var indianStates = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal pradesh", "jharkhand", "karnataka",
	"kerala", "madhya pradesh", "maharashtra", "manipur", "meghalaya",
	"mizoram", "nagaland", "odisha", "punjab", "rajasthan", "sikkim",
	"tamil nadu", "telangana", "tripura", "uttar pradesh", "uttarakhand",
	"west bengal",
	"andaman and nicobar islands", "chandigarh", "dadra and nagar haveli",
	"daman and diu", "delhi", "lakshadweep", "puducherry", "ladakh", "jammu and kashmir",
}

var workSectionTitles = []string{"work experience", "professional experience", "experience", "employment history"}

var employerKeywords = []string{
	"university", "college", "institute", "school", "company", "pvt", "ltd", "limited",
	"inc", "solutions", "technologies", "labs", "systems", "corp", "corporation", "llc",
}

var currentMarkers = []string{"currently working", "present", "till today"}

// ExtractContact derives identity and contact fields from normalized text.
// The current organization and role prefer the ongoing (else most recent)
// entry in history, falling back to a text scan for the organization.
func ExtractContact(text string, history []types.ExperienceRecord) types.ContactInfo {
	info := types.ContactInfo{
		Name:         ExtractName(text),
		Email:        ExtractEmail(text),
		AllEmails:    ExtractAllEmails(text),
		Phone:        ExtractPhone(text),
		AllPhones:    ExtractAllPhones(text),
		Location:     ExtractLocation(text),
		IndianStates: ExtractIndianStates(text),
		LinkedIn:     firstMatch(linkedInRE, text),
		GitHub:       firstMatch(gitHubRE, text),
	}

	info.CurrentOrganization = ExtractCurrentOrganization(text)
	if len(history) > 0 {
		current := history[0]
		for _, rec := range history {
			if rec.Ongoing {
				current = rec
				break
			}
		}
		if current.Organization != nil {
			info.CurrentOrganization = current.Organization
		}
		info.CurrentRole = current.Title
	}
	return info
}

// ExtractName returns the first plausible person name in the top lines
func ExtractName(text string) *string {
	for _, line := range headLines(text, nameScanLines) {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		low := strings.ToLower(name)
		if ContainsAny(low, nameBoilerplate) {
			continue
		}
		if strings.Contains(name, "@") || digitRE.MatchString(name) {
			continue
		}

		for _, prefix := range namePrefixes {
			if strings.HasPrefix(low, prefix) {
				name = strings.TrimSpace(name[len(prefix):])
				break
			}
		}

		if words := len(strings.Fields(name)); words >= 1 && words <= 4 {
			return &name
		}
	}
	return nil
}

// ExtractEmail returns the first email address
func ExtractEmail(text string) *string {
	return firstMatch(emailRE, text)
}

// ExtractAllEmails returns every email, deduplicated case-insensitively in order of appearance
func ExtractAllEmails(text string) []string {
	seen := make(map[string]bool)
	emails := make([]string, 0)
	for _, email := range emailRE.FindAllString(text, -1) {
		key := strings.ToLower(email)
		if seen[key] {
			continue
		}
		seen[key] = true
		emails = append(emails, email)
	}
	return emails
}

// ExtractPhone returns the first phone number in the top lines, else anywhere in text
func ExtractPhone(text string) *string {
	top := strings.Join(headLines(text, contactScanLines), "\n")
	if phones := phoneCandidates(top); len(phones) > 0 {
		return &phones[0]
	}
	if phones := phoneCandidates(text); len(phones) > 0 {
		return &phones[0]
	}
	return nil
}

// ExtractAllPhones returns every phone number, deduplicated by digit sequence
func ExtractAllPhones(text string) []string {
	seen := make(map[string]bool)
	phones := make([]string, 0)
	for _, phone := range phoneCandidates(text) {
		digits := nonDigitRE.ReplaceAllString(phone, "")
		if seen[digits] {
			continue
		}
		seen[digits] = true
		phones = append(phones, phone)
	}
	return phones
}

// phoneCandidates splits digit spans on separators and keeps parts with 10..13 digits
func phoneCandidates(scope string) []string {
	var phones []string
	for _, block := range phoneBlockRE.FindAllString(scope, -1) {
		for _, part := range phoneSplitRE.Split(block, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			digits := nonDigitRE.ReplaceAllString(part, "")
			if len(digits) >= minPhoneDigits && len(digits) <= maxPhoneDigits {
				phones = append(phones, part)
			}
		}
	}
	return phones
}

// ExtractLocation looks in the top lines for an explicit location or address
// line, then a line naming a country, then a comma-separated line without
// digits or an email.
func ExtractLocation(text string) *string {
	lines := headLines(text, contactScanLines)

	for _, line := range lines {
		low := strings.ToLower(line)
		if !strings.Contains(low, "location") && !strings.Contains(low, "address") {
			continue
		}
		part := line
		if idx := strings.Index(part, ":"); idx >= 0 {
			part = part[idx+1:]
		}
		part = strings.TrimSpace(afterLastPipe(strings.TrimSpace(part)))
		if part != "" {
			return &part
		}
	}

	for _, line := range lines {
		if countryHintRE.MatchString(strings.ToLower(line)) {
			cand := strings.TrimSpace(afterLastPipe(line))
			if cand != "" {
				return &cand
			}
		}
	}

	for _, line := range lines {
		raw := strings.TrimSpace(line)
		if strings.Contains(raw, ",") && !strings.Contains(raw, "@") && !digitRE.MatchString(raw) {
			return &raw
		}
	}
	return nil
}

// ExtractIndianStates returns title-cased Indian state and territory names found in text
func ExtractIndianStates(text string) []string {
	low := strings.ToLower(text)
	title := cases.Title(language.English)
	seen := make(map[string]bool)
	states := make([]string, 0)
	for _, state := range indianStates {
		if !strings.Contains(low, state) {
			continue
		}
		name := title.String(state)
		if seen[name] {
			continue
		}
		seen[name] = true
		states = append(states, name)
	}
	return states
}

// ExtractCurrentOrganization scans from the work experience heading for a
// "<role, org> Mon YYYY - Present" line, then for an employer line near a
// "present" marker, then for the first employer line in the section.
func ExtractCurrentOrganization(text string) *string {
	lines := strings.Split(text, "\n")

	start := 0
	for i, line := range lines {
		if ContainsAny(strings.ToLower(line), workSectionTitles) {
			start = i
			break
		}
	}

	for _, line := range lines[start:] {
		m := currentRoleRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		roleOrg := strings.Trim(strings.TrimSpace(m[1]), " -•")
		var parts []string
		for _, p := range strings.Split(roleOrg, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 1 {
			return &parts[len(parts)-1]
		}
		if ContainsAny(strings.ToLower(roleOrg), employerKeywords) {
			return &roleOrg
		}
	}

	for i := start; i < len(lines); i++ {
		if !ContainsAny(strings.ToLower(lines[i]), currentMarkers) {
			continue
		}
		for j := max(start, i-3); j <= i+1 && j < len(lines); j++ {
			cand := strings.TrimSpace(lines[j])
			if cand != "" && ContainsAny(strings.ToLower(cand), employerKeywords) {
				return &cand
			}
		}
	}

	for i := start; i < min(start+orgFallbackWindow, len(lines)); i++ {
		if ContainsAny(strings.ToLower(lines[i]), employerKeywords) {
			if cand := strings.TrimSpace(lines[i]); cand != "" {
				return &cand
			}
		}
	}
	return nil
}

func headLines(text string, n int) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func afterLastPipe(s string) string {
	if idx := strings.LastIndex(s, "|"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

func firstMatch(re *regexp.Regexp, text string) *string {
	if m := re.FindString(text); m != "" {
		return &m
	}
	return nil
}
