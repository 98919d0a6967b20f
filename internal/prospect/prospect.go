// Package prospect supplies the raw candidate pool for a campaign. It stands
// in for an external data provider: a static directory of sample companies
// narrowed by a coarse keyword pre-filter before the scoring engine sees it.
package prospect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-crm/internal/model"
)

// Contact is a person reachable at a company.
type Contact struct {
	Name        string
	Title       string
	Email       string
	LinkedinURL string
	Avatar      string
}

// Company is a directory entry with its known contacts.
type Company struct {
	Name     string
	Industry string
	Size     string
	Location string
	Contacts []Contact
}

// Generator produces candidate contacts for an ICP from a fixed directory.
type Generator struct {
	directory []Company
}

// NewGenerator returns a Generator backed by the built-in sample directory.
func NewGenerator() *Generator {
	return &Generator{directory: sampleDirectory}
}

// Generate returns one candidate per contact at every directory company that
// plausibly matches the ICP. The pre-filter here is deliberately coarse; the
// scoring engine does the real ranking afterwards.
func (g *Generator) Generate(icp string) []model.Candidate {
	lower := strings.ToLower(icp)

	var out []model.Candidate
	for _, company := range g.directory {
		if !matchesLocation(company, lower) || !matchesIndustry(company, lower) {
			continue
		}
		for _, contact := range company.Contacts {
			out = append(out, model.Candidate{
				Name:        contact.Name,
				Title:       contact.Title,
				Company:     company.Name,
				Email:       contact.Email,
				LinkedinURL: contact.LinkedinURL,
				Avatar:      contact.Avatar,
				Industry:    company.Industry,
				Location:    company.Location,
				CompanySize: company.Size,
			})
		}
	}

	zap.L().Debug("prospect: generated candidates",
		zap.Int("directory_size", len(g.directory)),
		zap.Int("candidates", len(out)),
	)

	return out
}

// knownLocations are the city keywords the pre-filter recognizes.
var knownLocations = []string{
	"austin", "chicago", "san francisco", "new york", "dallas", "houston",
	"los angeles", "seattle", "denver", "atlanta", "miami", "boston",
}

func matchesLocation(company Company, icp string) bool {
	for _, loc := range knownLocations {
		if strings.Contains(icp, loc) {
			return strings.Contains(strings.ToLower(company.Location), loc)
		}
	}
	// No recognized city in the ICP: no location constraint.
	return true
}

// industryGroups maps ICP trigger words to the industry fragments a company
// must carry to pass the pre-filter.
var industryGroups = []struct {
	triggers   []string
	industries []string
}{
	{[]string{"marketing", "agency", "advertising"}, []string{"marketing", "creative"}},
	{[]string{"dental", "dentist", "orthodont"}, []string{"dental"}},
	{[]string{"consulting", "consultant"}, []string{"consulting"}},
	{[]string{"tech", "software", "startup"}, []string{"software", "tech"}},
	{[]string{"law", "legal", "attorney"}, []string{"legal"}},
}

// matchesIndustry lets the first triggered group decide. An ICP with no
// industry vocabulary imposes no constraint.
func matchesIndustry(company Company, icp string) bool {
	industry := strings.ToLower(company.Industry)
	for _, group := range industryGroups {
		if containsAny(icp, group.triggers) {
			return containsAny(industry, group.industries)
		}
	}
	return true
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
