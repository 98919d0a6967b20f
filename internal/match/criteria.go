// Package match implements the lead scoring and filtering engine: it parses
// free-text ideal customer profiles into structured criteria, applies hard
// filters to a candidate pool, and produces ranked 0-100 match scores with
// human-readable justifications. Every function is pure and total; malformed
// input yields absent fields, never an error.
package match

import (
	"regexp"
	"strings"
)

// EmployeeRange is an inclusive target headcount band.
type EmployeeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria is the structured form of a free-text ICP description. All fields
// are optional; zero values mean the field was absent from the input.
type Criteria struct {
	Industry      string         `json:"industry,omitempty"`
	Location      string         `json:"location,omitempty"`
	EmployeeRange *EmployeeRange `json:"employee_range,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
}

// industryKeywords is a priority list: the first entry found as a substring
// of the lower-cased ICP wins, regardless of where it occurs in the text.
var industryKeywords = []string{
	"marketing", "agency", "agencies", "consulting", "software", "tech", "technology",
	"healthcare", "finance", "real estate", "construction", "education", "retail",
	"manufacturing", "logistics", "restaurant", "hospitality", "legal", "accounting",
}

var locationPattern = regexp.MustCompile(`(?:in|near|around)\s+([a-zA-Z\s]+?)(?:\s|$|,|with|having)`)

var employeeRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)-(\d+)\s*employees?`),
	regexp.MustCompile(`(\d+)\s*to\s*(\d+)\s*employees?`),
	regexp.MustCompile(`between\s*(\d+)\s*and\s*(\d+)\s*employees?`),
}

// keywordStoplist holds filler tokens excluded from the keyword bag.
var keywordStoplist = map[string]bool{
	"with":      true,
	"having":    true,
	"employees": true,
	"employee":  true,
	"companies": true,
	"company":   true,
}

// ParseICP converts a free-text ICP description into structured criteria.
// Unparseable input yields absent fields; the call never fails.
func ParseICP(icp string) Criteria {
	var c Criteria
	lower := strings.ToLower(icp)

	for _, kw := range industryKeywords {
		if strings.Contains(lower, kw) {
			c.Industry = kw
			break
		}
	}

	if m := locationPattern.FindStringSubmatch(lower); m != nil {
		c.Location = strings.TrimSpace(m[1])
	}

	for _, p := range employeeRangePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			c.EmployeeRange = &EmployeeRange{
				Min: atoi(m[1]),
				Max: atoi(m[2]),
			}
			break
		}
	}

	for _, word := range strings.Fields(lower) {
		if len(word) > 3 && !keywordStoplist[word] {
			c.Keywords = append(c.Keywords, word)
		}
	}

	return c
}

// atoi converts a digits-only string captured by one of the patterns above.
// Overflow is not a concern at realistic headcounts.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
