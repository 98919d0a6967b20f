package match

import (
	"math"
	"regexp"
)

// Company-size descriptions arrive in several free-text shapes. Range
// patterns are tried before the bare count so "15-25 employees" resolves to
// the midpoint rather than the trailing number.
var sizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)-(\d+)\s*employees?`),
	regexp.MustCompile(`(?i)(\d+)\s*to\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*employees?`),
	regexp.MustCompile(`(\d+)\+`),
}

// ExtractEmployeeCount parses a free-text company-size description into a
// single representative headcount. Ranges resolve to their midpoint, rounded
// half away from zero. The second return value reports whether any pattern
// matched.
func ExtractEmployeeCount(sizeText string) (int, bool) {
	for _, p := range sizePatterns {
		m := p.FindStringSubmatch(sizeText)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			return int(math.Round(float64(atoi(m[1])+atoi(m[2])) / 2)), true
		}
		return atoi(m[1]), true
	}
	return 0, false
}
