package injury

import "strings"

type Severity string

const (
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

var (
	severeKeywords   = []string{"acl", "cruciate", "ligament", "surgery", "broken", "fracture", "rupture", "tendon"}
	moderateKeywords = []string{"muscle", "hamstring", "calf", "ankle", "groin", "thigh", "shoulder", "back", "hip", "foot", "strain"}
)

// Classify maps a free-text reason to a severity by substring match.
// Severe keywords are checked first.
func Classify(reason string) Severity {
	text := strings.ToLower(reason)
	if text == "" {
		return SeverityMinor
	}
	if containsAny(text, severeKeywords) {
		return SeveritySevere
	}
	if containsAny(text, moderateKeywords) {
		return SeverityModerate
	}
	return SeverityMinor
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
