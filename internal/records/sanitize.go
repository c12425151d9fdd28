package records

import "strings"

// SanitizeResponse strips a single layer of markdown fencing from a raw model
// reply so it can be fed to the JSON parser. Models that fence their output
// wrap it exactly once, so one removal at each end is enough; the function
// deliberately does not loop.
func SanitizeResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
