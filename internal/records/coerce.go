package records

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	exactTimePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	isoTimePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T(\d{2}:\d{2}:\d{2})`)
	digitRunPattern  = regexp.MustCompile(`\d+`)
)

// requiredFields is checked in order; the first absent key is the one
// reported.
var requiredFields = []string{"Severity", "Component", "Timestamp", "Suspected_Cause", "Impact_Count"}

// CoerceRecord parses a sanitized model reply and forces it into a conformant
// IncidentRecord. Only two failures are possible: the text is not JSON at
// all, or a required key is missing. Every field value, however mangled, is
// repaired to something schema-valid; availability of a best-effort record
// beats strict fidelity here.
func CoerceRecord(payload string) (*IncidentRecord, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, &ValidationError{Kind: ErrMalformedPayload, Cause: err}
	}

	for _, f := range requiredFields {
		if _, ok := data[f]; !ok {
			return nil, &ValidationError{Kind: ErrMissingField, Field: f}
		}
	}

	rec := &IncidentRecord{
		Severity:       coerceSeverity(data["Severity"]),
		Component:      coerceText(data["Component"], UnknownComponent),
		Timestamp:      coerceTimestamp(data["Timestamp"]),
		SuspectedCause: coerceText(data["Suspected_Cause"], UnknownCause),
		ImpactCount:    coerceImpactCount(data["Impact_Count"]),
	}
	return rec, nil
}

// coerceSeverity maps any value onto the three canonical labels. Substring
// matching runs in fixed precedence; Low is the unconditional catch-all.
func coerceSeverity(v any) Severity {
	s := stringify(v)
	switch Severity(s) {
	case SeverityHigh, SeverityMed, SeverityLow:
		return Severity(s)
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "high") || strings.Contains(lower, "critical"):
		return SeverityHigh
	case strings.Contains(lower, "med"):
		return SeverityMed
	default:
		return SeverityLow
	}
}

// coerceImpactCount accepts a JSON number or digs the first digit run out of
// free text. Anything else counts as zero.
func coerceImpactCount(v any) int {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return int(n)
	case string:
		if run := digitRunPattern.FindString(n); run != "" {
			count, err := strconv.Atoi(run)
			if err != nil {
				return 0
			}
			return count
		}
		return 0
	default:
		return 0
	}
}

// coerceTimestamp keeps an exact HH:MM:SS, trims an ISO-8601 stamp down to
// its time-of-day, and otherwise falls back to the free-text extractor.
func coerceTimestamp(v any) string {
	s := stringify(v)
	if exactTimePattern.MatchString(s) {
		return s
	}
	if m := isoTimePattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ExtractTimestamp(s)
}

func coerceText(v any, placeholder string) string {
	s := stringify(v)
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// stringify renders a decoded JSON value as text. Strings pass through;
// non-string values are formatted so the repair rules still have something
// to match against.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
