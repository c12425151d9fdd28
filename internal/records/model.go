package records

import (
	"errors"
	"fmt"
	"time"
)

type Severity string

const (
	SeverityHigh Severity = "High"
	SeverityMed  Severity = "Med"
	SeverityLow  Severity = "Low"
)

// Placeholders substituted when the model leaves a text field empty.
const (
	UnknownComponent = "Unknown Component"
	UnknownCause     = "Unknown"
)

// IncidentRecord is the validated output of the coercion pipeline. The JSON
// keys match the wire format the model is instructed to produce.
type IncidentRecord struct {
	Severity       Severity `json:"Severity"`
	Component      string   `json:"Component"`
	Timestamp      string   `json:"Timestamp"`
	SuspectedCause string   `json:"Suspected_Cause"`
	ImpactCount    int      `json:"Impact_Count"`
}

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing required field")
)

// ValidationError reports which stage of coercion could not be satisfied.
// Only structural failures are fatal; individual field values are always
// repaired, never rejected.
type ValidationError struct {
	Kind  error  // ErrMalformedPayload or ErrMissingField
	Field string // set for ErrMissingField
	Cause error  // underlying parse error, if any
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind == ErrMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case e.Cause != nil:
		return fmt.Sprintf("invalid JSON response from model: %v", e.Cause)
	default:
		return e.Kind.Error()
	}
}

func (e *ValidationError) Is(target error) bool { return e.Kind == target }

func (e *ValidationError) Unwrap() error { return e.Cause }

// ParseOutcome is one archived parse request, kept so dashboards and
// ticketing tools can query past results.
type ParseOutcome struct {
	ID         int64           `json:"id"`
	ReportText string          `json:"report_text"`
	Success    bool            `json:"success"`
	Record     *IncidentRecord `json:"record,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
