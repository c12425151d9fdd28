package records

import (
	"context"
	"fmt"

	"github.com/Vandita-014/incident-parser/internal/llm"
)

// Parser runs one report through the full pipeline: prompt construction,
// model call, sanitization, coercion. The model client is the only injected
// dependency and the only step that blocks.
type Parser struct {
	client llm.Client
}

func NewParser(client llm.Client) *Parser {
	return &Parser{client: client}
}

// Parse turns free-form incident text into a validated IncidentRecord.
// Errors come from two places only: the model call itself, or a structurally
// unusable reply (not JSON, or missing a required key). Everything else is
// repaired silently.
func (p *Parser) Parse(ctx context.Context, reportText string) (*IncidentRecord, error) {
	system, user := BuildPrompt(reportText)

	raw, err := p.client.CompleteWithSystem(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	rec, err := CoerceRecord(SanitizeResponse(raw))
	if err != nil {
		return nil, err
	}
	return rec, nil
}
