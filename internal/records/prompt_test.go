package records

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	report := "The payment gateway is down since 2:10 PM, roughly 80 merchants affected."
	system, user := BuildPrompt(report)

	if !strings.Contains(user, report) {
		t.Error("user message does not embed the report text")
	}
	if !strings.Contains(user, "ONLY the JSON object") {
		t.Error("user message missing JSON-only instruction")
	}

	for _, want := range []string{
		`"High"`, `"Med"`, `"Low"`,
		"Severity", "Component", "Timestamp", "Suspected_Cause", "Impact_Count",
		"DO NOT invent",
		"no markdown",
		"EXAMPLE:",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildPromptIsPure(t *testing.T) {
	s1, u1 := BuildPrompt("same input text for both calls")
	s2, u2 := BuildPrompt("same input text for both calls")
	if s1 != s2 || u1 != u2 {
		t.Error("BuildPrompt is not deterministic")
	}
}
