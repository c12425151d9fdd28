package records

import "testing"

func TestSanitizeResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"opening fence only", "```json\n{\"a\":1}", `{"a":1}`},
		{"closing fence only", "{\"a\":1}\n```", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, c := range cases {
		if got := SanitizeResponse(c.in); got != c.want {
			t.Errorf("%s: SanitizeResponse(%q) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestSanitizeResponseSingleRemovalOnly(t *testing.T) {
	// Double-wrapped output is not fully unwrapped; the sanitizer handles the
	// common single wrap and nothing more.
	in := "```\n```json\n{}\n```\n```"
	got := SanitizeResponse(in)
	if got == "{}" {
		t.Fatalf("expected inner fence to survive, got %q", got)
	}
}
