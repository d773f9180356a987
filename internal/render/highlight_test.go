package render

import "testing"

func TestHighlight(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single token",
			in:   "Join [COMPANY_NAME] today.",
			want: "Join «[COMPANY_NAME]» today.",
		},
		{
			name: "numbered tokens",
			in:   "[SALARY_1] or [SALARY_2]",
			want: "«[SALARY_1]» or «[SALARY_2]»",
		},
		{
			name: "lowercase brackets untouched",
			in:   "literal [not a token] here",
			want: "literal [not a token] here",
		},
		{
			name: "no tokens",
			in:   "plain text",
			want: "plain text",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Highlight(c.in, "«", "»"); got != c.want {
				t.Errorf("Highlight(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestHighlight_EmptyMarkers(t *testing.T) {
	in := "Join [COMPANY_NAME] today."
	if got := Highlight(in, "", ""); got != in {
		t.Errorf("empty markers must be a no-op, got %q", got)
	}
}
