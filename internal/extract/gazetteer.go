package extract

import (
	"regexp"
	"sort"
	"strings"

	"stencil/internal/model"
)

// GazetteerRule is a list of literal or structural patterns tried only when
// no variable with the rule's exact category name exists. Fallback categories
// are single-valued, so the produced variable is named exactly Name, no
// suffix. Patterns are tried in order: configured literals before shapes.
type GazetteerRule struct {
	Name        string
	Label       string
	Description string
	Patterns    []*regexp.Regexp
	Filter      func(string) string // Optional shape-match cleanup, nil = identity
	FilterFrom  int                 // First pattern index the filter applies to
}

// Gazetteer is the fallback matcher for inputs that lack the anchor keywords
// the category rules rely on (a post naming a company without ever writing
// the word "company").
type Gazetteer struct {
	rules []GazetteerRule
}

// Structural fallback shapes. These carry enough shape on their own to be
// searched without an anchor window.
var (
	companyShape = regexp.MustCompile(`[A-Z][A-Za-z0-9&'-]+(?:[ ][A-Z][A-Za-z0-9&'-]+)*[ ](?:Corp|Corporation|Inc|LLC|Ltd|Co|Labs|Technologies|Systems|Group)\.?`)
	roleShape    = regexp.MustCompile(`(?:(?:Senior|Junior|Lead|Staff|Principal|Associate)[ ])?[A-Z][a-z]+(?:[ ][A-Z][a-z]+)*[ ](?:Engineer|Developer|Manager|Designer|Analyst|Scientist|Architect|Consultant|Specialist|Director|Intern)`)
	durationSpan = regexp.MustCompile(`\d+(?:[ ]?[-–][ ]?\d+)?[ ](?:hours?|days?|weeks?|months?|years?)\b`)
)

// companyLeadWords are sentence-leading words the company shape tends to
// swallow ("Join Acme Corp"); they are trimmed off shape matches
var companyLeadWords = map[string]bool{
	"Join": true, "At": true, "The": true, "We": true, "Our": true,
	"About": true, "Why": true, "With": true, "Meet": true,
}

func trimCompanyLead(value string) string {
	for {
		word, rest, ok := strings.Cut(value, " ")
		if !ok || !companyLeadWords[word] {
			return value
		}
		value = rest
	}
}

// NewGazetteer builds the fallback rules in priority order. The entity lists
// come from configuration; the built-in lists are demo entries only.
func NewGazetteer(cfg model.GazetteerConfig) *Gazetteer {
	rules := []GazetteerRule{
		{
			Name:        "COMPANY_NAME",
			Label:       "Company Name",
			Description: "Name of the hiring company or organization",
			Patterns:    patternList(cfg.Companies, companyShape),
			Filter:      trimCompanyLead,
			FilterFrom:  len(patternList(cfg.Companies, nil)), // Shape matches only, never configured literals
		},
		{
			Name:        "ROLE",
			Label:       "Role",
			Description: "Job title or position",
			Patterns:    []*regexp.Regexp{roleShape},
		},
		{
			Name:        "SALARY",
			Label:       "Salary",
			Description: "Compensation amount or range",
			Patterns:    []*regexp.Regexp{currencySpan},
		},
		{
			Name:        "LOCATION",
			Label:       "Location",
			Description: "City and state of the position",
			Patterns:    []*regexp.Regexp{cityState},
		},
		{
			Name:        "LINK",
			Label:       "Link",
			Description: "Application or reference URL",
			Patterns:    []*regexp.Regexp{urlSpan},
		},
		{
			Name:        "DATE",
			Label:       "Date",
			Description: "Deadline or start date",
			Patterns:    []*regexp.Regexp{dateSpan},
		},
		{
			Name:        "EMAIL",
			Label:       "Email",
			Description: "Contact email address",
			Patterns:    []*regexp.Regexp{emailSpan},
		},
		{
			Name:        "DURATION",
			Label:       "Duration",
			Description: "Contract or engagement length",
			Patterns:    []*regexp.Regexp{durationSpan},
		},
	}
	if len(cfg.People) > 0 {
		rules = append(rules, GazetteerRule{
			Name:        "CONTACT_NAME",
			Label:       "Contact Name",
			Description: "Name of the contact person or recruiter",
			Patterns:    patternList(cfg.People, nil),
		})
	}
	return &Gazetteer{rules: rules}
}

// Detect tries each fallback rule once, in order. A rule is skipped when a
// variable with its exact name already exists; otherwise the first pattern
// match outside existing tokens is replaced everywhere and recorded.
func (g *Gazetteer) Detect(text string, existing []model.Variable) (string, []model.Variable) {
	var added []model.Variable

	for _, rule := range g.rules {
		if hasExactName(rule.Name, existing, added) {
			continue
		}

		value, idx, ok := firstOutsideTokens(text, rule.Patterns)
		if !ok {
			continue
		}
		if rule.Filter != nil && idx >= rule.FilterFrom {
			value = rule.Filter(value)
		}

		updated, n := ReplaceValue(text, value, "["+rule.Name+"]")
		if n == 0 {
			continue
		}
		text = updated
		added = append(added, model.Variable{
			Name:        rule.Name,
			Value:       value,
			Occurrences: n,
			Label:       rule.Label,
			Description: rule.Description,
			Origin:      model.OriginDetected,
		})
	}

	return text, added
}

// firstOutsideTokens returns the first match of the highest-priority pattern
// that lands outside every token span, plus the index of the pattern that
// produced it
func firstOutsideTokens(text string, patterns []*regexp.Regexp) (string, int, bool) {
	spans := tokenSpans(text)
	for i, pattern := range patterns {
		if pattern == nil {
			continue
		}
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			if overlapsToken(spans, m[0], m[1]) {
				continue
			}
			return text[m[0]:m[1]], i, true
		}
	}
	return "", 0, false
}

func hasExactName(name string, sets ...[]model.Variable) bool {
	for _, vars := range sets {
		for _, v := range vars {
			if v.Name == name {
				return true
			}
		}
	}
	return false
}

// patternList compiles a configured entity list (longest entries first, so
// alternation prefers the fullest match) ahead of an optional structural
// shape
func patternList(entries []string, shape *regexp.Regexp) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	if lit := literalAlternation(entries); lit != nil {
		patterns = append(patterns, lit)
	}
	if shape != nil {
		patterns = append(patterns, shape)
	}
	return patterns
}

func literalAlternation(entries []string) *regexp.Regexp {
	if len(entries) == 0 {
		return nil
	}
	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	escaped := make([]string, 0, len(sorted))
	for _, e := range sorted {
		if e = strings.TrimSpace(e); e != "" {
			escaped = append(escaped, Escape(e))
		}
	}
	if len(escaped) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(escaped, "|"))
}
