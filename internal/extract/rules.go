package extract

import "regexp"

// Rule pairs an anchor pattern with a value-shaped pattern searched in a
// bounded window around the anchor. Rules are read-only configuration; their
// order is significant and decides which interpretation wins when two rules
// could match overlapping text.
type Rule struct {
	Prefix      string // Variable name prefix, e.g. "SALARY"
	Label       string
	Description string
	Anchor      *regexp.Regexp // Generic keyword locating a neighborhood of interest
	Value       *regexp.Regexp // Value shape searched within the window
}

// Shared value shapes. Capitalized phrases cover company names, roles and
// person names; the tighter shapes (currency, City/ST, URL, dates) keep the
// generic rules from swallowing each other's values.
var (
	capPhrase    = regexp.MustCompile(`[A-Z][A-Za-z0-9&'-]+(?:[ ][A-Z][A-Za-z0-9&'-]+)*`)
	personName   = regexp.MustCompile(`[A-Z][a-z]+[ ][A-Z][a-z]+`)
	currencySpan = regexp.MustCompile(`\$\d[\d,]*(?:\.\d+)?[kK]?(?:\s*[-–]\s*\$?\d[\d,]*(?:\.\d+)?[kK]?)?(?:\s*/\s*(?:hr|hour|yr|year|mo|month|wk|week)|\s+per\s+(?:hour|year|month|week))?`)
	cityState    = regexp.MustCompile(`[A-Z][a-z]+(?:[ ][A-Z][a-z]+)*,[ ]?[A-Z]{2}\b`)
	urlSpan      = regexp.MustCompile(`https?://[^\s<>"']*[^\s<>"'.,;:!?)\]]`)
	dateSpan     = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?[ ]\d{1,2}(?:st|nd|rd|th)?(?:,?[ ]\d{4})?|\d{1,2}/\d{1,2}/\d{2,4}`)
	emailSpan    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// DefaultRules returns the built-in category detection rules in priority
// order. Earlier rules claim their spans first; later rules only see the
// already-tokenized text.
func DefaultRules() []Rule {
	return []Rule{
		{
			Prefix:      "COMPANY_NAME",
			Label:       "Company Name",
			Description: "Name of the hiring company or organization",
			Anchor:      regexp.MustCompile(`(?i)\b(?:company|employer|organization)\b`),
			Value:       capPhrase,
		},
		{
			Prefix:      "SALARY",
			Label:       "Salary",
			Description: "Compensation amount or range",
			Anchor:      regexp.MustCompile(`(?i)\b(?:salary|pay|compensation|rate|stipend)\b`),
			Value:       currencySpan,
		},
		{
			Prefix:      "LOCATION",
			Label:       "Location",
			Description: "City and state of the position",
			Anchor:      regexp.MustCompile(`(?i)\b(?:location|located|based|office|relocat\w*)\b`),
			Value:       cityState,
		},
		{
			Prefix:      "LINK",
			Label:       "Link",
			Description: "Application or reference URL",
			Anchor:      regexp.MustCompile(`(?i)\b(?:apply|link|website|url|visit)\b`),
			Value:       urlSpan,
		},
		{
			Prefix:      "DATE",
			Label:       "Date",
			Description: "Deadline or start date",
			Anchor:      regexp.MustCompile(`(?i)\b(?:deadline|date|until|starts?|closes?|closing)\b`),
			Value:       dateSpan,
		},
		{
			Prefix:      "EMAIL",
			Label:       "Email",
			Description: "Contact email address",
			Anchor:      regexp.MustCompile(`(?i)\b(?:email|contact|resume|cv)\b`),
			Value:       emailSpan,
		},
		{
			Prefix:      "ROLE",
			Label:       "Role",
			Description: "Job title or position",
			Anchor:      regexp.MustCompile(`(?i)\b(?:role|position|title|hiring|opening)\b`),
			Value:       capPhrase,
		},
		{
			Prefix:      "CONTACT_NAME",
			Label:       "Contact Name",
			Description: "Name of the contact person or recruiter",
			Anchor:      regexp.MustCompile(`(?i)\b(?:contact|recruiter|reach out|speak with)\b`),
			Value:       personName,
		},
	}
}
