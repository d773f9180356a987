package model

// Origin records how a variable entered the session
type Origin string

const (
	OriginDetected Origin = "detected" // Produced by a detector stage
	OriginCustom   Origin = "custom"   // Added manually by the user
)

// Variable pairs a template token with the literal text it replaced
type Variable struct {
	Name        string `json:"name" yaml:"name"`               // Unique, uppercase, identifier-shaped
	Value       string `json:"value" yaml:"value"`             // The literal text the token stands for
	Occurrences int    `json:"occurrences" yaml:"occurrences"` // How many tokens are present in the template
	Label       string `json:"label" yaml:"label"`             // Human-readable category label
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Origin      Origin `json:"origin" yaml:"origin"`
}

// Token returns the bracketed placeholder for the variable, e.g. [COMPANY_NAME]
func (v Variable) Token() string {
	return "[" + v.Name + "]"
}

// Template is the finished extraction result handed to consumers
type Template struct {
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"` // Set when the template is saved
	Source    string     `json:"source" yaml:"source"`                 // Original, unmodified input
	Text      string     `json:"text" yaml:"text"`                     // Source with values replaced by tokens
	Variables []Variable `json:"variables" yaml:"variables"`
}

// Lookup returns the variable with the given name, if present
func (t *Template) Lookup(name string) (Variable, bool) {
	for _, v := range t.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}
