package model

import "time"

// Config holds the full stencil configuration
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Gazetteer  GazetteerConfig  `yaml:"gazetteer" mapstructure:"gazetteer"`
	HTTP       HTTPConfig       `yaml:"http" mapstructure:"http"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	LLM        LLMConfig        `yaml:"llm" mapstructure:"llm"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

// ExtractionConfig tunes the detector stages
type ExtractionConfig struct {
	WindowWidth    int `yaml:"window_width" mapstructure:"window_width"`         // Chars of context on each side of an anchor
	MinPhraseWords int `yaml:"min_phrase_words" mapstructure:"min_phrase_words"` // Words a repeated phrase must span
	MaxPhraseWords int `yaml:"max_phrase_words" mapstructure:"max_phrase_words"`
	MinPhraseChars int `yaml:"min_phrase_chars" mapstructure:"min_phrase_chars"` // Filters trivial short matches
	MinRepeatCount int `yaml:"min_repeat_count" mapstructure:"min_repeat_count"`
}

// GazetteerConfig carries the injectable entity lists used by the fallback
// matcher. The defaults are demo entries; deployments supply their own.
type GazetteerConfig struct {
	Companies []string `yaml:"companies" mapstructure:"companies"`
	People    []string `yaml:"people" mapstructure:"people"`
}

// HTTPConfig controls fetching when the input is a URL
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	RespectRobots     bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls the fetch cache and session store TTLs
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// LLMConfig configures the optional content-generation provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never serialized
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// StoreConfig locates the template store
type StoreConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // Defaults to ~/.stencil/templates
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose        bool   `yaml:"verbose" mapstructure:"verbose"`
	HighlightOpen  string `yaml:"highlight_open" mapstructure:"highlight_open"`
	HighlightClose string `yaml:"highlight_close" mapstructure:"highlight_close"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			WindowWidth:    30,
			MinPhraseWords: 3,
			MaxPhraseWords: 8,
			MinPhraseChars: 15,
			MinRepeatCount: 2,
		},
		Gazetteer: GazetteerConfig{
			Companies: []string{
				"Acme Corp", "Globex Corporation", "Initech", "Umbrella Corp",
				"Stark Industries", "Wayne Enterprises",
			},
			People: []string{},
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Stencil/0.1 (template extraction)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 1.0,
			RespectRobots:     true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Store: StoreConfig{
			Dir: "", // Resolved to ~/.stencil/templates at load time
		},
		Output: OutputConfig{
			HighlightOpen:  "«",
			HighlightClose: "»",
		},
	}
}
