// Package domain holds DTOs for the detect service and its transports
package domain

// Granularity names the candidate enumeration a request runs against
type Granularity string

const (
	// GranularityLanguage groups scripts of one language, eg Serbian
	GranularityLanguage Granularity = "language"
	// GranularityVariant splits a language by script, eg sr-Latn and sr-Cyrl
	GranularityVariant Granularity = "variant"
)

// DetectInput is one text to segment and score
type DetectInput struct {
	Text string `json:"text" validate:"required" example:"Привіт, як справи?"`
	// optional overrides of the service defaults
	Granularity Granularity `json:"granularity,omitempty" validate:"omitempty,oneof=language variant" example:"language"`
	Margin      *uint32     `json:"margin,omitempty" validate:"omitempty,lt=100" example:"95"`
	// Only restricts reported guesses to these codes
	Only []string `json:"only,omitempty" validate:"omitempty,max=64,dive,bcp47" example:"uk,ru"`
	// Words asks for per-word results alongside the document summary
	Words bool `json:"words,omitempty" example:"true"`
}

// BatchInput scores several independent texts
type BatchInput struct {
	Texts       []string    `json:"texts" validate:"required,min=1,max=256,dive,required"`
	Granularity Granularity `json:"granularity,omitempty" validate:"omitempty,oneof=language variant" example:"variant"`
	Margin      *uint32     `json:"margin,omitempty" validate:"omitempty,lt=100" example:"90"`
	Only        []string    `json:"only,omitempty" validate:"omitempty,max=64,dive,bcp47"`
}

// Guess is one candidate language with its evidence
type Guess struct {
	Code  string `json:"code" yaml:"code" example:"uk"`
	Name  string `json:"name" yaml:"name" example:"Ukrainian"`
	Count uint32 `json:"count" yaml:"count" example:"12"`
}

// WordResult is one segmented word. Start and End are byte offsets into the input
type WordResult struct {
	Text  string  `json:"text" yaml:"text" example:"справи"`
	Start int     `json:"start" yaml:"start" example:"22"`
	End   int     `json:"end" yaml:"end" example:"34"`
	Langs []Guess `json:"langs" yaml:"langs"`
}

// Result is the document level outcome of a detection
type Result struct {
	Granularity Granularity  `json:"granularity" yaml:"granularity" example:"language"`
	Script      string       `json:"script,omitempty" yaml:"script,omitempty" example:"Cyrillic"`
	Letters     int          `json:"letters" yaml:"letters" example:"15"`
	WordCount   int          `json:"word_count" yaml:"word_count" example:"3"`
	Best        string       `json:"best,omitempty" yaml:"best,omitempty" example:"uk"`
	Langs       []Guess      `json:"langs" yaml:"langs"`
	Words       []WordResult `json:"words,omitempty" yaml:"words,omitempty"`
}

// LanguageInfo describes one entry of a candidate enumeration
type LanguageInfo struct {
	Code     string `json:"code" yaml:"code" example:"sr-Latn"`
	Name     string `json:"name" yaml:"name" example:"Serbian (Latin)"`
	Language string `json:"language,omitempty" yaml:"language,omitempty" example:"sr"`
}
