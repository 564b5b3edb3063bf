package models

import "fmt"

// Intent classifies what the searcher is trying to do.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentCommercial    Intent = "commercial"
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
)

// ParseIntent validates a user-supplied intent string.
func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentInformational, IntentCommercial, IntentTransactional, IntentNavigational:
		return Intent(s), nil
	}
	return "", fmt.Errorf("invalid intent %q (valid: informational, commercial, transactional, navigational)", s)
}

// ContentParameters carries the operator-supplied knobs for one run. They are
// set once before context assembly and read-only afterwards.
type ContentParameters struct {
	Intent            Intent
	SecondaryKeywords []string

	// Audience fields feed the outline prompt. When left empty they default
	// to the search query, which is what the prompt historically received.
	PrimaryAudience   string
	SecondaryAudience string
	IndustryLevel     string
}

// WithAudienceDefaults fills unset audience fields from the query.
func (p ContentParameters) WithAudienceDefaults(query string) ContentParameters {
	if p.PrimaryAudience == "" {
		p.PrimaryAudience = query
	}
	if p.SecondaryAudience == "" {
		p.SecondaryAudience = query
	}
	if p.IndustryLevel == "" {
		p.IndustryLevel = query
	}
	return p
}
