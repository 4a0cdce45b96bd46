package keywords

import (
	"strings"

	"go.uber.org/zap"
)

// Matcher finds configured suspicious phrases in text
type Matcher struct {
	terms  []string
	logger *zap.Logger
}

// NewMatcher creates a new matcher. Terms keep their configured order;
// blank and duplicate terms are dropped.
func NewMatcher(terms []string, logger *zap.Logger) *Matcher {
	normalized := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		normalized = append(normalized, term)
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized keyword matcher", zap.Strings("terms", normalized))
	}

	return &Matcher{
		terms:  normalized,
		logger: logger,
	}
}

// Terms returns the configured terms in match order
func (m *Matcher) Terms() []string {
	return append([]string(nil), m.terms...)
}

// Match returns every term contained in text, case-insensitively, in the
// configured order
func (m *Matcher) Match(text string) []string {
	if len(m.terms) == 0 || text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	var matched []string
	for _, term := range m.terms {
		if strings.Contains(lowered, term) {
			matched = append(matched, term)
		}
	}

	if len(matched) > 0 && m.logger != nil {
		m.logger.Debug("Suspicious terms matched", zap.Strings("terms", matched))
	}
	return matched
}
