package scorer

import (
	"context"
	"fmt"

	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/keywords"
	"go.uber.org/zap"
)

const (
	// KeywordMatchConfidence is reported when at least one term matched
	KeywordMatchConfidence = 0.92
	// KeywordCleanConfidence is reported when nothing matched
	KeywordCleanConfidence = 0.85
	// NoSensitiveInfoReason is the single reason for a clean transcript
	NoSensitiveInfoReason = "No sensitive information detected"
)

// KeywordScorer flags transcripts that mention configured suspicious terms
type KeywordScorer struct {
	matcher *keywords.Matcher
	logger  *zap.Logger
}

// NewKeywordScorer creates a new keyword scorer
func NewKeywordScorer(matcher *keywords.Matcher, logger *zap.Logger) *KeywordScorer {
	return &KeywordScorer{
		matcher: matcher,
		logger:  logger,
	}
}

// Name implements core.TextScorer
func (s *KeywordScorer) Name() string {
	return "keyword"
}

// Score implements core.TextScorer. It never fails.
func (s *KeywordScorer) Score(_ context.Context, text string) (*core.Verdict, error) {
	matched := s.matcher.Match(text)
	if len(matched) == 0 {
		return &core.Verdict{
			Status:     core.StatusNotSuspicious,
			Confidence: KeywordCleanConfidence,
			Reasons:    []string{NoSensitiveInfoReason},
		}, nil
	}

	reasons := make([]string, len(matched))
	for i, term := range matched {
		reasons[i] = fmt.Sprintf("Mentioned '%s'", term)
	}
	return &core.Verdict{
		Status:     core.StatusSuspicious,
		Confidence: KeywordMatchConfidence,
		Reasons:    reasons,
	}, nil
}
