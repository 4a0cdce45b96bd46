package scorer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/textmodel"
	"go.uber.org/zap"
)

// Reasons reported by the classifier scorer
const (
	PatternsDetectedReason   = "Detected spam/fraud language patterns based on training data."
	NoPatternsDetectedReason = "No spam/fraud language patterns detected based on training data."
	topFeaturesReasonPrefix  = "Top features contributing to spam prediction: "
)

// ClassifierScorer scores transcripts with a fitted text model
type ClassifierScorer struct {
	model         *textmodel.Model
	negativeLabel string
	topN          int
	logger        *zap.Logger
}

// NewClassifierScorer creates a new classifier scorer around a fitted model.
// negativeLabel is reported when there is no transcript to classify.
func NewClassifierScorer(model *textmodel.Model, negativeLabel string, topN int, logger *zap.Logger) *ClassifierScorer {
	return &ClassifierScorer{
		model:         model,
		negativeLabel: negativeLabel,
		topN:          topN,
		logger:        logger,
	}
}

// Name implements core.TextScorer
func (s *ClassifierScorer) Name() string {
	return "ml"
}

// Score implements core.TextScorer
func (s *ClassifierScorer) Score(_ context.Context, text string) (*core.Verdict, error) {
	if strings.TrimSpace(text) == "" {
		return &core.Verdict{
			Status:     s.negativeLabel,
			Confidence: 0,
			Reasons:    []string{core.NoEvidenceReason},
		}, nil
	}

	positive := s.model.PositiveLabel()
	pred := s.model.Predict(text)
	verdict := &core.Verdict{
		Status:     pred.Label,
		Confidence: pred.Probabilities[positive],
	}

	if pred.Label != positive {
		verdict.Reasons = []string{NoPatternsDetectedReason}
		return verdict, nil
	}

	verdict.Reasons = []string{PatternsDetectedReason}
	if top := s.model.TopContributions(text, s.topN); len(top) > 0 {
		verdict.Reasons = append(verdict.Reasons, formatContributions(top))
	}

	s.logger.Debug("Classifier flagged transcript",
		zap.String("label", pred.Label),
		zap.Float64("confidence", verdict.Confidence))

	return verdict, nil
}

func formatContributions(top []textmodel.Contribution) string {
	parts := make([]string, len(top))
	for i, c := range top {
		parts[i] = fmt.Sprintf("'%s' (score: %s)", c.Term, strconv.FormatFloat(c.Score, 'f', -1, 64))
	}
	return topFeaturesReasonPrefix + strings.Join(parts, ", ") + "."
}
