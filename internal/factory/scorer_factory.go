package factory

import (
	"context"
	"fmt"

	"github.com/mikey/scamshield/internal/adapters/scorer"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/keywords"
	"go.uber.org/zap"
)

// Scorer variants selectable with analysis.scorer
const (
	ScorerML      = "ml"
	ScorerKeyword = "keyword"
	ScorerLLM     = "llm"
)

// ScorerFactory creates the text scorer selected by configuration
type ScorerFactory struct {
	cfg          *config.Config
	logger       *zap.Logger
	modelFactory *ModelFactory
	llmFactory   *LLMFactory
}

// NewScorerFactory creates a new scorer factory
func NewScorerFactory(cfg *config.Config, logger *zap.Logger, modelFactory *ModelFactory, llmFactory *LLMFactory) *ScorerFactory {
	return &ScorerFactory{
		cfg:          cfg,
		logger:       logger,
		modelFactory: modelFactory,
		llmFactory:   llmFactory,
	}
}

// CreateScorer creates the configured scorer. The classifier is only fitted
// when the ml variant is selected.
func (f *ScorerFactory) CreateScorer() (core.TextScorer, error) {
	variant := f.cfg.GetString("analysis.scorer")

	switch variant {
	case ScorerML:
		model, err := f.modelFactory.CreateModel(context.Background())
		if err != nil {
			return nil, err
		}
		classifierCfg := f.cfg.GetClassifier()
		return scorer.NewClassifierScorer(model, classifierCfg.NegativeLabel, classifierCfg.TopN, f.logger), nil
	case ScorerKeyword:
		matcher := keywords.NewMatcher(f.cfg.GetStringSlice("keywords.terms"), f.logger)
		if len(matcher.Terms()) == 0 {
			return nil, fmt.Errorf("keyword scorer needs at least one term in keywords.terms")
		}
		return scorer.NewKeywordScorer(matcher, f.logger), nil
	case ScorerLLM:
		return f.llmFactory.CreateScorer()
	default:
		return nil, fmt.Errorf("unsupported scorer: %s", variant)
	}
}
