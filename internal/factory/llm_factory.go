package factory

import (
	"fmt"

	"github.com/mikey/scamshield/internal/adapters/bedrock"
	"github.com/mikey/scamshield/internal/adapters/gemini"
	"github.com/mikey/scamshield/internal/adapters/openai"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"go.uber.org/zap"
)

// LLMFactory creates language model backed scorers
type LLMFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *LLMFactory {
	return &LLMFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateScorer creates a new LLM scorer based on the configuration
func (f *LLMFactory) CreateScorer() (core.TextScorer, error) {
	llmConfig := f.cfg.GetLLM()

	switch llmConfig.Provider {
	case "bedrock":
		return bedrock.NewFactory(f.cfg, f.logger, f.textProcessor).CreateScorer()
	case "gemini":
		return gemini.NewFactory(f.cfg, f.logger, f.textProcessor).CreateScorer()
	case "openai":
		return openai.NewFactory(f.cfg, f.logger, f.textProcessor).CreateScorer()
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
}
