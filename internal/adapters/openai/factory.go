package openai

import (
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Factory creates OpenAI backed scorers and recognizers
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for OpenAI components
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// newClient builds an API client, honoring a custom base URL
func (f *Factory) newClient() *openai.Client {
	openaiCfg := f.cfg.GetOpenAI()

	clientCfg := openai.DefaultConfig(openaiCfg.APIKey)
	if openaiCfg.BaseURL != "" {
		clientCfg.BaseURL = openaiCfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// CreateScorer creates a new OpenAIClient
func (f *Factory) CreateScorer() (core.TextScorer, error) {
	openaiCfg := f.cfg.GetOpenAI()

	return NewOpenAIClient(
		f.newClient(),
		openaiCfg.ModelName,
		openaiCfg.MaxTokens,
		openaiCfg.Temperature,
		openaiCfg.TopP,
		openaiCfg.MaxBodySize,
		f.logger,
		f.textProcessor,
	), nil
}

// CreateRecognizer creates a new WhisperRecognizer
func (f *Factory) CreateRecognizer() (core.Recognizer, error) {
	return NewWhisperRecognizer(
		f.newClient(),
		f.cfg.GetOpenAI().TranscriptionModel,
		f.cfg.GetRecognizer().Language,
		f.logger,
	), nil
}
