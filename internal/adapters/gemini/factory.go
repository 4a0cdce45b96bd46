package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Factory creates Gemini backed scorers and recognizers
type Factory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewFactory creates a new factory for Gemini components
func NewFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *Factory {
	return &Factory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// newModel creates a configured generative model
func (f *Factory) newModel() (*genai.GenerativeModel, error) {
	geminiCfg := f.cfg.GetGemini()
	if geminiCfg.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(geminiCfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiCfg.ModelName)
	model.SetTemperature(geminiCfg.Temperature)
	model.SetTopP(geminiCfg.TopP)
	model.SetMaxOutputTokens(int32(geminiCfg.MaxTokens))
	return model, nil
}

// CreateScorer creates a new GeminiClient
func (f *Factory) CreateScorer() (core.TextScorer, error) {
	model, err := f.newModel()
	if err != nil {
		return nil, err
	}

	geminiCfg := f.cfg.GetGemini()
	return NewGeminiClient(model, geminiCfg.ModelName, geminiCfg.MaxBodySize, f.logger, f.textProcessor), nil
}

// CreateRecognizer creates a new Gemini Recognizer
func (f *Factory) CreateRecognizer() (core.Recognizer, error) {
	model, err := f.newModel()
	if err != nil {
		return nil, err
	}

	return NewRecognizer(model, f.cfg.GetGemini().ModelName, f.cfg.GetRecognizer().Language, f.logger), nil
}
