package factory

import (
	"fmt"

	"github.com/mikey/scamshield/internal/adapters/execstt"
	"github.com/mikey/scamshield/internal/adapters/gemini"
	"github.com/mikey/scamshield/internal/adapters/openai"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"go.uber.org/zap"
)

// RecognizerFactory creates speech recognizers
type RecognizerFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewRecognizerFactory creates a new recognizer factory
func NewRecognizerFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *RecognizerFactory {
	return &RecognizerFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateRecognizer creates a recognizer based on the configuration
func (f *RecognizerFactory) CreateRecognizer() (core.Recognizer, error) {
	recognizerCfg := f.cfg.GetRecognizer()

	switch recognizerCfg.Provider {
	case "openai":
		return openai.NewFactory(f.cfg, f.logger, f.textProcessor).CreateRecognizer()
	case "gemini":
		return gemini.NewFactory(f.cfg, f.logger, f.textProcessor).CreateRecognizer()
	case "exec":
		return execstt.NewRecognizer(recognizerCfg.ExecCommand, recognizerCfg.Language, f.logger)
	default:
		return nil, fmt.Errorf("unsupported recognizer provider: %s", recognizerCfg.Provider)
	}
}
