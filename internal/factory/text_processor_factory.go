package factory

import (
	"github.com/mikey/scamshield/internal/utils"
	"go.uber.org/zap"
)

// TextProcessorFactory builds the transcript processor shared by the LLM
// scorers
type TextProcessorFactory struct {
	logger *zap.Logger
}

// NewTextProcessorFactory creates a new TextProcessorFactory
func NewTextProcessorFactory(logger *zap.Logger) *TextProcessorFactory {
	return &TextProcessorFactory{
		logger: logger,
	}
}

// CreateTextProcessor returns a processor that truncates and sanitizes
// transcripts before they are embedded in a prompt
func (f *TextProcessorFactory) CreateTextProcessor() *utils.TextProcessor {
	return utils.NewTextProcessor(f.logger)
}
