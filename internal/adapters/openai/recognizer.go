package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikey/scamshield/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// WhisperRecognizer transcribes audio through the OpenAI audio API. Any
// compatible endpoint, such as Groq, works by changing the base URL.
type WhisperRecognizer struct {
	client   *openai.Client
	model    string
	language string
	logger   *zap.Logger
}

// NewWhisperRecognizer creates a new Whisper recognizer
func NewWhisperRecognizer(client *openai.Client, model, language string, logger *zap.Logger) *WhisperRecognizer {
	return &WhisperRecognizer{
		client:   client,
		model:    model,
		language: language,
		logger:   logger,
	}
}

// Name implements core.Recognizer
func (r *WhisperRecognizer) Name() string {
	return "openai"
}

// Recognize implements core.Recognizer
func (r *WhisperRecognizer) Recognize(ctx context.Context, audio core.DecodedAudio) (string, error) {
	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    r.model,
		FilePath: audio.Path(),
		Language: r.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio with OpenAI: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	r.logger.Debug("Whisper transcription complete",
		zap.String("model", r.model),
		zap.Int("length", len(text)))
	return text, nil
}
