package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

const transcribeInstructionFormat = `Transcribe the speech in this phone call recording verbatim in %s.
Respond with the transcript text only. If there is no intelligible speech, respond with an empty string.`

// Recognizer transcribes audio by sending the WAV bytes inline to Gemini
type Recognizer struct {
	model     contentGenerator
	modelName string
	language  string
	logger    *zap.Logger
}

// NewRecognizer creates a new Gemini recognizer
func NewRecognizer(model contentGenerator, modelName, language string, logger *zap.Logger) *Recognizer {
	return &Recognizer{
		model:     model,
		modelName: modelName,
		language:  language,
		logger:    logger,
	}
}

// Name implements core.Recognizer
func (r *Recognizer) Name() string {
	return "gemini"
}

// Recognize implements core.Recognizer
func (r *Recognizer) Recognize(ctx context.Context, audio core.DecodedAudio) (string, error) {
	data, err := os.ReadFile(audio.Path())
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}

	resp, err := r.model.GenerateContent(ctx,
		genai.Blob{MIMEType: "audio/wav", Data: data},
		genai.Text(fmt.Sprintf(transcribeInstructionFormat, r.language)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio with Gemini: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	r.logger.Debug("Gemini transcription complete",
		zap.String("model", r.modelName),
		zap.Int("length", len(text)))
	return text, nil
}
