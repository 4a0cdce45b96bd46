package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"go.uber.org/zap"
)

// contentGenerator is the part of *genai.GenerativeModel used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient scores transcripts with a Google Gemini model. It implements
// core.TextScorer.
type GeminiClient struct {
	model         contentGenerator
	modelName     string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	model contentGenerator,
	modelName string,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *GeminiClient {
	return &GeminiClient{
		model:         model,
		modelName:     modelName,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Name implements core.TextScorer
func (c *GeminiClient) Name() string {
	return "llm:gemini"
}

// Score asks Gemini whether the transcript is a scam
func (c *GeminiClient) Score(ctx context.Context, text string) (*core.Verdict, error) {
	if strings.TrimSpace(text) == "" {
		return utils.NoEvidenceVerdict(), nil
	}

	prompt := utils.BuildScamPrompt(c.textProcessor.PrepareTranscript(text, c.maxBodySize))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	responseText, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	verdict, err := utils.ParseScamResponse(responseText)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Gemini verdict",
		zap.String("model", c.modelName),
		zap.String("status", verdict.Status))
	return verdict, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return sb.String(), nil
}
