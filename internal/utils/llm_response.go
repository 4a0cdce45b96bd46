package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mikey/scamshield/internal/core"
)

// ScamPromptFormat asks a language model for a JSON verdict on a transcript
const ScamPromptFormat = `You are a phone scam detection system. Analyze the following transcript of a phone call and determine if it is a scam or fraud attempt.
Respond with a JSON object containing:
- is_scam: boolean (true if the call looks like a scam, false if not)
- confidence: number between 0 and 1 (how confident you are in your assessment)
- reasons: array of short strings explaining the decision

Transcript:
%s

Respond only with the JSON object and nothing else.`

// ScamAnalysisResponse represents the structured response from the LLM
type ScamAnalysisResponse struct {
	IsScam     bool     `json:"is_scam"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// BuildScamPrompt formats the prompt for a prepared transcript
func BuildScamPrompt(transcript string) string {
	return fmt.Sprintf(ScamPromptFormat, transcript)
}

// ParseScamResponse decodes the model output, tolerating prose around the
// JSON object
func ParseScamResponse(responseText string) (*core.Verdict, error) {
	var resp ScamAnalysisResponse
	if err := json.Unmarshal([]byte(responseText), &resp); err != nil {
		start := strings.Index(responseText, "{")
		end := strings.LastIndex(responseText, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("failed to extract JSON from LLM response: %w", err)
		}
		if err := json.Unmarshal([]byte(responseText[start:end+1]), &resp); err != nil {
			return nil, fmt.Errorf("failed to parse LLM response as JSON: %w", err)
		}
	}

	verdict := &core.Verdict{
		Status:     core.StatusNotSuspicious,
		Confidence: clamp01(resp.Confidence),
		Reasons:    resp.Reasons,
	}
	if resp.IsScam {
		verdict.Status = core.StatusSuspicious
	}
	if len(verdict.Reasons) == 0 {
		verdict.Reasons = []string{"No explanation provided by the model"}
	}
	return verdict, nil
}

// NoEvidenceVerdict is returned by LLM scorers for empty transcripts
func NoEvidenceVerdict() *core.Verdict {
	return &core.Verdict{
		Status:     core.StatusNotSuspicious,
		Confidence: 0,
		Reasons:    []string{core.NoEvidenceReason},
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
