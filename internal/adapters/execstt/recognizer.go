// Package execstt runs a local speech-to-text command for each recording.
package execstt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

type execResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Recognizer invokes the configured command with --audio <path> and reads a
// JSON object with a "text" field from its stdout
type Recognizer struct {
	cmd      []string
	language string
	logger   *zap.Logger
}

// NewRecognizer parses the command line
func NewRecognizer(command, language string, logger *zap.Logger) (*Recognizer, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stt command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("stt command is empty")
	}
	return &Recognizer{cmd: args, language: language, logger: logger}, nil
}

// Name implements core.Recognizer
func (r *Recognizer) Name() string {
	return "exec"
}

// Recognize implements core.Recognizer
func (r *Recognizer) Recognize(ctx context.Context, audio core.DecodedAudio) (string, error) {
	args := append([]string{}, r.cmd[1:]...)
	args = append(args, "--audio", audio.Path())
	if r.language != "" {
		args = append(args, "--language", r.language)
	}

	command := exec.CommandContext(ctx, r.cmd[0], args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("stt command failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	var resp execResult
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return "", fmt.Errorf("failed to decode stt response: %w", err)
	}

	r.logger.Debug("Exec transcription complete",
		zap.String("command", r.cmd[0]),
		zap.Float64("confidence", resp.Confidence))
	return strings.TrimSpace(resp.Text), nil
}
