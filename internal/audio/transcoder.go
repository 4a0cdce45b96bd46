package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// Placeholders substituted into the transcoder command line
const (
	InputPlaceholder  = "{input}"
	OutputPlaceholder = "{output}"
)

// Transcoder converts an audio file into 16-bit PCM WAV
type Transcoder interface {
	Transcode(ctx context.Context, input, output string) error
}

// ExecTranscoder runs an external decoder such as ffmpeg
type ExecTranscoder struct {
	args    []string
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecTranscoder parses the command template. The template must reference
// both {input} and {output}.
func NewExecTranscoder(command string, timeout time.Duration, logger *zap.Logger) (*ExecTranscoder, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcoder command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("transcoder command is empty")
	}
	if !strings.Contains(command, InputPlaceholder) || !strings.Contains(command, OutputPlaceholder) {
		return nil, fmt.Errorf("transcoder command must contain %s and %s", InputPlaceholder, OutputPlaceholder)
	}

	return &ExecTranscoder{
		args:    args,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Transcode implements Transcoder
func (t *ExecTranscoder) Transcode(ctx context.Context, input, output string) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	args := make([]string, len(t.args))
	for i, arg := range t.args {
		arg = strings.ReplaceAll(arg, InputPlaceholder, input)
		args[i] = strings.ReplaceAll(arg, OutputPlaceholder, output)
	}

	command := exec.CommandContext(ctx, args[0], args[1:]...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	start := time.Now()
	if err := command.Run(); err != nil {
		return fmt.Errorf("transcoder failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	t.logger.Debug("Transcoded audio",
		zap.String("command", args[0]),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
