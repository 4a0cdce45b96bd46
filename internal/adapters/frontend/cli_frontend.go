package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/ports"
	"go.uber.org/zap"
)

// CliFrontend analyzes local recordings and prints the results
type CliFrontend struct {
	analyzer   ports.Analyzer
	logger     *zap.Logger
	out        io.Writer
	jsonOutput bool
	verbose    bool
}

// NewCliFrontend creates a new CLI frontend writing to out
func NewCliFrontend(analyzer ports.Analyzer, logger *zap.Logger, out io.Writer, jsonOutput, verbose bool) *CliFrontend {
	return &CliFrontend{
		analyzer:   analyzer,
		logger:     logger,
		out:        out,
		jsonOutput: jsonOutput,
		verbose:    verbose,
	}
}

// AnalyzeFile reads the recording at path and displays the analysis
func (f *CliFrontend) AnalyzeFile(ctx context.Context, path string) (*core.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	f.logger.Debug("Processing recording", zap.String("path", path), zap.Int("bytes", len(data)))

	startTime := time.Now()
	result, err := f.analyzer.Analyze(ctx, &core.AudioBlob{
		FileName: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		f.logger.Error("Failed to analyze recording", zap.Error(err))
		return nil, err
	}
	duration := time.Since(startTime)

	if f.jsonOutput {
		enc := json.NewEncoder(f.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return nil, fmt.Errorf("failed to encode result: %w", err)
		}
		return result, nil
	}

	fmt.Fprintf(f.out, "\n=== Recording ===\n")
	fmt.Fprintf(f.out, "File: %s\n", result.SourceFileName)
	fmt.Fprintf(f.out, "Size: %d bytes\n", len(data))

	if f.verbose || result.Transcription == "" {
		transcript := result.Transcription
		if transcript == "" {
			transcript = "(no speech transcribed)"
		}
		fmt.Fprintf(f.out, "\nTranscription:\n%s\n", transcript)
	}

	fmt.Fprintf(f.out, "\n=== Results ===\n")
	fmt.Fprintf(f.out, "ID: %s\n", result.ID)
	fmt.Fprintf(f.out, "Status: %s\n", result.Status)
	fmt.Fprintf(f.out, "Confidence: %.4f\n", result.Confidence)
	fmt.Fprintf(f.out, "Reasons:\n  - %s\n", strings.Join(result.Reasons, "\n  - "))
	fmt.Fprintf(f.out, "Timestamp: %s\n", result.Timestamp)
	fmt.Fprintf(f.out, "Processing time: %v\n", duration)

	return result, nil
}

// Start is a no-op for the CLI frontend
func (f *CliFrontend) Start() error {
	return nil
}

// Stop is a no-op for the CLI frontend
func (f *CliFrontend) Stop() error {
	return nil
}
