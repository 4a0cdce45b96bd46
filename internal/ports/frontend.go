package ports

import (
	"context"

	"github.com/mikey/scamshield/internal/core"
)

// Analyzer runs the analysis pipeline for one recording
type Analyzer interface {
	// Analyze transcribes and scores an uploaded recording
	Analyze(ctx context.Context, blob *core.AudioBlob) (*core.AnalysisResult, error)
}

// Frontend defines the interface for the ways recordings reach the service
type Frontend interface {
	// Start starts the frontend
	Start() error

	// Stop stops the frontend
	Stop() error
}
