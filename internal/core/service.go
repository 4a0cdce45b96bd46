package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transcriber produces a transcription for an uploaded recording
type Transcriber interface {
	Transcribe(ctx context.Context, blob *AudioBlob) Transcription
}

// AnalysisService is the core service for scam detection
type AnalysisService struct {
	transcriber Transcriber
	scorer      TextScorer
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string
}

// NewAnalysisService creates a new analysis service. The scorer is fixed
// for the lifetime of the service.
func NewAnalysisService(transcriber Transcriber, scorer TextScorer, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		transcriber: transcriber,
		scorer:      scorer,
		logger:      logger,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// ScorerName returns the name of the configured scorer
func (s *AnalysisService) ScorerName() string {
	return s.scorer.Name()
}

// Analyze transcribes the recording and scores the transcription
func (s *AnalysisService) Analyze(ctx context.Context, blob *AudioBlob) (*AnalysisResult, error) {
	if blob == nil {
		blob = &AudioBlob{}
	}
	transcription := s.transcriber.Transcribe(ctx, blob)

	verdict, err := s.scorer.Score(ctx, transcription.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to score transcription: %w", err)
	}

	result := &AnalysisResult{
		ID:             s.newID(),
		Status:         verdict.Status,
		Confidence:     verdict.Confidence,
		Reasons:        verdict.Reasons,
		Timestamp:      FormatTimestamp(s.now()),
		SourceFileName: blob.FileName,
		Transcription:  transcription.Text,
	}
	if result.Reasons == nil {
		result.Reasons = []string{}
	}

	s.logger.Info("Analysis complete",
		zap.String("id", result.ID),
		zap.String("file", blob.FileName),
		zap.String("scorer", s.scorer.Name()),
		zap.String("status", result.Status),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("degraded", transcription.Degraded()))

	return result, nil
}
