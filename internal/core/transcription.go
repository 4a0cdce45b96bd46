package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TranscriptionService turns uploaded audio into text. Failures never
// propagate: they degrade to an empty transcription.
type TranscriptionService struct {
	ingestor   AudioIngestor
	recognizer Recognizer
	timeout    time.Duration
	logger     *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	ingestor AudioIngestor,
	recognizer Recognizer,
	timeout time.Duration,
	logger *zap.Logger,
) *TranscriptionService {
	return &TranscriptionService{
		ingestor:   ingestor,
		recognizer: recognizer,
		timeout:    timeout,
		logger:     logger,
	}
}

// Transcribe ingests the blob and runs speech recognition on it
func (s *TranscriptionService) Transcribe(ctx context.Context, blob *AudioBlob) Transcription {
	if blob == nil {
		s.logger.Warn("Transcription skipped, no audio supplied")
		return Transcription{Err: ErrEmptyAudio}
	}

	text, err := s.transcribe(ctx, blob)
	if err != nil {
		s.logger.Warn("Transcription failed, continuing without evidence",
			zap.String("file", blob.FileName),
			zap.String("recognizer", s.recognizer.Name()),
			zap.Error(err))
		return Transcription{Err: err}
	}

	s.logger.Debug("Transcription complete",
		zap.String("file", blob.FileName),
		zap.Int("length", len(text)))
	return Transcription{Text: text}
}

func (s *TranscriptionService) transcribe(ctx context.Context, blob *AudioBlob) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transcription panicked: %v", r)
		}
	}()

	audio, err := s.ingestor.Ingest(ctx, blob)
	if err != nil {
		return "", fmt.Errorf("failed to ingest audio: %w", err)
	}
	defer func() {
		if cerr := audio.Close(); cerr != nil {
			s.logger.Warn("Failed to release audio workspace", zap.Error(cerr))
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err = s.recognizer.Recognize(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("failed to recognize speech: %w", err)
	}
	return text, nil
}
