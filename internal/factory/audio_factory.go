package factory

import (
	"github.com/mikey/scamshield/internal/audio"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

// AudioFactory creates the audio ingestion pipeline
type AudioFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewAudioFactory creates a new audio factory
func NewAudioFactory(cfg *config.Config, logger *zap.Logger) *AudioFactory {
	return &AudioFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateIngestor creates an ingestor backed by the configured transcoder
func (f *AudioFactory) CreateIngestor() (core.AudioIngestor, error) {
	audioCfg := f.cfg.GetAudio()

	transcoder, err := audio.NewExecTranscoder(audioCfg.TranscoderCommand, audioCfg.TranscodeTimeout, f.logger)
	if err != nil {
		return nil, err
	}

	return audio.NewIngestor(audioCfg.TempDir, audioCfg.TranscodeExtensions, transcoder, f.logger), nil
}
