package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/factory"
	"github.com/mikey/scamshield/internal/logging"
	"github.com/mikey/scamshield/internal/ports"
	"github.com/mikey/scamshield/internal/utils"
)

// BuildContainer creates and configures a dependency injection container for
// the daemon. An empty configFile searches the default locations.
func BuildContainer(configFile string) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(func() (*config.Config, error) {
		if configFile != "" {
			return config.NewFromFile(configFile)
		}
		return config.New()
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := registerPipeline(container); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// registerPipeline registers everything between configuration and the
// analysis service. It expects *config.Config and *zap.Logger to be provided.
func registerPipeline(container *dig.Container) error {
	// Register factories
	constructors := []interface{}{
		factory.NewTextProcessorFactory,
		factory.NewLLMFactory,
		factory.NewCorpusFactory,
		factory.NewModelFactory,
		factory.NewScorerFactory,
		factory.NewRecognizerFactory,
		factory.NewAudioFactory,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register scorer; fitting the classifier happens here
	if err := container.Provide(func(f *factory.ScorerFactory) (core.TextScorer, error) {
		return f.CreateScorer()
	}); err != nil {
		return err
	}

	// Register recognizer
	if err := container.Provide(func(f *factory.RecognizerFactory) (core.Recognizer, error) {
		return f.CreateRecognizer()
	}); err != nil {
		return err
	}

	// Register audio ingestor
	if err := container.Provide(func(f *factory.AudioFactory) (core.AudioIngestor, error) {
		return f.CreateIngestor()
	}); err != nil {
		return err
	}

	// Register transcription service
	if err := container.Provide(func(
		ingestor core.AudioIngestor,
		recognizer core.Recognizer,
		cfg *config.Config,
		logger *zap.Logger,
	) core.Transcriber {
		return core.NewTranscriptionService(ingestor, recognizer, cfg.GetRecognizer().Timeout, logger)
	}); err != nil {
		return err
	}

	// Register analysis service
	return container.Provide(core.NewAnalysisService)
}
