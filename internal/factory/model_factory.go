package factory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/textmodel"
	"go.uber.org/zap"
)

// ModelFactory fits the text classifier from the configured corpus
type ModelFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	corpusFactory *CorpusFactory
}

// NewModelFactory creates a new model factory
func NewModelFactory(cfg *config.Config, logger *zap.Logger, corpusFactory *CorpusFactory) *ModelFactory {
	return &ModelFactory{
		cfg:           cfg,
		logger:        logger,
		corpusFactory: corpusFactory,
	}
}

// Options translates the classifier configuration into fitting options
func (f *ModelFactory) Options() textmodel.Options {
	classifierCfg := f.cfg.GetClassifier()
	return textmodel.Options{
		PositiveLabel: classifierCfg.PositiveLabel,
		AllowedLabels: f.cfg.GetCorpus().AllowedLabels,
		MaxIter:       classifierCfg.MaxIter,
		Seed:          classifierCfg.Seed,
		C:             classifierCfg.C,
		LearningRate:  classifierCfg.LearningRate,
		Tolerance:     classifierCfg.Tolerance,
	}
}

// CreateModel loads the corpus and fits the model. Any error is fatal for
// startup.
func (f *ModelFactory) CreateModel(ctx context.Context) (*textmodel.Model, error) {
	source, err := f.corpusFactory.CreateCorpusSource()
	if err != nil {
		return nil, fmt.Errorf("failed to create corpus source: %w", err)
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	examples, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load training corpus: %w", err)
	}

	start := time.Now()
	model, err := textmodel.Fit(examples, f.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}

	f.logger.Info("Fitted text classifier",
		zap.Int("examples", len(examples)),
		zap.Strings("classes", model.Classes()),
		zap.String("positive_label", model.PositiveLabel()),
		zap.Int("vocabulary_size", model.VocabularySize()),
		zap.Int("epochs", model.Epochs()),
		zap.Duration("elapsed", time.Since(start)))
	return model, nil
}

