package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/scamshield/internal/adapters/corpus"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

// CorpusFactory creates training corpus sources based on configuration
type CorpusFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCorpusFactory creates a new corpus factory
func NewCorpusFactory(cfg *config.Config, logger *zap.Logger) *CorpusFactory {
	return &CorpusFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCorpusSource creates a corpus source based on the configuration
func (f *CorpusFactory) CreateCorpusSource() (core.CorpusSource, error) {
	corpusCfg := f.cfg.GetCorpus()

	switch corpusCfg.Type {
	case corpus.FormatJSON, corpus.FormatYAML:
		return corpus.NewFileSource(corpusCfg.Path, corpusCfg.Type, f.logger)
	case "memory":
		var examples []core.TrainingExample
		if err := f.cfg.UnmarshalKey("corpus.examples", &examples); err != nil {
			return nil, fmt.Errorf("invalid corpus.examples: %w", err)
		}
		return corpus.NewMemorySource(examples), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(corpusCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return corpus.NewSQLiteSource(corpusCfg.SQLitePath, corpusCfg.Table, f.logger)
	case "mysql":
		return corpus.NewMySQLSource(corpusCfg.MySQLDSN, corpusCfg.Table, f.logger)
	default:
		return nil, fmt.Errorf("unsupported corpus type: %s", corpusCfg.Type)
	}
}
