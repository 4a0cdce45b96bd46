// Package corpus loads the labeled training examples the classifier is
// fitted on.
package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Supported file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FileSource reads a list of {text, label} objects from a JSON or YAML file
type FileSource struct {
	path   string
	format string
	logger *zap.Logger
}

// NewFileSource creates a new file backed corpus source
func NewFileSource(path, format string, logger *zap.Logger) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("corpus path is required")
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("unsupported corpus file format: %s", format)
	}
	return &FileSource{path: path, format: format, logger: logger}, nil
}

// Load implements core.CorpusSource
func (s *FileSource) Load(_ context.Context) ([]core.TrainingExample, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var examples []core.TrainingExample
	switch s.format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&examples); err != nil {
			return nil, fmt.Errorf("failed to parse JSON corpus %s: %w", s.path, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&examples); err != nil {
			return nil, fmt.Errorf("failed to parse YAML corpus %s: %w", s.path, err)
		}
	}

	s.logger.Info("Loaded training corpus",
		zap.String("path", s.path),
		zap.String("format", s.format),
		zap.Int("examples", len(examples)))
	return examples, nil
}
