package corpus

import (
	"context"

	"github.com/mikey/scamshield/internal/core"
)

// MemorySource serves examples held in memory, typically declared inline in
// the configuration file under corpus.examples
type MemorySource struct {
	examples []core.TrainingExample
}

// NewMemorySource creates a new in-memory corpus source
func NewMemorySource(examples []core.TrainingExample) *MemorySource {
	return &MemorySource{examples: append([]core.TrainingExample(nil), examples...)}
}

// Load implements core.CorpusSource
func (s *MemorySource) Load(_ context.Context) ([]core.TrainingExample, error) {
	return append([]core.TrainingExample(nil), s.examples...), nil
}
