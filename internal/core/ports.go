package core

import (
	"context"
)

// TextScorer turns a transcription into a verdict. The keyword, classifier
// and LLM scorers are interchangeable implementations.
type TextScorer interface {
	// Name identifies the scorer in logs
	Name() string

	// Score evaluates the transcription text
	Score(ctx context.Context, text string) (*Verdict, error)
}

// DecodedAudio is a canonical waveform file owned by a single request
type DecodedAudio interface {
	// Path is the location of the PCM WAV file
	Path() string

	// Close releases all temporary storage backing the audio
	Close() error
}

// AudioIngestor converts an uploaded blob into decodable audio
type AudioIngestor interface {
	Ingest(ctx context.Context, blob *AudioBlob) (DecodedAudio, error)
}

// Recognizer converts canonical audio into text
type Recognizer interface {
	// Name identifies the recognizer in logs
	Name() string

	// Recognize returns the best transcript for the audio
	Recognize(ctx context.Context, audio DecodedAudio) (string, error)
}

// CorpusSource provides the labeled training dataset
type CorpusSource interface {
	// Load reads all training examples
	Load(ctx context.Context) ([]TrainingExample, error)
}
