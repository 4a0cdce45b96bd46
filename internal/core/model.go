package core

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// Status labels shared by the keyword and LLM scorers
const (
	StatusSuspicious    = "suspicious"
	StatusNotSuspicious = "not suspicious"
)

// NoEvidenceReason is reported when no speech could be transcribed
const NoEvidenceReason = "No speech could be transcribed; no evidence found."

// ErrEmptyAudio is returned when an uploaded blob carries no bytes
var ErrEmptyAudio = errors.New("audio payload is empty")

// AudioBlob is an uploaded recording together with its original file name
type AudioBlob struct {
	FileName string
	Data     []byte
}

// Extension returns the lowercased file extension, including the dot
func (b *AudioBlob) Extension() string {
	return strings.ToLower(filepath.Ext(b.FileName))
}

// Transcription is the outcome of speech recognition for one request.
// An empty Text means no evidence; Err records why, for logging only.
type Transcription struct {
	Text string
	Err  error
}

// Degraded reports whether the transcription pipeline failed
func (t Transcription) Degraded() bool {
	return t.Err != nil
}

// TrainingExample is one labeled entry of the training corpus
type TrainingExample struct {
	Text  string `json:"text" yaml:"text" mapstructure:"text"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// Verdict is what every TextScorer produces
type Verdict struct {
	Status     string
	Confidence float64
	Reasons    []string
}

// AnalysisResult is the response returned for a submitted recording
type AnalysisResult struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	Confidence     float64  `json:"confidence"`
	Reasons        []string `json:"reasons"`
	Timestamp      string   `json:"timestamp"`
	SourceFileName string   `json:"audioFileName"`
	Transcription  string   `json:"transcription"`
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
