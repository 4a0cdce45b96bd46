// Package textmodel implements the TF-IDF + logistic regression text
// classifier used to score call transcripts.
//
// A Model is fitted once from a labeled corpus and is immutable afterwards,
// so it can be shared by any number of goroutines without locking.
package textmodel

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
)

var (
	// ErrEmptyCorpus is returned when there is nothing to train on
	ErrEmptyCorpus = errors.New("training corpus is empty")
	// ErrInvalidExample is returned for examples without text or label
	ErrInvalidExample = errors.New("invalid training example")
	// ErrSingleLabel is returned when the corpus has fewer than two labels
	ErrSingleLabel = errors.New("training corpus needs at least two distinct labels")
	// ErrMissingPositiveLabel is returned when the designated positive label
	// does not occur in the corpus
	ErrMissingPositiveLabel = errors.New("positive label not present in training corpus")
	// ErrEmptyVocabulary is returned when only stop words remain
	ErrEmptyVocabulary = errors.New("empty vocabulary; corpus contains only stop words")
)

// Options controls model fitting
type Options struct {
	// PositiveLabel is the class whose coefficients explain a prediction
	PositiveLabel string
	// AllowedLabels restricts corpus labels when non-empty
	AllowedLabels []string
	MaxIter       int
	Seed          int64
	C             float64
	LearningRate  float64
	Tolerance     float64
}

// DefaultOptions mirrors the defaults of the configuration layer
func DefaultOptions() Options {
	return Options{
		PositiveLabel: "spam",
		MaxIter:       1000,
		Seed:          42,
		C:             1.0,
		LearningRate:  0.5,
		Tolerance:     1e-6,
	}
}

// Prediction is the classifier output for one text
type Prediction struct {
	Label         string
	Probabilities map[string]float64
}

// Model is a fitted TF-IDF vectorizer plus linear classifier
type Model struct {
	vec      *vectorizer
	classes  []string
	linear   *linearModel
	positive int
	epochs   int
}

// Fit validates the corpus and trains a model on it
func Fit(examples []core.TrainingExample, opts Options) (*Model, error) {
	classes, err := validate(examples, opts)
	if err != nil {
		return nil, err
	}
	if opts.MaxIter <= 0 {
		return nil, fmt.Errorf("max iterations must be positive, got %d", opts.MaxIter)
	}
	if opts.C <= 0 || opts.LearningRate <= 0 {
		return nil, fmt.Errorf("regularization strength and learning rate must be positive")
	}

	docs := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = utils.Normalize(ex.Text)
	}

	vec := fitVectorizer(docs)
	if len(vec.features) == 0 {
		return nil, ErrEmptyVocabulary
	}

	classIndex := make(map[string]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	xs := make([]sparseVector, len(docs))
	ys := make([]int, len(docs))
	for i, doc := range docs {
		xs[i] = vec.transform(doc)
		ys[i] = classIndex[examples[i].Label]
	}

	linear, epochs := fitLinear(xs, ys, len(classes), len(vec.features), sgdOptions{
		maxIter:      opts.MaxIter,
		seed:         opts.Seed,
		c:            opts.C,
		learningRate: opts.LearningRate,
		tolerance:    opts.Tolerance,
	})

	return &Model{
		vec:      vec,
		classes:  classes,
		linear:   linear,
		positive: classIndex[opts.PositiveLabel],
		epochs:   epochs,
	}, nil
}

// validate checks the corpus before any fitting and returns the sorted
// class labels
func validate(examples []core.TrainingExample, opts Options) ([]string, error) {
	if len(examples) == 0 {
		return nil, ErrEmptyCorpus
	}

	allowed := make(map[string]bool, len(opts.AllowedLabels))
	for _, l := range opts.AllowedLabels {
		allowed[l] = true
	}

	seen := make(map[string]bool)
	for i, ex := range examples {
		if strings.TrimSpace(ex.Text) == "" {
			return nil, fmt.Errorf("%w: example %d has empty text", ErrInvalidExample, i)
		}
		if ex.Label == "" {
			return nil, fmt.Errorf("%w: example %d has empty label", ErrInvalidExample, i)
		}
		if len(allowed) > 0 && !allowed[ex.Label] {
			return nil, fmt.Errorf("%w: example %d has unknown label %q", ErrInvalidExample, i, ex.Label)
		}
		seen[ex.Label] = true
	}

	if len(seen) < 2 {
		return nil, ErrSingleLabel
	}
	if !seen[opts.PositiveLabel] {
		return nil, fmt.Errorf("%w: %q", ErrMissingPositiveLabel, opts.PositiveLabel)
	}

	classes := make([]string, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	return classes, nil
}

// Predict returns the most probable label and the full class distribution
func (m *Model) Predict(text string) Prediction {
	p := softmax(m.linear.logits(m.vec.transformText(text)))

	best := 0
	probs := make(map[string]float64, len(m.classes))
	for k, c := range m.classes {
		probs[c] = p[k]
		if p[k] > p[best] {
			best = k
		}
	}
	return Prediction{Label: m.classes[best], Probabilities: probs}
}

// Classes returns the class labels in coefficient order
func (m *Model) Classes() []string {
	return append([]string(nil), m.classes...)
}

// PositiveLabel returns the class used for explanations
func (m *Model) PositiveLabel() string {
	return m.classes[m.positive]
}

// VocabularySize returns the number of unigram and bigram features
func (m *Model) VocabularySize() int {
	return len(m.vec.features)
}

// Epochs returns how many passes over the corpus fitting took
func (m *Model) Epochs() int {
	return m.epochs
}

// Coefficient returns the learned weight of term for label
func (m *Model) Coefficient(label, term string) (float64, bool) {
	idx, ok := m.vec.vocabulary[term]
	if !ok {
		return 0, false
	}
	for k, c := range m.classes {
		if c == label {
			return m.linear.coef[k][idx], true
		}
	}
	return 0, false
}
