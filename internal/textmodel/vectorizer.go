package textmodel

import (
	"math"
	"regexp"
	"sort"

	"github.com/mikey/scamshield/internal/utils"
)

// tokenPattern keeps runs of two or more word characters
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// entry is one non-zero component of a sparse vector
type entry struct {
	index  int
	weight float64
}

// sparseVector holds entries sorted by index
type sparseVector []entry

// terms extracts unigrams and bigrams from already normalized text. Stop
// words are removed before bigrams are formed.
func terms(normalized string) []string {
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(normalized, -1) {
		if !isStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}

	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// vectorizer maps text to L2-normalized TF-IDF vectors over a fixed vocabulary
type vectorizer struct {
	vocabulary map[string]int
	features   []string
	idf        []float64
}

// fitVectorizer builds the vocabulary and smoothed IDF weights from the
// normalized documents
func fitVectorizer(docs []string) *vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range terms(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	features := make([]string, 0, len(df))
	for term := range df {
		features = append(features, term)
	}
	sort.Strings(features)

	n := float64(len(docs))
	vocabulary := make(map[string]int, len(features))
	idf := make([]float64, len(features))
	for i, term := range features {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return &vectorizer{vocabulary: vocabulary, features: features, idf: idf}
}

// transform vectorizes normalized text. Out-of-vocabulary terms are ignored.
func (v *vectorizer) transform(normalized string) sparseVector {
	counts := make(map[int]float64)
	for _, term := range terms(normalized) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(sparseVector, 0, len(counts))
	var sumSq float64
	for idx, tf := range counts {
		w := tf * v.idf[idx]
		vec = append(vec, entry{index: idx, weight: w})
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	for i := range vec {
		vec[i].weight /= norm
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].index < vec[j].index })
	return vec
}

// transformText normalizes raw text before vectorizing it
func (v *vectorizer) transformText(text string) sparseVector {
	return v.transform(utils.Normalize(text))
}
