package textmodel

import (
	"math"
	"sort"
)

// Contribution is one vocabulary term's share of the positive-class score
type Contribution struct {
	Term  string
	Score float64
}

// TopContributions ranks the terms of text by tfidf weight times the
// positive class coefficient. Only strictly positive scores, rounded to three
// decimals, are returned, at most n of them.
func (m *Model) TopContributions(text string, n int) []Contribution {
	if n <= 0 {
		return []Contribution{}
	}

	row := m.linear.coef[m.positive]
	x := m.vec.transformText(text)

	contributions := make([]Contribution, 0, len(x))
	for _, e := range x {
		score := roundTo(e.weight*row[e.index], 3)
		if score > 0 {
			contributions = append(contributions, Contribution{
				Term:  m.vec.features[e.index],
				Score: score,
			})
		}
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		if contributions[i].Score != contributions[j].Score {
			return contributions[i].Score > contributions[j].Score
		}
		return contributions[i].Term < contributions[j].Term
	})

	if len(contributions) > n {
		contributions = contributions[:n]
	}
	return contributions
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
