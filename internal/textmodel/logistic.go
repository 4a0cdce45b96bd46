package textmodel

import (
	"math"
	"math/rand"
)

// minScale triggers folding the lazy L2 scale back into the weights
const minScale = 1e-9

// sgdOptions controls logistic regression fitting
type sgdOptions struct {
	maxIter      int
	seed         int64
	c            float64
	learningRate float64
	tolerance    float64
}

// linearModel is a multinomial logistic regression: one coefficient row and
// one intercept per class
type linearModel struct {
	coef      [][]float64
	intercept []float64
}

// logits computes coef·x + intercept for every class
func (m *linearModel) logits(x sparseVector) []float64 {
	z := make([]float64, len(m.coef))
	for k, row := range m.coef {
		s := m.intercept[k]
		for _, e := range x {
			s += row[e.index] * e.weight
		}
		z[k] = s
	}
	return z
}

// softmax converts logits in place into probabilities
func softmax(z []float64) []float64 {
	maxZ := math.Inf(-1)
	for _, v := range z {
		if v > maxZ {
			maxZ = v
		}
	}
	var sum float64
	for k, v := range z {
		z[k] = math.Exp(v - maxZ)
		sum += z[k]
	}
	for k := range z {
		z[k] /= sum
	}
	return z
}

// fitLinear trains an L2-regularized softmax regression with stochastic
// gradient descent. Sample order is shuffled every epoch by a PRNG seeded
// with opts.seed, so fitting is reproducible. The L2 shrinkage is applied
// lazily through a shared scale factor to keep updates sparse.
func fitLinear(xs []sparseVector, ys []int, numClasses, numFeatures int, opts sgdOptions) (*linearModel, int) {
	n := len(xs)
	rng := rand.New(rand.NewSource(opts.seed))
	lambda := 1.0 / (opts.c * float64(n))
	if opts.learningRate*lambda >= 1 {
		// shrinkage must stay a contraction
		opts.learningRate = 0.5 / lambda
	}

	w := make([][]float64, numClasses)
	for k := range w {
		w[k] = make([]float64, numFeatures)
	}
	b := make([]float64, numClasses)
	scale := 1.0

	foldScale := func() {
		for k := range w {
			for j := range w[k] {
				w[k][j] *= scale
			}
		}
		scale = 1.0
	}

	objective := func() float64 {
		var loss float64
		z := make([]float64, numClasses)
		for i, x := range xs {
			for k := range z {
				s := b[k]
				for _, e := range x {
					s += scale * w[k][e.index] * e.weight
				}
				z[k] = s
			}
			p := softmax(z)
			loss -= math.Log(math.Max(p[ys[i]], 1e-300))
		}
		var sq float64
		for k := range w {
			for _, v := range w[k] {
				sq += v * v
			}
		}
		return loss/float64(n) + 0.5*lambda*scale*scale*sq
	}

	step := 0
	prev := math.Inf(1)
	epochs := 0
	z := make([]float64, numClasses)
	for epoch := 0; epoch < opts.maxIter; epoch++ {
		epochs = epoch + 1
		for _, i := range rng.Perm(n) {
			lr := opts.learningRate / (1 + opts.learningRate*lambda*float64(step))
			step++

			x := xs[i]
			for k := range z {
				s := b[k]
				for _, e := range x {
					s += scale * w[k][e.index] * e.weight
				}
				z[k] = s
			}
			p := softmax(z)

			scale *= 1 - lr*lambda
			if scale < minScale {
				foldScale()
			}
			for k := range w {
				g := p[k]
				if k == ys[i] {
					g -= 1
				}
				if g == 0 {
					continue
				}
				for _, e := range x {
					w[k][e.index] -= lr * g * e.weight / scale
				}
				b[k] -= lr * g
			}
		}

		loss := objective()
		if math.Abs(prev-loss) < opts.tolerance {
			break
		}
		prev = loss
	}

	foldScale()
	return &linearModel{coef: w, intercept: b}, epochs
}
