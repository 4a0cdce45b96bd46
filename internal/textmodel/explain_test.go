package textmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopContributions(t *testing.T) {
	m := fitCorpus(t)

	got := m.TopContributions("Please share your OTP now to verify your bank account", 3)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)

	for i, c := range got {
		assert.Greater(t, c.Score, 0.0, "term %q", c.Term)
		assert.Equal(t, roundTo(c.Score, 3), c.Score)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Score, c.Score)
		}
	}
}

func TestTopContributionsNonPositiveN(t *testing.T) {
	m := fitCorpus(t)

	for _, n := range []int{0, -1} {
		got := m.TopContributions("share your otp", n)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestTopContributionsLegitimateText(t *testing.T) {
	m := fitCorpus(t)

	got := m.TopContributions("see you at dinner on thursday", 5)
	assert.Empty(t, got)
}

func TestTopContributionsUnknownText(t *testing.T) {
	m := fitCorpus(t)

	assert.Empty(t, m.TopContributions("", 3))
	assert.Empty(t, m.TopContributions("zebra xylophone", 3))
}

func TestTopContributionsOnlyReturnsTermsFromText(t *testing.T) {
	m := fitCorpus(t)

	got := m.TopContributions("install anydesk", 10)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Contains(t, []string{"install", "anydesk", "install anydesk"}, c.Term)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.124, roundTo(0.12449, 3))
	assert.Equal(t, 0.125, roundTo(0.1245001, 3))
	assert.Equal(t, 0.0, roundTo(0.0004, 3))
}
