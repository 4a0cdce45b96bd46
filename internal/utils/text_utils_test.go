package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mikey/scamshield/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTruncateKeepsRunes(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	text := strings.Repeat("é", 10) // 20 bytes
	got := tp.Truncate(text, 5)

	require.True(t, strings.HasSuffix(got, TruncationMarker))
	body := strings.TrimSuffix(got, TruncationMarker)
	assert.True(t, utf8.ValidString(body))
	assert.Equal(t, "éé", body)
}

func TestTruncateDisabled(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())
	assert.Equal(t, "short", tp.Truncate("short", 0))
	assert.Equal(t, "short", tp.Truncate("short", 100))
}

func TestPrepareTranscriptSanitizes(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())
	got := tp.PrepareTranscript("  share \xff your otp ", 0)
	assert.Equal(t, "share  your otp", got)
}

func TestParseScamResponse(t *testing.T) {
	verdict, err := ParseScamResponse(`{"is_scam": true, "confidence": 0.8, "reasons": ["asks for OTP"]}`)
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuspicious, verdict.Status)
	assert.Equal(t, 0.8, verdict.Confidence)
	assert.Equal(t, []string{"asks for OTP"}, verdict.Reasons)
}

func TestParseScamResponseWrappedInProse(t *testing.T) {
	verdict, err := ParseScamResponse("Sure! Here you go:\n{\"is_scam\": false, \"confidence\": 1.7}\nThanks")
	require.NoError(t, err)
	assert.Equal(t, core.StatusNotSuspicious, verdict.Status)
	assert.Equal(t, 1.0, verdict.Confidence)
	assert.Len(t, verdict.Reasons, 1)
}

func TestParseScamResponseGarbage(t *testing.T) {
	_, err := ParseScamResponse("no json here")
	assert.Error(t, err)
}
