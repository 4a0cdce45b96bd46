package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fileAudio struct{ path string }

func (a fileAudio) Path() string { return a.path }
func (a fileAudio) Close() error { return nil }

func newFactory(t *testing.T, baseURL string) *Factory {
	t.Helper()
	v := config.NewEmptyViper()
	v.Set("openai.api_key", "test-key")
	v.Set("openai.base_url", baseURL)
	v.Set("openai.transcription_model", "whisper-large-v3-turbo")
	logger := zap.NewNop()
	return NewFactory(config.NewFromViper(v), logger, utils.NewTextProcessor(logger))
}

func TestOpenAIClientScore(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		if assert.Len(t, req.Messages, 2) {
			gotPrompt = req.Messages[1].Content
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":"Sure: {\"is_scam\": true, \"confidence\": 0.97, \"reasons\": [\"asks for OTP\"]}"}}]}`)
	}))
	defer srv.Close()

	scorer, err := newFactory(t, srv.URL+"/v1").CreateScorer()
	require.NoError(t, err)
	assert.Equal(t, "llm:openai", scorer.Name())

	v, err := scorer.Score(context.Background(), "please share your OTP now")
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuspicious, v.Status)
	assert.Equal(t, 0.97, v.Confidence)
	assert.Equal(t, []string{"asks for OTP"}, v.Reasons)
	assert.Contains(t, gotPrompt, "please share your OTP now")
}

func TestOpenAIClientEmptyTranscriptSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	scorer, err := newFactory(t, srv.URL+"/v1").CreateScorer()
	require.NoError(t, err)

	v, err := scorer.Score(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, core.StatusNotSuspicious, v.Status)
	assert.Equal(t, []string{core.NoEvidenceReason}, v.Reasons)
}

func TestOpenAIClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer srv.Close()

	scorer, err := newFactory(t, srv.URL+"/v1").CreateScorer()
	require.NoError(t, err)

	_, err = scorer.Score(context.Background(), "hello")
	assert.Error(t, err)
}

func TestWhisperRecognizer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-large-v3-turbo", r.FormValue("model"))
		assert.Equal(t, "en", r.FormValue("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":" please share your OTP now "}`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "canonical.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	rec, err := newFactory(t, srv.URL+"/v1").CreateRecognizer()
	require.NoError(t, err)
	assert.Equal(t, "openai", rec.Name())

	text, err := rec.Recognize(context.Background(), fileAudio{path: path})
	require.NoError(t, err)
	assert.Equal(t, "please share your OTP now", text)
}

func TestWhisperRecognizerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"could not decode audio"}}`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "canonical.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	rec, err := newFactory(t, srv.URL+"/v1").CreateRecognizer()
	require.NoError(t, err)

	_, err = rec.Recognize(context.Background(), fileAudio{path: path})
	assert.Error(t, err)
}
