package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/scamshield/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeRecording(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "call.webm")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o600))
	return path
}

func TestCliFrontendText(t *testing.T) {
	var out bytes.Buffer
	analyzer := &fakeAnalyzer{}
	cli := NewCliFrontend(analyzer, zap.NewNop(), &out, false, true)

	result, err := cli.AnalyzeFile(context.Background(), writeRecording(t))
	require.NoError(t, err)
	assert.Equal(t, "call.webm", analyzer.blob.FileName)
	assert.Equal(t, core.StatusSuspicious, result.Status)

	printed := out.String()
	assert.Contains(t, printed, "Status: suspicious")
	assert.Contains(t, printed, "Confidence: 0.9200")
	assert.Contains(t, printed, "  - Mentioned 'otp'")
	assert.Contains(t, printed, "please share your otp now")
}

func TestCliFrontendJSON(t *testing.T) {
	var out bytes.Buffer
	cli := NewCliFrontend(&fakeAnalyzer{}, zap.NewNop(), &out, true, false)

	_, err := cli.AnalyzeFile(context.Background(), writeRecording(t))
	require.NoError(t, err)

	var got core.AnalysisResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "call.webm", got.SourceFileName)
}

func TestCliFrontendMissingFile(t *testing.T) {
	cli := NewCliFrontend(&fakeAnalyzer{}, zap.NewNop(), &bytes.Buffer{}, false, false)

	_, err := cli.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
	assert.NoError(t, cli.Start())
	assert.NoError(t, cli.Stop())
}
