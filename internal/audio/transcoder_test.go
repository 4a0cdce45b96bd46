package audio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewExecTranscoderValidation(t *testing.T) {
	_, err := NewExecTranscoder("", time.Second, zap.NewNop())
	assert.Error(t, err)

	_, err = NewExecTranscoder("ffmpeg -i {input} out.wav", time.Second, zap.NewNop())
	assert.Error(t, err)

	_, err = NewExecTranscoder(`ffmpeg -i "{input}`, time.Second, zap.NewNop())
	assert.Error(t, err)

	_, err = NewExecTranscoder("ffmpeg -y -i {input} {output}", time.Second, zap.NewNop())
	assert.NoError(t, err)
}

func TestExecTranscoderRunsCommand(t *testing.T) {
	if _, err := exec.LookPath("cp"); err != nil {
		t.Skip("cp not available")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "in.webm")
	output := filepath.Join(dir, "out.wav")
	require.NoError(t, os.WriteFile(input, []byte("payload"), 0o600))

	tc, err := NewExecTranscoder("cp {input} {output}", 5*time.Second, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, tc.Transcode(context.Background(), input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestExecTranscoderReportsFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	tc, err := NewExecTranscoder(`sh -c "echo bad input >&2; exit 3" {input} {output}`, 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	err = tc.Transcode(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad input")
}
