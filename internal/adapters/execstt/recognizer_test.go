package execstt

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fileAudio struct{ path string }

func (a fileAudio) Path() string { return a.path }
func (a fileAudio) Close() error { return nil }

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestNewRecognizerValidation(t *testing.T) {
	_, err := NewRecognizer("", "en", zap.NewNop())
	assert.Error(t, err)

	_, err = NewRecognizer(`whisper "unterminated`, "en", zap.NewNop())
	assert.Error(t, err)
}

func TestRecognizerPassesAudioAndLanguage(t *testing.T) {
	requireShell(t)

	// $0 is "stt"; the remaining arguments are --audio <path> --language <lang>
	script := `printf "{\"text\": \" %s %s %s %s \"}" "$1" "$2" "$3" "$4"`
	r, err := NewRecognizer(`sh -c '`+script+`' stt`, "en", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "exec", r.Name())

	text, err := r.Recognize(context.Background(), fileAudio{path: "/tmp/canonical.wav"})
	require.NoError(t, err)
	assert.Equal(t, "--audio /tmp/canonical.wav --language en", text)
}

func TestRecognizerCommandFailure(t *testing.T) {
	requireShell(t)

	r, err := NewRecognizer(`sh -c 'echo model missing >&2; exit 1' stt`, "", zap.NewNop())
	require.NoError(t, err)

	_, err = r.Recognize(context.Background(), fileAudio{path: "x.wav"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model missing")
}

func TestRecognizerInvalidOutput(t *testing.T) {
	requireShell(t)

	r, err := NewRecognizer(`sh -c 'echo not-json' stt`, "", zap.NewNop())
	require.NoError(t, err)

	_, err = r.Recognize(context.Background(), fileAudio{path: "x.wav"})
	assert.Error(t, err)
}
