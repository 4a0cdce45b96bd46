package di

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mikey/scamshield/internal/adapters/frontend"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sttScript prints a fixed transcript in the exec recognizer format
const sttScript = `sh -c 'printf "{\"text\": \"please share your OTP now\"}"' stt`

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func writeWAV(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           make([]int, 800),
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
}

func writeConfig(t *testing.T, dir, tempDir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  frontend: http
  listen_address: 127.0.0.1:0
  mode: test
analysis:
  scorer: keyword
recognizer:
  provider: exec
  exec_command: '` + strings.ReplaceAll(sttScript, "'", "''") + `'
audio:
  temp_dir: ` + tempDir + `
logging:
  level: error
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuildContainerAnalyzesRecording(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	audioDir := filepath.Join(dir, "audio")
	require.NoError(t, os.Mkdir(audioDir, 0o700))

	container, err := BuildContainer(writeConfig(t, dir, audioDir))
	require.NoError(t, err)

	wavPath := filepath.Join(dir, "call.wav")
	writeWAV(t, wavPath)
	data, err := os.ReadFile(wavPath)
	require.NoError(t, err)

	err = container.Invoke(func(service *core.AnalysisService, fe ports.Frontend) {
		assert.IsType(t, &frontend.HTTPServer{}, fe)
		assert.Equal(t, "keyword", service.ScorerName())

		result, err := service.Analyze(context.Background(), &core.AudioBlob{FileName: "call.wav", Data: data})
		require.NoError(t, err)
		assert.Equal(t, core.StatusSuspicious, result.Status)
		assert.Equal(t, 0.92, result.Confidence)
		assert.Equal(t, []string{"Mentioned 'otp'"}, result.Reasons)
		assert.Equal(t, "please share your OTP now", result.Transcription)
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(audioDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuildContainerFailsOnBadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
analysis:
  scorer: ml
corpus:
  type: json
  path: `+filepath.Join(dir, "missing.json")+`
logging:
  level: error
`), 0o600))

	container, err := BuildContainer(path)
	require.NoError(t, err)

	err = container.Invoke(func(service *core.AnalysisService) {
		t.Fatal("service must not be constructed")
	})
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-scorer", "keyword", "-json", "call.webm"})
	require.NoError(t, err)
	assert.Equal(t, "keyword", flags.Scorer)
	assert.True(t, flags.JSONOutput)
	assert.Equal(t, "call.webm", flags.InputFile)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = ParseFlags(fs, nil)
	assert.Error(t, err)
}

func TestBuildCLIContainer(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "call.wav")
	writeWAV(t, wavPath)

	flags := &CLIFlags{
		Scorer:     "keyword",
		Recognizer: "exec",
		STTCommand: sttScript,
		InputFile:  wavPath,
		JSONOutput: true,
		ConfigFile: writeConfig(t, dir, dir),
	}

	var out bytes.Buffer
	container, err := BuildCLIContainer(flags, &out)
	require.NoError(t, err)

	err = container.Invoke(func(cli *frontend.CliFrontend) {
		result, err := cli.AnalyzeFile(context.Background(), flags.InputFile)
		require.NoError(t, err)
		assert.Equal(t, core.StatusSuspicious, result.Status)
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"audioFileName": "call.wav"`)
}
