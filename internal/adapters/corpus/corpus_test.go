package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/scamshield/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sample = []core.TrainingExample{
	{Text: "Share the OTP you just received", Label: "spam"},
	{Text: "See you at dinner", Label: "legitimate"},
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceJSON(t *testing.T) {
	path := writeFile(t, "corpus.json", `[
		{"text": "Share the OTP you just received", "label": "spam"},
		{"text": "See you at dinner", "label": "legitimate"}
	]`)

	src, err := NewFileSource(path, FormatJSON, zap.NewNop())
	require.NoError(t, err)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestFileSourceYAML(t *testing.T) {
	path := writeFile(t, "corpus.yaml", `
- text: Share the OTP you just received
  label: spam
- text: See you at dinner
  label: legitimate
`)

	src, err := NewFileSource(path, FormatYAML, zap.NewNop())
	require.NoError(t, err)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource("", FormatJSON, zap.NewNop())
	assert.Error(t, err)

	_, err = NewFileSource("corpus.csv", "csv", zap.NewNop())
	assert.Error(t, err)

	missing, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json"), FormatJSON, zap.NewNop())
	require.NoError(t, err)
	_, err = missing.Load(context.Background())
	assert.Error(t, err)

	for name, content := range map[string]string{
		"not-a-list.json": `{"text": "x", "label": "spam"}`,
		"bad-type.json":   `[{"text": 42, "label": "spam"}]`,
		"unknown.json":    `[{"body": "x", "label": "spam"}]`,
	} {
		src, err := NewFileSource(writeFile(t, name, content), FormatJSON, zap.NewNop())
		require.NoError(t, err)
		_, err = src.Load(context.Background())
		assert.Error(t, err, name)
	}

	src, err := NewFileSource(writeFile(t, "unknown.yaml", "- body: x\n  label: spam\n"), FormatYAML, zap.NewNop())
	require.NoError(t, err)
	_, err = src.Load(context.Background())
	assert.Error(t, err)
}

func TestSQLiteSource(t *testing.T) {
	ctx := context.Background()
	src, err := NewSQLiteSource(filepath.Join(t.TempDir(), "corpus.db"), "training_examples", zap.NewNop())
	require.NoError(t, err)
	defer src.Close()

	empty, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, src.insert(ctx, sample))

	got, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestSQLSourceRejectsBadTableName(t *testing.T) {
	_, err := NewSQLiteSource(filepath.Join(t.TempDir(), "corpus.db"), "examples; DROP TABLE x", zap.NewNop())
	assert.Error(t, err)
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource(sample)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	got[0].Label = "changed"
	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "spam", again[0].Label)
}
