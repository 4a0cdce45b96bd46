// Package audio turns uploaded recordings into request-private PCM WAV files
// that speech recognizers can read.
package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

const (
	sourceBaseName    = "source"
	canonicalFileName = "canonical.wav"
	wavExtension      = ".wav"
	pcmFormat         = 1
)

// Format describes a validated WAV file
type Format struct {
	SampleRate int
	NumChans   int
	BitDepth   int
}

// Workspace is a request-private directory holding one decodable WAV file.
// It implements core.DecodedAudio.
type Workspace struct {
	dir    string
	path   string
	format Format
}

// Path implements core.DecodedAudio
func (w *Workspace) Path() string {
	return w.path
}

// Format returns the header information of the WAV file
func (w *Workspace) Format() Format {
	return w.format
}

// Close implements core.DecodedAudio. It is safe to call more than once.
func (w *Workspace) Close() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("failed to remove audio workspace %s: %w", w.dir, err)
	}
	return nil
}

// Ingestor writes uploads to disk and transcodes container formats
type Ingestor struct {
	tempDir    string
	transcode  map[string]bool
	transcoder Transcoder
	logger     *zap.Logger
}

// NewIngestor creates a new ingestor. tempDir may be empty to use the
// system default. extensions lists the formats handed to the transcoder.
func NewIngestor(tempDir string, extensions []string, transcoder Transcoder, logger *zap.Logger) *Ingestor {
	transcode := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		transcode[ext] = true
	}

	return &Ingestor{
		tempDir:    tempDir,
		transcode:  transcode,
		transcoder: transcoder,
		logger:     logger,
	}
}

// Ingest implements core.AudioIngestor. On error or panic nothing created
// by the call is left on disk.
func (i *Ingestor) Ingest(ctx context.Context, blob *core.AudioBlob) (core.DecodedAudio, error) {
	if blob == nil || len(blob.Data) == 0 {
		return nil, core.ErrEmptyAudio
	}

	dir, err := os.MkdirTemp(i.tempDir, "scamshield-audio-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create audio workspace: %w", err)
	}
	ws := &Workspace{dir: dir}

	ok := false
	defer func() {
		if ok {
			return
		}
		if cerr := ws.Close(); cerr != nil {
			i.logger.Warn("Failed to clean up audio workspace", zap.Error(cerr))
		}
	}()

	if err := i.prepare(ctx, ws, blob); err != nil {
		return nil, err
	}
	ok = true

	i.logger.Debug("Ingested audio",
		zap.String("file", blob.FileName),
		zap.Int("bytes", len(blob.Data)),
		zap.Int("sample_rate", ws.format.SampleRate),
		zap.Int("channels", ws.format.NumChans))
	return ws, nil
}

func (i *Ingestor) prepare(ctx context.Context, ws *Workspace, blob *core.AudioBlob) error {
	ext := blob.Extension()
	source := filepath.Join(ws.dir, sourceBaseName+ext)
	if err := os.WriteFile(source, blob.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	ws.path = source

	if i.transcode[ext] {
		if i.transcoder == nil {
			return fmt.Errorf("no transcoder configured for %s audio", ext)
		}
		canonical := filepath.Join(ws.dir, canonicalFileName)
		if err := i.transcoder.Transcode(ctx, source, canonical); err != nil {
			return fmt.Errorf("failed to transcode %s audio: %w", ext, err)
		}
		if err := os.Remove(source); err != nil {
			i.logger.Warn("Failed to remove transcoder input", zap.String("path", source), zap.Error(err))
		}
		ws.path = canonical
	} else if ext != wavExtension {
		return fmt.Errorf("unsupported audio format %q", ext)
	}

	format, err := validateWAV(ws.path)
	if err != nil {
		return err
	}
	ws.format = format
	return nil
}

// validateWAV checks that path holds a PCM WAV file
func validateWAV(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Format{}, fmt.Errorf("audio is not a valid WAV file")
	}
	if d.WavAudioFormat != pcmFormat {
		return Format{}, fmt.Errorf("unsupported WAV encoding %d, want PCM", d.WavAudioFormat)
	}

	return Format{
		SampleRate: int(d.SampleRate),
		NumChans:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}, nil
}
