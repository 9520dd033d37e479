// Package whisper shells out to the OpenAI Whisper CLI. The tool writes its
// artifacts (.srt/.vtt/.txt/.tsv/.json) into the output directory using the
// input's base name; we never parse them here.
package whisper

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the transcription binary looked up on PATH.
const DefaultCommand = "whisper"

type Adapter struct {
	bin      string
	model    string
	language string
}

func New(binPath, model, language string) *Adapter {
	if binPath == "" {
		binPath = DefaultCommand
	}
	return &Adapter{bin: binPath, model: model, language: language}
}

// Transcribe runs the whisper CLI on videoPath. The task is always
// "translate" so subtitles come out in the target language's text form
// regardless of the detected spoken language. Failures are returned with the
// tool's combined output attached; the caller decides whether to continue.
func (a *Adapter) Transcribe(ctx context.Context, videoPath, outputDir string) error {
	args := []string{
		videoPath,
		"--model", a.model,
		"--language", a.language,
		"--task", "translate",
		"--output_dir", outputDir,
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("whisper: %w\n%s", err, strings.TrimSpace(string(b)))
	}
	return nil
}
