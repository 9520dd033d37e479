//go:build integration

package itest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"subburn/internal/config"
	"subburn/internal/logging"
	"subburn/internal/pipeline"
)

func requireTools(t *testing.T, tools ...string) {
	t.Helper()
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not installed", tool)
		}
	}
}

func TestE2E_Batch(t *testing.T) {
	requireTools(t, "ffmpeg", "ffprobe", "espeak-ng", "whisper")

	tmp := t.TempDir()
	in := filepath.Join(tmp, "My Test Clip.mp4")

	// Generate speech audio via espeak-ng.
	wav := filepath.Join(t.TempDir(), "speech.wav")
	text := "Hello and welcome. This short clip exists only to test subtitle generation."
	if b, err := exec.Command("espeak-ng", "-w", wav, text).CombinedOutput(); err != nil {
		t.Fatalf("espeak-ng failed: %v\n%s", err, string(b))
	}

	// Build a simple mp4 with audio.
	ff := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "color=c=black:s=640x360:d=8",
		"-i", wav,
		"-shortest",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		in,
	)
	if b, err := ff.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg fixture failed: %v\n%s", err, string(b))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	cfg := config.Default()
	cfg.RootDir = tmp
	cfg.Model = string(config.ModelTiny)

	log := logging.NewWithWriters(os.Stdout, os.Stderr, true)
	report, err := pipeline.New(cfg, log).Run(ctx)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if report.Created() != 1 {
		t.Fatalf("expected 1 output, report: %+v", report)
	}

	out := filepath.Join(tmp, "my-test-clip_subtitled_en_us.mp4")
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("missing output: %v", err)
	}
	codec, err := probeVideoCodec(ctx, out)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if codec != "h264" {
		t.Fatalf("unexpected output codec: %s", codec)
	}

	// Input untouched, artifacts cleaned.
	if _, err := os.Stat(in); err != nil {
		t.Fatalf("input video missing after run: %v", err)
	}
	for _, ext := range pipeline.CleanupExtensions {
		matches, _ := filepath.Glob(filepath.Join(tmp, "*"+ext))
		if len(matches) != 0 {
			t.Fatalf("artifacts survived cleanup: %v", matches)
		}
	}
}
