package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the transcoder binary looked up on PATH.
const DefaultCommand = "ffmpeg"

type Adapter struct {
	ffmpeg string
}

func New(ffmpegPath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = DefaultCommand
	}
	return &Adapter{ffmpeg: ffmpegPath}
}

// BurnSubtitles composites subtitlePath into the video frames of inVideo and
// writes outVideo. The audio stream is copied unmodified; only video is
// re-encoded to apply the overlay filter. outVideo must differ from inVideo.
func (a *Adapter) BurnSubtitles(ctx context.Context, inVideo, subtitlePath, outVideo string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vf", "subtitles="+escapeFilterPath(subtitlePath),
		"-c:a", "copy",
		outVideo,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg burn-in: %w\n%s", err, strings.TrimSpace(string(b)))
	}
	return nil
}

// escapeFilterPath escapes characters the ffmpeg filter graph parser treats
// specially in the subtitles= argument.
func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	p = strings.ReplaceAll(p, "'", "\\'")
	return p
}
