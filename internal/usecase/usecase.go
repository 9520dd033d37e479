package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"subburn/internal/domain/naming"
	"subburn/internal/domain/subtitles"
	"subburn/internal/logging"
	"subburn/internal/ports"
	"subburn/internal/types"
)

type Deps struct {
	Transcriber ports.Transcriber
	Video       ports.VideoTool
	Log         *logging.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

// Process runs the full chain for one input video:
// transcribe → locate subtitle → recode → burn-in → verify.
// It never returns an error; every failure mode becomes an outcome in the
// report so one file can never abort the batch. The input video is read-only
// throughout.
func (u Usecase) Process(ctx context.Context, rootDir, videoPath string) types.FileReport {
	start := time.Now()
	name := filepath.Base(videoPath)
	base := naming.Base(name)
	slug := naming.Normalize(base)

	rep := types.FileReport{Input: videoPath}

	u.d.Log.Info("🎬 Processing: %s", name)

	// Transcription failure is not retried; the missing artifact is caught
	// by the locate step below.
	if err := u.d.Transcriber.Transcribe(ctx, videoPath, rootDir); err != nil {
		u.d.Log.Error("Transcription failed for %s: %v", name, err)
		rep.Err = err
	}

	subPath, ok := subtitles.Locate(rootDir, base, slug)
	if !ok {
		u.d.Log.Error("No subtitle file found for %s", name)
		rep.Outcome = types.OutcomeSubtitleMissing
		rep.Elapsed = time.Since(start)
		return rep
	}
	rep.Subtitle = subPath
	u.d.Log.Success("Subtitle file found: %s", filepath.Base(subPath))

	if changed, err := subtitles.NormalizeUTF8(subPath); err != nil {
		u.d.Log.Warn("Could not recode %s, using it as-is: %v", filepath.Base(subPath), err)
	} else if changed {
		u.d.Log.Debug("recoded %s to UTF-8", filepath.Base(subPath))
	}

	outPath := filepath.Join(rootDir, naming.OutputName(name))
	rep.Output = outPath
	if err := u.d.Video.BurnSubtitles(ctx, videoPath, subPath, outPath); err != nil {
		u.d.Log.Error("Error embedding subtitles in %s: %v", name, err)
		rep.Err = err
	}

	if _, err := os.Stat(outPath); err != nil {
		u.d.Log.Error("Failed to create subtitled video for %s", name)
		rep.Outcome = types.OutcomeOutputFailed
		rep.Elapsed = time.Since(start)
		return rep
	}

	u.d.Log.Success("Subtitled video saved: %s", filepath.Base(outPath))
	rep.Outcome = types.OutcomeOutputCreated
	rep.Elapsed = time.Since(start)
	return rep
}
