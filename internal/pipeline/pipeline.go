// Package pipeline orchestrates the batch: dependency preflight happens in
// the CLI before this runs; here we lock the root directory, discover input
// videos, process them strictly sequentially, then run the artifact cleanup
// pass and print a summary.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"subburn/internal/config"
	"subburn/internal/domain/naming"
	"subburn/internal/logging"
	"subburn/internal/ports"
	"subburn/internal/ports/adapters/ffmpeg"
	"subburn/internal/ports/adapters/whisper"
	"subburn/internal/types"
	"subburn/internal/usecase"
)

// LockFileName guards the root directory against overlapping runs. The
// directory is the only shared resource; two batches interleaving external
// tool invocations in it would corrupt each other's artifact matching.
const LockFileName = ".subburn.lock"

// CleanupExtensions is the fixed allow-list of intermediate artifact
// extensions removed by the cleanup pass. Deletion is deliberately blunt: it
// matches any file under the root with one of these extensions, regardless
// of which run (or tool) produced it.
var CleanupExtensions = []string{".srt", ".tsv", ".txt", ".vtt", ".json"}

type Deps struct {
	Transcriber ports.Transcriber
	Video       ports.VideoTool
}

type Driver struct {
	cfg        config.Config
	log        *logging.Logger
	deps       Deps
	summaryOut io.Writer
}

// New wires the real adapters from the config.
func New(cfg config.Config, log *logging.Logger) *Driver {
	return &Driver{
		cfg: cfg,
		log: log,
		deps: Deps{
			Transcriber: whisper.New(cfg.WhisperBin, cfg.Model, cfg.Language),
			Video:       ffmpeg.New(cfg.FFmpegBin),
		},
		summaryOut: os.Stdout,
	}
}

// WithDeps replaces the external tool adapters (for testing).
func (d *Driver) WithDeps(deps Deps) { d.deps = deps }

// WithSummaryWriter redirects the summary table (for testing).
func (d *Driver) WithSummaryWriter(w io.Writer) { d.summaryOut = w }

// Run executes the whole batch. It returns an error only for environment
// failures (lock held, unreadable root); per-file failures are recorded in
// the report and never abort the loop.
func (d *Driver) Run(ctx context.Context) (types.BatchReport, error) {
	report := types.BatchReport{
		RunID: uuid.NewString()[:8],
		Root:  d.cfg.RootDir,
	}

	lock := flock.New(filepath.Join(d.cfg.RootDir, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return report, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return report, fmt.Errorf("another run is already processing %s", d.cfg.RootDir)
	}
	defer lock.Unlock()

	videos, err := Discover(d.cfg.RootDir)
	if err != nil {
		return report, fmt.Errorf("discover videos: %w", err)
	}

	if len(videos) == 0 {
		d.log.Error("No MP4 files found.")
	} else {
		d.log.Info("🔍 Found %d videos. (run %s)", len(videos), report.RunID)
	}

	uc := usecase.New(usecase.Deps{
		Transcriber: d.deps.Transcriber,
		Video:       d.deps.Video,
		Log:         d.log,
	})

	for i, video := range videos {
		if ctx.Err() != nil {
			d.log.Warn("Interrupted")
			break
		}
		d.log.Debug("[%d/%d] %s", i+1, len(videos), filepath.Base(video))

		if d.cfg.DryRun {
			d.log.Info("🎬 [DRY] Would transcribe and subtitle: %s -> %s",
				filepath.Base(video), naming.OutputName(filepath.Base(video)))
			report.Files = append(report.Files, types.FileReport{
				Input:   video,
				Output:  filepath.Join(d.cfg.RootDir, naming.OutputName(filepath.Base(video))),
				Outcome: types.OutcomeSkipped,
			})
			continue
		}

		report.Files = append(report.Files, uc.Process(ctx, d.cfg.RootDir, video))
	}

	if d.cfg.DryRun {
		d.log.Info("[DRY] Skipping artifact cleanup")
	} else if d.cfg.KeepArtifacts {
		d.log.Info("Keeping intermediate artifacts (--keep-artifacts)")
	} else {
		report.Cleaned = d.cleanup()
	}

	d.printSummary(report)
	return report, nil
}

// Discover lists the .mp4 files directly under root in sorted name order.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".mp4") {
			videos = append(videos, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(videos)
	return videos, nil
}

// cleanup deletes every file under the root tree whose extension is in
// CleanupExtensions. Runs exactly once per batch, after the loop.
func (d *Driver) cleanup() []string {
	var removed []string
	err := filepath.WalkDir(d.cfg.RootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, del := range CleanupExtensions {
			if ext != del {
				continue
			}
			if rmErr := os.Remove(path); rmErr != nil {
				d.log.Warn("Could not remove %s: %v", path, rmErr)
				break
			}
			d.log.Success("🗑️ Removed: %s", path)
			removed = append(removed, path)
			break
		}
		return nil
	})
	if err != nil {
		d.log.Warn("Cleanup walk failed: %v", err)
	}
	return removed
}

func (d *Driver) printSummary(report types.BatchReport) {
	if len(report.Files) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(d.summaryOut)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Input", "Outcome", "Output"})
	for i, f := range report.Files {
		out := ""
		if f.Outcome == types.OutcomeOutputCreated || f.Outcome == types.OutcomeSkipped {
			out = filepath.Base(f.Output)
		}
		t.AppendRow(table.Row{i + 1, filepath.Base(f.Input), string(f.Outcome), out})
	}
	t.AppendFooter(table.Row{"", "", "created / missing / failed",
		fmt.Sprintf("%d / %d / %d", report.Created(), report.Missing(), report.Failed())})
	t.Render()
}

// ensure adapters implement ports
var _ ports.Transcriber = (*whisper.Adapter)(nil)
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
