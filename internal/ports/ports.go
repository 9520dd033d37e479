package ports

import "context"

// Transcriber produces subtitle artifacts next to the input video. The tool
// writes its own output files; callers locate them afterwards by name.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath, outputDir string) error
}

// VideoTool burns a subtitle file into a new output video. The input file is
// never modified.
type VideoTool interface {
	BurnSubtitles(ctx context.Context, inVideo, subtitlePath, outVideo string) error
}
