package types

import "time"

// Outcome is the terminal status of one input video. It is reported in logs
// and the batch summary only, never persisted.
type Outcome string

const (
	OutcomeSubtitleMissing Outcome = "subtitle-missing"
	OutcomeOutputCreated   Outcome = "output-created"
	OutcomeOutputFailed    Outcome = "output-failed"
	OutcomeSkipped         Outcome = "skipped" // dry-run only
)

// FileReport captures what happened to a single input video.
type FileReport struct {
	Input    string
	Subtitle string
	Output   string
	Outcome  Outcome
	Err      error
	Elapsed  time.Duration
}

// BatchReport aggregates per-file reports for the summary.
type BatchReport struct {
	RunID   string
	Root    string
	Files   []FileReport
	Cleaned []string
}

// Created counts files that produced a verified output video.
func (b BatchReport) Created() int { return b.count(OutcomeOutputCreated) }

// Missing counts files skipped because no subtitle artifact was found.
func (b BatchReport) Missing() int { return b.count(OutcomeSubtitleMissing) }

// Failed counts files whose burn-in did not produce the expected output.
func (b BatchReport) Failed() int { return b.count(OutcomeOutputFailed) }

func (b BatchReport) count(o Outcome) int {
	n := 0
	for _, f := range b.Files {
		if f.Outcome == o {
			n++
		}
	}
	return n
}
