// Package preflight verifies the external tools the pipeline shells out to.
// A missing mandatory binary terminates the run before any file is touched.
// The whisper CLI alone gets a best-effort pip install when absent, matching
// how the tool is usually distributed.
package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"subburn/internal/config"
	"subburn/internal/logging"
)

// Requirement defines an external dependency the pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

type Checker struct {
	cfg config.Config
	log *logging.Logger

	lookPath func(string) (string, error)
	runner   func(ctx context.Context, name string, args ...string) error
}

func New(cfg config.Config, log *logging.Logger) *Checker {
	return &Checker{
		cfg:      cfg,
		log:      log,
		lookPath: exec.LookPath,
		runner:   runCommand,
	}
}

// WithLookPath sets a custom binary resolver (for testing).
func (c *Checker) WithLookPath(f func(string) (string, error)) { c.lookPath = f }

// WithCommandRunner sets a custom command runner (for testing).
func (c *Checker) WithCommandRunner(f func(ctx context.Context, name string, args ...string) error) {
	c.runner = f
}

func (c *Checker) requirements() []Requirement {
	return []Requirement{
		{Name: "FFmpeg", Command: c.cfg.FFmpegBin, Description: "Required for subtitle burn-in"},
		{Name: "Python", Command: c.cfg.PythonBin, Description: "Required to install and run the whisper package"},
		{Name: "Whisper", Command: c.cfg.WhisperBin, Description: "Speech recognition and translation", Optional: true},
	}
}

// Run checks every requirement and returns an error when a mandatory tool is
// missing. A missing whisper CLI triggers one best-effort
// `python3 -m pip install --user openai-whisper` before being treated as
// mandatory.
func (c *Checker) Run(ctx context.Context) error {
	c.log.Info("🔍 Checking for required dependencies...")

	statuses := c.check(c.requirements())
	var missing []string
	whisperMissing := false
	for _, st := range statuses {
		if st.Available {
			c.log.Debug("found %s (%s)", st.Name, st.Command)
			continue
		}
		if st.Optional {
			whisperMissing = true
			continue
		}
		missing = append(missing, fmt.Sprintf("%s (%s)", st.Name, st.Command))
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing dependencies: %s", strings.Join(missing, ", "))
	}

	if whisperMissing {
		c.log.Warn("🔧 whisper not found, attempting install via pip...")
		if err := c.runner(ctx, c.cfg.PythonBin, "-m", "pip", "install", "--user", "openai-whisper"); err != nil {
			c.log.Debug("pip install failed: %v", err)
		}
		if _, err := c.lookPath(c.cfg.WhisperBin); err != nil {
			return fmt.Errorf("missing dependencies: Whisper (%s); install it with `%s -m pip install openai-whisper`",
				c.cfg.WhisperBin, c.cfg.PythonBin)
		}
	}

	c.log.Success("All dependencies are installed.")
	return nil
}

func (c *Checker) check(reqs []Requirement) []Status {
	results := make([]Status, 0, len(reqs))
	for _, req := range reqs {
		st := Status{Requirement: req}
		cmd := strings.TrimSpace(req.Command)
		switch {
		case cmd == "":
			st.Detail = "command not configured"
		default:
			if _, err := c.lookPath(cmd); err != nil {
				st.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				st.Available = true
			}
		}
		results = append(results, st)
	}
	return results
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
