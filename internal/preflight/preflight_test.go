package preflight

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"subburn/internal/config"
	"subburn/internal/logging"
)

func testChecker(found map[string]bool) (*Checker, *[]string) {
	cfg := config.Default()
	log := logging.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	c := New(cfg, log)
	c.WithLookPath(func(bin string) (string, error) {
		if found[bin] {
			return "/usr/bin/" + bin, nil
		}
		return "", errors.New("not found")
	})
	var calls []string
	c.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		calls = append(calls, name+" "+strings.Join(args, " "))
		return nil
	})
	return c, &calls
}

func TestRun_AllPresent(t *testing.T) {
	c, calls := testChecker(map[string]bool{"ffmpeg": true, "python3": true, "whisper": true})
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("preflight: %v", err)
	}
	if len(*calls) != 0 {
		t.Fatalf("no install should run, got %v", *calls)
	}
}

func TestRun_MissingMandatoryFailsFast(t *testing.T) {
	c, calls := testChecker(map[string]bool{"python3": true, "whisper": true})
	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing ffmpeg")
	}
	if !strings.Contains(err.Error(), "ffmpeg") {
		t.Fatalf("error should name the missing binary: %v", err)
	}
	if len(*calls) != 0 {
		t.Fatalf("no install should run for mandatory tools, got %v", *calls)
	}
}

func TestRun_MissingWhisperTriggersInstall(t *testing.T) {
	found := map[string]bool{"ffmpeg": true, "python3": true}
	c, calls := testChecker(found)
	// Simulate the install making whisper available.
	c.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		*calls = append(*calls, name+" "+strings.Join(args, " "))
		found["whisper"] = true
		return nil
	})

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("preflight: %v", err)
	}
	if len(*calls) != 1 || !strings.Contains((*calls)[0], "pip install") {
		t.Fatalf("expected one pip install attempt, got %v", *calls)
	}
}

func TestRun_InstallFailureIsMandatory(t *testing.T) {
	c, _ := testChecker(map[string]bool{"ffmpeg": true, "python3": true})
	c.WithCommandRunner(func(context.Context, string, ...string) error {
		return errors.New("pip broke")
	})

	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected error when whisper stays missing after install")
	}
	if !strings.Contains(err.Error(), "Whisper") {
		t.Fatalf("error should name whisper: %v", err)
	}
}
