package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Routing(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters(&out, &errOut, false)

	l.Info("🎬 processing %s", "a.mp4")
	l.Success("done")
	l.Error("boom")

	if !strings.Contains(out.String(), "🎬 processing a.mp4") {
		t.Fatalf("info missing from stdout: %q", out.String())
	}
	if !strings.Contains(out.String(), "✅ done") {
		t.Fatalf("success marker missing: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "❌ boom") {
		t.Fatalf("error must go to stderr: %q", errOut.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Fatal("error leaked to stdout")
	}
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewWithWriters(&quiet, &quiet, false).Debug("hidden")
	NewWithWriters(&loud, &loud, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Fatalf("debug printed without verbose: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Fatalf("debug missing with verbose: %q", loud.String())
	}
}
