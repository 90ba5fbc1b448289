package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextFormatRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn, FormatText)
	l.Info("ignored")
	l.Warn("shown", "file", "msg1.ber")

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Fatalf("info entry should have been suppressed below warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "file=msg1.ber") {
		t.Fatalf("missing expected entry content: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, FormatJSON)
	l.Error("round-trip failed", "scenario", "vehicle")

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"scenario":"vehicle"`) {
		t.Fatalf("unexpected json entry: %q", out)
	}
}
