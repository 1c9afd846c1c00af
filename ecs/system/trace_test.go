package system

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/telemetry"
)

func TestSerpentTraceSystem(t *testing.T) {
	w := ecs.NewWorld()
	addSerpent(t, w, cp.Vector{X: 1, Y: 2}, constRand(0.9), false)

	var buf bytes.Buffer
	sys := NewSerpentTraceSystem(telemetry.NewRecorder(&buf), nil)
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected samples buffered until close")
	}
	if err := sys.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 samples, got:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[3], "2,") {
		t.Fatalf("expected tick numbers in the first column, got %q", lines[3])
	}
}
