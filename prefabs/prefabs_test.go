package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSerpentSpec(t *testing.T) {
	spec, err := LoadSerpentSpec()
	if err != nil {
		t.Fatalf("load serpent spec: %v", err)
	}
	if spec.Health != 5000 || spec.Script != "serpent.tengo" {
		t.Fatalf("unexpected spec %+v", spec)
	}
	if spec.Tuning.SegmentSpacing != 45 || spec.Tuning.TendrilMax != 8 {
		t.Fatalf("unexpected tuning %+v", spec.Tuning)
	}
	// Not in the file, filled from defaults.
	if spec.Tuning.TeleportMinDistance != 300 || spec.Tuning.StrikeFreezeTime != 0.8 {
		t.Fatalf("expected defaults for omitted tuning, got %+v", spec.Tuning)
	}
	if spec.TendrilColor.RGBA != (color.RGBA{R: 0x55, G: 0x6b, B: 0x2f, A: 0xff}) {
		t.Fatalf("expected darkolivegreen tendrils, got %v", spec.TendrilColor.RGBA)
	}
}

func TestLoadPlayerAndArenaSpecs(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if player.Speed <= 0 || player.Radius <= 0 || player.Health <= 0 {
		t.Fatalf("unexpected player spec %+v", player)
	}

	arena, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("load arena spec: %v", err)
	}
	if arena.Width <= 0 || arena.SerpentSpawn == arena.PlayerSpawn {
		t.Fatalf("unexpected arena spec %+v", arena)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"serpent.tengo", "scripts/serpent.tengo", "prefabs/scripts/serpent.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s: empty script", name)
		}
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected error for a missing script")
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("speed: 999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Speed != 999 {
		t.Fatalf("expected disk override, got speed %v", spec.Speed)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff0000", want: color.RGBA{R: 255, A: 255}},
		{in: "00ff00", want: color.RGBA{G: 255, A: 255}},
		{in: "#0000ff80", want: color.RGBA{B: 128, A: 128}},
		{in: "Orange", want: color.RGBA{R: 255, G: 165, A: 255}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "not-a-color", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "serpent.tengo"), []byte("x := 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Events:
		if change.Kind != ScriptChanged || filepath.Base(change.Path) != "serpent.tengo" {
			t.Fatalf("unexpected change %+v", change)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for the script edit")
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"a.tengo":                 "scripts/a.tengo",
		"scripts/a.tengo":         "scripts/a.tengo",
		"prefabs/scripts/a.tengo": "scripts/a.tengo",
		"prefabs/a.tengo":         "scripts/a.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
