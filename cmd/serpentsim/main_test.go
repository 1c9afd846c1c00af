package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jblob-devs/rymech-sub001/prefabs"
)

func TestRun(t *testing.T) {
	spec, err := prefabs.LoadSerpentSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	cfg := simConfig{Ticks: 1800, Step: 1.0 / 60.0, Seed: 42, OrbitRadius: 250, OrbitRate: 0.5, HitRadius: 12}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var buf bytes.Buffer
	res, err := run(cfg, spec, &buf, log)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Summary.Ticks != cfg.Ticks {
		t.Fatalf("expected %d ticks, got %d", cfg.Ticks, res.Summary.Ticks)
	}
	if !res.Final.Spawned {
		t.Fatalf("expected the boss spawned by the end of the run")
	}
	entered := 0
	for _, n := range res.Summary.Entries {
		entered += n
	}
	if entered == 0 {
		t.Fatalf("expected at least one phase change in 30s")
	}
	if rows := strings.Count(buf.String(), "\n"); rows != cfg.Ticks+1 {
		t.Fatalf("expected %d csv lines, got %d", cfg.Ticks+1, rows)
	}

	again, err := run(cfg, spec, nil, log)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again.Final != res.Final || again.Particles != res.Particles {
		t.Fatalf("expected a seeded run to be reproducible")
	}
}
