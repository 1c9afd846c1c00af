// Command serpentsim runs the serpent boss headless against a target
// circling the spawn point and reports how it behaved.
package main

import (
	"flag"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/prefabs"
	"github.com/jblob-devs/rymech-sub001/serpent"
	"github.com/jblob-devs/rymech-sub001/telemetry"
)

type simConfig struct {
	Ticks       int
	Step        float64
	Seed        int64
	OrbitRadius float64
	OrbitRate   float64 // radians per second
	HitRadius   float64
}

type simResult struct {
	Summary   *telemetry.Summary
	Particles int
	HitTicks  int
	Final     telemetry.Sample
}

func main() {
	cfg := simConfig{}
	flag.IntVar(&cfg.Ticks, "ticks", 3600, "number of simulation ticks")
	flag.Float64Var(&cfg.Step, "dt", 1.0/60.0, "seconds per tick")
	flag.Int64Var(&cfg.Seed, "seed", 1, "random seed")
	flag.Float64Var(&cfg.OrbitRadius, "radius", 250, "radius of the target's orbit around the spawn point")
	flag.Float64Var(&cfg.OrbitRate, "rate", 0.5, "angular speed of the target in radians per second")
	flag.Float64Var(&cfg.HitRadius, "hit-radius", 12, "radius of the target when testing hits")
	out := flag.String("out", "", "write per-tick CSV here, - for stdout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var w io.Writer
	switch *out {
	case "":
	case "-":
		w = os.Stdout
	default:
		f, err := os.Create(*out)
		if err != nil {
			log.Error("serpentsim: open output", "path", *out, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	spec, err := prefabs.LoadSerpentSpec()
	if err != nil {
		log.Error("serpentsim: load spec", "err", err)
		os.Exit(1)
	}

	res, err := run(cfg, spec, w, log)
	if err != nil {
		log.Error("serpentsim: run", "err", err)
		os.Exit(1)
	}
	log.Info("serpentsim: done",
		"summary", res.Summary,
		"particles", res.Particles,
		"hit_ticks", res.HitTicks,
		"final", res.Final,
	)
}

func run(cfg simConfig, spec *prefabs.SerpentSpec, out io.Writer, log *slog.Logger) (*simResult, error) {
	boss := serpent.New(cp.Vector{},
		serpent.WithRand(serpent.NewRand(cfg.Seed)),
		serpent.WithTuning(spec.Tuning),
		serpent.WithHealth(spec.Health),
		serpent.WithSize(spec.Size),
		serpent.WithLogger(log),
	)

	var rec *telemetry.Recorder
	if out != nil {
		rec = telemetry.NewRecorder(out)
	}

	res := &simResult{Summary: telemetry.NewSummary()}
	emit := func(_ cp.Vector, count int, _ color.RGBA, _ float64) {
		res.Particles += count
	}

	for tick := 0; tick < cfg.Ticks; tick++ {
		simTime := float64(tick) * cfg.Step
		angle := simTime * cfg.OrbitRate
		target := cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(cfg.OrbitRadius)

		boss.Update(cfg.Step, target, emit)
		if boss.HitTest(target, cfg.HitRadius) {
			res.HitTicks++
		}

		sample := telemetry.Capture(tick, simTime+cfg.Step, boss)
		res.Summary.Observe(sample)
		res.Final = sample
		if err := rec.Record(sample); err != nil {
			return nil, err
		}
	}

	if err := rec.Flush(); err != nil {
		return nil, err
	}
	return res, nil
}
