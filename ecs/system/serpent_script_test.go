package system

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/serpent"
)

const testSerpentScript = `
on_phase := func(engine, state, phase, previous) {
	n := state.count
	if is_undefined(n) {
		n = 0
	}
	state.count = n + 1
	engine.shake(10 * state.count, 2.5)
	if phase == "dash" {
		engine.emit(3, "orangered")
	}
}

on_hit := func(engine, state, source, damage) {
	if source == "tendril" && damage > 10 {
		engine.flash(6)
	}
}
`

func scriptWorld(t *testing.T) (*ecs.World, ecs.Entity, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	cam := addCamera(t, w, 1)
	boss, sb := addSerpent(t, w, cp.Vector{}, constRand(0.9), true)
	sb.Script = "test.tengo"
	return w, cam, boss
}

func TestSerpentScriptPhaseHook(t *testing.T) {
	w, cam, boss := scriptWorld(t)
	loads := 0
	sys := NewSerpentScriptSystem(1, nil)
	sys.Load = func(path string) ([]byte, error) {
		loads++
		if path != "test.tengo" {
			t.Fatalf("unexpected script path %q", path)
		}
		return []byte(testSerpentScript), nil
	}

	w.Events().Push(ecs.Event{Type: ecs.EventSerpentPhase, Data: ecs.SerpentPhaseEvent{Entity: boss, From: serpent.PhaseIdle, To: serpent.PhaseCoil}})
	w.Events().Push(ecs.Event{Type: ecs.EventSerpentPhase, Data: ecs.SerpentPhaseEvent{Entity: boss, From: serpent.PhaseCoil, To: serpent.PhaseDash}})
	sys.Update(w)

	req, ok := ecs.Get(w, cam, component.CameraShakeRequestComponent.Kind())
	if !ok {
		t.Fatalf("expected the script to request a camera shake")
	}
	// The second call sees the count persisted by the first.
	if req.Frames != 20 || req.Intensity != 2.5 {
		t.Fatalf("expected a 20 frame shake at 2.5, got %+v", req)
	}
	if _, ok := ecs.First(w, component.ParticleComponent.Kind()); !ok {
		t.Fatalf("expected dash particles from the script")
	}
	if loads != 1 {
		t.Fatalf("expected the script compiled once, loaded %d times", loads)
	}
}

func TestSerpentScriptHitHook(t *testing.T) {
	w, _, boss := scriptWorld(t)
	sys := NewSerpentScriptSystem(1, nil)
	sys.Load = func(string) ([]byte, error) { return []byte(testSerpentScript), nil }

	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: ecs.PlayerHitEvent{Boss: boss, Source: "body", Damage: 15}})
	sys.Update(w)
	if ecs.Has(w, boss, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("body hits should not flash the serpent")
	}

	w.Events().Drain()
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: ecs.PlayerHitEvent{Boss: boss, Source: "tendril", Damage: 20}})
	sys.Update(w)
	wf, ok := ecs.Get(w, boss, component.WhiteFlashComponent.Kind())
	if !ok || wf.Frames != 6 {
		t.Fatalf("expected a 6 frame flash on the serpent, got %+v", wf)
	}
}

func TestSerpentScriptFailuresAreContained(t *testing.T) {
	tests := []struct {
		name string
		load func(string) ([]byte, error)
	}{
		{"missing", func(string) ([]byte, error) { return nil, errors.New("no such script") }},
		{"syntax", func(string) ([]byte, error) { return []byte("on_phase := func("), nil }},
		{"missing_hooks", func(string) ([]byte, error) { return []byte("x := 1"), nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, cam, boss := scriptWorld(t)
			loads := 0
			sys := NewSerpentScriptSystem(1, nil)
			sys.Load = func(path string) ([]byte, error) {
				loads++
				return tc.load(path)
			}

			for i := 0; i < 3; i++ {
				w.Events().Push(ecs.Event{Type: ecs.EventSerpentPhase, Data: ecs.SerpentPhaseEvent{Entity: boss, To: serpent.PhaseDash}})
				sys.Update(w)
				w.Events().Drain()
			}
			if loads != 1 {
				t.Fatalf("expected a single load attempt, got %d", loads)
			}
			if ecs.Has(w, cam, component.CameraShakeRequestComponent.Kind()) {
				t.Fatalf("failed script should have no effect")
			}
		})
	}
}

func TestSerpentScriptCacheFollowsEntities(t *testing.T) {
	w, _, boss := scriptWorld(t)
	sys := NewSerpentScriptSystem(1, nil)
	sys.Load = func(string) ([]byte, error) { return []byte(testSerpentScript), nil }

	w.Events().Push(ecs.Event{Type: ecs.EventSerpentPhase, Data: ecs.SerpentPhaseEvent{Entity: boss, To: serpent.PhaseCoil}})
	sys.Update(w)
	if len(sys.cache) != 1 {
		t.Fatalf("expected one cached runtime, got %d", len(sys.cache))
	}

	w.DestroyEntity(boss)
	sys.Update(w)
	if len(sys.cache) != 0 {
		t.Fatalf("expected the runtime dropped with its entity")
	}

	sys.cache[boss] = &serpentScriptRuntime{}
	sys.Invalidate()
	if len(sys.cache) != 0 {
		t.Fatalf("expected invalidate to clear the cache")
	}
}
