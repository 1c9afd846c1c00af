package system

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/prefabs"
	"golang.org/x/image/colornames"
)

// Scripts define two hooks:
//
//	on_phase := func(engine, state, phase, previous) { ... }
//	on_hit := func(engine, state, source, damage) { ... }
//
// state is a map that persists across calls for the same serpent.
const serpentHookDispatchScript = `
if __hook == "phase" {
	on_phase(__engine, __state, __arg0, __arg1)
} else if __hook == "hit" {
	on_hit(__engine, __state, __arg0, __arg1)
}
`

type serpentScriptRuntime struct {
	path      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
	err       error
}

// SerpentScriptSystem runs prefab scripts in response to serpent phase
// changes and player hits. Scripts react with presentation effects only.
type SerpentScriptSystem struct {
	// Load resolves a script path; defaults to prefabs.LoadScript.
	Load func(path string) ([]byte, error)

	cache map[ecs.Entity]*serpentScriptRuntime
	rng   *rand.Rand
	log   *slog.Logger
}

func NewSerpentScriptSystem(seed int64, log *slog.Logger) *SerpentScriptSystem {
	return &SerpentScriptSystem{
		Load:  prefabs.LoadScript,
		cache: map[ecs.Entity]*serpentScriptRuntime{},
		rng:   rand.New(rand.NewSource(seed)),
		log:   orDiscard(log),
	}
}

// Invalidate drops every compiled script so the next event reloads them.
func (s *SerpentScriptSystem) Invalidate() {
	clear(s.cache)
}

func (s *SerpentScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ev := range w.Events().Items() {
		switch ev.Type {
		case ecs.EventSerpentPhase:
			data, ok := ev.Data.(ecs.SerpentPhaseEvent)
			if !ok {
				continue
			}
			s.dispatch(w, data.Entity, "phase", data.To.String(), data.From.String())
		case ecs.EventPlayerHit:
			data, ok := ev.Data.(ecs.PlayerHitEvent)
			if !ok {
				continue
			}
			s.dispatch(w, data.Boss, "hit", data.Source, data.Damage)
		}
	}

	for e := range s.cache {
		if !w.IsAlive(e) {
			delete(s.cache, e)
		}
	}
}

func (s *SerpentScriptSystem) dispatch(w *ecs.World, e ecs.Entity, hook string, arg0, arg1 any) {
	sb, ok := ecs.Get(w, e, component.SerpentBossComponent.Kind())
	if !ok || strings.TrimSpace(sb.Script) == "" {
		return
	}

	rt := s.runtime(e, sb.Script)
	if rt.err != nil {
		return
	}

	engine := s.buildEngine(w, e, sb)
	if err := rt.run(hook, engine, arg0, arg1); err != nil {
		s.log.Warn("serpent: script hook failed", "entity", e, "script", rt.path, "hook", hook, "err", err)
	}
}

func (s *SerpentScriptSystem) runtime(e ecs.Entity, path string) *serpentScriptRuntime {
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt
	}

	rt := &serpentScriptRuntime{path: path}
	rt.compiled, rt.err = s.compile(path)
	if rt.err != nil {
		s.log.Error("serpent: load script", "entity", e, "script", path, "err", rt.err)
	}
	rt.stateData = &tengo.Map{Value: map[string]tengo.Object{}}
	s.cache[e] = rt
	return rt
}

func (s *SerpentScriptSystem) compile(path string) (*tengo.Compiled, error) {
	load := s.Load
	if load == nil {
		load = prefabs.LoadScript
	}
	src, err := load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + serpentHookDispatchScript))
	_ = script.Add("__hook", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__arg0", "")
	_ = script.Add("__arg1", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return compiled, nil
}

func (rt *serpentScriptRuntime) run(hook string, engine *tengo.ImmutableMap, arg0, arg1 any) error {
	if err := rt.compiled.Set("__hook", hook); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__arg0", arg0); err != nil {
		return err
	}
	if err := rt.compiled.Set("__arg1", arg1); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (s *SerpentScriptSystem) buildEngine(w *ecs.World, e ecs.Entity, sb *component.SerpentBoss) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["shake"] = &tengo.UserFunction{Name: "shake", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		frames, ok1 := tengo.ToInt(args[0])
		intensity, ok2 := tengo.ToFloat64(args[1])
		if !ok1 || !ok2 {
			return tengo.FalseValue, nil
		}
		RequestShake(w, frames, intensity)
		return tengo.TrueValue, nil
	}}

	values["flash"] = &tengo.UserFunction{Name: "flash", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		frames, ok := tengo.ToInt(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		Flash(w, e, frames, hitFlashInterval)
		return tengo.TrueValue, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 || sb.Boss == nil {
			return tengo.FalseValue, nil
		}
		count, ok1 := tengo.ToInt(args[0])
		name, ok2 := tengo.ToString(args[1])
		c, ok3 := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok1 || !ok2 || !ok3 {
			return tengo.FalseValue, nil
		}
		lifetime := 0.6
		if len(args) > 2 {
			if v, ok := tengo.ToFloat64(args[2]); ok {
				lifetime = v
			}
		}
		SpawnParticles(w, s.rng, sb.Boss.Head().Position, count, c, lifetime)
		return tengo.TrueValue, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if sb.Boss == nil || sb.Boss.MaxHealth <= 0 {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: sb.Boss.Health / sb.Boss.MaxHealth}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			if str, ok := tengo.ToString(arg); ok {
				parts = append(parts, str)
			}
		}
		s.log.Info("serpent: script", "entity", e, "msg", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
