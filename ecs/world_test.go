package ecs

import (
	"testing"

	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
	}{
		{"single", 1, []int{0}},
		{"destroy_middle", 3, []int{1}},
		{"destroy_none", 2, nil},
		{"destroy_all", 4, []int{3, 0, 2, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("created an invalid entity %v", e)
				}
				ents = append(ents, e)
			}
			for _, idx := range c.destroy {
				if !DestroyEntity(w, ents[idx]) {
					t.Fatalf("DestroyEntity(%v) should succeed for a live entity", ents[idx])
				}
				if DestroyEntity(w, ents[idx]) {
					t.Fatalf("DestroyEntity(%v) succeeded twice", ents[idx])
				}
				if IsAlive(w, ents[idx]) {
					t.Fatalf("entity %v alive after destruction", ents[idx])
				}
			}
			if got, want := len(Entities(w)), c.create-len(c.destroy); got != want {
				t.Fatalf("expected %d live entities, got %d", want, got)
			}
		})
	}
}

func TestRecycledSlotsDoNotAlias(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected the slot to be recycled")
	}
	if reused == old || reused.generation() == old.generation() {
		t.Fatalf("recycled entity %v aliases %v", reused, old)
	}
	if Has(w, reused, kind) {
		t.Fatalf("recycled entity inherited a component")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle still resolves")
	}
	if err := Add(w, reused, kind, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if Remove(w, old, kind) || !Has(w, reused, kind) {
		t.Fatalf("stale handle removed the recycled entity's component")
	}
	if err := Add(w, old, kind, intPtr(3)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for a stale handle, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e := CreateEntity(w)

	if err := Add(w, e, ints.Kind(), intPtr(10)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if v, ok := Get(w, e, ints.Kind()); !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	// Get hands out the stored pointer.
	v, _ := Get(w, e, ints.Kind())
	*v = 11
	if again, _ := Get(w, e, ints.Kind()); *again != 11 {
		t.Fatalf("expected in-place mutation, got %d", *again)
	}

	if Has(w, e, strs.Kind()) {
		t.Fatalf("unexpected string component")
	}
	if err := Add(w, e, ints.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}

	if !Remove(w, e, ints.Kind()) {
		t.Fatalf("remove should report success")
	}
	if Remove(w, e, ints.Kind()) || Has(w, e, ints.Kind()) {
		t.Fatalf("component still present after removal")
	}
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	// e[3] holds all four kinds; the others hold subsets.
	e := make([]Entity, 5)
	for i := range e {
		e[i] = CreateEntity(w)
	}
	add := func(ent Entity, kinds ...component.ComponentKind[int]) {
		for _, k := range kinds {
			if err := Add(w, ent, k, intPtr(int(ent.id()))); err != nil {
				t.Fatal(err)
			}
		}
	}
	add(e[0], ka)
	add(e[1], ka, kb)
	add(e[2], ka, kb, kc)
	add(e[3], ka, kb, kc, kd)
	add(e[4], kd)

	count := func(run func(func(Entity))) int {
		n := 0
		run(func(Entity) { n++ })
		return n
	}

	tests := []struct {
		name string
		run  func(func(Entity))
		want int
	}{
		{"for_each", func(f func(Entity)) { ForEach(w, ka, func(x Entity, _ *int) { f(x) }) }, 4},
		{"for_each2", func(f func(Entity)) { ForEach2(w, ka, kb, func(x Entity, _, _ *int) { f(x) }) }, 3},
		{"for_each3", func(f func(Entity)) { ForEach3(w, ka, kb, kc, func(x Entity, _, _, _ *int) { f(x) }) }, 2},
		{"for_each4", func(f func(Entity)) { ForEach4(w, ka, kb, kc, kd, func(x Entity, _, _, _, _ *int) { f(x) }) }, 1},
		{"missing_store", func(f func(Entity)) {
			ForEach2(w, ka, component.NewComponentKind[int](), func(x Entity, _, _ *int) { f(x) })
		}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(tc.run); got != tc.want {
				t.Fatalf("expected %d matches, got %d", tc.want, got)
			}
		})
	}

	ForEach4(w, ka, kb, kc, kd, func(x Entity, a, b, c, d *int) {
		if x != e[3] || *a != int(e[3].id()) || *d != int(e[3].id()) {
			t.Fatalf("unexpected match %v", x)
		}
	})

	if first, ok := First(w, kd); !ok || (first != e[3] && first != e[4]) {
		t.Fatalf("unexpected First result %v ok=%v", first, ok)
	}
	if _, ok := First(w, component.NewComponentKind[string]()); ok {
		t.Fatalf("expected no entity for an unused kind")
	}
}

func TestForEachToleratesDestroyAndCreate(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	for i := 0; i < 10; i++ {
		if err := Add(w, CreateEntity(w), kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, kind, func(e Entity, v *int) {
		visited++
		DestroyEntity(w, e)
		if *v%2 == 0 {
			_ = Add(w, CreateEntity(w), kind, intPtr(100))
		}
	})
	if visited != 10 {
		t.Fatalf("expected to visit the 10 original entities, visited %d", visited)
	}
	if n := len(Entities(w)); n != 5 {
		t.Fatalf("expected 5 entities created during iteration, got %d", n)
	}
}

type countingSystem struct {
	seen  []int
	emit  string
	calls int
}

func (s *countingSystem) Update(w *World) {
	s.calls++
	s.seen = append(s.seen, len(w.Events().Items()))
	if s.emit != "" {
		w.Events().Push(Event{Type: s.emit})
	}
}

func TestSchedulerOrderAndEventFlush(t *testing.T) {
	w := NewWorld()
	first := &countingSystem{emit: EventPlayerHit}
	second := &countingSystem{}
	sched := NewScheduler(first, nil, second)

	if len(sched.Systems()) != 2 {
		t.Fatalf("expected nil systems to be skipped")
	}

	sched.Update(w)
	sched.Update(w)

	if first.calls != 2 || second.calls != 2 {
		t.Fatalf("expected each system to run twice")
	}
	// The first system never sees its own events; the second sees this
	// frame's only.
	if first.seen[1] != 0 || second.seen[0] != 1 || second.seen[1] != 1 {
		t.Fatalf("unexpected event visibility first=%v second=%v", first.seen, second.seen)
	}
	if len(w.Events().Items()) != 0 {
		t.Fatalf("expected events flushed after the frame")
	}
}

func TestEntityString(t *testing.T) {
	e := makeEntity(3, 2)
	if e.String() != "3v2" || !e.Valid() {
		t.Fatalf("unexpected entity %v valid=%v", e, e.Valid())
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity should be invalid")
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventSerpentPhase})
	q.Push(Event{Type: EventSerpentDefeated})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventSerpentPhase {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil || len(q.Items()) != 0 {
		t.Fatalf("expected an empty queue after drain")
	}

	var nilQueue *EventQueue
	nilQueue.Push(Event{})
	if nilQueue.Items() != nil {
		t.Fatalf("nil queue should stay empty")
	}
}
