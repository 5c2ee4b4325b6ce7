package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/flycam/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				if !e.Valid() {
					t.Fatalf("created invalid entity %v", e)
				}
				ents = append(ents, e)
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("second destroy should report false")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must have a new generation")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, fresh, h) {
		t.Fatalf("components of the destroyed entity leaked into the new one")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) && Remove(w, e2, h2) },
		},
		{
			name:  "replace_value",
			setup: func() error {
				_ = Add(w, e2, h1, intPtr(1))
				return Add(w, e2, h1, intPtr(2))
			},
			check: func(t *testing.T) {
				if v, _ := Get(w, e2, h1); *v != 2 {
					t.Fatalf("expected replaced value 2, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	h := component.NewComponent[int]()

	if err := Add[int](w, e, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestPointerSemantics(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	h := component.NewComponent[int]()
	_ = Add(w, e, h, intPtr(1))

	v, _ := Get(w, e, h)
	*v = 42

	again, _ := Get(w, e, h)
	if *again != 42 {
		t.Fatalf("mutation through pointer not visible, got %d", *again)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e3, h, intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e1, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })

	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3] in slot order, got %v (e2=%v)", ents, e2)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[string]()

				for _, err := range []error{
					Add(w, e1, ha, intPtr(1)),
					Add(w, e2, ha, intPtr(2)),
					Add(w, e2, hb, intPtr(3)),
					Add(w, e2, hc, stringPtr("x")),
					Add(w, e3, hb, intPtr(4)),
				} {
					if err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ha, hb, hc, func(e Entity, a *int, b *int, c *string) {
					if *a != 2 || *b != 3 || *c != "x" {
						t.Fatalf("unexpected values %d %d %s", *a, *b, *c)
					}
					res = append(res, e)
				})
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()

				_ = Add(w, e, ha, intPtr(1))
				_ = Add(w, e, hb, intPtr(2))

				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ha, hb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()

				_ = Add(w, e, ha, intPtr(1))

				if res := w.Query(ha.Kind().ID(), hb.Kind().ID()); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := w.First(h.Kind().ID()); ok {
		t.Fatalf("expected no entity")
	}

	_ = w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	_ = Add(w, e3, h, intPtr(3))
	_ = Add(w, e2, h, intPtr(2))

	got, ok := w.First(h.Kind().ID())
	if !ok || got != e2 {
		t.Fatalf("expected e2, got %v ok=%v", got, ok)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
}

func TestSchedulerOrderAndEventFlush(t *testing.T) {
	var calls []string
	w := NewWorld()
	pusher := systemFunc(func(w *World) { w.Events().Push(Event{Type: "ping"}) })
	sched := NewScheduler(countingSystem{&calls, "a"}, nil, pusher, countingSystem{&calls, "b"})

	if len(sched.Systems()) != 3 {
		t.Fatalf("nil systems must be skipped, got %d", len(sched.Systems()))
	}

	sched.Update(w)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected order %v", calls)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events must be flushed after a tick")
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestEventQueueTake(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "a", Data: 1})
	q.Push(Event{Type: "b", Data: 2})
	q.Push(Event{Type: "a", Data: 3})

	got := q.Take("a")
	if len(got) != 2 || got[0].Data != 1 || got[1].Data != 3 {
		t.Fatalf("unexpected taken events %v", got)
	}
	rest := q.Drain()
	if len(rest) != 1 || rest[0].Type != "b" {
		t.Fatalf("unexpected remaining events %v", rest)
	}
	if q.Take("a") != nil || q.Drain() != nil {
		t.Fatalf("queue should be empty")
	}
}

func TestNilWorld(t *testing.T) {
	var w *World
	if w.IsAlive(1) || w.Entities() != nil || w.Query(1) != nil || w.Events() != nil {
		t.Fatalf("nil world should be inert")
	}
	if w.DestroyEntity(1) {
		t.Fatalf("nil world cannot destroy")
	}
}
