package ecs

import (
	"testing"

	"github.com/milk9111/physics2d/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name      string
		create    int
		destroy   []int
		wantAlive int
	}{
		{"single_destroyed", 1, []int{0}, 0},
		{"middle_destroyed", 3, []int{1}, 2},
		{"none_destroyed", 2, nil, 2},
		{"all_destroyed", 4, []int{3, 0, 2, 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			for _, i := range c.destroy {
				require.True(t, DestroyEntity(w, ents[i]))
				assert.False(t, IsAlive(w, ents[i]))
				assert.False(t, DestroyEntity(w, ents[i]), "destroying twice reports false")
			}
			assert.Len(t, Entities(w), c.wantAlive)
		})
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	body := CreateEntity(w)
	other := CreateEntity(w)
	mass := component.NewComponentKind[float64]()
	label := component.NewComponentKind[string]()

	require.NoError(t, Add(w, body, mass, ptr(2.5)))
	require.NoError(t, Add(w, body, label, ptr("crate")))
	require.NoError(t, Add(w, other, label, ptr("ground")))

	v, ok := Get(w, body, mass)
	require.True(t, ok)
	assert.Equal(t, 2.5, *v)
	assert.True(t, Has(w, other, label))
	assert.False(t, Has(w, other, mass))

	require.NoError(t, Add(w, body, mass, ptr(4.0)), "adding again replaces the value")
	v, _ = Get(w, body, mass)
	assert.Equal(t, 4.0, *v)

	assert.True(t, Remove(w, body, mass))
	assert.False(t, Remove(w, body, mass))
	assert.False(t, Has(w, body, mass))
	assert.True(t, Has(w, body, label))
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)
	var zero component.ComponentKind[int]

	cases := []struct {
		name string
		add  func() error
		want error
	}{
		{"zero_kind", func() error { return Add(w, e, zero, ptr(1)) }, component.ErrInvalidComponentKind},
		{"nil_value", func() error { return Add[int](w, e, component.NewComponentKind[int](), nil) }, component.ErrNilComponent},
		{"dead_entity", func() error { return Add(w, dead, component.NewComponentKind[int](), ptr(1)) }, component.ErrEntityNotAlive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, c.add(), c.want)
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, k, ptr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	assert.Equal(t, old.id(), fresh.id(), "the slot is reused")
	assert.NotEqual(t, old, fresh)
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, fresh, k), "components must not leak into a reused slot")
	assert.ErrorIs(t, Add(w, old, k, ptr(2)), component.ErrEntityNotAlive)
}

// joinFixture builds four kinds over five entities. Only the entity at index 1
// carries all four; index 4 carries all four but is destroyed.
func joinFixture(t *testing.T) (*World, []Entity, [4]component.ComponentKind[int]) {
	t.Helper()
	w := NewWorld()
	var kinds [4]component.ComponentKind[int]
	for i := range kinds {
		kinds[i] = component.NewComponentKind[int]()
	}
	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	has := [][]int{
		{0},
		{0, 1, 2, 3},
		{1, 2},
		{2, 3},
		{0, 1, 2, 3},
	}
	for i, ks := range has {
		for _, k := range ks {
			require.NoError(t, Add(w, ents[i], kinds[k], ptr(i*10+k)))
		}
	}
	require.True(t, DestroyEntity(w, ents[4]))
	return w, ents, kinds
}

func TestJoinQueries(t *testing.T) {
	w, ents, k := joinFixture(t)

	cases := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{
			name: "for_each",
			run: func() (res []Entity) {
				ForEach(w, k[0], func(e Entity, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{ents[0], ents[1]},
		},
		{
			name: "for_each2",
			run: func() (res []Entity) {
				ForEach2(w, k[1], k[2], func(e Entity, _ *int, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{ents[1], ents[2]},
		},
		{
			name: "for_each3",
			run: func() (res []Entity) {
				ForEach3(w, k[0], k[1], k[2], func(e Entity, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{ents[1]},
		},
		{
			name: "for_each4",
			run: func() (res []Entity) {
				ForEach4(w, k[0], k[1], k[2], k[3], func(e Entity, _, _, _, _ *int) { res = append(res, e) })
				return res
			},
			want: []Entity{ents[1]},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ElementsMatch(t, c.want, c.run())
		})
	}
}

func TestJoinQueriesValues(t *testing.T) {
	w, ents, k := joinFixture(t)
	ForEach4(w, k[0], k[1], k[2], k[3], func(e Entity, a, b, c, d *int) {
		assert.Equal(t, ents[1], e)
		assert.Equal(t, []int{10, 11, 12, 13}, []int{*a, *b, *c, *d})
	})
}

func TestJoinQueriesMissingStore(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	ka := component.NewComponentKind[int]()
	require.NoError(t, Add(w, e, ka, ptr(1)))
	unused := component.NewComponentKind[int]()

	visited := 0
	ForEach3(w, ka, unused, unused, func(Entity, *int, *int, *int) { visited++ })
	ForEach4(w, ka, ka, ka, unused, func(Entity, *int, *int, *int, *int) { visited++ })
	assert.Zero(t, visited)
}

func TestFirstAndCount(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[string]()
	_, ok := w.First(k)
	assert.False(t, ok, "no entity for an empty store")

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for _, e := range []Entity{e3, e2} {
		require.NoError(t, Add(w, e, k, ptr(e.String())))
	}
	got, ok := w.First(k)
	require.True(t, ok)
	assert.Equal(t, e2, got, "First returns the lowest entity")
	assert.Equal(t, 2, w.Count(k))

	DestroyEntity(w, e1)
	assert.Len(t, Entities(w), 2)
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	for i := 0; i < 4; i++ {
		require.NoError(t, Add(w, CreateEntity(w), k, ptr(i)))
	}

	visited := 0
	ForEach(w, k, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	assert.Equal(t, 4, visited)
	assert.Empty(t, Entities(w))
}

func TestSchedulerClearsEvents(t *testing.T) {
	w := NewWorld()
	var seen []int
	push := systemFunc(func(w *World) {
		seen = append(seen, len(w.Events().Items()))
		w.Events().Push(Event{Type: EventCollision})
	})
	s := NewScheduler(push, nil)
	s.Update(w)
	s.Update(w)
	assert.Equal(t, []int{0, 0}, seen, "events are cleared each tick")
	assert.Len(t, w.Events().Drain(), 1, "the last tick's events stay readable")
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
