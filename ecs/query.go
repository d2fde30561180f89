package ecs

import "github.com/milk9111/physics2d/ecs/component"

// ForEach calls fn for every live entity with a kind component. The callback
// may add or remove components and destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.ID(), false)
	for _, id := range s.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		if a, ok := lookup[T](s, id); ok {
			fn(e, a)
		}
	}
}

// ForEach2 iterates the smaller store and skips entities missing either kind.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	for _, id := range smallest(sa, sb).ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := lookup[A](sa, id)
		b, okB := lookup[B](sb, id)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	for _, id := range smallest(sa, sb, sc).ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := lookup[A](sa, id)
		b, okB := lookup[B](sb, id)
		c, okC := lookup[C](sc, id)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc, sd := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false), w.store(kd.ID(), false)
	for _, id := range smallest(sa, sb, sc, sd).ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := lookup[A](sa, id)
		b, okB := lookup[B](sb, id)
		c, okC := lookup[C](sc, id)
		d, okD := lookup[D](sd, id)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

// smallest returns nil when any store is missing, which ends the query.
func smallest(sets ...*sparseSet) *sparseSet {
	var out *sparseSet
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if out == nil || s.len() < out.len() {
			out = s
		}
	}
	return out
}
