package ecs

import "github.com/milk9111/physics2d/ecs/component"

// Add stores value as e's kind component, replacing any previous one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).set(e.id(), value)
	return nil
}

// Remove reports whether e had a kind component.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	return lookup[T](w.store(kind.ID(), false), e.id())
}

func lookup[T any](s *sparseSet, id entityID) (*T, bool) {
	v, ok := s.get(id)
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}
