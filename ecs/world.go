package ecs

import (
	"slices"

	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

// World owns entities, their components, the event queue and the scene's
// physics world.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue

	physicsWorld *physics.World
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities ordered by slot id.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gens {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the live entity with the lowest slot id that has kind.
func (w *World) First(kind component.Identified) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	s := w.stores[kind.ID()]
	if s.len() == 0 {
		return 0, false
	}
	ids := s.ids()
	slices.Sort(ids)
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many live entities have kind.
func (w *World) Count(kind component.Identified) int {
	if w == nil || kind == nil {
		return 0
	}
	return w.stores[kind.ID()].len()
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*sparseSet)
		}
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches the scene's physics world.
func (w *World) SetPhysicsWorld(pw *physics.World) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *physics.World {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
