package system

import (
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
)

// TTLSystem decrements frame-based TTL components and requests destruction
// when the TTL reaches zero, so DestroySystem also removes the body.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}
		ecs.Remove(w, e, component.TTLComponent.Kind())
		_ = ecs.Add(w, e, component.DestroyRequestComponent.Kind(), &component.DestroyRequest{})
	})
}
