package system

import (
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
)

// DestroySystem removes entities tagged with DestroyRequest, destroying
// their physics bodies and joints first.
type DestroySystem struct{}

func NewDestroySystem() *DestroySystem {
	return &DestroySystem{}
}

func (s *DestroySystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.DestroyRequestComponent.Kind(), func(e ecs.Entity, _ *component.DestroyRequest) {
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
			pb.Body.Destroy()
		}
		ecs.DestroyEntity(w, e)
	})
}
