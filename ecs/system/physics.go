package system

import (
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

// PhysicsPreStepSystem opens the physics frame, lets the first body run the
// fixed-step simulation and copies body transforms onto objects. It then
// reports contacts that began or ended during the step as events.
type PhysicsPreStepSystem struct {
	// Elapsed returns the seconds since the previous tick.
	Elapsed func() float64
}

func NewPhysicsPreStepSystem(elapsed func() float64) *PhysicsPreStepSystem {
	return &PhysicsPreStepSystem{Elapsed: elapsed}
}

func (s *PhysicsPreStepSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil || pw.Destroyed() {
		return
	}
	elapsed := physics.DefaultTimeStep
	if s.Elapsed != nil {
		elapsed = s.Elapsed()
	}
	pw.BeginFrame(elapsed)

	owners := make(map[*physics.Body]ecs.Entity)
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		pb.Body.PreStep()
		owners[pb.Body] = e
	})

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		pushContacts(w, e, owners, pb.Body.StartedContacts(), ecs.CollisionEventStarted)
		pushContacts(w, e, owners, pb.Body.EndedContacts(), ecs.CollisionEventStopped)
	})
}

func pushContacts(w *ecs.World, e ecs.Entity, owners map[*physics.Body]ecs.Entity, others []*physics.Body, kind ecs.CollisionEventKind) {
	seen := make(map[ecs.Entity]bool, len(others))
	for _, other := range others {
		oe, ok := owners[other]
		if !ok || oe <= e || seen[oe] {
			continue
		}
		seen[oe] = true
		w.Events().Push(ecs.Event{
			Type: ecs.EventCollision,
			Data: ecs.CollisionEvent{Entity: e, Other: oe, Kind: kind},
		})
	}
}

// PhysicsPostStepSystem pushes object changes made during the tick back to
// the bodies and closes the physics frame.
type PhysicsPostStepSystem struct{}

func NewPhysicsPostStepSystem() *PhysicsPostStepSystem {
	return &PhysicsPostStepSystem{}
}

func (s *PhysicsPostStepSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil || pw.Destroyed() {
		return
	}
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody) {
		pb.Body.PostStep()
	})
	pw.EndFrame()
}
