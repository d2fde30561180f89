package system

import (
	"log"

	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
	"github.com/milk9111/physics2d/prefabs"
)

// HotReloadSystem applies prefab files reported by a watcher. Body specs are
// pushed into live bodies, scripts are recompiled on their next tick and
// scene changes are handed to OnScene.
type HotReloadSystem struct {
	Events   <-chan string
	Scripts  *ScriptSystem
	LoadBody func(name string) (physics.BodyConfig, error)
	OnScene  func(name string)
}

func NewHotReloadSystem(events <-chan string, scripts *ScriptSystem) *HotReloadSystem {
	return &HotReloadSystem{Events: events, Scripts: scripts, LoadBody: prefabs.LoadBody}
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if s == nil || s.Events == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.Events:
			if !ok {
				s.Events = nil
				return
			}
			s.apply(w, name)
		default:
			return
		}
	}
}

func (s *HotReloadSystem) apply(w *ecs.World, name string) {
	switch {
	case prefabs.IsBodySpec(name):
		s.reloadBodies(w, name)
	case prefabs.IsScript(name):
		s.Scripts.Invalidate(name)
		log.Printf("HotReload: script %s", name)
	case prefabs.IsSceneSpec(name):
		if s.OnScene != nil {
			s.OnScene(name)
		}
	}
}

func (s *HotReloadSystem) reloadBodies(w *ecs.World, name string) {
	pw := w.PhysicsWorld()
	if pw == nil || pw.Destroyed() {
		return
	}
	load := s.LoadBody
	if load == nil {
		load = prefabs.LoadBody
	}
	cfg, err := load(name)
	if err != nil {
		log.Printf("HotReload: body %s: %v", name, err)
		return
	}

	updated, recreated := 0, 0
	ecs.ForEach2(w, component.ObjectComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, obj *component.Object, pb *component.PhysicsBody) {
		if pb.SpecPath != name {
			return
		}
		next := cfg
		if pb.TypeOverride != "" {
			next.BodyType = pb.TypeOverride
		}
		pb.Config = next
		if pb.Body.UpdateConfig(next) {
			pb.Body.OnHotReload()
			updated++
			return
		}
		// Filter or type changes need a new engine body; joints on the old
		// one are lost.
		pb.Body.Destroy()
		pb.Body = physics.NewBody(pw, obj, next)
		pb.Body.OnHotReload()
		recreated++
	})
	log.Printf("HotReload: body %s: %d updated, %d recreated", name, updated, recreated)
}
