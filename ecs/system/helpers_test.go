package system

import (
	"testing"

	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
	"github.com/milk9111/physics2d/prefabs"
	"github.com/stretchr/testify/require"
)

// systemFunc adapts a closure to ecs.System.
type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }

func fixedElapsed() float64 { return physics.DefaultTimeStep }

// buildScene builds objects into a fresh world and destroys it on cleanup.
func buildScene(t *testing.T, objects ...prefabs.ObjectSpec) (*ecs.World, *physics.World) {
	t.Helper()
	w := ecs.NewWorld()
	pw, err := prefabs.BuildScene(w, prefabs.SceneSpec{Name: t.Name(), Objects: objects})
	require.NoError(t, err)
	t.Cleanup(pw.Destroy)
	return w, pw
}

func groundSpec() prefabs.ObjectSpec {
	return prefabs.ObjectSpec{Name: "ground", X: 0, Y: 100, Width: 200, Height: 20, Body: "bodies/ground.yaml"}
}

func crateSpec(name string, x, y float64) prefabs.ObjectSpec {
	return prefabs.ObjectSpec{Name: name, X: x, Y: y, Width: 20, Height: 20, Body: "bodies/crate.yaml"}
}

func entityNamed(t *testing.T, w *ecs.World, name string) ecs.Entity {
	t.Helper()
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.ObjectComponent.Kind(), func(e ecs.Entity, o *component.Object) {
		if o.Name == name {
			found, ok = e, true
		}
	})
	require.Truef(t, ok, "no object named %q", name)
	return found
}

func bodyOf(t *testing.T, w *ecs.World, name string) *component.PhysicsBody {
	t.Helper()
	pb, ok := ecs.Get(w, entityNamed(t, w, name), component.PhysicsBodyComponent.Kind())
	require.Truef(t, ok, "%q has no body", name)
	return pb
}
