package component

import "github.com/milk9111/physics2d/physics"

// DestroyRequest marks an entity for removal at the end of the tick.
type DestroyRequest struct{}

var DestroyRequestComponent = NewComponent[DestroyRequest]()

// SceneJoints is a singleton holding the ids of joints declared by the scene,
// keyed by their declared names.
type SceneJoints struct {
	ByName map[string]physics.JointID
}

var SceneJointsComponent = NewComponent[SceneJoints]()
