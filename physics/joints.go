package physics

import (
	"github.com/ByteArena/box2d"
)

// lookupJoint returns the engine joint for id when it is registered with the
// expected kind.
func lookupJoint[T box2d.B2JointInterface](w *World, id JointID, kind JointKind) (T, *Joint, bool) {
	var zero T
	if w == nil || w.destroyed {
		return zero, nil, false
	}
	j := w.joints.Lookup(id, kind)
	if j == nil {
		return zero, nil, false
	}
	typed, ok := j.handle.(T)
	if !ok {
		return zero, nil, false
	}
	return typed, j, true
}

// addJoint creates the engine joint described by def and registers j for it.
func (w *World) addJoint(j *Joint, def box2d.B2JointDefInterface) JointID {
	if w == nil || w.destroyed {
		return 0
	}
	handle := createJoint(w.engine, def)
	if handle == nil {
		return 0
	}
	j.handle = handle
	j.bodyA = handle.GetBodyA()
	j.bodyB = handle.GetBodyB()
	return w.joints.Add(j)
}

// jointPair resolves the engine bodies of a two-body joint. Both bodies must
// share a world and behavior name and be distinct.
func (b *Body) jointPair(other *Body) (*box2d.B2Body, *box2d.B2Body, bool) {
	body := b.EngineBody()
	if body == nil || other == nil {
		return nil, nil, false
	}
	if other.world != b.world || other.cfg.Name != b.cfg.Name {
		return nil, nil, false
	}
	otherBody := other.EngineBody()
	if otherBody == nil || otherBody == body {
		return nil, nil, false
	}
	return body, otherBody, true
}

// localAnchor converts a pixel-space world point to body-local physics units.
func (b *Body) localAnchor(body *box2d.B2Body, x, y float64) box2d.B2Vec2 {
	return body.GetLocalPoint(b.world.units.ToPhysics(x, y))
}

// IsJointFirstObject reports whether this body is the first body of the joint.
func (b *Body) IsJointFirstObject(id JointID) bool {
	if b == nil || b.body == nil {
		return false
	}
	j := b.world.joints.Get(id)
	return j != nil && j.bodyA == b.body
}

func (b *Body) IsJointSecondObject(id JointID) bool {
	if b == nil || b.body == nil {
		return false
	}
	j := b.world.joints.Get(id)
	return j != nil && j.bodyB == b.body
}

func (w *World) probe(id JointID) (jointProbe, bool) {
	if w == nil || w.destroyed {
		return nil, false
	}
	j := w.joints.Get(id)
	if j == nil {
		return nil, false
	}
	p, ok := j.handle.(jointProbe)
	return p, ok
}

// JointFirstAnchor returns the world position of the joint's first anchor, in pixels.
func (w *World) JointFirstAnchor(id JointID) (float64, float64) {
	p, ok := w.probe(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(p.GetAnchorA())
}

func (w *World) JointSecondAnchor(id JointID) (float64, float64) {
	p, ok := w.probe(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(p.GetAnchorB())
}

// JointReactionForce is the magnitude of the force the joint applied during the last step.
func (w *World) JointReactionForce(id JointID) float64 {
	p, ok := w.probe(id)
	if !ok {
		return 0
	}
	return p.GetReactionForce(1 / w.timeStep).Length()
}

func (w *World) JointReactionTorque(id JointID) float64 {
	p, ok := w.probe(id)
	if !ok {
		return 0
	}
	return p.GetReactionTorque(1 / w.timeStep)
}

// JointKindOf returns the kind of a registered joint, or JointUnknown.
func (w *World) JointKindOf(id JointID) JointKind {
	if w == nil {
		return JointUnknown
	}
	if j := w.joints.Get(id); j != nil {
		return j.Kind
	}
	return JointUnknown
}
