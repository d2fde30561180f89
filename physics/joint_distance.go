package physics

import "github.com/ByteArena/box2d"

// AddDistanceJoint keeps the anchors (x1,y1) on b and (x2,y2) on other at a
// fixed distance. A length <= 0 uses the current anchor distance.
func (b *Body) AddDistanceJoint(x1, y1 float64, other *Body, x2, y2, length, frequency, damping float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}
	u := b.world.units

	def := box2d.MakeB2DistanceJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	if length > 0 {
		def.Length = u.ToPhysicsX(length)
	} else {
		def.Length = u.Distance(x1, y1, x2, y2)
	}
	def.FrequencyHz = 0
	if frequency >= 0 {
		def.FrequencyHz = frequency
	}
	def.DampingRatio = 1
	if damping >= 0 {
		def.DampingRatio = damping
	}
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointDistance}, &def)
}

// DistanceJointLength is in pixels.
func (w *World) DistanceJointLength(id JointID) float64 {
	dj, _, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(dj.GetLength())
}

func (w *World) SetDistanceJointLength(id JointID, length float64) {
	if length <= 0 {
		return
	}
	dj, j, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance)
	if !ok {
		return
	}
	dj.SetLength(w.units.ToPhysicsX(length))
	j.wake()
}

func (w *World) DistanceJointFrequency(id JointID) float64 {
	dj, _, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance)
	if !ok {
		return 0
	}
	return dj.GetFrequency()
}

func (w *World) SetDistanceJointFrequency(id JointID, frequency float64) {
	if frequency < 0 {
		return
	}
	if dj, _, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance); ok {
		dj.SetFrequency(frequency)
	}
}

func (w *World) DistanceJointDampingRatio(id JointID) float64 {
	dj, _, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance)
	if !ok {
		return 0
	}
	return dj.GetDampingRatio()
}

func (w *World) SetDistanceJointDampingRatio(id JointID, damping float64) {
	if damping < 0 {
		return
	}
	if dj, _, ok := lookupJoint[*box2d.B2DistanceJoint](w, id, JointDistance); ok {
		dj.SetDampingRatio(damping)
	}
}

// AddRopeJoint limits the distance between the anchors to maxLength pixels.
// A maxLength <= 0 uses the current anchor distance.
func (b *Body) AddRopeJoint(x1, y1 float64, other *Body, x2, y2, maxLength float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}
	u := b.world.units

	def := box2d.MakeB2RopeJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	if maxLength > 0 {
		def.MaxLength = u.ToPhysicsX(maxLength)
	} else {
		def.MaxLength = u.Distance(x1, y1, x2, y2)
	}
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointRope}, &def)
}

func (w *World) RopeJointMaxLength(id JointID) float64 {
	rj, _, ok := lookupJoint[*box2d.B2RopeJoint](w, id, JointRope)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(rj.GetMaxLength())
}

func (w *World) SetRopeJointMaxLength(id JointID, maxLength float64) {
	if maxLength < 0 {
		return
	}
	rj, j, ok := lookupJoint[*box2d.B2RopeJoint](w, id, JointRope)
	if !ok {
		return
	}
	rj.SetMaxLength(w.units.ToPhysicsX(maxLength))
	j.wake()
}
