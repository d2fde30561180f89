package physics

import "github.com/ByteArena/box2d"

// AddPulleyJoint connects the anchors of b and other through the ground
// anchors (gx1,gy1) and (gx2,gy2). Lengths <= 0 use the current
// anchor-to-ground distances and a ratio <= 0 becomes 1.
func (b *Body) AddPulleyJoint(x1, y1 float64, other *Body, x2, y2, gx1, gy1, gx2, gy2, lengthA, lengthB, ratio float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}
	u := b.world.units

	def := box2d.MakeB2PulleyJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	def.GroundAnchorA = u.ToPhysics(gx1, gy1)
	def.GroundAnchorB = u.ToPhysics(gx2, gy2)
	if lengthA > 0 {
		def.LengthA = u.ToPhysicsX(lengthA)
	} else {
		def.LengthA = u.Distance(x1, y1, gx1, gy1)
	}
	if lengthB > 0 {
		def.LengthB = u.ToPhysicsX(lengthB)
	} else {
		def.LengthB = u.Distance(x2, y2, gx2, gy2)
	}
	def.Ratio = 1
	if ratio > 0 {
		def.Ratio = ratio
	}
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointPulley}, &def)
}

func (w *World) pulley(id JointID) (*box2d.B2PulleyJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2PulleyJoint](w, id, JointPulley)
}

func (w *World) PulleyJointFirstGroundAnchor(id JointID) (float64, float64) {
	pj, _, ok := w.pulley(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(pj.GetGroundAnchorA())
}

func (w *World) PulleyJointSecondGroundAnchor(id JointID) (float64, float64) {
	pj, _, ok := w.pulley(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(pj.GetGroundAnchorB())
}

// PulleyJointFirstLength is the current length of the first segment, in pixels.
func (w *World) PulleyJointFirstLength(id JointID) float64 {
	pj, _, ok := w.pulley(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetCurrentLengthA())
}

func (w *World) PulleyJointSecondLength(id JointID) float64 {
	pj, _, ok := w.pulley(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetCurrentLengthB())
}

func (w *World) PulleyJointRatio(id JointID) float64 {
	pj, _, ok := w.pulley(id)
	if !ok {
		return 0
	}
	return pj.GetRatio()
}
