package physics

import "github.com/ByteArena/box2d"

// AddWeldJoint glues other to b. The reference angle is in degrees.
func (b *Body) AddWeldJoint(x1, y1 float64, other *Body, x2, y2, referenceAngle, frequency, damping float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}

	def := box2d.MakeB2WeldJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	def.ReferenceAngle = ToRad(referenceAngle)
	def.FrequencyHz = 1
	if frequency > 0 {
		def.FrequencyHz = frequency
	}
	def.DampingRatio = nonNegative(damping)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointWeld, referenceAngle: def.ReferenceAngle}, &def)
}

func (w *World) weld(id JointID) (*box2d.B2WeldJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2WeldJoint](w, id, JointWeld)
}

func (w *World) WeldJointReferenceAngle(id JointID) float64 {
	_, j, ok := w.weld(id)
	if !ok {
		return 0
	}
	return ToDeg(j.referenceAngle)
}

func (w *World) WeldJointFrequency(id JointID) float64 {
	wj, _, ok := w.weld(id)
	if !ok {
		return 0
	}
	return wj.GetFrequency()
}

func (w *World) SetWeldJointFrequency(id JointID, frequency float64) {
	if frequency < 0 {
		return
	}
	if wj, _, ok := w.weld(id); ok {
		wj.SetFrequency(frequency)
	}
}

func (w *World) WeldJointDampingRatio(id JointID) float64 {
	wj, _, ok := w.weld(id)
	if !ok {
		return 0
	}
	return wj.GetDampingRatio()
}

func (w *World) SetWeldJointDampingRatio(id JointID, damping float64) {
	if damping < 0 {
		return
	}
	if wj, _, ok := w.weld(id); ok {
		wj.SetDampingRatio(damping)
	}
}
