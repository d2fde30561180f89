package physics

import "github.com/ByteArena/box2d"

// AddMouseJoint drags the body toward the pixel target (tx, ty).
func (b *Body) AddMouseJoint(tx, ty, maxForce, frequency, damping float64) JointID {
	body := b.EngineBody()
	if body == nil {
		return 0
	}

	def := box2d.MakeB2MouseJointDef()
	def.BodyA = b.world.static
	def.BodyB = body
	def.Target = b.world.units.ToPhysics(tx, ty)
	def.MaxForce = nonNegative(maxForce)
	def.FrequencyHz = 1
	if frequency > 0 {
		def.FrequencyHz = frequency
	}
	def.DampingRatio = nonNegative(damping)

	return b.world.addJoint(&Joint{Kind: JointMouse}, &def)
}

func (w *World) mouse(id JointID) (*box2d.B2MouseJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2MouseJoint](w, id, JointMouse)
}

func (w *World) MouseJointTarget(id JointID) (float64, float64) {
	mj, _, ok := w.mouse(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(mj.GetTarget())
}

// SetMouseJointTarget moves the target and wakes the dragged body.
func (w *World) SetMouseJointTarget(id JointID, tx, ty float64) {
	mj, j, ok := w.mouse(id)
	if !ok {
		return
	}
	mj.SetTarget(w.units.ToPhysics(tx, ty))
	if j.bodyB != nil {
		j.bodyB.SetAwake(true)
	}
}

func (w *World) MouseJointMaxForce(id JointID) float64 {
	mj, _, ok := w.mouse(id)
	if !ok {
		return 0
	}
	return mj.GetMaxForce()
}

func (w *World) SetMouseJointMaxForce(id JointID, maxForce float64) {
	if maxForce < 0 {
		return
	}
	mj, j, ok := w.mouse(id)
	if !ok {
		return
	}
	mj.SetMaxForce(maxForce)
	j.wake()
}

func (w *World) MouseJointFrequency(id JointID) float64 {
	mj, _, ok := w.mouse(id)
	if !ok {
		return 0
	}
	return mj.GetFrequency()
}

func (w *World) SetMouseJointFrequency(id JointID, frequency float64) {
	if frequency <= 0 {
		return
	}
	if mj, _, ok := w.mouse(id); ok {
		mj.SetFrequency(frequency)
	}
}

func (w *World) MouseJointDampingRatio(id JointID) float64 {
	mj, _, ok := w.mouse(id)
	if !ok {
		return 0
	}
	return mj.GetDampingRatio()
}

func (w *World) SetMouseJointDampingRatio(id JointID, damping float64) {
	if damping < 0 {
		return
	}
	if mj, _, ok := w.mouse(id); ok {
		mj.SetDampingRatio(damping)
	}
}
