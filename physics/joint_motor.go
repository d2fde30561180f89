package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// AddFrictionJoint resists relative motion between b and other up to
// maxForce and maxTorque.
func (b *Body) AddFrictionJoint(x1, y1 float64, other *Body, x2, y2, maxForce, maxTorque float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}

	def := box2d.MakeB2FrictionJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	def.MaxForce = nonNegative(maxForce)
	def.MaxTorque = nonNegative(maxTorque)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointFriction}, &def)
}

func (w *World) friction(id JointID) (*box2d.B2FrictionJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2FrictionJoint](w, id, JointFriction)
}

func (w *World) FrictionJointMaxForce(id JointID) float64 {
	fj, _, ok := w.friction(id)
	if !ok {
		return 0
	}
	return fj.GetMaxForce()
}

func (w *World) SetFrictionJointMaxForce(id JointID, maxForce float64) {
	if maxForce < 0 {
		return
	}
	fj, j, ok := w.friction(id)
	if !ok {
		return
	}
	fj.SetMaxForce(maxForce)
	j.wake()
}

func (w *World) FrictionJointMaxTorque(id JointID) float64 {
	fj, _, ok := w.friction(id)
	if !ok {
		return 0
	}
	return fj.GetMaxTorque()
}

func (w *World) SetFrictionJointMaxTorque(id JointID, maxTorque float64) {
	if maxTorque < 0 {
		return
	}
	fj, j, ok := w.friction(id)
	if !ok {
		return
	}
	fj.SetMaxTorque(maxTorque)
	j.wake()
}

// AddMotorJoint drives other toward the pixel offset (offX, offY) and angular
// offset (degrees) relative to b. correction is clamped to [0, 1].
func (b *Body) AddMotorJoint(other *Body, offX, offY, offAngle, maxForce, maxTorque, correction float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}

	def := box2d.MakeB2MotorJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LinearOffset = b.world.units.ToPhysics(offX, offY)
	def.AngularOffset = ToRad(offAngle)
	def.MaxForce = nonNegative(maxForce)
	def.MaxTorque = nonNegative(maxTorque)
	def.CorrectionFactor = mgl64.Clamp(correction, 0, 1)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointMotor}, &def)
}

func (w *World) motor(id JointID) (*box2d.B2MotorJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2MotorJoint](w, id, JointMotor)
}

func (w *World) MotorJointOffset(id JointID) (float64, float64) {
	mj, _, ok := w.motor(id)
	if !ok {
		return 0, 0
	}
	return w.units.ToPixels(mj.GetLinearOffset())
}

func (w *World) SetMotorJointOffset(id JointID, offX, offY float64) {
	if mj, _, ok := w.motor(id); ok {
		mj.SetLinearOffset(w.units.ToPhysics(offX, offY))
	}
}

func (w *World) MotorJointAngularOffset(id JointID) float64 {
	mj, _, ok := w.motor(id)
	if !ok {
		return 0
	}
	return ToDeg(mj.GetAngularOffset())
}

func (w *World) SetMotorJointAngularOffset(id JointID, offAngle float64) {
	if mj, _, ok := w.motor(id); ok {
		mj.SetAngularOffset(ToRad(offAngle))
	}
}

func (w *World) MotorJointMaxForce(id JointID) float64 {
	mj, _, ok := w.motor(id)
	if !ok {
		return 0
	}
	return mj.GetMaxForce()
}

func (w *World) SetMotorJointMaxForce(id JointID, maxForce float64) {
	if maxForce < 0 {
		return
	}
	mj, j, ok := w.motor(id)
	if !ok {
		return
	}
	mj.SetMaxForce(maxForce)
	j.wake()
}

func (w *World) MotorJointMaxTorque(id JointID) float64 {
	mj, _, ok := w.motor(id)
	if !ok {
		return 0
	}
	return mj.GetMaxTorque()
}

func (w *World) SetMotorJointMaxTorque(id JointID, maxTorque float64) {
	if maxTorque < 0 {
		return
	}
	mj, j, ok := w.motor(id)
	if !ok {
		return
	}
	mj.SetMaxTorque(maxTorque)
	j.wake()
}

func (w *World) MotorJointCorrectionFactor(id JointID) float64 {
	mj, _, ok := w.motor(id)
	if !ok {
		return 0
	}
	return mj.GetCorrectionFactor()
}

// SetMotorJointCorrectionFactor ignores values outside [0, 1].
func (w *World) SetMotorJointCorrectionFactor(id JointID, correction float64) {
	if correction < 0 || correction > 1 {
		return
	}
	mj, j, ok := w.motor(id)
	if !ok {
		return
	}
	mj.SetCorrectionFactor(correction)
	j.wake()
}
