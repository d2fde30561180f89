package physics

import "github.com/ByteArena/box2d"

// AddWheelJoint attaches other as a wheel on a suspension along the world axis
// axisAngle (degrees). The motor speed is in degrees per second.
func (b *Body) AddWheelJoint(x1, y1 float64, other *Body, x2, y2, axisAngle, frequency, damping float64, enableMotor bool, motorSpeed, maxMotorTorque float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}

	def := box2d.MakeB2WheelJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	def.LocalAxisA = axisFor(body, axisAngle)
	def.FrequencyHz = 1
	if frequency > 0 {
		def.FrequencyHz = frequency
	}
	def.DampingRatio = nonNegative(damping)
	def.EnableMotor = enableMotor
	def.MotorSpeed = ToRad(motorSpeed)
	def.MaxMotorTorque = nonNegative(maxMotorTorque)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointWheel}, &def)
}

func (w *World) wheel(id JointID) (*box2d.B2WheelJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2WheelJoint](w, id, JointWheel)
}

func (w *World) WheelJointAxisAngle(id JointID) float64 {
	wj, j, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return worldAxisAngle(wj.GetLocalAxisA(), j.bodyA)
}

// WheelJointTranslation is the suspension travel in pixels.
func (w *World) WheelJointTranslation(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(wj.GetJointTranslation())
}

func (w *World) WheelJointSpeed(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return ToDeg(wj.GetJointAngularSpeed())
}

func (w *World) WheelJointMotorEnabled(id JointID) bool {
	wj, _, ok := w.wheel(id)
	return ok && wj.IsMotorEnabled()
}

func (w *World) EnableWheelJointMotor(id JointID, enable bool) {
	if wj, _, ok := w.wheel(id); ok {
		wj.EnableMotor(enable)
	}
}

func (w *World) WheelJointMotorSpeed(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return ToDeg(wj.GetMotorSpeed())
}

func (w *World) SetWheelJointMotorSpeed(id JointID, speed float64) {
	if wj, _, ok := w.wheel(id); ok {
		wj.SetMotorSpeed(ToRad(speed))
	}
}

func (w *World) WheelJointMaxMotorTorque(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return wj.GetMaxMotorTorque()
}

func (w *World) SetWheelJointMaxMotorTorque(id JointID, maxTorque float64) {
	if maxTorque < 0 {
		return
	}
	wj, j, ok := w.wheel(id)
	if !ok {
		return
	}
	wj.SetMaxMotorTorque(maxTorque)
	j.wake()
}

func (w *World) WheelJointMotorTorque(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return wj.GetMotorTorque(1 / w.timeStep)
}

func (w *World) WheelJointFrequency(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return wj.GetSpringFrequencyHz()
}

func (w *World) SetWheelJointFrequency(id JointID, frequency float64) {
	if frequency < 0 {
		return
	}
	if wj, _, ok := w.wheel(id); ok {
		wj.SetSpringFrequencyHz(frequency)
	}
}

func (w *World) WheelJointDampingRatio(id JointID) float64 {
	wj, _, ok := w.wheel(id)
	if !ok {
		return 0
	}
	return wj.GetSpringDampingRatio()
}

func (w *World) SetWheelJointDampingRatio(id JointID, damping float64) {
	if damping < 0 {
		return
	}
	if wj, _, ok := w.wheel(id); ok {
		wj.SetSpringDampingRatio(damping)
	}
}
