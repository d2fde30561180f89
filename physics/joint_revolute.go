package physics

import "github.com/ByteArena/box2d"

// AddRevoluteJoint pins the body to the world at (x, y). Angles are in degrees
// and the motor speed in degrees per second.
func (b *Body) AddRevoluteJoint(x, y float64, enableLimit bool, referenceAngle, lowerAngle, upperAngle float64, enableMotor bool, motorSpeed, maxMotorTorque float64) JointID {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	static := b.world.static

	def := box2d.MakeB2RevoluteJointDef()
	def.BodyA = static
	def.BodyB = body
	def.LocalAnchorA = b.localAnchor(static, x, y)
	def.LocalAnchorB = b.localAnchor(body, x, y)
	fillRevoluteDef(&def, enableLimit, referenceAngle, lowerAngle, upperAngle, enableMotor, motorSpeed, maxMotorTorque)
	def.CollideConnected = false

	return b.world.addJoint(&Joint{Kind: JointRevolute}, &def)
}

// AddRevoluteJointBetweenTwoBodies hinges b at (x1,y1) to other at (x2,y2).
func (b *Body) AddRevoluteJointBetweenTwoBodies(x1, y1 float64, other *Body, x2, y2 float64, enableLimit bool, referenceAngle, lowerAngle, upperAngle float64, enableMotor bool, motorSpeed, maxMotorTorque float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}

	def := box2d.MakeB2RevoluteJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	fillRevoluteDef(&def, enableLimit, referenceAngle, lowerAngle, upperAngle, enableMotor, motorSpeed, maxMotorTorque)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointRevolute}, &def)
}

func fillRevoluteDef(def *box2d.B2RevoluteJointDef, enableLimit bool, referenceAngle, lowerAngle, upperAngle float64, enableMotor bool, motorSpeed, maxMotorTorque float64) {
	if upperAngle < lowerAngle {
		lowerAngle, upperAngle = upperAngle, lowerAngle
	}
	def.EnableLimit = enableLimit
	def.ReferenceAngle = ToRad(referenceAngle)
	def.LowerAngle = ToRad(lowerAngle)
	def.UpperAngle = ToRad(upperAngle)
	def.EnableMotor = enableMotor
	def.MotorSpeed = ToRad(motorSpeed)
	def.MaxMotorTorque = nonNegative(maxMotorTorque)
}

func (w *World) revolute(id JointID) (*box2d.B2RevoluteJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2RevoluteJoint](w, id, JointRevolute)
}

func (w *World) RevoluteJointReferenceAngle(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetReferenceAngle())
}

// RevoluteJointAngle is the current joint angle in degrees.
func (w *World) RevoluteJointAngle(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetJointAngle())
}

func (w *World) RevoluteJointSpeed(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetJointSpeed())
}

func (w *World) RevoluteJointLimitsEnabled(id JointID) bool {
	rj, _, ok := w.revolute(id)
	return ok && rj.IsLimitEnabled()
}

func (w *World) EnableRevoluteJointLimits(id JointID, enable bool) {
	if rj, _, ok := w.revolute(id); ok {
		rj.EnableLimit(enable)
	}
}

func (w *World) RevoluteJointMinAngle(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetLowerLimit())
}

func (w *World) RevoluteJointMaxAngle(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetUpperLimit())
}

// SetRevoluteJointLimits swaps the bounds when given out of order.
func (w *World) SetRevoluteJointLimits(id JointID, lowerAngle, upperAngle float64) {
	rj, _, ok := w.revolute(id)
	if !ok {
		return
	}
	if upperAngle < lowerAngle {
		lowerAngle, upperAngle = upperAngle, lowerAngle
	}
	rj.SetLimits(ToRad(lowerAngle), ToRad(upperAngle))
}

func (w *World) RevoluteJointMotorEnabled(id JointID) bool {
	rj, _, ok := w.revolute(id)
	return ok && rj.IsMotorEnabled()
}

func (w *World) EnableRevoluteJointMotor(id JointID, enable bool) {
	if rj, _, ok := w.revolute(id); ok {
		rj.EnableMotor(enable)
	}
}

func (w *World) RevoluteJointMotorSpeed(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return ToDeg(rj.GetMotorSpeed())
}

func (w *World) SetRevoluteJointMotorSpeed(id JointID, speed float64) {
	if rj, _, ok := w.revolute(id); ok {
		rj.SetMotorSpeed(ToRad(speed))
	}
}

func (w *World) RevoluteJointMaxMotorTorque(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return rj.GetMaxMotorTorque()
}

func (w *World) SetRevoluteJointMaxMotorTorque(id JointID, maxTorque float64) {
	if maxTorque < 0 {
		return
	}
	rj, j, ok := w.revolute(id)
	if !ok {
		return
	}
	rj.SetMaxMotorTorque(maxTorque)
	j.wake()
}

// RevoluteJointMotorTorque is the motor torque applied during the last step.
func (w *World) RevoluteJointMotorTorque(id JointID) float64 {
	rj, _, ok := w.revolute(id)
	if !ok {
		return 0
	}
	return rj.GetMotorTorque(1 / w.timeStep)
}
