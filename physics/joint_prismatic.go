package physics

import (
	"math"

	"github.com/ByteArena/box2d"
)

// axisFor converts a world axis angle in degrees to a unit axis local to body.
func axisFor(body *box2d.B2Body, axisAngle float64) box2d.B2Vec2 {
	rad := ToRad(axisAngle) - body.GetAngle()
	return box2d.MakeB2Vec2(math.Cos(rad), math.Sin(rad))
}

// worldAxisAngle is the inverse of axisFor, in degrees.
func worldAxisAngle(localAxis box2d.B2Vec2, body *box2d.B2Body) float64 {
	return ToDeg(math.Atan2(localAxis.Y, localAxis.X) + body.GetAngle())
}

// AddPrismaticJoint lets other slide relative to b along the world axis
// axisAngle (degrees). Translations and the motor speed are in pixels.
func (b *Body) AddPrismaticJoint(x1, y1 float64, other *Body, x2, y2, axisAngle, referenceAngle float64, enableLimit bool, lowerTranslation, upperTranslation float64, enableMotor bool, motorSpeed, maxMotorForce float64, collide bool) JointID {
	body, otherBody, ok := b.jointPair(other)
	if !ok {
		return 0
	}
	u := b.world.units

	def := box2d.MakeB2PrismaticJointDef()
	def.BodyA = body
	def.BodyB = otherBody
	def.LocalAnchorA = b.localAnchor(body, x1, y1)
	def.LocalAnchorB = b.localAnchor(otherBody, x2, y2)
	def.LocalAxisA = axisFor(body, axisAngle)
	def.ReferenceAngle = ToRad(referenceAngle)
	def.EnableLimit = enableLimit
	lower, upper := translationLimits(lowerTranslation, upperTranslation)
	def.LowerTranslation = u.ToPhysicsX(lower)
	def.UpperTranslation = u.ToPhysicsX(upper)
	def.EnableMotor = enableMotor
	def.MotorSpeed = u.ToPhysicsX(motorSpeed)
	def.MaxMotorForce = nonNegative(maxMotorForce)
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointPrismatic}, &def)
}

// translationLimits orders the bounds and keeps zero inside the range.
func translationLimits(lower, upper float64) (float64, float64) {
	if upper < lower {
		lower, upper = upper, lower
	}
	if lower > 0 {
		lower = 0
	}
	if upper < 0 {
		upper = 0
	}
	return lower, upper
}

func (w *World) prismatic(id JointID) (*box2d.B2PrismaticJoint, *Joint, bool) {
	return lookupJoint[*box2d.B2PrismaticJoint](w, id, JointPrismatic)
}

// PrismaticJointAxisAngle is the world angle of the sliding axis, in degrees.
func (w *World) PrismaticJointAxisAngle(id JointID) float64 {
	pj, j, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return worldAxisAngle(pj.GetLocalAxisA(), j.bodyA)
}

func (w *World) PrismaticJointReferenceAngle(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return ToDeg(pj.GetReferenceAngle())
}

func (w *World) PrismaticJointTranslation(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetJointTranslation())
}

func (w *World) PrismaticJointSpeed(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetJointSpeed())
}

func (w *World) PrismaticJointLimitsEnabled(id JointID) bool {
	pj, _, ok := w.prismatic(id)
	return ok && pj.IsLimitEnabled()
}

func (w *World) EnablePrismaticJointLimits(id JointID, enable bool) {
	if pj, _, ok := w.prismatic(id); ok {
		pj.EnableLimit(enable)
	}
}

func (w *World) PrismaticJointMinTranslation(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetLowerLimit())
}

func (w *World) PrismaticJointMaxTranslation(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetUpperLimit())
}

func (w *World) SetPrismaticJointLimits(id JointID, lowerTranslation, upperTranslation float64) {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return
	}
	lower, upper := translationLimits(lowerTranslation, upperTranslation)
	pj.SetLimits(w.units.ToPhysicsX(lower), w.units.ToPhysicsX(upper))
}

func (w *World) PrismaticJointMotorEnabled(id JointID) bool {
	pj, _, ok := w.prismatic(id)
	return ok && pj.IsMotorEnabled()
}

func (w *World) EnablePrismaticJointMotor(id JointID, enable bool) {
	if pj, _, ok := w.prismatic(id); ok {
		pj.EnableMotor(enable)
	}
}

func (w *World) PrismaticJointMotorSpeed(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return w.units.ToPixelsX(pj.GetMotorSpeed())
}

func (w *World) SetPrismaticJointMotorSpeed(id JointID, speed float64) {
	if pj, _, ok := w.prismatic(id); ok {
		pj.SetMotorSpeed(w.units.ToPhysicsX(speed))
	}
}

func (w *World) PrismaticJointMaxMotorForce(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return pj.GetMaxMotorForce()
}

func (w *World) SetPrismaticJointMaxMotorForce(id JointID, maxForce float64) {
	if maxForce < 0 {
		return
	}
	pj, j, ok := w.prismatic(id)
	if !ok {
		return
	}
	pj.SetMaxMotorForce(maxForce)
	j.wake()
}

func (w *World) PrismaticJointMotorForce(id JointID) float64 {
	pj, _, ok := w.prismatic(id)
	if !ok {
		return 0
	}
	return pj.GetMotorForce(1 / w.timeStep)
}
