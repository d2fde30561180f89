package physics

import (
	"math"

	"github.com/ByteArena/box2d"
)

func (b *Body) BodyType() BodyType {
	if b == nil {
		return BodyDynamic
	}
	return b.cfg.BodyType
}

func (b *Body) IsDynamic() bool   { return b.BodyType() == BodyDynamic }
func (b *Body) IsStatic() bool    { return b.BodyType() == BodyStatic }
func (b *Body) IsKinematic() bool { return b.BodyType() == BodyKinematic }

func (b *Body) SetDynamic()   { b.SetBodyType(BodyDynamic) }
func (b *Body) SetStatic()    { b.SetBodyType(BodyStatic) }
func (b *Body) SetKinematic() { b.SetBodyType(BodyKinematic) }

// SetBodyType changes the body type in place and wakes the body.
func (b *Body) SetBodyType(t BodyType) {
	if b == nil || b.cfg.BodyType == t {
		return
	}
	switch t {
	case BodyStatic, BodyKinematic, BodyDynamic:
	default:
		return
	}
	b.cfg.BodyType = t
	body := b.EngineBody()
	if body == nil {
		return
	}
	body.SetType(bodyTypeToEngine(t))
	body.SetAwake(true)
}

func (b *Body) IsBullet() bool { return b != nil && b.cfg.Bullet }

func (b *Body) SetBullet(enable bool) {
	if b == nil || b.cfg.Bullet == enable {
		return
	}
	b.cfg.Bullet = enable
	if body := b.EngineBody(); body != nil {
		body.SetBullet(enable)
	}
}

func (b *Body) HasFixedRotation() bool { return b != nil && b.cfg.FixedRotation }

func (b *Body) SetFixedRotation(enable bool) {
	if b == nil {
		return
	}
	b.cfg.FixedRotation = enable
	if body := b.EngineBody(); body != nil {
		body.SetFixedRotation(enable)
	}
}

func (b *Body) IsSleepingAllowed() bool { return b != nil && b.cfg.CanSleep }

func (b *Body) SetSleepingAllowed(enable bool) {
	if b == nil {
		return
	}
	b.cfg.CanSleep = enable
	if body := b.EngineBody(); body != nil {
		body.SetSleepingAllowed(enable)
	}
}

// IsSleeping reports true when no engine body can be created.
func (b *Body) IsSleeping() bool {
	body := b.EngineBody()
	if body == nil {
		return true
	}
	return !body.IsAwake()
}

func (b *Body) Density() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.Density
}

func (b *Body) SetDensity(density float64) {
	if b == nil {
		return
	}
	density = nonNegative(density)
	if b.cfg.Density == density {
		return
	}
	b.cfg.Density = density
	body := b.EngineBody()
	if body == nil {
		return
	}
	if f := body.GetFixtureList(); f != nil {
		f.SetDensity(density)
	}
	body.ResetMassData()
}

func (b *Body) Friction() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.Friction
}

// SetFriction also resets the mixed friction of the body's existing contacts.
func (b *Body) SetFriction(friction float64) {
	if b == nil {
		return
	}
	friction = nonNegative(friction)
	if b.cfg.Friction == friction {
		return
	}
	b.cfg.Friction = friction
	body := b.EngineBody()
	if body == nil {
		return
	}
	if f := body.GetFixtureList(); f != nil {
		f.SetFriction(friction)
	}
	for edge := body.GetContactList(); edge != nil; edge = edge.Next {
		if c, ok := edge.Contact.(interface{ ResetFriction() }); ok {
			c.ResetFriction()
		}
	}
}

func (b *Body) Restitution() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.Restitution
}

func (b *Body) SetRestitution(restitution float64) {
	if b == nil {
		return
	}
	restitution = nonNegative(restitution)
	if b.cfg.Restitution == restitution {
		return
	}
	b.cfg.Restitution = restitution
	body := b.EngineBody()
	if body == nil {
		return
	}
	if f := body.GetFixtureList(); f != nil {
		f.SetRestitution(restitution)
	}
	for edge := body.GetContactList(); edge != nil; edge = edge.Next {
		if c, ok := edge.Contact.(interface{ ResetRestitution() }); ok {
			c.ResetRestitution()
		}
	}
}

func (b *Body) LinearDamping() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.LinearDamping
}

func (b *Body) SetLinearDamping(damping float64) {
	if b == nil || b.cfg.LinearDamping == damping {
		return
	}
	b.cfg.LinearDamping = damping
	if body := b.EngineBody(); body != nil {
		body.SetLinearDamping(damping)
	}
}

func (b *Body) AngularDamping() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.AngularDamping
}

func (b *Body) SetAngularDamping(damping float64) {
	if b == nil || b.cfg.AngularDamping == damping {
		return
	}
	b.cfg.AngularDamping = damping
	if body := b.EngineBody(); body != nil {
		body.SetAngularDamping(damping)
	}
}

func (b *Body) GravityScale() float64 {
	if b == nil {
		return 0
	}
	return b.cfg.GravityScale
}

func (b *Body) SetGravityScale(scale float64) {
	if b == nil || b.cfg.GravityScale == scale {
		return
	}
	b.cfg.GravityScale = scale
	if body := b.EngineBody(); body != nil {
		body.SetGravityScale(scale)
	}
}

func layerBit(layer int) (uint16, bool) {
	if layer < 1 || layer > 16 {
		return 0, false
	}
	return 1 << (layer - 1), true
}

// LayerEnabled reports whether collision layer 1..16 is set.
func (b *Body) LayerEnabled(layer int) bool {
	bit, ok := layerBit(layer)
	return ok && b != nil && b.cfg.Layers&bit != 0
}

func (b *Body) EnableLayer(layer int, enable bool) {
	bit, ok := layerBit(layer)
	if b == nil || !ok {
		return
	}
	if enable {
		b.cfg.Layers |= bit
	} else {
		b.cfg.Layers &^= bit
	}
	b.refilter()
}

func (b *Body) MaskEnabled(mask int) bool {
	bit, ok := layerBit(mask)
	return ok && b != nil && b.cfg.Masks&bit != 0
}

func (b *Body) EnableMask(mask int, enable bool) {
	bit, ok := layerBit(mask)
	if b == nil || !ok {
		return
	}
	if enable {
		b.cfg.Masks |= bit
	} else {
		b.cfg.Masks &^= bit
	}
	b.refilter()
}

func (b *Body) refilter() {
	body := b.EngineBody()
	if body == nil {
		return
	}
	f := body.GetFixtureList()
	if f == nil {
		return
	}
	filter := f.GetFilterData()
	filter.CategoryBits = b.cfg.Layers
	filter.MaskBits = b.cfg.Masks
	f.SetFilterData(filter)
}

// LinearVelocityX is in pixels per second.
func (b *Body) LinearVelocityX() float64 {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	return b.world.units.ToPixelsX(body.GetLinearVelocity().X)
}

func (b *Body) SetLinearVelocityX(vx float64) {
	body := b.EngineBody()
	if body == nil {
		return
	}
	v := body.GetLinearVelocity()
	body.SetLinearVelocity(box2d.MakeB2Vec2(b.world.units.ToPhysicsX(vx), v.Y))
}

func (b *Body) LinearVelocityY() float64 {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	return b.world.units.ToPixelsY(body.GetLinearVelocity().Y)
}

func (b *Body) SetLinearVelocityY(vy float64) {
	body := b.EngineBody()
	if body == nil {
		return
	}
	v := body.GetLinearVelocity()
	body.SetLinearVelocity(box2d.MakeB2Vec2(v.X, b.world.units.ToPhysicsY(vy)))
}

func (b *Body) LinearVelocityLength() float64 {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	x, y := b.world.units.ToPixels(body.GetLinearVelocity())
	return math.Hypot(x, y)
}

// LinearVelocityAngle is the direction of motion in degrees.
func (b *Body) LinearVelocityAngle() float64 {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	x, y := b.world.units.ToPixels(body.GetLinearVelocity())
	return ToDeg(math.Atan2(y, x))
}

func (b *Body) SetLinearVelocityAngle(angle, speed float64) {
	body := b.EngineBody()
	if body == nil {
		return
	}
	rad := ToRad(angle)
	body.SetLinearVelocity(b.world.units.ToPhysics(speed*math.Cos(rad), speed*math.Sin(rad)))
}

// AngularVelocity is in degrees per second.
func (b *Body) AngularVelocity() float64 {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	return ToDeg(body.GetAngularVelocity())
}

func (b *Body) SetAngularVelocity(w float64) {
	if body := b.EngineBody(); body != nil {
		body.SetAngularVelocity(ToRad(w))
	}
}

// ApplyForce applies a force in engine units at the pixel position (px, py).
func (b *Body) ApplyForce(fx, fy, px, py float64) {
	body := b.awakeBody()
	if body == nil {
		return
	}
	body.ApplyForce(box2d.MakeB2Vec2(fx, fy), b.world.units.ToPhysics(px, py), false)
}

func (b *Body) ApplyPolarForce(angle, length, px, py float64) {
	rad := ToRad(angle)
	b.ApplyForce(length*math.Cos(rad), length*math.Sin(rad), px, py)
}

func (b *Body) ApplyForceTowardPosition(length, towardX, towardY, px, py float64) {
	body := b.awakeBody()
	if body == nil {
		return
	}
	rad := b.angleToward(body, towardX, towardY)
	body.ApplyForce(box2d.MakeB2Vec2(length*math.Cos(rad), length*math.Sin(rad)), b.world.units.ToPhysics(px, py), false)
}

func (b *Body) ApplyImpulse(ix, iy, px, py float64) {
	body := b.awakeBody()
	if body == nil {
		return
	}
	body.ApplyLinearImpulse(box2d.MakeB2Vec2(ix, iy), b.world.units.ToPhysics(px, py), false)
}

func (b *Body) ApplyPolarImpulse(angle, length, px, py float64) {
	rad := ToRad(angle)
	b.ApplyImpulse(length*math.Cos(rad), length*math.Sin(rad), px, py)
}

func (b *Body) ApplyImpulseTowardPosition(length, towardX, towardY, px, py float64) {
	body := b.awakeBody()
	if body == nil {
		return
	}
	rad := b.angleToward(body, towardX, towardY)
	body.ApplyLinearImpulse(box2d.MakeB2Vec2(length*math.Cos(rad), length*math.Sin(rad)), b.world.units.ToPhysics(px, py), false)
}

func (b *Body) ApplyTorque(torque float64) {
	if body := b.awakeBody(); body != nil {
		body.ApplyTorque(torque, false)
	}
}

func (b *Body) ApplyAngularImpulse(impulse float64) {
	if body := b.awakeBody(); body != nil {
		body.ApplyAngularImpulse(impulse, false)
	}
}

func (b *Body) Mass() float64 {
	body := b.awakeBody()
	if body == nil {
		return 0
	}
	return body.GetMass()
}

func (b *Body) Inertia() float64 {
	body := b.awakeBody()
	if body == nil {
		return 0
	}
	return body.GetInertia()
}

// MassCenter returns the world center of mass in pixels.
func (b *Body) MassCenter() (float64, float64) {
	body := b.EngineBody()
	if body == nil {
		return 0, 0
	}
	return b.world.units.ToPixels(body.GetWorldCenter())
}

func (b *Body) awakeBody() *box2d.B2Body {
	body := b.EngineBody()
	if body != nil {
		body.SetAwake(true)
	}
	return body
}

func (b *Body) angleToward(body *box2d.B2Body, towardX, towardY float64) float64 {
	pos := body.GetPosition()
	target := b.world.units.ToPhysics(towardX, towardY)
	return math.Atan2(target.Y-pos.Y, target.X-pos.X)
}
