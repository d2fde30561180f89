package physics

import (
	"log"

	"github.com/ByteArena/box2d"
)

// Object is the scene object a body is attached to. Positions and sizes are in
// pixels, angles in degrees.
type Object interface {
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
	DrawableX() float64
	DrawableY() float64
	Width() float64
	Height() float64
	Angle() float64
	SetAngle(deg float64)
}

type BodyState uint8

const (
	// BodyNone means no engine body currently exists.
	BodyNone BodyState = iota
	BodyActive
)

// Body attaches one engine body with a single fixture to a scene object.
type Body struct {
	world *World
	owner Object
	cfg   BodyConfig

	polygon    Polygon
	shapeScale float64

	body        *box2d.B2Body
	deactivated bool
	destroyed   bool

	objOldX      float64
	objOldY      float64
	objOldAngle  float64
	objOldWidth  float64
	objOldHeight float64

	contacts []*Body
	started  []*Body
	ended    []*Body

	shape       ShapeDescriptor
	shapeBuilds int
}

// NewBody normalizes cfg and registers the body with w. The engine body is
// created lazily on first use.
func NewBody(w *World, owner Object, cfg BodyConfig) *Body {
	cfg = cfg.Normalize()
	b := &Body{
		world:      w,
		owner:      owner,
		cfg:        cfg,
		polygon:    NewPolygon(cfg.Vertices),
		shapeScale: 1,
	}
	if w != nil {
		w.register(b)
	}
	return b
}

func (b *Body) World() *World {
	if b == nil {
		return nil
	}
	return b.world
}

func (b *Body) Owner() Object {
	if b == nil {
		return nil
	}
	return b.owner
}

// Config returns a copy of the body's current configuration.
func (b *Body) Config() BodyConfig {
	if b == nil {
		return BodyConfig{}
	}
	cfg := b.cfg
	cfg.Vertices = append([]Vertex(nil), b.cfg.Vertices...)
	return cfg
}

func (b *Body) Name() string {
	if b == nil {
		return ""
	}
	return b.cfg.Name
}

func (b *Body) State() BodyState {
	if b == nil || b.body == nil {
		return BodyNone
	}
	return BodyActive
}

func (b *Body) Destroyed() bool { return b == nil || b.destroyed }

func (b *Body) usable() bool {
	return b != nil && !b.deactivated && !b.destroyed && b.owner != nil && !b.world.Destroyed()
}

// EngineBody returns the engine body, creating it if needed. It returns nil
// while the body is deactivated or destroyed.
func (b *Body) EngineBody() *box2d.B2Body {
	if b == nil {
		return nil
	}
	if b.body == nil && !b.createBody() {
		return nil
	}
	return b.body
}

func (b *Body) createBody() bool {
	if !b.usable() {
		return false
	}
	def := box2d.MakeB2BodyDef()
	def.Type = bodyTypeToEngine(b.cfg.BodyType)
	def.Position = b.objectCenter()
	def.Angle = ToRad(b.owner.Angle())
	def.Bullet = b.cfg.Bullet
	def.FixedRotation = b.cfg.FixedRotation
	def.AllowSleep = b.cfg.CanSleep
	def.LinearDamping = b.cfg.LinearDamping
	def.AngularDamping = b.cfg.AngularDamping
	def.GravityScale = b.cfg.GravityScale
	def.UserData = b

	b.body = b.world.engine.CreateBody(&def)
	b.attachFixture()
	return true
}

func (b *Body) objectCenter() box2d.B2Vec2 {
	return b.world.units.ToPhysics(
		b.owner.DrawableX()+b.owner.Width()/2,
		b.owner.DrawableY()+b.owner.Height()/2,
	)
}

func (b *Body) attachFixture() {
	desc := b.world.factory.Describe(&b.cfg, &b.polygon, b.shapeScale, b.owner)
	if desc.FellBack {
		log.Printf("PhysicsBody: %s has an invalid polygon, using its bounding box", b.cfg.Name)
	}
	def := b.world.factory.FixtureDef(&b.cfg, &desc)
	b.body.CreateFixtureFromDef(&def)
	b.shape = desc
	b.shapeBuilds++

	b.objOldWidth = b.owner.Width()
	b.objOldHeight = b.owner.Height()
}

// RecreateShape replaces the body's fixture with one built from the current
// configuration and object size.
func (b *Body) RecreateShape() {
	if b == nil {
		return
	}
	if b.body == nil {
		b.createBody()
		return
	}
	if f := b.body.GetFixtureList(); f != nil {
		b.body.DestroyFixture(f)
	}
	b.attachFixture()
}

func (b *Body) ShapeScale() float64 {
	if b == nil {
		return 0
	}
	return b.shapeScale
}

func (b *Body) SetShapeScale(scale float64) {
	if b == nil || scale <= 0 || scale == b.shapeScale {
		return
	}
	b.shapeScale = scale
	b.RecreateShape()
}

// Deactivate removes the engine body and its joints. The body stays usable and
// can be brought back with Activate.
func (b *Body) Deactivate() {
	if b == nil {
		return
	}
	b.deactivated = true
	if b.world != nil {
		b.world.unregister(b)
		if b.body != nil && !b.world.destroyed {
			b.world.ClearBodyJoints(b.body)
			b.world.engine.DestroyBody(b.body)
		}
	}
	b.body = nil
	b.clearContacts()
}

func (b *Body) Activate() {
	if b == nil || b.destroyed || b.world.Destroyed() {
		return
	}
	b.deactivated = false
	b.world.register(b)
	b.clearContacts()
	b.UpdateBodyFromObject()
}

func (b *Body) Deactivated() bool { return b == nil || b.deactivated }

// Destroy permanently releases the body.
func (b *Body) Destroy() {
	if b == nil || b.destroyed {
		return
	}
	b.destroyed = true
	b.Deactivate()
}

// PreStep steps the world if nothing has this frame, then copies the engine
// transform to the object.
func (b *Body) PreStep() {
	if b == nil || b.owner == nil || b.destroyed || b.world.Destroyed() {
		return
	}
	if !b.deactivated {
		b.EngineBody()
	}
	if b.world.phase == PhasePending {
		b.world.stepFrame()
	}

	if b.body != nil {
		u := b.world.units
		pos := b.body.GetPosition()
		o := b.owner
		o.SetX(u.ToPixelsX(pos.X) - o.Width()/2 + o.X() - o.DrawableX())
		o.SetY(u.ToPixelsY(pos.Y) - o.Height()/2 + o.Y() - o.DrawableY())
		o.SetAngle(ToDeg(b.body.GetAngle()))
	}
	b.cacheTransform()
}

// PostStep pushes changes made to the object during the frame to the body.
func (b *Body) PostStep() {
	b.UpdateBodyFromObject()
}

func (b *Body) OnHotReload() {
	b.UpdateBodyFromObject()
}

// UpdateBodyFromObject rebuilds the shape when the object size affects it and
// teleports the body when the object was moved or rotated.
func (b *Body) UpdateBodyFromObject() {
	if b == nil || b.owner == nil {
		return
	}
	if b.body == nil && !b.createBody() {
		return
	}
	o := b.owner
	cfg := &b.cfg

	widthChanged := b.objOldWidth != o.Width()
	heightChanged := b.objOldHeight != o.Height()
	if (widthChanged && cfg.ShapeDimensionA <= 0) ||
		(heightChanged && cfg.Shape != ShapeEdge &&
			!(cfg.Shape == ShapeBox && cfg.ShapeDimensionB > 0) &&
			!(cfg.Shape == ShapeCircle && cfg.ShapeDimensionA > 0)) {
		b.RecreateShape()
	}

	if b.objOldX != o.X() || b.objOldY != o.Y() || b.objOldAngle != o.Angle() {
		b.body.SetTransform(b.objectCenter(), ToRad(o.Angle()))
		b.body.SetAwake(true)
		b.cacheTransform()
	}
}

func (b *Body) cacheTransform() {
	b.objOldX = b.owner.X()
	b.objOldY = b.owner.Y()
	b.objOldAngle = b.owner.Angle()
}

// UpdateConfig applies a reloaded configuration. It returns false when a
// field that cannot change on a live body differs; the caller must then
// recreate the body.
func (b *Body) UpdateConfig(next BodyConfig) bool {
	if b == nil {
		return false
	}
	next = next.Normalize()
	old := b.cfg

	if old.Bullet != next.Bullet {
		b.SetBullet(next.Bullet)
	}
	if old.FixedRotation != next.FixedRotation {
		b.SetFixedRotation(next.FixedRotation)
	}
	if old.CanSleep != next.CanSleep {
		b.SetSleepingAllowed(next.CanSleep)
	}

	rebuild := false
	if old.ShapeDimensionA != next.ShapeDimensionA {
		b.cfg.ShapeDimensionA = next.ShapeDimensionA
		rebuild = true
	}
	if old.ShapeDimensionB != next.ShapeDimensionB {
		b.cfg.ShapeDimensionB = next.ShapeDimensionB
		rebuild = true
	}
	if old.ShapeOffsetX != next.ShapeOffsetX {
		b.cfg.ShapeOffsetX = next.ShapeOffsetX
		rebuild = true
	}
	if old.ShapeOffsetY != next.ShapeOffsetY {
		b.cfg.ShapeOffsetY = next.ShapeOffsetY
		rebuild = true
	}
	if old.PolygonOrigin != next.PolygonOrigin {
		b.cfg.PolygonOrigin = next.PolygonOrigin
		rebuild = true
	}
	if rebuild {
		b.RecreateShape()
	}

	if old.Density != next.Density {
		b.SetDensity(next.Density)
	}
	if old.Friction != next.Friction {
		b.SetFriction(next.Friction)
	}
	if old.Restitution != next.Restitution {
		b.SetRestitution(next.Restitution)
	}
	if old.LinearDamping != next.LinearDamping {
		b.SetLinearDamping(next.LinearDamping)
	}
	if old.AngularDamping != next.AngularDamping {
		b.SetAngularDamping(next.AngularDamping)
	}
	if old.GravityScale != next.GravityScale {
		b.SetGravityScale(next.GravityScale)
	}

	return old.Layers == next.Layers &&
		old.Masks == next.Masks &&
		sameVertices(old.Vertices, next.Vertices) &&
		old.BodyType == next.BodyType &&
		old.Shape == next.Shape
}

// Contacts returns the bodies currently touching this one.
func (b *Body) Contacts() []*Body {
	if b == nil {
		return nil
	}
	return append([]*Body(nil), b.contacts...)
}
