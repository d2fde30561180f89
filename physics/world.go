package physics

import (
	"log"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/google/uuid"
)

const (
	// DefaultTimeStep is the fixed simulation step, in seconds.
	DefaultTimeStep = 1.0 / 60.0
	// MaxSubSteps bounds the engine steps taken in one frame. Accumulated time
	// beyond it is dropped rather than carried into the next frame.
	MaxSubSteps = 5

	stepEpsilon = 1e-9
)

// FramePhase tracks whether the world has stepped during the current frame.
type FramePhase uint8

const (
	PhaseIdle FramePhase = iota
	PhasePending
	PhaseStepped
)

func (p FramePhase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseStepped:
		return "stepped"
	default:
		return "idle"
	}
}

// World is the simulation shared by every body of one scene.
type World struct {
	id      uuid.UUID
	units   UnitConverter
	factory ShapeFactory

	gravity   box2d.B2Vec2
	timeStep  float64
	timeScale float64
	frameTime float64

	phase   FramePhase
	elapsed float64
	frame   uint64

	engine *box2d.B2World
	static *box2d.B2Body
	joints *JointRegistry

	bodies    []*Body
	destroyed bool
}

func NewWorld(cfg WorldConfig) *World {
	units := NewUnitConverter(cfg.ScaleX, cfg.ScaleY)
	gravity := box2d.MakeB2Vec2(cfg.GravityX, cfg.GravityY)

	engine := box2d.MakeB2World(gravity)
	w := &World{
		id:        uuid.New(),
		units:     units,
		factory:   NewShapeFactory(units),
		gravity:   gravity,
		timeStep:  DefaultTimeStep,
		timeScale: 1,
		engine:    &engine,
	}
	w.engine.SetAutoClearForces(false)
	w.engine.SetContactListener(contactListener{})

	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	w.static = w.engine.CreateBody(&def)

	w.joints = NewJointRegistry(func(j box2d.B2JointInterface) {
		w.engine.DestroyJoint(j)
	})

	log.Printf("PhysicsWorld: created %s (gravity %.2f,%.2f scale %.0f,%.0f)",
		w.id, cfg.GravityX, cfg.GravityY, units.ScaleX(), units.ScaleY())
	return w
}

func (w *World) ID() uuid.UUID {
	if w == nil {
		return uuid.Nil
	}
	return w.id
}

func (w *World) Units() UnitConverter {
	if w == nil {
		return NewUnitConverter(0, 0)
	}
	return w.units
}

func (w *World) TimeStep() float64 { return w.timeStep }

// Frame counts the frames begun on this world.
func (w *World) Frame() uint64 { return w.frame }

func (w *World) Phase() FramePhase {
	if w == nil {
		return PhaseIdle
	}
	return w.phase
}

func (w *World) Joints() *JointRegistry {
	if w == nil {
		return nil
	}
	return w.joints
}

// Bodies returns the registered bodies. The slice must not be modified.
func (w *World) Bodies() []*Body {
	if w == nil {
		return nil
	}
	return w.bodies
}

// Engine exposes the engine world for read-only use such as debug drawing.
func (w *World) Engine() *box2d.B2World {
	if w == nil || w.destroyed {
		return nil
	}
	return w.engine
}

// StaticBody is the shared body used as the fixed side of anchored joints.
func (w *World) StaticBody() *box2d.B2Body {
	if w == nil || w.destroyed {
		return nil
	}
	return w.static
}

// BeginFrame records the frame's elapsed time. Every frame but the first is
// marked pending so the first body to pre-step advances the simulation.
func (w *World) BeginFrame(elapsed float64) {
	if w == nil || w.destroyed {
		return
	}
	w.elapsed = elapsed
	w.frame++
	if w.frame == 1 {
		w.phase = PhaseIdle
		return
	}
	w.phase = PhasePending
}

func (w *World) EndFrame() {
	if w == nil {
		return
	}
	w.phase = PhaseIdle
}

// Elapsed is the time passed to the current frame's BeginFrame.
func (w *World) Elapsed() float64 { return w.elapsed }

// Step advances the engine by whole fixed steps and returns how many were taken.
func (w *World) Step(elapsed float64) int {
	if w == nil || w.destroyed {
		return 0
	}
	if elapsed > 0 {
		w.frameTime += elapsed
	}

	n := int(math.Floor(w.frameTime/w.timeStep + stepEpsilon))
	if n < 0 {
		n = 0
	}
	w.frameTime -= float64(n) * w.timeStep
	if w.frameTime < 0 {
		w.frameTime = 0
	}
	if n > MaxSubSteps {
		n = MaxSubSteps
	}

	for i := 0; i < n; i++ {
		w.engine.Step(w.timeStep*w.timeScale, velocityIterations, positionIterations)
	}
	w.engine.ClearForces()
	w.phase = PhaseStepped
	return n
}

// stepFrame runs the pending step of this frame: contact bookkeeping, the
// object to body sync of every body, then the engine step.
func (w *World) stepFrame() {
	for _, b := range w.bodies {
		b.resetStartedAndEnded()
	}
	for _, b := range w.bodies {
		b.UpdateBodyFromObject()
	}
	w.Step(w.elapsed)
}

// Accumulated is the frame time not yet consumed by a step.
func (w *World) Accumulated() float64 { return w.frameTime }

func (w *World) Gravity() (float64, float64) {
	if w == nil {
		return 0, 0
	}
	return w.gravity.X, w.gravity.Y
}

// SetGravity is a no-op when the gravity is unchanged.
func (w *World) SetGravity(x, y float64) {
	if w == nil || w.destroyed {
		return
	}
	if w.gravity.X == x && w.gravity.Y == y {
		return
	}
	w.gravity = box2d.MakeB2Vec2(x, y)
	w.engine.SetGravity(w.gravity)
	for _, b := range w.bodies {
		if b.body != nil {
			b.body.SetAwake(true)
		}
	}
}

func (w *World) TimeScale() float64 {
	if w == nil {
		return 0
	}
	return w.timeScale
}

// SetTimeScale ignores negative scales.
func (w *World) SetTimeScale(scale float64) {
	if w == nil || scale < 0 {
		return
	}
	w.timeScale = scale
}

// ClearBodyJoints removes every joint attached to the engine body, together
// with the gear joints depending on them.
func (w *World) ClearBodyJoints(body *box2d.B2Body) {
	if w == nil || body == nil {
		return
	}
	for _, id := range w.joints.ForBody(body) {
		w.joints.Remove(id)
	}
}

// RemoveJoint removes the joint and any gear joint driven by it.
func (w *World) RemoveJoint(id JointID) {
	if w == nil || w.destroyed {
		return
	}
	w.joints.Remove(id)
}

func (w *World) register(b *Body) {
	if indexOf(w.bodies, b) >= 0 {
		return
	}
	w.bodies = append(w.bodies, b)
}

func (w *World) unregister(b *Body) {
	if i := indexOf(w.bodies, b); i >= 0 {
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	}
}

// Destroy releases every body and joint and then the engine world. It is safe
// to call more than once.
func (w *World) Destroy() {
	if w == nil || w.destroyed {
		return
	}
	for _, b := range append([]*Body(nil), w.bodies...) {
		b.Destroy()
	}
	for _, id := range w.joints.IDs() {
		w.joints.Remove(id)
	}
	if w.static != nil {
		w.engine.DestroyBody(w.static)
		w.static = nil
	}
	w.engine.Destroy()
	w.destroyed = true
	log.Printf("PhysicsWorld: destroyed %s after %d frames", w.id, w.frame)
}

func (w *World) Destroyed() bool {
	return w == nil || w.destroyed
}
