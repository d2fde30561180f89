package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

const (
	dragForcePerKg = 1000
	dragFrequency  = 5
	dragDamping    = 0.7
)

// DragSystem lets the left mouse button pull dynamic bodies around through a
// mouse joint that lives only while the button is held.
type DragSystem struct {
	joint physics.JointID
	// Cursor returns the cursor in screen pixels; it defaults to ebiten's.
	Cursor func() (float64, float64)
}

func NewDragSystem() *DragSystem {
	return &DragSystem{Cursor: func() (float64, float64) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y)
	}}
}

func (d *DragSystem) Update(w *ecs.World) {
	x, y := d.Cursor()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		d.Grab(w, x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		d.Move(w, x, y)
	default:
		d.Release(w)
	}
}

// Grab attaches a mouse joint to the topmost dynamic body under (x, y).
func (d *DragSystem) Grab(w *ecs.World, x, y float64) bool {
	d.Release(w)
	body := pickBody(w, x, y)
	if body == nil {
		return false
	}
	d.joint = body.AddMouseJoint(x, y, dragForcePerKg*body.Mass(), dragFrequency, dragDamping)
	return d.joint != 0
}

func (d *DragSystem) Move(w *ecs.World, x, y float64) {
	if d.joint == 0 {
		return
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.SetMouseJointTarget(d.joint, x, y)
	}
}

func (d *DragSystem) Release(w *ecs.World) {
	if d.joint == 0 {
		return
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.RemoveJoint(d.joint)
	}
	d.joint = 0
}

func (d *DragSystem) Dragging() bool { return d.joint != 0 }

// pickBody returns the dynamic body whose object contains (x, y), preferring
// the one drawn on top.
func pickBody(w *ecs.World, x, y float64) *physics.Body {
	var (
		best   *physics.Body
		bestID uint64
	)
	ecs.ForEach2(w, component.ObjectComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, o *component.Object, pb *component.PhysicsBody) {
		if pb.Body == nil || !pb.Body.IsDynamic() || !containsPoint(o, x, y) {
			return
		}
		if best == nil || uint64(e) > bestID {
			best, bestID = pb.Body, uint64(e)
		}
	})
	return best
}

// containsPoint tests (x, y) against the object's rectangle rotated about its
// center.
func containsPoint(o *component.Object, x, y float64) bool {
	cx, cy := o.DrawableX()+o.W/2, o.DrawableY()+o.H/2
	sin, cos := math.Sincos(-physics.ToRad(o.Rotation))
	dx, dy := x-cx, y-cy
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos
	return math.Abs(lx) <= o.W/2 && math.Abs(ly) <= o.H/2
}
