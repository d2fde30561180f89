package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	debugRopeRadius     = 2
)

var (
	debugBodyColor     = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugStaticColor   = cp.FColor{R: 0.5, G: 0.5, B: 0.9, A: 0.9}
	debugSleepColor    = cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 0.9}
	debugContactColor  = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
	debugJointColor    = cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
	debugTextYPosition = 10
)

// PhysicsDebugSystem outlines every body's fixture and draws joints as lines
// between their anchors.
type PhysicsDebugSystem struct {
	Enabled bool
}

func NewPhysicsDebugSystem(enabled bool) *PhysicsDebugSystem {
	return &PhysicsDebugSystem{Enabled: enabled}
}

func (s *PhysicsDebugSystem) Update(*ecs.World) {}

func (s *PhysicsDebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || !s.Enabled {
		return
	}
	DrawPhysicsDebug(w, screen)
}

func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil || pw.Destroyed() {
		return
	}

	d := &physicsDebugDrawer{screen: screen, zoom: 1}
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody) {
		o, ok := pb.Body.Outline()
		if !ok {
			return
		}
		c := debugBodyColor
		switch {
		case pb.Body.IsStatic():
			c = debugStaticColor
		case pb.Body.IsSleeping():
			c = debugSleepColor
		}
		if len(pb.Body.Contacts()) > 0 {
			d.DrawDot(debugDotSize, toVector(o.Center), d.CollisionPointColor(), nil)
		}
		d.drawOutline(o, c)
	})

	for _, id := range pw.Joints().IDs() {
		ax, ay := pw.JointFirstAnchor(id)
		bx, by := pw.JointSecondAnchor(id)
		a, b := cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}
		if a.Near(b, 1) {
			d.DrawDot(debugDotSize*2, a, d.ConstraintColor(), nil)
			continue
		}
		if pw.JointKindOf(id) == physics.JointRope {
			d.DrawFatSegment(a, b, debugRopeRadius, d.ConstraintColor(), d.ConstraintColor(), nil)
		} else {
			d.DrawSegment(a, b, d.ConstraintColor(), nil)
		}
		d.DrawDot(debugDotSize, a, d.ConstraintColor(), nil)
		d.DrawDot(debugDotSize, b, d.ConstraintColor(), nil)
	}

	gx, gy := pw.Gravity()
	text := fmt.Sprintf("Bodies: %d\nJoints: %d\nGravity: %.1f, %.1f\nTime scale: %.2f", len(pw.Bodies()), pw.Joints().Len(), gx, gy, pw.TimeScale())
	ebitenutil.DebugPrintAt(screen, text, 10, debugTextYPosition)
}

// physicsDebugDrawer renders in screen space. It satisfies cp.Drawer so the
// same drawer can render any cp geometry.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

var _ cp.Drawer = (*physicsDebugDrawer)(nil)

func (d *physicsDebugDrawer) drawOutline(o physics.Outline, c cp.FColor) {
	switch o.Kind {
	case physics.ShapeCircle:
		d.DrawCircle(toVector(o.Center), physics.ToRad(o.Angle), o.Radius, c, c, nil)
	case physics.ShapeEdge:
		d.DrawSegment(toVector(o.Points[0]), toVector(o.Points[1]), c, nil)
	default:
		verts := make([]cp.Vector, 0, len(o.Points))
		for _, p := range o.Points {
			verts = append(verts, toVector(p))
		}
		d.DrawPolygon(len(verts), verts, 0, c, c, nil)
	}
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, _ cp.FColor, _ interface{}) {
	if radius <= 0 {
		return
	}
	d.drawPolygon(circlePoints(pos, radius, debugCircleSegments), outline)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.drawLine(a, b, fill)
}

// DrawFatSegment draws the two sides of a capsule around a-b.
func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		d.DrawSegment(a, b, fill, data)
		return
	}
	n := b.Sub(a).Perp().Normalize().Mult(radius)
	d.drawLine(a.Add(n), b.Add(n), outline)
	d.drawLine(a.Sub(n), b.Sub(n), outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	if count <= 0 || count > len(verts) {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(pos.Add(cp.Vector{X: -half}), pos.Add(cp.Vector{X: half}), fill)
	d.drawLine(pos.Add(cp.Vector{Y: -half}), pos.Add(cp.Vector{Y: half}), fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor { return debugBodyColor }

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if shape != nil && shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return debugStaticColor
	}
	return debugBodyColor
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor { return debugJointColor }

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor { return debugContactColor }

func (d *physicsDebugDrawer) Data() interface{} { return nil }

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(color))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return (v.X - d.camX) * d.zoom, (v.Y - d.camY) * d.zoom
}

// circlePoints approximates a circle with n evenly spaced points.
func circlePoints(center cp.Vector, radius float64, n int) []cp.Vector {
	if n <= 0 {
		return nil
	}
	points := make([]cp.Vector, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, center.Add(cp.ForAngle(t).Mult(radius)))
	}
	return points
}

func toVector(p [2]float64) cp.Vector {
	return cp.Vector{X: p[0], Y: p[1]}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
