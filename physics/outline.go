package physics

import (
	"math"

	"github.com/ByteArena/box2d"
)

// Outline is a body's fixture in world pixels, for debug drawing.
type Outline struct {
	Kind ShapeKind
	// Points holds polygon or box corners, or the two ends of an edge.
	Points [][2]float64
	Center [2]float64
	Radius float64
	// Angle is the body rotation in degrees.
	Angle float64
}

// Outline returns the current fixture outline. It reports false when the body
// has no engine body yet; it never creates one.
func (b *Body) Outline() (Outline, bool) {
	if b == nil || b.body == nil || b.world == nil || b.world.destroyed {
		return Outline{}, false
	}
	pos := b.body.GetPosition()
	angle := b.body.GetAngle()
	sin, cos := math.Sincos(angle)
	toWorld := func(v box2d.B2Vec2) [2]float64 {
		x, y := b.world.units.ToPixels(box2d.MakeB2Vec2(
			pos.X+cos*v.X-sin*v.Y,
			pos.Y+sin*v.X+cos*v.Y,
		))
		return [2]float64{x, y}
	}

	d := &b.shape
	o := Outline{Kind: d.Kind, Center: toWorld(d.Center), Angle: ToDeg(angle)}
	switch d.Kind {
	case ShapeCircle:
		o.Radius = b.world.units.ToPixelsX(d.Radius)
	case ShapeEdge:
		o.Points = [][2]float64{toWorld(d.V1), toWorld(d.V2)}
	case ShapePolygon:
		for _, v := range d.Points() {
			o.Points = append(o.Points, toWorld(v))
		}
	default:
		hw, hh := d.HalfWidth, d.HalfHeight
		for _, c := range [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
			o.Points = append(o.Points, toWorld(box2d.MakeB2Vec2(d.Center.X+c[0], d.Center.Y+c[1])))
		}
	}
	return o, true
}
