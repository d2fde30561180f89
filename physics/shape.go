package physics

import (
	"math"

	"github.com/ByteArena/box2d"
)

// ShapeDescriptor is an engine-independent description of a body's single fixture
// shape, in physics units relative to the body center.
type ShapeDescriptor struct {
	Kind ShapeKind
	// FellBack is set when a polygon was rejected and replaced by a box.
	FellBack bool

	Radius float64
	Center box2d.B2Vec2

	HalfWidth  float64
	HalfHeight float64

	Vertices [MaxPolygonVertices]box2d.B2Vec2
	Count    int

	V1 box2d.B2Vec2
	V2 box2d.B2Vec2
}

// Points returns the polygon vertices, backed by the descriptor's own array.
func (d *ShapeDescriptor) Points() []box2d.B2Vec2 {
	return d.Vertices[:d.Count]
}

// EngineShape builds a fresh engine shape for the descriptor.
func (d *ShapeDescriptor) EngineShape() box2d.B2ShapeInterface {
	switch d.Kind {
	case ShapeCircle:
		shape := box2d.NewB2CircleShape()
		shape.M_radius = d.Radius
		shape.M_p = d.Center
		return shape
	case ShapeEdge:
		shape := box2d.NewB2EdgeShape()
		shape.Set(d.V1, d.V2)
		return shape
	case ShapePolygon:
		shape := box2d.NewB2PolygonShape()
		shape.Set(d.Points(), d.Count)
		return shape
	default:
		shape := box2d.NewB2PolygonShape()
		shape.SetAsBoxFromCenterAndAngle(d.HalfWidth, d.HalfHeight, d.Center, 0)
		return shape
	}
}

// ShapeFactory turns a body configuration and the owner's current size into a fixture.
type ShapeFactory struct {
	units UnitConverter
}

func NewShapeFactory(units UnitConverter) ShapeFactory {
	return ShapeFactory{units: units}
}

// Describe computes the shape for cfg. poly is the validated copy of cfg.Vertices
// kept by the body; shapeScale multiplies every configured dimension.
func (f ShapeFactory) Describe(cfg *BodyConfig, poly *Polygon, shapeScale float64, obj Object) ShapeDescriptor {
	u := f.units
	width, height := obj.Width(), obj.Height()

	offsetX := u.ToPhysicsX(cfg.ShapeOffsetX * shapeScale)
	offsetY := u.ToPhysicsY(cfg.ShapeOffsetY * shapeScale)
	center := box2d.MakeB2Vec2(offsetX, offsetY)

	switch cfg.Shape {
	case ShapeCircle:
		d := ShapeDescriptor{Kind: ShapeCircle, Center: center}
		if cfg.ShapeDimensionA > 0 {
			d.Radius = u.ToPhysicsX(cfg.ShapeDimensionA * shapeScale)
		} else {
			d.Radius = (u.ToPhysicsX(width) + u.ToPhysicsY(height)) / 4
			if d.Radius <= 0 {
				d.Radius = 1
			}
		}
		return d

	case ShapePolygon:
		if !poly.Valid() {
			d := f.box(atLeastOne(width), atLeastOne(height), center)
			d.FellBack = true
			return d
		}

		originX, originY := 0.0, 0.0
		switch cfg.PolygonOrigin {
		case OriginObject:
			originX = halfNegative(width) + (obj.X() - obj.DrawableX())
			originY = halfNegative(height) + (obj.Y() - obj.DrawableY())
		case OriginTopLeft:
			originX = halfNegative(width)
			originY = halfNegative(height)
		}

		d := ShapeDescriptor{Kind: ShapePolygon, Count: poly.Len()}
		for i := 0; i < d.Count; i++ {
			v := poly.At(i)
			d.Vertices[i] = box2d.MakeB2Vec2(
				u.ToPhysicsX(v.X*shapeScale+originX)+offsetX,
				u.ToPhysicsY(v.Y*shapeScale+originY)+offsetY,
			)
		}
		return d

	case ShapeEdge:
		length := atLeastOne(width)
		if cfg.ShapeDimensionA > 0 {
			length = cfg.ShapeDimensionA * shapeScale
		}
		length = u.ToPhysicsX(length)
		halfHeight := 0.0
		if height > 0 {
			halfHeight = u.ToPhysicsY(height) / 2
		}
		angle := ToRad(cfg.ShapeDimensionB)
		dx := length / 2 * math.Cos(angle)
		dy := length / 2 * math.Sin(angle)
		return ShapeDescriptor{
			Kind: ShapeEdge,
			V1:   box2d.MakeB2Vec2(-dx+offsetX, halfHeight-dy+offsetY),
			V2:   box2d.MakeB2Vec2(dx+offsetX, halfHeight+dy+offsetY),
		}

	default:
		w := atLeastOne(width)
		if cfg.ShapeDimensionA > 0 {
			w = cfg.ShapeDimensionA * shapeScale
		}
		h := atLeastOne(height)
		if cfg.ShapeDimensionB > 0 {
			h = cfg.ShapeDimensionB * shapeScale
		}
		return f.box(w, h, center)
	}
}

func (f ShapeFactory) box(width, height float64, center box2d.B2Vec2) ShapeDescriptor {
	return ShapeDescriptor{
		Kind:       ShapeBox,
		Center:     center,
		HalfWidth:  f.units.ToPhysicsX(width) / 2,
		HalfHeight: f.units.ToPhysicsY(height) / 2,
	}
}

// FixtureDef attaches the material and collision filter of cfg to the shape.
func (f ShapeFactory) FixtureDef(cfg *BodyConfig, d *ShapeDescriptor) box2d.B2FixtureDef {
	def := box2d.MakeB2FixtureDef()
	def.Shape = d.EngineShape()
	def.Density = nonNegative(cfg.Density)
	def.Friction = nonNegative(cfg.Friction)
	def.Restitution = nonNegative(cfg.Restitution)
	def.Filter.CategoryBits = cfg.Layers
	def.Filter.MaskBits = cfg.Masks
	return def
}

func atLeastOne(v float64) float64 {
	if v > 0 {
		return v
	}
	return 1
}

func halfNegative(v float64) float64 {
	if v > 0 {
		return -v / 2
	}
	return 0
}
