package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultScale is the number of pixels per physics unit used when a scale of 0 is configured.
const DefaultScale = 100.0

// UnitConverter converts between pixels and physics units, independently per axis,
// and between degrees and radians.
type UnitConverter struct {
	scaleX    float64
	scaleY    float64
	invScaleX float64
	invScaleY float64
}

func NewUnitConverter(scaleX, scaleY float64) UnitConverter {
	if scaleX == 0 {
		scaleX = DefaultScale
	}
	if scaleY == 0 {
		scaleY = DefaultScale
	}
	return UnitConverter{
		scaleX:    scaleX,
		scaleY:    scaleY,
		invScaleX: 1 / scaleX,
		invScaleY: 1 / scaleY,
	}
}

func (u UnitConverter) ScaleX() float64 { return u.scaleX }
func (u UnitConverter) ScaleY() float64 { return u.scaleY }

func (u UnitConverter) ToPhysicsX(px float64) float64 { return px * u.invScaleX }
func (u UnitConverter) ToPhysicsY(px float64) float64 { return px * u.invScaleY }
func (u UnitConverter) ToPixelsX(m float64) float64   { return m * u.scaleX }
func (u UnitConverter) ToPixelsY(m float64) float64   { return m * u.scaleY }

// ToPhysics converts a pixel-space point to an engine vector.
func (u UnitConverter) ToPhysics(x, y float64) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(u.ToPhysicsX(x), u.ToPhysicsY(y))
}

// ToPixels converts an engine vector to a pixel-space point.
func (u UnitConverter) ToPixels(v box2d.B2Vec2) (float64, float64) {
	return u.ToPixelsX(v.X), u.ToPixelsY(v.Y)
}

// Distance returns the physics-unit length of the pixel-space segment (x1,y1)-(x2,y2).
func (u UnitConverter) Distance(x1, y1, x2, y2 float64) float64 {
	return mgl64.Vec2{u.ToPhysicsX(x2 - x1), u.ToPhysicsY(y2 - y1)}.Len()
}

func ToRad(deg float64) float64 { return mgl64.DegToRad(deg) }
func ToDeg(rad float64) float64 { return mgl64.RadToDeg(rad) }
