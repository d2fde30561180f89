package component

import (
	"image/color"

	"github.com/milk9111/physics2d/physics"
)

// Object is a rectangular scene object. Position and origin are in pixels;
// the origin is measured from the top-left corner of the bounds.
type Object struct {
	Name     string
	PosX     float64
	PosY     float64
	OriginX  float64
	OriginY  float64
	W        float64
	H        float64
	Rotation float64
	FlipX    bool
	FlipY    bool
	Color    color.Color
}

var _ physics.Object = (*Object)(nil)

func (o *Object) X() float64     { return o.PosX }
func (o *Object) Y() float64     { return o.PosY }
func (o *Object) SetX(x float64) { o.PosX = x }
func (o *Object) SetY(y float64) { o.PosY = y }

// DrawableX is the left edge of the bounds.
func (o *Object) DrawableX() float64 { return o.PosX - o.OriginX }
func (o *Object) DrawableY() float64 { return o.PosY - o.OriginY }

func (o *Object) Width() float64  { return o.W }
func (o *Object) Height() float64 { return o.H }

// Angle is in degrees, clockwise on screen.
func (o *Object) Angle() float64       { return o.Rotation }
func (o *Object) SetAngle(deg float64) { o.Rotation = deg }

func (o *Object) Label() string { return o.Name }

// CenterOrigin moves the origin to the middle of the bounds.
func (o *Object) CenterOrigin() {
	o.OriginX = o.W / 2
	o.OriginY = o.H / 2
}

var ObjectComponent = NewComponent[Object]()
