package physics

import "testing"

// testObject is a top-left origin object: drawable position equals position.
type testObject struct {
	x, y          float64
	width, height float64
	angle         float64
	label         string
}

func (o *testObject) X() float64           { return o.x }
func (o *testObject) Y() float64           { return o.y }
func (o *testObject) SetX(x float64)       { o.x = x }
func (o *testObject) SetY(y float64)       { o.y = y }
func (o *testObject) DrawableX() float64   { return o.x }
func (o *testObject) DrawableY() float64   { return o.y }
func (o *testObject) Width() float64       { return o.width }
func (o *testObject) Height() float64      { return o.height }
func (o *testObject) Angle() float64       { return o.angle }
func (o *testObject) SetAngle(deg float64) { o.angle = deg }
func (o *testObject) Label() string        { return o.label }

// centeredObject has its origin at the center of its bounds.
type centeredObject struct {
	testObject
}

func (o *centeredObject) DrawableX() float64 { return o.x - o.width/2 }
func (o *centeredObject) DrawableY() float64 { return o.y - o.height/2 }

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(DefaultWorldConfig())
	t.Cleanup(w.Destroy)
	return w
}

func newBox(w *World, x, y, width, height float64, bodyType BodyType) (*Body, *testObject) {
	obj := &testObject{x: x, y: y, width: width, height: height}
	cfg := DefaultBodyConfig()
	cfg.BodyType = bodyType
	return NewBody(w, obj, cfg), obj
}
