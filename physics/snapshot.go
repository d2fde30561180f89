package physics

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is an immutable copy of the world state in pixels and degrees,
// safe to hand to other goroutines.
type Snapshot struct {
	WorldID   string          `json:"world_id" yaml:"world_id"`
	Frame     uint64          `json:"frame" yaml:"frame"`
	GravityX  float64         `json:"gravity_x" yaml:"gravity_x"`
	GravityY  float64         `json:"gravity_y" yaml:"gravity_y"`
	TimeScale float64         `json:"time_scale" yaml:"time_scale"`
	Bodies    []BodySnapshot  `json:"bodies" yaml:"bodies"`
	Joints    []JointSnapshot `json:"joints" yaml:"joints"`
}

type BodySnapshot struct {
	Name     string   `json:"name" yaml:"name"`
	Type     BodyType `json:"type" yaml:"type"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Angle    float64  `json:"angle" yaml:"angle"`
	VX       float64  `json:"vx" yaml:"vx"`
	VY       float64  `json:"vy" yaml:"vy"`
	Awake    bool     `json:"awake" yaml:"awake"`
	Contacts int      `json:"contacts" yaml:"contacts"`
}

type JointSnapshot struct {
	ID       JointID    `json:"id" yaml:"id"`
	Kind     string     `json:"kind" yaml:"kind"`
	AnchorA  [2]float64 `json:"anchor_a" yaml:"anchor_a,flow"`
	AnchorB  [2]float64 `json:"anchor_b" yaml:"anchor_b,flow"`
	Children []JointID  `json:"children,omitempty" yaml:"children,omitempty,flow"`
}

// Labeled is implemented by owners that have a display name.
type Labeled interface {
	Label() string
}

// Snapshot captures the current state. It does not create engine bodies.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	s := Snapshot{
		WorldID:   w.id.String(),
		Frame:     w.frame,
		GravityX:  w.gravity.X,
		GravityY:  w.gravity.Y,
		TimeScale: w.timeScale,
	}
	if w.destroyed {
		return s
	}

	for i, b := range w.bodies {
		bs := BodySnapshot{Name: fmt.Sprintf("%s#%d", b.cfg.Name, i), Type: b.cfg.BodyType, Contacts: len(b.contacts)}
		if l, ok := b.owner.(Labeled); ok && l.Label() != "" {
			bs.Name = l.Label()
		}
		if b.owner != nil {
			bs.X, bs.Y, bs.Angle = b.owner.X(), b.owner.Y(), b.owner.Angle()
		}
		if b.body != nil {
			bs.VX, bs.VY = w.units.ToPixels(b.body.GetLinearVelocity())
			bs.Awake = b.body.IsAwake()
		}
		s.Bodies = append(s.Bodies, bs)
	}

	for _, id := range w.joints.IDs() {
		j := w.joints.Get(id)
		js := JointSnapshot{ID: id, Kind: j.Kind.String()}
		js.AnchorA[0], js.AnchorA[1] = w.JointFirstAnchor(id)
		js.AnchorB[0], js.AnchorB[1] = w.JointSecondAnchor(id)
		if first, second, ok := j.GearChildren(); ok {
			js.Children = []JointID{first, second}
		}
		s.Joints = append(s.Joints, js)
	}
	return s
}

// YAML renders the snapshot for copying into bug reports or scene files.
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("physics: snapshot yaml: %w", err)
	}
	return out, nil
}
