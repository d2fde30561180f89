package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

var ErrJointRejected = errors.New("prefabs: joint rejected by physics")

var defaultObjectColor = color.NRGBA{R: 0x6c, G: 0xa0, B: 0xdc, A: 0xff}

// BuildScene creates the scene's physics world, one entity per object and
// the declared joints, and attaches the world to w. On error the physics
// world is destroyed.
func BuildScene(w *ecs.World, spec SceneSpec) (*physics.World, error) {
	if w == nil {
		return nil, fmt.Errorf("prefabs: build scene: nil ecs world")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	pw := physics.NewWorld(spec.World.Config())
	if spec.World.TimeScale != nil {
		pw.SetTimeScale(*spec.World.TimeScale)
	}

	bodies := make(map[string]*physics.Body, len(spec.Objects))
	for _, objSpec := range spec.Objects {
		body, err := buildObject(w, pw, objSpec)
		if err != nil {
			pw.Destroy()
			return nil, err
		}
		if body != nil {
			bodies[objSpec.Name] = body
		}
	}

	names := make(map[string]physics.JointID, len(spec.Joints))
	for i, js := range spec.Joints {
		id, err := buildJoint(js, bodies, names)
		if err != nil {
			pw.Destroy()
			return nil, fmt.Errorf("prefabs: joint %d (%s): %w", i, js.Kind, err)
		}
		if js.Name != "" {
			names[js.Name] = id
		}
	}

	holder := ecs.CreateEntity(w)
	if err := ecs.Add(w, holder, component.SceneJointsComponent.Kind(), &component.SceneJoints{ByName: names}); err != nil {
		pw.Destroy()
		return nil, fmt.Errorf("prefabs: scene joints: %w", err)
	}

	w.SetPhysicsWorld(pw)
	log.Printf("prefabs: built scene %q: %d objects, %d joints", spec.Name, len(spec.Objects), len(spec.Joints))
	return pw, nil
}

func buildObject(w *ecs.World, pw *physics.World, spec ObjectSpec) (*physics.Body, error) {
	obj := &component.Object{
		Name:     spec.Name,
		PosX:     spec.X,
		PosY:     spec.Y,
		W:        spec.Width,
		H:        spec.Height,
		Rotation: spec.Angle,
		Color:    defaultObjectColor,
	}
	if spec.Centered {
		obj.CenterOrigin()
	}
	if spec.Color != nil && spec.Color.Color != nil {
		obj.Color = spec.Color.Color
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObjectComponent.Kind(), obj); err != nil {
		return nil, fmt.Errorf("prefabs: object %q: %w", spec.Name, err)
	}

	var body *physics.Body
	if spec.Body != "" {
		cfg, err := LoadBody(spec.Body)
		if err != nil {
			return nil, err
		}
		if spec.BodyType != "" {
			cfg.BodyType = physics.BodyType(spec.BodyType)
		}
		body = physics.NewBody(pw, obj, cfg)
		pb := &component.PhysicsBody{
			SpecPath:     CleanPath(spec.Body),
			TypeOverride: physics.BodyType(spec.BodyType),
			Config:       cfg,
			Body:         body,
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
			return nil, fmt.Errorf("prefabs: object %q: %w", spec.Name, err)
		}
	}

	if spec.TTL > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.TTL}); err != nil {
			return nil, fmt.Errorf("prefabs: object %q: %w", spec.Name, err)
		}
	}

	if spec.Script != "" {
		sc := &component.Script{Path: scriptPath(spec.Script), Vars: &tengo.Map{Value: map[string]tengo.Object{}}}
		if err := ecs.Add(w, e, component.ScriptComponent.Kind(), sc); err != nil {
			return nil, fmt.Errorf("prefabs: object %q: %w", spec.Name, err)
		}
	}
	return body, nil
}

func buildJoint(js JointSpec, bodies map[string]*physics.Body, names map[string]physics.JointID) (physics.JointID, error) {
	a := bodies[js.A]
	if a == nil {
		return 0, fmt.Errorf("object %q has no body", js.A)
	}
	var b *physics.Body
	if js.B != "" {
		if b = bodies[js.B]; b == nil {
			return 0, fmt.Errorf("object %q has no body", js.B)
		}
	}

	kind := physics.ParseJointKind(js.Kind)
	needsB := kind != physics.JointMouse && kind != physics.JointGear && !(kind == physics.JointRevolute && b == nil)
	if needsB && b == nil {
		return 0, fmt.Errorf("%s joint needs a second object", kind)
	}

	ax, ay := anchor(js.AnchorA, a)
	var bx, by float64
	if b != nil {
		bx, by = anchor(js.AnchorB, b)
	}
	freq := optional(js.Frequency, -1)
	damp := optional(js.Damping, -1)

	var id physics.JointID
	switch kind {
	case physics.JointDistance:
		id = a.AddDistanceJoint(ax, ay, b, bx, by, js.Length, freq, damp, js.Collide)
	case physics.JointRope:
		id = a.AddRopeJoint(ax, ay, b, bx, by, js.Length, js.Collide)
	case physics.JointRevolute:
		if b == nil {
			id = a.AddRevoluteJoint(ax, ay, js.EnableLimit, js.ReferenceAngle, js.Lower, js.Upper, js.EnableMotor, js.MotorSpeed, js.MaxMotor)
		} else {
			id = a.AddRevoluteJointBetweenTwoBodies(ax, ay, b, bx, by, js.EnableLimit, js.ReferenceAngle, js.Lower, js.Upper, js.EnableMotor, js.MotorSpeed, js.MaxMotor, js.Collide)
		}
	case physics.JointPrismatic:
		id = a.AddPrismaticJoint(ax, ay, b, bx, by, js.Axis, js.ReferenceAngle, js.EnableLimit, js.Lower, js.Upper, js.EnableMotor, js.MotorSpeed, js.MaxMotor, js.Collide)
	case physics.JointPulley:
		id = a.AddPulleyJoint(ax, ay, b, bx, by, js.GroundA.X, js.GroundA.Y, js.GroundB.X, js.GroundB.Y, js.Length, js.LengthB, js.Ratio, js.Collide)
	case physics.JointGear:
		first, second := names[js.Joints[0]], names[js.Joints[1]]
		id = a.AddGearJoint(first, second, js.Ratio, js.Collide)
	case physics.JointMouse:
		tx, ty := anchor(js.Target, a)
		id = a.AddMouseJoint(tx, ty, js.MaxForce, freq, damp)
	case physics.JointWheel:
		id = a.AddWheelJoint(ax, ay, b, bx, by, js.Axis, freq, damp, js.EnableMotor, js.MotorSpeed, js.MaxMotor, js.Collide)
	case physics.JointWeld:
		id = a.AddWeldJoint(ax, ay, b, bx, by, js.ReferenceAngle, freq, damp, js.Collide)
	case physics.JointFriction:
		id = a.AddFrictionJoint(ax, ay, b, bx, by, js.MaxForce, js.MaxTorque, js.Collide)
	case physics.JointMotor:
		id = a.AddMotorJoint(b, js.Offset.X, js.Offset.Y, js.ReferenceAngle, js.MaxForce, js.MaxTorque, optional(js.Correction, 0.3), js.Collide)
	}
	if id == 0 {
		return 0, ErrJointRejected
	}
	return id, nil
}

// anchor defaults to the center of the body's object.
func anchor(p *Point, b *physics.Body) (float64, float64) {
	if p != nil {
		return p.X, p.Y
	}
	o := b.Owner()
	return o.DrawableX() + o.Width()/2, o.DrawableY() + o.Height()/2
}

func optional(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
