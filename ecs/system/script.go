package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
	"github.com/milk9111/physics2d/prefabs"
)

const scriptDispatch = `
update(__engine, __vars)
`

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

// ScriptSystem runs each entity's script once per tick. A script defines
// update(engine, vars); engine exposes the entity's body and the physics
// world, vars persists between ticks.
type ScriptSystem struct {
	// Load reads script source; it defaults to prefabs.LoadScript.
	Load  func(path string) ([]byte, error)
	cache map[ecs.Entity]*scriptRuntime
}

func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{Load: prefabs.LoadScript, cache: map[ecs.Entity]*scriptRuntime{}}
}

// Invalidate drops compiled copies of path so the next tick recompiles it.
func (s *ScriptSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	clean := prefabs.CleanPath(path)
	for e, rt := range s.cache {
		if rt.path == clean {
			delete(s.cache, e)
		}
	}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil || pw.Destroyed() {
		return
	}
	if s.cache == nil {
		s.cache = map[ecs.Entity]*scriptRuntime{}
	}
	for e := range s.cache {
		if !ecs.Has(w, e, component.ScriptComponent.Kind()) {
			delete(s.cache, e)
		}
	}

	scene := newSceneIndex(w)
	ecs.ForEach(w, component.ScriptComponent.Kind(), func(e ecs.Entity, sc *component.Script) {
		if ecs.Has(w, e, component.DestroyRequestComponent.Kind()) {
			return
		}
		rt := s.runtime(e, sc)
		if rt == nil || rt.failed {
			return
		}
		if sc.Vars == nil {
			sc.Vars = &tengo.Map{Value: map[string]tengo.Object{}}
		}
		ctx := &scriptContext{world: w, physics: pw, entity: e, scene: scene, vars: sc.Vars}
		if err := rt.run(ctx.engine(), sc.Vars); err != nil {
			log.Printf("Script: entity=%s %s: %v", e, sc.Path, err)
			rt.failed = true
		}
	})
}

func (s *ScriptSystem) runtime(e ecs.Entity, sc *component.Script) *scriptRuntime {
	clean := prefabs.CleanPath(sc.Path)
	if rt, ok := s.cache[e]; ok && rt.path == clean {
		return rt
	}
	rt := &scriptRuntime{path: clean}
	s.cache[e] = rt

	load := s.Load
	if load == nil {
		load = prefabs.LoadScript
	}
	src, err := load(sc.Path)
	if err != nil {
		log.Printf("Script: entity=%s load %s: %v", e, sc.Path, err)
		rt.failed = true
		return rt
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__vars", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		log.Printf("Script: entity=%s compile %s: %v", e, sc.Path, err)
		rt.failed = true
		return rt
	}
	rt.compiled = compiled
	return rt
}

func (rt *scriptRuntime) run(engine *tengo.ImmutableMap, vars *tengo.Map) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__vars", vars); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// sceneIndex resolves object names used by scripts.
type sceneIndex struct {
	bodies  map[string]*physics.Body
	objects map[string]*component.Object
	joints  map[string]physics.JointID
}

func newSceneIndex(w *ecs.World) *sceneIndex {
	idx := &sceneIndex{
		bodies:  map[string]*physics.Body{},
		objects: map[string]*component.Object{},
	}
	ecs.ForEach(w, component.ObjectComponent.Kind(), func(e ecs.Entity, o *component.Object) {
		idx.objects[o.Name] = o
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			idx.bodies[o.Name] = pb.Body
		}
	})
	if holder, ok := w.First(component.SceneJointsComponent.Kind()); ok {
		if sj, ok := ecs.Get(w, holder, component.SceneJointsComponent.Kind()); ok {
			idx.joints = sj.ByName
		}
	}
	return idx
}

type scriptContext struct {
	world   *ecs.World
	physics *physics.World
	entity  ecs.Entity
	scene   *sceneIndex
	vars    *tengo.Map
}

func (c *scriptContext) object() *component.Object {
	o, _ := ecs.Get(c.world, c.entity, component.ObjectComponent.Kind())
	return o
}

func (c *scriptContext) body() *physics.Body {
	if pb, ok := ecs.Get(c.world, c.entity, component.PhysicsBodyComponent.Kind()); ok {
		return pb.Body
	}
	return nil
}

// storeJoint writes id into vars under the name given as the last argument.
func (c *scriptContext) storeJoint(id physics.JointID, args []tengo.Object) tengo.Object {
	if len(args) > 0 {
		if name := strings.TrimSpace(objectAsString(args[len(args)-1])); name != "" && id != 0 {
			c.vars.Value[name] = &tengo.Int{Value: int64(id)}
		}
	}
	return &tengo.Int{Value: int64(id)}
}

// pair resolves the script's own body and the body named by the first argument.
func (c *scriptContext) pair(args []tengo.Object) (*physics.Body, *physics.Body, bool) {
	b, other := c.body(), c.scene.bodies[stringArg(args, 0)]
	return b, other, b != nil && other != nil
}

func (c *scriptContext) center(b *physics.Body) (float64, float64) {
	o := b.Owner()
	if o == nil {
		return 0, 0
	}
	return o.DrawableX() + o.Width()/2, o.DrawableY() + o.Height()/2
}

func (c *scriptContext) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	fn := func(name string, f tengo.CallableFunc) {
		values[name] = &tengo.UserFunction{Name: name, Value: f}
	}

	values["dt"] = &tengo.Float{Value: c.physics.TimeStep()}
	values["frame"] = &tengo.Int{Value: int64(c.physics.Frame())}

	fn("log", func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("Script: entity=%s: %s", c.entity, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	})

	fn("get_position", func(args ...tengo.Object) (tengo.Object, error) {
		o := c.object()
		if o == nil {
			return floatArray(0, 0), nil
		}
		return floatArray(o.X(), o.Y()), nil
	})
	fn("set_position", func(args ...tengo.Object) (tengo.Object, error) {
		o := c.object()
		if o == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		o.SetX(floatArg(args, 0))
		o.SetY(floatArg(args, 1))
		return tengo.TrueValue, nil
	})
	fn("get_angle", func(args ...tengo.Object) (tengo.Object, error) {
		if o := c.object(); o != nil {
			return &tengo.Float{Value: o.Angle()}, nil
		}
		return &tengo.Float{}, nil
	})
	fn("set_angle", func(args ...tengo.Object) (tengo.Object, error) {
		if o := c.object(); o != nil && len(args) > 0 {
			o.SetAngle(floatArg(args, 0))
		}
		return tengo.UndefinedValue, nil
	})

	fn("get_velocity", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		return floatArray(b.LinearVelocityX(), b.LinearVelocityY()), nil
	})
	fn("set_velocity", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		b.SetLinearVelocityX(floatArg(args, 0))
		b.SetLinearVelocityY(floatArg(args, 1))
		return tengo.UndefinedValue, nil
	})
	fn("set_angular_velocity", func(args ...tengo.Object) (tengo.Object, error) {
		c.body().SetAngularVelocity(floatArg(args, 0))
		return tengo.UndefinedValue, nil
	})
	fn("apply_force", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		px, py := b.MassCenter()
		b.ApplyForce(floatArg(args, 0), floatArg(args, 1), px, py)
		return tengo.UndefinedValue, nil
	})
	fn("apply_impulse", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		px, py := b.MassCenter()
		b.ApplyImpulse(floatArg(args, 0), floatArg(args, 1), px, py)
		return tengo.UndefinedValue, nil
	})
	fn("apply_torque", func(args ...tengo.Object) (tengo.Object, error) {
		c.body().ApplyTorque(floatArg(args, 0))
		return tengo.UndefinedValue, nil
	})

	fn("set_gravity", func(args ...tengo.Object) (tengo.Object, error) {
		c.physics.SetGravity(floatArg(args, 0), floatArg(args, 1))
		return tengo.UndefinedValue, nil
	})
	fn("set_time_scale", func(args ...tengo.Object) (tengo.Object, error) {
		c.physics.SetTimeScale(floatArg(args, 0))
		return tengo.UndefinedValue, nil
	})

	collision := func(name string, test func(a, b *physics.Body) bool) {
		fn(name, func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			other := c.scene.bodies[objectAsString(args[0])]
			return boolObject(test(c.body(), other)), nil
		})
	}
	collision("colliding", physics.CollisionTest)
	collision("collision_started", physics.HasCollisionStarted)
	collision("collision_stopped", physics.HasCollisionStopped)

	fn("joint", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.Int{}, nil
		}
		return &tengo.Int{Value: int64(c.scene.joints[objectAsString(args[0])])}, nil
	})
	fn("add_distance_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other := c.body(), c.scene.bodies[stringArg(args, 0)]
		if b == nil || other == nil {
			return c.storeJoint(0, args), nil
		}
		x1, y1 := c.center(b)
		x2, y2 := c.center(other)
		return c.storeJoint(b.AddDistanceJoint(x1, y1, other, x2, y2, floatArg(args, 1), -1, -1, false), args), nil
	})
	fn("add_rope_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other := c.body(), c.scene.bodies[stringArg(args, 0)]
		if b == nil || other == nil {
			return c.storeJoint(0, args), nil
		}
		x1, y1 := c.center(b)
		x2, y2 := c.center(other)
		return c.storeJoint(b.AddRopeJoint(x1, y1, other, x2, y2, floatArg(args, 1), false), args), nil
	})
	fn("add_weld_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other := c.body(), c.scene.bodies[stringArg(args, 0)]
		if b == nil || other == nil {
			return c.storeJoint(0, args), nil
		}
		x, y := c.center(other)
		return c.storeJoint(b.AddWeldJoint(x, y, other, x, y, 0, -1, -1, false), args), nil
	})
	fn("add_revolute_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		if b == nil || len(args) < 2 {
			return c.storeJoint(0, args), nil
		}
		return c.storeJoint(b.AddRevoluteJoint(floatArg(args, 0), floatArg(args, 1), false, 0, 0, 0, false, 0, 0), args), nil
	})
	fn("add_mouse_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		if b == nil || len(args) < 3 {
			return c.storeJoint(0, args), nil
		}
		return c.storeJoint(b.AddMouseJoint(floatArg(args, 0), floatArg(args, 1), floatArg(args, 2), -1, -1), args), nil
	})
	fn("add_revolute_joint_between", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok {
			return c.storeJoint(0, args), nil
		}
		x, y := c.center(other)
		return c.storeJoint(b.AddRevoluteJointBetweenTwoBodies(x, y, other, x, y, false, 0, 0, 0, false, 0, 0, false), args), nil
	})
	fn("add_prismatic_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok {
			return c.storeJoint(0, args), nil
		}
		x1, y1 := c.center(b)
		x2, y2 := c.center(other)
		return c.storeJoint(b.AddPrismaticJoint(x1, y1, other, x2, y2, floatArg(args, 1), 0, false, 0, 0, false, 0, 0, false), args), nil
	})
	fn("add_wheel_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok {
			return c.storeJoint(0, args), nil
		}
		x, y := c.center(other)
		return c.storeJoint(b.AddWheelJoint(x, y, other, x, y, floatArg(args, 1), floatArg(args, 2), floatArg(args, 3), false, 0, 0, false), args), nil
	})
	fn("add_pulley_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok || len(args) < 5 {
			return c.storeJoint(0, args), nil
		}
		x1, y1 := c.center(b)
		x2, y2 := c.center(other)
		return c.storeJoint(b.AddPulleyJoint(x1, y1, other, x2, y2,
			floatArg(args, 1), floatArg(args, 2), floatArg(args, 3), floatArg(args, 4), 0, 0, 1, false), args), nil
	})
	fn("add_friction_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok {
			return c.storeJoint(0, args), nil
		}
		x1, y1 := c.center(b)
		x2, y2 := c.center(other)
		return c.storeJoint(b.AddFrictionJoint(x1, y1, other, x2, y2, floatArg(args, 1), floatArg(args, 2), false), args), nil
	})
	fn("add_motor_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b, other, ok := c.pair(args)
		if !ok {
			return c.storeJoint(0, args), nil
		}
		return c.storeJoint(b.AddMotorJoint(other, 0, 0, 0, floatArg(args, 1), floatArg(args, 2), 0.3, false), args), nil
	})
	fn("add_gear_joint", func(args ...tengo.Object) (tengo.Object, error) {
		b := c.body()
		if b == nil || len(args) < 3 {
			return c.storeJoint(0, args), nil
		}
		return c.storeJoint(b.AddGearJoint(jointArg(args, 0), jointArg(args, 1), floatArg(args, 2), false), args), nil
	})
	fn("set_mouse_target", func(args ...tengo.Object) (tengo.Object, error) {
		c.physics.SetMouseJointTarget(jointArg(args, 0), floatArg(args, 1), floatArg(args, 2))
		return tengo.UndefinedValue, nil
	})
	fn("set_revolute_motor_speed", func(args ...tengo.Object) (tengo.Object, error) {
		id := jointArg(args, 0)
		c.physics.EnableRevoluteJointMotor(id, true)
		c.physics.SetRevoluteJointMotorSpeed(id, floatArg(args, 1))
		return tengo.UndefinedValue, nil
	})
	fn("joint_reaction_force", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: c.physics.JointReactionForce(jointArg(args, 0))}, nil
	})
	fn("remove_joint", func(args ...tengo.Object) (tengo.Object, error) {
		c.physics.RemoveJoint(jointArg(args, 0))
		return tengo.UndefinedValue, nil
	})
	fn("destroy", func(args ...tengo.Object) (tengo.Object, error) {
		_ = ecs.Add(c.world, c.entity, component.DestroyRequestComponent.Kind(), &component.DestroyRequest{})
		return tengo.UndefinedValue, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func floatArg(args []tengo.Object, i int) float64 {
	if i >= len(args) {
		return 0
	}
	v, _ := tengo.ToFloat64(args[i])
	return v
}

func stringArg(args []tengo.Object, i int) string {
	if i >= len(args) {
		return ""
	}
	return objectAsString(args[i])
}

func jointArg(args []tengo.Object, i int) physics.JointID {
	if i >= len(args) {
		return 0
	}
	v, _ := tengo.ToInt64(args[i])
	return physics.JointID(v)
}

func floatArray(x, y float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
