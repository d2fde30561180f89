package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/milk9111/physics2d/physics"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes a whole sandbox scene.
type SceneSpec struct {
	Name    string       `yaml:"name" json:"name"`
	World   WorldSpec    `yaml:"world" json:"world"`
	Objects []ObjectSpec `yaml:"objects" json:"objects"`
	Joints  []JointSpec  `yaml:"joints" json:"joints,omitempty"`
}

type WorldSpec struct {
	GravityX  float64  `yaml:"gravity_x" json:"gravity_x,omitempty"`
	GravityY  *float64 `yaml:"gravity_y" json:"gravity_y,omitempty"`
	Scale     float64  `yaml:"scale" json:"scale,omitempty" jsonschema:"description=pixels per physics unit (default 100)"`
	TimeScale *float64 `yaml:"time_scale" json:"time_scale,omitempty"`
}

// Config fills in the physics defaults for unset fields.
func (s WorldSpec) Config() physics.WorldConfig {
	cfg := physics.DefaultWorldConfig()
	cfg.GravityX = s.GravityX
	if s.GravityY != nil {
		cfg.GravityY = *s.GravityY
	}
	if s.Scale > 0 {
		cfg.ScaleX, cfg.ScaleY = s.Scale, s.Scale
	}
	return cfg
}

type ObjectSpec struct {
	Name     string     `yaml:"name" json:"name"`
	X        float64    `yaml:"x" json:"x"`
	Y        float64    `yaml:"y" json:"y"`
	Width    float64    `yaml:"width" json:"width"`
	Height   float64    `yaml:"height" json:"height"`
	Angle    float64    `yaml:"angle" json:"angle,omitempty"`
	Centered bool       `yaml:"centered" json:"centered,omitempty" jsonschema:"description=origin at the center instead of the top-left corner"`
	Color    *YAMLColor `yaml:"color" json:"color,omitempty"`
	Body     string     `yaml:"body" json:"body,omitempty" jsonschema:"description=body spec under bodies/"`
	BodyType string     `yaml:"body_type" json:"body_type,omitempty" jsonschema:"enum=Static,enum=Kinematic,enum=Dynamic"`
	Script   string     `yaml:"script" json:"script,omitempty"`
	TTL      int        `yaml:"ttl" json:"ttl,omitempty" jsonschema:"description=ticks until the object is destroyed (0 = forever)"`
}

// Point is a position in pixels.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// JointSpec declares a joint between scene objects by name. Unset optional
// values fall back to the same defaults the physics API uses.
type JointSpec struct {
	Name           string   `yaml:"name" json:"name,omitempty"`
	Kind           string   `yaml:"kind" json:"kind" jsonschema:"enum=distance,enum=rope,enum=revolute,enum=prismatic,enum=pulley,enum=gear,enum=mouse,enum=wheel,enum=weld,enum=friction,enum=motor"`
	A              string   `yaml:"a" json:"a"`
	B              string   `yaml:"b" json:"b,omitempty"`
	AnchorA        *Point   `yaml:"anchor_a" json:"anchor_a,omitempty"`
	AnchorB        *Point   `yaml:"anchor_b" json:"anchor_b,omitempty"`
	GroundA        Point    `yaml:"ground_a" json:"ground_a,omitempty"`
	GroundB        Point    `yaml:"ground_b" json:"ground_b,omitempty"`
	Target         *Point   `yaml:"target" json:"target,omitempty"`
	Offset         Point    `yaml:"offset" json:"offset,omitempty"`
	Length         float64  `yaml:"length" json:"length,omitempty"`
	LengthB        float64  `yaml:"length_b" json:"length_b,omitempty"`
	Frequency      *float64 `yaml:"frequency" json:"frequency,omitempty"`
	Damping        *float64 `yaml:"damping" json:"damping,omitempty"`
	Ratio          float64  `yaml:"ratio" json:"ratio,omitempty"`
	Axis           float64  `yaml:"axis" json:"axis,omitempty"`
	ReferenceAngle float64  `yaml:"reference_angle" json:"reference_angle,omitempty"`
	EnableLimit    bool     `yaml:"enable_limit" json:"enable_limit,omitempty"`
	Lower          float64  `yaml:"lower" json:"lower,omitempty"`
	Upper          float64  `yaml:"upper" json:"upper,omitempty"`
	EnableMotor    bool     `yaml:"enable_motor" json:"enable_motor,omitempty"`
	MotorSpeed     float64  `yaml:"motor_speed" json:"motor_speed,omitempty"`
	MaxMotor       float64  `yaml:"max_motor" json:"max_motor,omitempty"`
	MaxForce       float64  `yaml:"max_force" json:"max_force,omitempty"`
	MaxTorque      float64  `yaml:"max_torque" json:"max_torque,omitempty"`
	Correction     *float64 `yaml:"correction" json:"correction,omitempty"`
	Collide        bool     `yaml:"collide" json:"collide,omitempty"`
	Joints         []string `yaml:"joints" json:"joints,omitempty" jsonschema:"description=names of the two joints a gear couples"`
}

func LoadScene(name string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return SceneSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// LoadBody reads a body spec on top of the default body config.
func LoadBody(name string) (physics.BodyConfig, error) {
	data, err := Load(name)
	if err != nil {
		return physics.BodyConfig{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	cfg := physics.DefaultBodyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return physics.BodyConfig{}, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return physics.BodyConfig{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return cfg.Normalize(), nil
}

// Validate checks names and references that BuildScene relies on.
func (s SceneSpec) Validate() error {
	objects := make(map[string]bool, len(s.Objects))
	for i, o := range s.Objects {
		if o.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidSpec, i)
		}
		if objects[o.Name] {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidSpec, o.Name)
		}
		objects[o.Name] = true
		switch physics.BodyType(o.BodyType) {
		case "", physics.BodyStatic, physics.BodyKinematic, physics.BodyDynamic:
		default:
			return fmt.Errorf("%w: object %q body_type %q", ErrInvalidSpec, o.Name, o.BodyType)
		}
	}

	joints := make(map[string]bool, len(s.Joints))
	for i, j := range s.Joints {
		label := j.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
		}
		if physics.ParseJointKind(j.Kind) == physics.JointUnknown {
			return fmt.Errorf("%w: joint %s kind %q", ErrInvalidSpec, label, j.Kind)
		}
		if !objects[j.A] {
			return fmt.Errorf("%w: joint %s references unknown object %q", ErrInvalidSpec, label, j.A)
		}
		if j.B != "" && !objects[j.B] {
			return fmt.Errorf("%w: joint %s references unknown object %q", ErrInvalidSpec, label, j.B)
		}
		if physics.ParseJointKind(j.Kind) == physics.JointGear {
			if len(j.Joints) != 2 {
				return fmt.Errorf("%w: gear %s needs two joints", ErrInvalidSpec, label)
			}
			for _, child := range j.Joints {
				if !joints[child] {
					return fmt.Errorf("%w: gear %s references %q before it is declared", ErrInvalidSpec, label, child)
				}
			}
		}
		if j.Name != "" {
			if joints[j.Name] {
				return fmt.Errorf("%w: duplicate joint %q", ErrInvalidSpec, j.Name)
			}
			joints[j.Name] = true
		}
	}
	return nil
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func (YAMLColor) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "string",
		Pattern: "^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$",
	}
}

func ParseColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
