package physics

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("physics: invalid config")

type BodyType string

const (
	BodyStatic    BodyType = "Static"
	BodyKinematic BodyType = "Kinematic"
	BodyDynamic   BodyType = "Dynamic"
)

type ShapeKind string

const (
	ShapeBox     ShapeKind = "Box"
	ShapeCircle  ShapeKind = "Circle"
	ShapePolygon ShapeKind = "Polygon"
	ShapeEdge    ShapeKind = "Edge"
)

// PolygonOrigin selects the point polygon vertices are expressed relative to.
type PolygonOrigin string

const (
	OriginCenter  PolygonOrigin = "Center"
	OriginTopLeft PolygonOrigin = "TopLeft"
	OriginObject  PolygonOrigin = "Origin"
)

// DefaultBehaviorName is the behavior name used when a config leaves it empty.
// Two bodies can only be jointed when they share a behavior name.
const DefaultBehaviorName = "Physics2"

type Vertex struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// WorldConfig is the scene-level physics configuration.
type WorldConfig struct {
	GravityX float64 `yaml:"gravity_x" json:"gravity_x"`
	GravityY float64 `yaml:"gravity_y" json:"gravity_y"`
	ScaleX   float64 `yaml:"scale_x" json:"scale_x"`
	ScaleY   float64 `yaml:"scale_y" json:"scale_y"`
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{GravityY: 9.8, ScaleX: DefaultScale, ScaleY: DefaultScale}
}

// BodyConfig is the typed behavior configuration of one physics body.
type BodyConfig struct {
	Name            string        `yaml:"name" json:"name,omitempty"`
	BodyType        BodyType      `yaml:"body_type" json:"body_type,omitempty"`
	Bullet          bool          `yaml:"bullet" json:"bullet,omitempty"`
	FixedRotation   bool          `yaml:"fixed_rotation" json:"fixed_rotation,omitempty"`
	CanSleep        bool          `yaml:"can_sleep" json:"can_sleep,omitempty"`
	Shape           ShapeKind     `yaml:"shape" json:"shape,omitempty"`
	ShapeDimensionA float64       `yaml:"shape_dimension_a" json:"shape_dimension_a,omitempty"`
	ShapeDimensionB float64       `yaml:"shape_dimension_b" json:"shape_dimension_b,omitempty"`
	ShapeOffsetX    float64       `yaml:"shape_offset_x" json:"shape_offset_x,omitempty"`
	ShapeOffsetY    float64       `yaml:"shape_offset_y" json:"shape_offset_y,omitempty"`
	PolygonOrigin   PolygonOrigin `yaml:"polygon_origin" json:"polygon_origin,omitempty"`
	Vertices        []Vertex      `yaml:"vertices" json:"vertices,omitempty"`
	Density         float64       `yaml:"density" json:"density,omitempty"`
	Friction        float64       `yaml:"friction" json:"friction,omitempty"`
	Restitution     float64       `yaml:"restitution" json:"restitution,omitempty"`
	LinearDamping   float64       `yaml:"linear_damping" json:"linear_damping,omitempty"`
	AngularDamping  float64       `yaml:"angular_damping" json:"angular_damping,omitempty"`
	GravityScale    float64       `yaml:"gravity_scale" json:"gravity_scale,omitempty"`
	Layers          uint16        `yaml:"layers" json:"layers,omitempty"`
	Masks           uint16        `yaml:"masks" json:"masks,omitempty"`
}

func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		Name:           DefaultBehaviorName,
		BodyType:       BodyDynamic,
		CanSleep:       true,
		Shape:          ShapeBox,
		PolygonOrigin:  OriginCenter,
		Density:        1,
		Friction:       0.3,
		Restitution:    0.1,
		LinearDamping:  0.1,
		AngularDamping: 0.1,
		GravityScale:   1,
		Layers:         1,
		Masks:          1,
	}
}

// Validate reports enum values that Normalize would silently replace.
func (c BodyConfig) Validate() error {
	switch c.BodyType {
	case "", BodyStatic, BodyKinematic, BodyDynamic:
	default:
		return fmt.Errorf("%w: body_type %q", ErrInvalidConfig, c.BodyType)
	}
	switch c.Shape {
	case "", ShapeBox, ShapeCircle, ShapePolygon, ShapeEdge:
	default:
		return fmt.Errorf("%w: shape %q", ErrInvalidConfig, c.Shape)
	}
	switch c.PolygonOrigin {
	case "", OriginCenter, OriginTopLeft, OriginObject:
	default:
		return fmt.Errorf("%w: polygon_origin %q", ErrInvalidConfig, c.PolygonOrigin)
	}
	if c.Shape == ShapePolygon && len(c.Vertices) > MaxPolygonVertices {
		return fmt.Errorf("%w: %d vertices, at most %d supported", ErrInvalidConfig, len(c.Vertices), MaxPolygonVertices)
	}
	return nil
}

// Normalize returns a copy with unknown enums replaced by defaults and
// material values clamped to be non-negative.
func (c BodyConfig) Normalize() BodyConfig {
	if c.Name == "" {
		c.Name = DefaultBehaviorName
	}
	switch c.BodyType {
	case BodyStatic, BodyKinematic, BodyDynamic:
	default:
		c.BodyType = BodyDynamic
	}
	switch c.Shape {
	case ShapeBox, ShapeCircle, ShapePolygon, ShapeEdge:
	default:
		c.Shape = ShapeBox
	}
	switch c.PolygonOrigin {
	case OriginCenter, OriginTopLeft, OriginObject:
	default:
		c.PolygonOrigin = OriginCenter
	}
	if len(c.Vertices) > MaxPolygonVertices {
		c.Vertices = c.Vertices[:MaxPolygonVertices]
	}
	c.Vertices = append([]Vertex(nil), c.Vertices...)
	c.Density = nonNegative(c.Density)
	c.Friction = nonNegative(c.Friction)
	c.Restitution = nonNegative(c.Restitution)
	return c
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func sameVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
