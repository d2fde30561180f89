package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/physics2d/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedScenesValidate(t *testing.T) {
	for _, name := range []string{"scenes/sandbox.yaml", "scenes/bridge.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadScene(name)
			require.NoError(t, err)
			assert.NotEmpty(t, spec.Objects)
			for _, o := range spec.Objects {
				if o.Body == "" {
					continue
				}
				_, err := LoadBody(o.Body)
				require.NoError(t, err, o.Body)
			}
		})
	}
}

func TestLoadBodyMergesDefaults(t *testing.T) {
	cfg, err := LoadBody("bodies/ball.yaml")
	require.NoError(t, err)
	assert.Equal(t, physics.ShapeCircle, cfg.Shape)
	assert.Equal(t, 0.6, cfg.Restitution)
	assert.Equal(t, physics.DefaultBehaviorName, cfg.Name, "unset fields keep their defaults")
	assert.Equal(t, 1.0, cfg.GravityScale)
	assert.Equal(t, uint16(2), cfg.Layers)

	wedge, err := LoadBody("prefabs/bodies/wedge.yaml")
	require.NoError(t, err)
	require.Len(t, wedge.Vertices, 3)
	assert.Equal(t, physics.OriginTopLeft, wedge.PolygonOrigin)
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadBody("bodies/nope.yaml")
	assert.Error(t, err)
	_, err = LoadScript("nope.tengo")
	assert.Error(t, err)

	src, err := LoadScript("thruster.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "update")
}

func TestSceneValidate(t *testing.T) {
	base := func() SceneSpec {
		return SceneSpec{
			Objects: []ObjectSpec{{Name: "a"}, {Name: "b"}},
			Joints: []JointSpec{
				{Name: "r1", Kind: "revolute", A: "a"},
				{Name: "r2", Kind: "revolute", A: "b"},
			},
		}
	}

	cases := []struct {
		name   string
		mutate func(*SceneSpec)
		ok     bool
	}{
		{"valid", func(*SceneSpec) {}, true},
		{"unnamed_object", func(s *SceneSpec) { s.Objects[0].Name = "" }, false},
		{"duplicate_object", func(s *SceneSpec) { s.Objects[1].Name = "a" }, false},
		{"bad_body_type", func(s *SceneSpec) { s.Objects[0].BodyType = "Floaty" }, false},
		{"unknown_kind", func(s *SceneSpec) { s.Joints[0].Kind = "spring" }, false},
		{"unknown_object", func(s *SceneSpec) { s.Joints[0].A = "ghost" }, false},
		{"unknown_second_object", func(s *SceneSpec) { s.Joints[0].B = "ghost" }, false},
		{"duplicate_joint", func(s *SceneSpec) { s.Joints[1].Name = "r1" }, false},
		{"gear_ok", func(s *SceneSpec) {
			s.Joints = append(s.Joints, JointSpec{Kind: "gear", A: "a", Joints: []string{"r1", "r2"}})
		}, true},
		{"gear_forward_reference", func(s *SceneSpec) {
			s.Joints = append([]JointSpec{{Kind: "gear", A: "a", Joints: []string{"r1", "r2"}}}, s.Joints...)
		}, false},
		{"gear_one_child", func(s *SceneSpec) {
			s.Joints = append(s.Joints, JointSpec{Kind: "gear", A: "a", Joints: []string{"r1"}})
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := base()
			c.mutate(&s)
			err := s.Validate()
			if c.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidSpec), "got %v", err)
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, true},
		{"00ff0080", color.NRGBA{G: 255, A: 128}, true},
		{"#fff", color.NRGBA{}, false},
		{"#gg0000", color.NRGBA{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if !c.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	var spec ObjectSpec
	require.NoError(t, yaml.Unmarshal([]byte("name: x\ncolor: \"#102030\"\n"), &spec))
	require.NotNil(t, spec.Color)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, spec.Color.Color)
}

func TestWorldSpecConfig(t *testing.T) {
	cfg := WorldSpec{}.Config()
	assert.Equal(t, physics.DefaultWorldConfig(), cfg)

	zero := 0.0
	cfg = WorldSpec{GravityX: 1, GravityY: &zero, Scale: 50}.Config()
	assert.Equal(t, 1.0, cfg.GravityX)
	assert.Equal(t, 0.0, cfg.GravityY)
	assert.Equal(t, 50.0, cfg.ScaleX)
}
