package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWorldSnapshot(t *testing.T) {
	w := newTestWorld(t)
	a, obj := newBox(w, 0, 0, 10, 10, BodyDynamic)
	obj.label = "crate"
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)
	lazy, _ := newBox(w, 300, 0, 10, 10, BodyStatic)
	id := a.AddDistanceJoint(5, 5, b, 105, 5, 0, 0, 1, false)
	require.NotZero(t, id)

	s := w.Snapshot()
	require.Len(t, s.Bodies, 3)
	assert.Equal(t, "crate", s.Bodies[0].Name)
	assert.Equal(t, DefaultBehaviorName+"#1", s.Bodies[1].Name)
	assert.Equal(t, 9.8, s.GravityY)
	assert.Equal(t, BodyNone, lazy.State(), "snapshots never create engine bodies")

	require.Len(t, s.Joints, 1)
	assert.Equal(t, "distance", s.Joints[0].Kind)
	assert.InDelta(t, 105, s.Joints[0].AnchorB[0], 1e-9)

	out, err := s.YAML()
	require.NoError(t, err)
	var back Snapshot
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, s.WorldID, back.WorldID)
	assert.Len(t, back.Joints, 1)
}

func TestDestroyedWorldSnapshot(t *testing.T) {
	w := NewWorld(DefaultWorldConfig())
	newBox(w, 0, 0, 10, 10, BodyDynamic)
	w.Destroy()
	s := w.Snapshot()
	assert.Empty(t, s.Bodies)
	assert.Empty(t, s.Joints)
}
