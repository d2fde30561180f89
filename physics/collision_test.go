package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactBookkeeping(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 20, 0, 10, 10, BodyDynamic)

	a.beginContact(b)
	assert.True(t, CollisionTest(a, b))
	assert.True(t, HasCollisionStarted(a, b))
	assert.False(t, HasCollisionStopped(a, b))

	a.resetStartedAndEnded()
	a.endContact(b)
	assert.False(t, CollisionTest(a, b))
	assert.False(t, AreColliding(a, b))
	assert.True(t, HasCollisionStopped(a, b))

	// a contact that ends and begins again within one step is not a new start
	a.beginContact(b)
	assert.True(t, CollisionTest(a, b))
	assert.False(t, HasCollisionStarted(a, b))
	assert.False(t, HasCollisionStopped(a, b))
}

func TestContactStartedAndEndedInOneStep(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 20, 0, 10, 10, BodyDynamic)

	a.beginContact(b)
	a.endContact(b)
	assert.False(t, CollisionTest(a, b))
	assert.True(t, AreColliding(a, b), "a short contact still counts for the step")
	assert.True(t, HasCollisionStarted(a, b))
	assert.True(t, HasCollisionStopped(a, b))
}

func TestContactMultipleFixturesCounted(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 20, 0, 10, 10, BodyDynamic)

	a.beginContact(b)
	a.beginContact(b)
	a.endContact(b)
	assert.True(t, CollisionTest(a, b), "one remaining contact keeps the pair touching")
	a.endContact(b)
	assert.False(t, CollisionTest(a, b))
}

func TestCollisionNilSafe(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	assert.False(t, CollisionTest(a, nil))
	assert.False(t, AreColliding(nil, a))
	assert.False(t, HasCollisionStarted(nil, nil))
	assert.False(t, HasCollisionStopped(a, nil))
}

func TestFallingBoxLandsOnGround(t *testing.T) {
	w := newTestWorld(t)
	box, obj := newBox(w, 95, 0, 10, 10, BodyDynamic)
	ground, _ := newBox(w, 0, 20, 200, 10, BodyStatic)
	require.NotNil(t, box.EngineBody())
	require.NotNil(t, ground.EngineBody())

	assert.False(t, CollisionTest(box, ground))
	for i := 0; i < 60; i++ {
		w.Step(DefaultTimeStep)
	}
	box.PreStep()

	assert.True(t, CollisionTest(box, ground))
	assert.True(t, CollisionTest(ground, box))
	assert.InDelta(t, 10, obj.y, 1.5, "box should rest on top of the ground")
}
