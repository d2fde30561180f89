package physics

import (
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceJointDefaultsToAnchorDistance(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)

	id := a.AddDistanceJoint(0, 0, b, 100, 0, 0, -1, -1, false)
	require.Equal(t, JointID(1), id)

	dj, ok := w.Joints().Get(id).Handle().(*box2d.B2DistanceJoint)
	require.True(t, ok)
	assert.InDelta(t, 1.0, dj.GetLength(), 1e-12)
	assert.InDelta(t, 100, w.DistanceJointLength(id), 1e-9)
	assert.Equal(t, 0.0, w.DistanceJointFrequency(id))
	assert.Equal(t, 1.0, w.DistanceJointDampingRatio(id))

	w.SetDistanceJointLength(id, -5)
	assert.InDelta(t, 100, w.DistanceJointLength(id), 1e-9)
	w.SetDistanceJointLength(id, 250)
	assert.InDelta(t, 250, w.DistanceJointLength(id), 1e-9)

	assert.True(t, a.IsJointFirstObject(id))
	assert.True(t, b.IsJointSecondObject(id))
	assert.False(t, b.IsJointFirstObject(id))
	assert.Equal(t, 1, w.Engine().GetJointCount())
}

func TestJointCreationSkips(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)

	otherName := DefaultBodyConfig()
	otherName.Name = "Other"
	named := NewBody(w, &testObject{x: 50, width: 10, height: 10}, otherName)

	otherWorld := newTestWorld(t)
	foreign, _ := newBox(otherWorld, 50, 0, 10, 10, BodyDynamic)

	cases := []struct {
		name  string
		other *Body
	}{
		{"nil_other", nil},
		{"self", a},
		{"different_behavior_name", named},
		{"different_world", foreign},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Zero(t, a.AddDistanceJoint(0, 0, c.other, 50, 0, 0, 0, 1, false))
			assert.Zero(t, a.AddWeldJoint(0, 0, c.other, 50, 0, 0, 0, 0, false))
			assert.Zero(t, a.AddMotorJoint(c.other, 0, 0, 0, 1, 1, 0.3, false))
		})
	}
	assert.Equal(t, 0, w.Joints().Len())
}

func TestJointQueriesOnWrongKind(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)
	id := a.AddRopeJoint(5, 5, b, 105, 5, 0, false)
	require.NotZero(t, id)

	assert.Zero(t, w.DistanceJointLength(id))
	assert.Zero(t, w.RevoluteJointAngle(id))
	assert.Zero(t, w.GearJointFirstJoint(id))
	assert.False(t, w.PrismaticJointMotorEnabled(id))
	w.SetMouseJointTarget(id, 10, 10)
	assert.Zero(t, w.DistanceJointLength(JointID(99)))
	assert.InDelta(t, 100, w.RopeJointMaxLength(id), 1e-9)
}

func TestRevoluteJointLimitsSwapped(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)

	id := a.AddRevoluteJoint(5, 5, true, 0, 45, -45, true, 90, -1)
	require.NotZero(t, id)
	assert.InDelta(t, -45, w.RevoluteJointMinAngle(id), 1e-9)
	assert.InDelta(t, 45, w.RevoluteJointMaxAngle(id), 1e-9)
	assert.InDelta(t, 90, w.RevoluteJointMotorSpeed(id), 1e-9)
	assert.Equal(t, 0.0, w.RevoluteJointMaxMotorTorque(id))
	assert.True(t, w.RevoluteJointLimitsEnabled(id))
	assert.True(t, a.IsJointSecondObject(id))

	x, y := w.JointFirstAnchor(id)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
}

func TestPrismaticJointTranslationLimits(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)

	id := a.AddPrismaticJoint(5, 5, b, 105, 5, 90, 0, true, 50, 20, false, 10, 5, false)
	require.NotZero(t, id)
	assert.InDelta(t, 0, w.PrismaticJointMinTranslation(id), 1e-9)
	assert.InDelta(t, 50, w.PrismaticJointMaxTranslation(id), 1e-9)
	assert.InDelta(t, 90, w.PrismaticJointAxisAngle(id), 1e-9)
	assert.InDelta(t, 10, w.PrismaticJointMotorSpeed(id), 1e-9)

	w.SetPrismaticJointLimits(id, 30, -30)
	assert.InDelta(t, -30, w.PrismaticJointMinTranslation(id), 1e-9)
	assert.InDelta(t, 30, w.PrismaticJointMaxTranslation(id), 1e-9)
}

func TestMouseJointDefaults(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)

	id := a.AddMouseJoint(5, 5, -10, 0, -1)
	require.NotZero(t, id)
	assert.Equal(t, 0.0, w.MouseJointMaxForce(id))
	assert.Equal(t, 1.0, w.MouseJointFrequency(id))
	assert.Equal(t, 0.0, w.MouseJointDampingRatio(id))

	a.EngineBody().SetAwake(false)
	w.SetMouseJointTarget(id, 200, 300)
	tx, ty := w.MouseJointTarget(id)
	assert.InDelta(t, 200, tx, 1e-9)
	assert.InDelta(t, 300, ty, 1e-9)
	assert.True(t, a.EngineBody().IsAwake())

	w.SetMouseJointFrequency(id, 0)
	assert.Equal(t, 1.0, w.MouseJointFrequency(id))
}

func TestPulleyAndMotorDefaults(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 100, 10, 10, BodyDynamic)
	b, _ := newBox(w, 200, 100, 10, 10, BodyDynamic)

	pulley := a.AddPulleyJoint(5, 105, b, 205, 105, 5, 5, 205, 5, 0, 0, 0, false)
	require.NotZero(t, pulley)
	assert.Equal(t, 1.0, w.PulleyJointRatio(pulley))
	assert.InDelta(t, 100, w.PulleyJointFirstLength(pulley), 1e-6)
	gx, gy := w.PulleyJointSecondGroundAnchor(pulley)
	assert.InDelta(t, 205, gx, 1e-9)
	assert.InDelta(t, 5, gy, 1e-9)

	motor := a.AddMotorJoint(b, 10, 20, 30, -1, 2, 3, false)
	require.NotZero(t, motor)
	assert.Equal(t, 1.0, w.MotorJointCorrectionFactor(motor))
	assert.Equal(t, 0.0, w.MotorJointMaxForce(motor))
	assert.InDelta(t, 30, w.MotorJointAngularOffset(motor), 1e-9)
	w.SetMotorJointCorrectionFactor(motor, 2)
	assert.Equal(t, 1.0, w.MotorJointCorrectionFactor(motor))
	w.SetMotorJointCorrectionFactor(motor, 0.25)
	assert.Equal(t, 0.25, w.MotorJointCorrectionFactor(motor))
}

func TestWeldJointKeepsReferenceAngle(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 10, 0, 10, 10, BodyDynamic)

	id := a.AddWeldJoint(10, 5, b, 10, 5, 30, 0, -2, false)
	require.NotZero(t, id)
	assert.InDelta(t, 30, w.WeldJointReferenceAngle(id), 1e-9)
	assert.Equal(t, 1.0, w.WeldJointFrequency(id))
	assert.Equal(t, 0.0, w.WeldJointDampingRatio(id))
}

func TestGearJointRemovedWithChildren(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)

	r1 := a.AddRevoluteJoint(5, 5, false, 0, 0, 0, false, 0, 0)
	r2 := b.AddRevoluteJoint(105, 5, false, 0, 0, 0, false, 0, 0)
	require.NotZero(t, r1)
	require.NotZero(t, r2)

	assert.Zero(t, a.AddGearJoint(r1, r1, 1, false), "children must be distinct")
	assert.Zero(t, a.AddGearJoint(r1, JointID(42), 1, false), "children must exist")

	gear := a.AddGearJoint(r1, r2, 2, false)
	require.NotZero(t, gear)
	assert.Equal(t, r1, w.GearJointFirstJoint(gear))
	assert.Equal(t, r2, w.GearJointSecondJoint(gear))
	assert.Equal(t, 2.0, w.GearJointRatio(gear))
	assert.Equal(t, 3, w.Engine().GetJointCount())

	a.Deactivate()
	assert.Nil(t, w.Joints().Get(gear))
	assert.Nil(t, w.Joints().Get(r1))
	assert.NotNil(t, w.Joints().Get(r2))
	assert.Equal(t, 1, w.Engine().GetJointCount())

	b.Deactivate()
	assert.Equal(t, 0, w.Joints().Len())
	assert.Equal(t, 0, w.Engine().GetJointCount())
}

func TestRemoveJoint(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)
	id := a.AddFrictionJoint(5, 5, b, 105, 5, -1, 3, false)
	require.NotZero(t, id)
	assert.Equal(t, 0.0, w.FrictionJointMaxForce(id))
	assert.Equal(t, 3.0, w.FrictionJointMaxTorque(id))

	w.RemoveJoint(id)
	w.RemoveJoint(id)
	assert.Nil(t, w.Joints().Get(id))
	assert.Equal(t, 0, w.Engine().GetJointCount())
	assert.False(t, a.IsJointFirstObject(id))
}

func TestJointsSurviveStepping(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)
	wheel, _ := newBox(w, 0, 50, 10, 10, BodyDynamic)

	require.NotZero(t, a.AddDistanceJoint(5, 5, b, 105, 5, 0, 0, 1, false))
	require.NotZero(t, a.AddWheelJoint(5, 5, wheel, 5, 55, 90, 4, 0.7, true, 180, 10, false))
	require.NotZero(t, b.AddRevoluteJoint(105, 5, false, 0, 0, 0, false, 0, 0))

	for i := 0; i < 30; i++ {
		w.Step(DefaultTimeStep)
	}
	for _, id := range w.Joints().IDs() {
		assert.GreaterOrEqual(t, w.JointReactionForce(id), 0.0)
	}
}

func TestNegativeMotorLimitsClamped(t *testing.T) {
	w := newTestWorld(t)
	a, _ := newBox(w, 0, 0, 10, 10, BodyDynamic)
	b, _ := newBox(w, 100, 0, 10, 10, BodyDynamic)

	prismatic := a.AddPrismaticJoint(5, 5, b, 105, 5, 0, 0, false, 0, 0, true, 10, -50, false)
	wheel := a.AddWheelJoint(5, 5, b, 105, 5, 90, 4, 0.7, true, 90, -50, false)
	revolute := a.AddRevoluteJoint(5, 5, false, 0, 0, 0, true, 90, -50)
	require.NotZero(t, prismatic)
	require.NotZero(t, wheel)
	require.NotZero(t, revolute)

	assert.Equal(t, 0.0, w.PrismaticJointMaxMotorForce(prismatic))
	assert.Equal(t, 0.0, w.WheelJointMaxMotorTorque(wheel))
	assert.Equal(t, 0.0, w.RevoluteJointMaxMotorTorque(revolute))

	w.SetPrismaticJointMaxMotorForce(prismatic, -1)
	w.SetWheelJointMaxMotorTorque(wheel, -1)
	assert.Equal(t, 0.0, w.PrismaticJointMaxMotorForce(prismatic))
	assert.Equal(t, 0.0, w.WheelJointMaxMotorTorque(wheel))
}

func TestWheelJointMotorSpeed(t *testing.T) {
	w := newTestWorld(t)
	chassis, _ := newBox(w, 0, 0, 10, 10, BodyStatic)
	wheel, _ := newBox(w, 0, 50, 10, 10, BodyDynamic)

	id := chassis.AddWheelJoint(5, 55, wheel, 5, 55, 90, 4, 0.7, true, 180, 10, false)
	require.NotZero(t, id)
	assert.InDelta(t, 90, w.WheelJointAxisAngle(id), 1e-9)
	assert.InDelta(t, 0, w.WheelJointTranslation(id), 1e-9)
	assert.InDelta(t, 180, w.WheelJointMotorSpeed(id), 1e-9)
	assert.True(t, w.WheelJointMotorEnabled(id))

	for i := 0; i < 30; i++ {
		w.Step(DefaultTimeStep)
	}
	assert.InDelta(t, 180, w.WheelJointSpeed(id), 1)
	assert.Greater(t, w.WheelJointTranslation(id), 0.0, "the suspension sags under gravity")

	w.EnableWheelJointMotor(id, false)
	assert.False(t, w.WheelJointMotorEnabled(id))
}

func TestJointAccessorRoundTrips(t *testing.T) {
	type pair struct{ a, b *Body }
	cases := []struct {
		name   string
		create func(p pair) JointID
		set    func(w *World, id JointID)
		get    func(w *World, id JointID) float64
		want   float64
	}{
		{
			name:   "rope_max_length_default",
			create: func(p pair) JointID { return p.a.AddRopeJoint(5, 5, p.b, 105, 5, 0, false) },
			get:    (*World).RopeJointMaxLength,
			want:   100,
		},
		{
			name:   "rope_max_length_negative_ignored",
			create: func(p pair) JointID { return p.a.AddRopeJoint(5, 5, p.b, 105, 5, 0, false) },
			set:    func(w *World, id JointID) { w.SetRopeJointMaxLength(id, -1) },
			get:    (*World).RopeJointMaxLength,
			want:   100,
		},
		{
			name:   "rope_max_length_set",
			create: func(p pair) JointID { return p.a.AddRopeJoint(5, 5, p.b, 105, 5, 0, false) },
			set:    func(w *World, id JointID) { w.SetRopeJointMaxLength(id, 150) },
			get:    (*World).RopeJointMaxLength,
			want:   150,
		},
		{
			name:   "wheel_frequency_negative_ignored",
			create: func(p pair) JointID { return p.a.AddWheelJoint(5, 5, p.b, 105, 5, 0, 4, 0.7, false, 0, 0, false) },
			set:    func(w *World, id JointID) { w.SetWheelJointFrequency(id, -1) },
			get:    (*World).WheelJointFrequency,
			want:   4,
		},
		{
			name:   "wheel_frequency_set",
			create: func(p pair) JointID { return p.a.AddWheelJoint(5, 5, p.b, 105, 5, 0, 4, 0.7, false, 0, 0, false) },
			set:    func(w *World, id JointID) { w.SetWheelJointFrequency(id, 2) },
			get:    (*World).WheelJointFrequency,
			want:   2,
		},
		{
			name:   "wheel_damping_set",
			create: func(p pair) JointID { return p.a.AddWheelJoint(5, 5, p.b, 105, 5, 0, 4, 0.7, false, 0, 0, false) },
			set:    func(w *World, id JointID) { w.SetWheelJointDampingRatio(id, 0.25) },
			get:    (*World).WheelJointDampingRatio,
			want:   0.25,
		},
		{
			name:   "wheel_motor_speed_degrees",
			create: func(p pair) JointID { return p.a.AddWheelJoint(5, 5, p.b, 105, 5, 0, 4, 0.7, true, 0, 1, false) },
			set:    func(w *World, id JointID) { w.SetWheelJointMotorSpeed(id, -270) },
			get:    (*World).WheelJointMotorSpeed,
			want:   -270,
		},
		{
			name:   "motor_offset_x_pixels",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointOffset(id, 30, -40) },
			get: func(w *World, id JointID) float64 {
				x, _ := w.MotorJointOffset(id)
				return x
			},
			want: 30,
		},
		{
			name:   "motor_offset_y_pixels",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointOffset(id, 30, -40) },
			get: func(w *World, id JointID) float64 {
				_, y := w.MotorJointOffset(id)
				return y
			},
			want: -40,
		},
		{
			name:   "motor_angular_offset_degrees",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointAngularOffset(id, 45) },
			get:    (*World).MotorJointAngularOffset,
			want:   45,
		},
		{
			name:   "motor_correction_negative_ignored",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointCorrectionFactor(id, -0.5) },
			get:    (*World).MotorJointCorrectionFactor,
			want:   0.3,
		},
		{
			name:   "motor_max_force_negative_ignored",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointMaxForce(id, -5) },
			get:    (*World).MotorJointMaxForce,
			want:   1,
		},
		{
			name:   "motor_max_torque_set",
			create: func(p pair) JointID { return p.a.AddMotorJoint(p.b, 0, 0, 0, 1, 1, 0.3, false) },
			set:    func(w *World, id JointID) { w.SetMotorJointMaxTorque(id, 7) },
			get:    (*World).MotorJointMaxTorque,
			want:   7,
		},
		{
			name:   "weld_frequency_set",
			create: func(p pair) JointID { return p.a.AddWeldJoint(5, 5, p.b, 105, 5, 0, 1, 0, false) },
			set:    func(w *World, id JointID) { w.SetWeldJointFrequency(id, 3) },
			get:    (*World).WeldJointFrequency,
			want:   3,
		},
		{
			name:   "weld_damping_negative_ignored",
			create: func(p pair) JointID { return p.a.AddWeldJoint(5, 5, p.b, 105, 5, 0, 1, 0.4, false) },
			set:    func(w *World, id JointID) { w.SetWeldJointDampingRatio(id, -1) },
			get:    (*World).WeldJointDampingRatio,
			want:   0.4,
		},
		{
			name: "pulley_second_length",
			create: func(p pair) JointID {
				return p.a.AddPulleyJoint(5, 105, p.b, 105, 105, 5, 5, 105, 25, 0, 0, 1, false)
			},
			get:  (*World).PulleyJointSecondLength,
			want: 80,
		},
		{
			name:   "revolute_motor_speed_degrees",
			create: func(p pair) JointID { return p.a.AddRevoluteJoint(5, 5, false, 0, 0, 0, true, 0, 1) },
			set:    func(w *World, id JointID) { w.SetRevoluteJointMotorSpeed(id, 360) },
			get:    (*World).RevoluteJointMotorSpeed,
			want:   360,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			a, _ := newBox(w, 0, 100, 10, 10, BodyDynamic)
			b, _ := newBox(w, 100, 100, 10, 10, BodyDynamic)
			id := c.create(pair{a, b})
			require.NotZero(t, id)
			if c.set != nil {
				c.set(w, id)
			}
			assert.InDelta(t, c.want, c.get(w, id), 1e-6)

			assert.Zero(t, c.get(w, JointID(999)), "unknown ids read as zero")
			rope := a.AddRopeJoint(5, 105, b, 105, 105, 0, false)
			if w.JointKindOf(id) != JointRope {
				assert.Zero(t, c.get(w, rope), "wrong kinds read as zero")
			}
		})
	}
}
