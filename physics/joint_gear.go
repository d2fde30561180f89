package physics

import "github.com/ByteArena/box2d"

// AddGearJoint couples two revolute or prismatic joints. Removing either of
// them later removes the gear first.
func (b *Body) AddGearJoint(first, second JointID, ratio float64, collide bool) JointID {
	body := b.EngineBody()
	if body == nil {
		return 0
	}
	reg := b.world.joints
	j1, j2 := reg.Get(first), reg.Get(second)
	if j1 == nil || !j1.Kind.gearChild() || j2 == nil || !j2.Kind.gearChild() {
		return 0
	}
	if j1 == j2 {
		return 0
	}

	def := box2d.MakeB2GearJointDef()
	def.BodyA = b.world.static
	def.BodyB = body
	def.Joint1 = j1.handle
	def.Joint2 = j2.handle
	def.Ratio = ratio
	def.CollideConnected = collide

	return b.world.addJoint(&Joint{Kind: JointGear, children: [2]JointID{first, second}}, &def)
}

func (w *World) GearJointFirstJoint(id JointID) JointID {
	if w == nil {
		return 0
	}
	first, _, ok := w.joints.Lookup(id, JointGear).GearChildren()
	if !ok {
		return 0
	}
	return first
}

func (w *World) GearJointSecondJoint(id JointID) JointID {
	if w == nil {
		return 0
	}
	_, second, ok := w.joints.Lookup(id, JointGear).GearChildren()
	if !ok {
		return 0
	}
	return second
}

func (w *World) GearJointRatio(id JointID) float64 {
	gj, _, ok := lookupJoint[*box2d.B2GearJoint](w, id, JointGear)
	if !ok {
		return 0
	}
	return gj.GetRatio()
}

func (w *World) SetGearJointRatio(id JointID, ratio float64) {
	gj, j, ok := lookupJoint[*box2d.B2GearJoint](w, id, JointGear)
	if !ok {
		return
	}
	gj.SetRatio(ratio)
	j.wake()
}
