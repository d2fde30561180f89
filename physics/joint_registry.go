package physics

import (
	"slices"

	"github.com/ByteArena/box2d"
)

// JointID identifies a joint within one world. Zero means "no joint".
type JointID int

type JointKind uint8

const (
	JointUnknown JointKind = iota
	JointDistance
	JointRevolute
	JointPrismatic
	JointPulley
	JointGear
	JointMouse
	JointWheel
	JointWeld
	JointRope
	JointFriction
	JointMotor
)

var jointKindNames = [...]string{
	JointUnknown:   "unknown",
	JointDistance:  "distance",
	JointRevolute:  "revolute",
	JointPrismatic: "prismatic",
	JointPulley:    "pulley",
	JointGear:      "gear",
	JointMouse:     "mouse",
	JointWheel:     "wheel",
	JointWeld:      "weld",
	JointRope:      "rope",
	JointFriction:  "friction",
	JointMotor:     "motor",
}

func (k JointKind) String() string {
	if int(k) < len(jointKindNames) {
		return jointKindNames[k]
	}
	return jointKindNames[JointUnknown]
}

// ParseJointKind maps a lower-case kind name back to its JointKind.
func ParseJointKind(name string) JointKind {
	for k, n := range jointKindNames {
		if n == name {
			return JointKind(k)
		}
	}
	return JointUnknown
}

// gearChild reports whether joints of this kind can be driven by a gear joint.
func (k JointKind) gearChild() bool {
	return k == JointRevolute || k == JointPrismatic
}

// Joint is one registered engine joint. Only the fields relevant to Kind are set.
type Joint struct {
	ID     JointID
	Kind   JointKind
	handle box2d.B2JointInterface
	bodyA  *box2d.B2Body
	bodyB  *box2d.B2Body

	// gear joints only
	children [2]JointID
	// weld joints only, in radians
	referenceAngle float64
}

func (j *Joint) Handle() box2d.B2JointInterface { return j.handle }
func (j *Joint) BodyA() *box2d.B2Body           { return j.bodyA }
func (j *Joint) BodyB() *box2d.B2Body           { return j.bodyB }

// GearChildren returns the two joints driven by a gear joint.
func (j *Joint) GearChildren() (JointID, JointID, bool) {
	if j == nil || j.Kind != JointGear {
		return 0, 0, false
	}
	return j.children[0], j.children[1], true
}

func (j *Joint) touches(body *box2d.B2Body) bool {
	return body != nil && (j.bodyA == body || j.bodyB == body)
}

func (j *Joint) wake() {
	if j.bodyA != nil {
		j.bodyA.SetAwake(true)
	}
	if j.bodyB != nil {
		j.bodyB.SetAwake(true)
	}
}

// JointRegistry owns the joints of one world and enforces that a gear joint is
// always destroyed before either of the joints it drives.
type JointRegistry struct {
	next       JointID
	joints     map[JointID]*Joint
	dependents map[JointID][]JointID
	destroy    func(box2d.B2JointInterface)
}

// NewJointRegistry creates an empty registry. destroy is called with the engine
// handle of every removed joint.
func NewJointRegistry(destroy func(box2d.B2JointInterface)) *JointRegistry {
	return &JointRegistry{
		next:       1,
		joints:     map[JointID]*Joint{},
		dependents: map[JointID][]JointID{},
		destroy:    destroy,
	}
}

// Add stores j under the next id and returns it.
func (r *JointRegistry) Add(j *Joint) JointID {
	if r == nil || j == nil {
		return 0
	}
	id := r.next
	r.next++
	j.ID = id
	r.joints[id] = j
	if j.Kind == JointGear {
		for _, child := range j.children {
			r.dependents[child] = append(r.dependents[child], id)
		}
	}
	return id
}

func (r *JointRegistry) Get(id JointID) *Joint {
	if r == nil {
		return nil
	}
	return r.joints[id]
}

// Lookup returns the joint only if it has the given kind.
func (r *JointRegistry) Lookup(id JointID, kind JointKind) *Joint {
	j := r.Get(id)
	if j == nil || j.Kind != kind {
		return nil
	}
	return j
}

// IDOf finds the id of an engine joint handle, or 0.
func (r *JointRegistry) IDOf(handle box2d.B2JointInterface) JointID {
	if r == nil || handle == nil {
		return 0
	}
	for id, j := range r.joints {
		if j.handle == handle {
			return id
		}
	}
	return 0
}

// Dependents returns the gear joints currently driven by id.
func (r *JointRegistry) Dependents(id JointID) []JointID {
	if r == nil {
		return nil
	}
	return slices.Clone(r.dependents[id])
}

// Remove destroys the joint and, first, every gear joint depending on it.
// It returns the ids removed, in destruction order.
func (r *JointRegistry) Remove(id JointID) []JointID {
	if r == nil {
		return nil
	}
	var removed []JointID
	r.remove(id, &removed)
	return removed
}

func (r *JointRegistry) remove(id JointID, removed *[]JointID) {
	j, ok := r.joints[id]
	if !ok {
		return
	}

	if j.Kind.gearChild() {
		deps := slices.Clone(r.dependents[id])
		slices.Sort(deps)
		for _, dep := range deps {
			r.remove(dep, removed)
		}
		delete(r.dependents, id)
	}

	if j.Kind == JointGear {
		for _, child := range j.children {
			r.dependents[child] = slices.DeleteFunc(r.dependents[child], func(d JointID) bool { return d == id })
			if len(r.dependents[child]) == 0 {
				delete(r.dependents, child)
			}
		}
	}

	if r.destroy != nil && j.handle != nil {
		r.destroy(j.handle)
	}
	delete(r.joints, id)
	*removed = append(*removed, id)
}

// ForBody lists, in ascending order, the joints attached to body.
func (r *JointRegistry) ForBody(body *box2d.B2Body) []JointID {
	if r == nil || body == nil {
		return nil
	}
	var ids []JointID
	for id, j := range r.joints {
		if j.touches(body) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// IDs lists every registered joint in ascending order.
func (r *JointRegistry) IDs() []JointID {
	if r == nil {
		return nil
	}
	ids := make([]JointID, 0, len(r.joints))
	for id := range r.joints {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (r *JointRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.joints)
}
