package physics

import "github.com/ByteArena/box2d"

const (
	velocityIterations = 8
	positionIterations = 10
)

// createJoint links a typed joint definition into the engine world.
//
// The engine's own CreateJoint only accepts the base definition and then fails
// to build any concrete joint from it, so the world/body linking it performs is
// done here against the typed definition instead.
func createJoint(world *box2d.B2World, def box2d.B2JointDefInterface) box2d.B2JointInterface {
	if world == nil || def == nil || world.IsLocked() {
		return nil
	}
	bodyA, bodyB := def.GetBodyA(), def.GetBodyB()
	if bodyA == nil || bodyB == nil {
		return nil
	}

	j := box2d.B2JointCreate(def)
	if j == nil {
		return nil
	}

	j.SetPrev(nil)
	j.SetNext(world.M_jointList)
	if world.M_jointList != nil {
		world.M_jointList.SetPrev(j)
	}
	world.M_jointList = j
	world.M_jointCount++

	linkEdge(j.GetEdgeA(), j, j.GetBodyA(), j.GetBodyB())
	linkEdge(j.GetEdgeB(), j, j.GetBodyB(), j.GetBodyA())

	if !def.IsCollideConnected() {
		for edge := bodyB.GetContactList(); edge != nil; edge = edge.Next {
			if edge.Other == bodyA {
				edge.Contact.FlagForFiltering()
			}
		}
	}
	return j
}

func linkEdge(edge *box2d.B2JointEdge, j box2d.B2JointInterface, owner, other *box2d.B2Body) {
	edge.Joint = j
	edge.Other = other
	edge.Prev = nil
	edge.Next = owner.M_jointList
	if owner.M_jointList != nil {
		owner.M_jointList.Prev = edge
	}
	owner.M_jointList = edge
}

// jointProbe is the subset of concrete joint methods shared by every kind.
type jointProbe interface {
	GetAnchorA() box2d.B2Vec2
	GetAnchorB() box2d.B2Vec2
	GetReactionForce(invDt float64) box2d.B2Vec2
	GetReactionTorque(invDt float64) float64
}

func bodyTypeToEngine(t BodyType) uint8 {
	switch t {
	case BodyStatic:
		return box2d.B2BodyType.B2_staticBody
	case BodyKinematic:
		return box2d.B2BodyType.B2_kinematicBody
	default:
		return box2d.B2BodyType.B2_dynamicBody
	}
}

func bodyTypeFromEngine(t uint8) BodyType {
	switch t {
	case box2d.B2BodyType.B2_staticBody:
		return BodyStatic
	case box2d.B2BodyType.B2_kinematicBody:
		return BodyKinematic
	default:
		return BodyDynamic
	}
}
