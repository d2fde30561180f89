package component

import "github.com/milk9111/physics2d/physics"

// PhysicsBody links an Object to its physics body. SpecPath names the body
// spec the config was loaded from, for hot reload. TypeOverride, when set,
// replaces the spec's body type.
type PhysicsBody struct {
	SpecPath     string
	TypeOverride physics.BodyType
	Config       physics.BodyConfig
	Body         *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
