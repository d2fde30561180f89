package physics

import "github.com/ByteArena/box2d"

// contactListener keeps each body's current, started and ended contact lists in
// step with the engine's begin/end contact callbacks.
type contactListener struct{}

func (contactListener) BeginContact(contact box2d.B2ContactInterface) {
	a, b := contactBodies(contact)
	if a == nil || b == nil {
		return
	}
	a.beginContact(b)
	b.beginContact(a)
}

func (contactListener) EndContact(contact box2d.B2ContactInterface) {
	a, b := contactBodies(contact)
	if a == nil || b == nil {
		return
	}
	a.endContact(b)
	b.endContact(a)
}

func (contactListener) PreSolve(box2d.B2ContactInterface, box2d.B2Manifold) {}

func (contactListener) PostSolve(box2d.B2ContactInterface, *box2d.B2ContactImpulse) {}

func contactBodies(contact box2d.B2ContactInterface) (*Body, *Body) {
	if contact == nil {
		return nil, nil
	}
	return fixtureOwner(contact.GetFixtureA()), fixtureOwner(contact.GetFixtureB())
}

func fixtureOwner(f *box2d.B2Fixture) *Body {
	if f == nil {
		return nil
	}
	eb := f.GetBody()
	if eb == nil {
		return nil
	}
	owner, _ := eb.GetUserData().(*Body)
	return owner
}

func (b *Body) beginContact(other *Body) {
	b.contacts = append(b.contacts, other)
	if i := indexOf(b.ended, other); i >= 0 {
		b.ended = removeAt(b.ended, i)
		return
	}
	b.started = append(b.started, other)
}

func (b *Body) endContact(other *Body) {
	b.ended = append(b.ended, other)
	if i := indexOf(b.contacts, other); i >= 0 {
		b.contacts = removeAt(b.contacts, i)
	}
}

func (b *Body) resetStartedAndEnded() {
	b.started = b.started[:0]
	b.ended = b.ended[:0]
}

func (b *Body) clearContacts() {
	b.contacts = nil
	b.started = nil
	b.ended = nil
}

func indexOf(list []*Body, target *Body) int {
	for i, other := range list {
		if other == target {
			return i
		}
	}
	return -1
}

func removeAt(list []*Body, i int) []*Body {
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
