package physics

// CollisionTest reports whether a and b are currently touching.
func CollisionTest(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	return indexOf(a.contacts, b) >= 0
}

// AreColliding also counts contacts that began and ended within the last step.
func AreColliding(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	return indexOf(a.contacts, b) >= 0 || indexOf(a.started, b) >= 0
}

// HasCollisionStarted reports a contact that began during the last step.
func HasCollisionStarted(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	return indexOf(a.started, b) >= 0
}

// HasCollisionStopped reports a contact that ended during the last step.
func HasCollisionStopped(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	return indexOf(a.ended, b) >= 0
}

// StartedContacts returns the bodies whose contact with b began during the
// last step.
func (b *Body) StartedContacts() []*Body {
	if b == nil {
		return nil
	}
	return append([]*Body(nil), b.started...)
}

func (b *Body) EndedContacts() []*Body {
	if b == nil {
		return nil
	}
	return append([]*Body(nil), b.ended...)
}
