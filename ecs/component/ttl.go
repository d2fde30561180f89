package component

// TTL counts down update ticks; at zero the entity gets a DestroyRequest.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
