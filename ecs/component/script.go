package component

import "github.com/d5/tengo/v2"

// Script runs Path's update(engine, vars) once per tick. Vars persists
// between ticks and receives the ids of joints the script creates.
type Script struct {
	Path string
	Vars *tengo.Map
}

var ScriptComponent = NewComponent[Script]()
