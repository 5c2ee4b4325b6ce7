package component

// PlayerTag marks the entity driven by local input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
