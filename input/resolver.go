package input

// Resolver turns device readings into per-axis values.
//
// When several sources on the same axis are active at once the first one in
// registration order wins; readings are never blended.
type Resolver struct {
	bindings *Bindings
}

func NewResolver(b *Bindings) *Resolver {
	if b == nil {
		b = NewBindings()
	}
	return &Resolver{bindings: b}
}

// SetBindings swaps the active binding table. A nil table is ignored.
func (r *Resolver) SetBindings(b *Bindings) {
	if r == nil || b == nil {
		return
	}
	r.bindings = b
}

func (r *Resolver) Bindings() *Bindings {
	if r == nil {
		return nil
	}
	return r.bindings
}

// Resolve returns the value of the first non-zero source bound to a, or 0.
func (r *Resolver) Resolve(s State, a Axis) float64 {
	if r == nil || r.bindings == nil || !a.Valid() {
		return 0
	}
	for _, src := range r.bindings.axes[a] {
		v := src.Value(s)
		if v != 0 && finite(v) {
			return v
		}
	}
	return 0
}

// ResolveAll resolves every axis against the same device state.
func (r *Resolver) ResolveAll(s State) Values {
	var out Values
	for a := Axis(0); a < axisCount; a++ {
		out[a] = r.Resolve(s, a)
	}
	return out
}
