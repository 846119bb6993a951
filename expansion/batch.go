package expansion

// Batch is the ordered set of units produced by one expansion.
type Batch struct {
	description string
	units       []*Unit
}

// Description returns the description the batch was expanded with.
func (b *Batch) Description() string { return b.description }

// Len returns the number of units in the batch.
func (b *Batch) Len() int { return len(b.units) }

// Units returns the batch's units in expansion order.
func (b *Batch) Units() []*Unit {
	return append([]*Unit(nil), b.units...)
}

// UnitsByName returns the batch's units keyed by generated name. Names are
// unique within a batch, so the map covers every unit.
func (b *Batch) UnitsByName() map[string]*Unit {
	out := make(map[string]*Unit, len(b.units))
	for _, u := range b.units {
		out[u.name] = u
	}
	return out
}
