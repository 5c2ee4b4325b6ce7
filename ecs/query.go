package ecs

// intersectIDs returns the slot ids present in every set, iterating the
// smallest one.
func intersectIDs(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]entityID, 0, smallest.Len())
	for _, id := range smallest.IDs() {
		ok := true
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}
