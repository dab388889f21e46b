// Package items holds the id-assignment and removal rules shared by every
// persisted collection (shot list, schedule, group shots). All functions are
// pure: inputs are never mutated, callers persist the returned value.
package items

// Identifiable is satisfied by any collection entry carrying an integer id.
type Identifiable interface {
	ItemID() int
}

// NextID assigns the id for a new entry: max(existing ids, default 0) + 1.
// The first entry of an empty collection gets id 1. Deletion never renumbers
// survivors; the next id depends only on the entries that remain.
func NextID[T Identifiable](list []T) int {
	maxID := 0
	for _, item := range list {
		if item.ItemID() > maxID {
			maxID = item.ItemID()
		}
	}
	return maxID + 1
}

// Remove returns a copy of the list without the entry matching id. Removing
// an id that is not present returns an equal copy (no-op).
func Remove[T Identifiable](list []T, id int) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if item.ItemID() != id {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the entry matching id.
func Find[T Identifiable](list []T, id int) (T, bool) {
	for _, item := range list {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
