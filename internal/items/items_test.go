package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	ID   int
	Name string
}

func (e entry) ItemID() int { return e.ID }

func TestNextID_EmptyCollectionStartsAtOne(t *testing.T) {
	assert.Equal(t, 1, NextID([]entry{}))
	assert.Equal(t, 1, NextID[entry](nil))
}

func TestNextID_StrictlyIncreasing(t *testing.T) {
	var list []entry
	for want := 1; want <= 5; want++ {
		id := NextID(list)
		assert.Equal(t, want, id)
		list = append(list, entry{ID: id})
	}
}

// Deleting an entry below the maximum does not free its id.
func TestNextID_LowerDeletedIDNotReused(t *testing.T) {
	list := []entry{{ID: 1}, {ID: 2}}

	list = Remove(list, 1)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)

	assert.Equal(t, 3, NextID(list))
}

func TestRemove_MissingIDIsNoOp(t *testing.T) {
	list := []entry{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	once := Remove(list, 1)
	twice := Remove(once, 1)
	assert.Equal(t, once, twice)
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	list := []entry{{ID: 1}, {ID: 2}, {ID: 3}}

	_ = Remove(list, 2)
	assert.Len(t, list, 3)
	assert.Equal(t, 2, list[1].ID)
}

func TestFind(t *testing.T) {
	list := []entry{{ID: 1, Name: "a"}, {ID: 7, Name: "b"}}

	got, ok := Find(list, 7)
	assert.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = Find(list, 3)
	assert.False(t, ok)
}
