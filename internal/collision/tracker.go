package collision

import (
	"github.com/meshpack/meshpack/errs"
)

// Tracker tracks attribute names and detects hash collisions while a
// container is being built. Attribute IDs are 32-bit hashes of producer
// names; the container stores only the IDs, so two distinct names mapping
// to the same ID cannot be disambiguated later and must be rejected up
// front.
type Tracker struct {
	names    map[uint32]string // ID → name mapping for collision detection
	nameList []string          // Ordered list, matching attribute table order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:    make(map[uint32]string),
		nameList: make([]string, 0),
	}
}

// TrackID tracks a raw attribute ID supplied without a name.
// Returns errs.ErrDuplicateAttributeID if the ID was already used; without
// names there is no way to tell a duplicate from a collision.
func (t *Tracker) TrackID(id uint32) error {
	if _, exists := t.names[id]; exists {
		return errs.ErrDuplicateAttributeID
	}

	t.names[id] = ""

	return nil
}

// TrackName tracks an attribute name with its derived ID.
//
// Returns error if:
//   - The name is empty (ErrInvalidAttributeName)
//   - The same name is added twice (ErrDuplicateAttributeID)
//   - A different name hashes to the same ID (ErrAttributeIDCollision)
func (t *Tracker) TrackName(name string, id uint32) error {
	if name == "" {
		return errs.ErrInvalidAttributeName
	}

	if existing, exists := t.names[id]; exists {
		if existing == name {
			return errs.ErrDuplicateAttributeID
		}

		return errs.ErrAttributeIDCollision
	}

	t.names[id] = name
	t.nameList = append(t.nameList, name)

	return nil
}

// Names returns the tracked attribute names in the order they were added.
func (t *Tracker) Names() []string {
	return t.nameList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.nameList)
}

// Reset clears all tracked state, preserving map capacity so the tracker
// can be reused for the next container.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.nameList = t.nameList[:0]
}
