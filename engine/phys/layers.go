package phys

import "github.com/google/uuid"

// Layer is a bitmask selecting which obstacle groups a query collides with.
type Layer uint32

const (
	LayerStatic Layer = 1 << iota
	LayerDynamic
	LayerDebris
)

const MaskAll = Layer(0xFFFFFFFF)

func (l Layer) Matches(mask Layer) bool {
	return l&mask != 0
}

// Exclusion is the self-exclusion filter: collider ids in the set are
// invisible to world queries, so a probed object never collides with itself.
type Exclusion map[uuid.UUID]struct{}

func ExcludeIDs(ids ...uuid.UUID) Exclusion {
	set := make(Exclusion, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (e Exclusion) Contains(id uuid.UUID) bool {
	if e == nil {
		return false
	}
	_, found := e[id]
	return found
}
