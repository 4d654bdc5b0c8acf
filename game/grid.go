package game

import "math"

// --- Spatial Hash Grid for Slice Hit-Testing ---

// CellKey identifies one square cell of the play area.
type CellKey struct {
	X int
	Y int
}

// SpatialGrid buckets live entities by the cell containing their centre.
//
// The grid records the key each entity was bucketed under, so Remove and Update never
// depend on the entity's current position: an entity that moved since its last insert
// is still found in the bucket it actually sits in. Unlike a clamped fixed-size array,
// cells are unbounded so entities launched from below the view are indexed too.
type SpatialGrid struct {
	CellSize float64

	cells map[CellKey][]*Entity
	keys  map[*Entity]CellKey
}

// NewSpatialGrid creates an empty grid. A non-positive cellSize uses DefaultCellSize.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &SpatialGrid{
		CellSize: cellSize,
		cells:    make(map[CellKey][]*Entity),
		keys:     make(map[*Entity]CellKey),
	}
}

// Key returns the cell containing (x, y).
func (sg *SpatialGrid) Key(x, y float64) CellKey {
	return CellKey{
		X: int(math.Floor(x / sg.CellSize)),
		Y: int(math.Floor(y / sg.CellSize)),
	}
}

// Insert adds an entity to the cell matching its current position.
// Inserting an entity that is already indexed is a no-op.
func (sg *SpatialGrid) Insert(e *Entity) {
	if e == nil {
		return
	}
	if _, ok := sg.keys[e]; ok {
		return
	}
	key := sg.Key(e.X, e.Y)
	sg.cells[key] = append(sg.cells[key], e)
	sg.keys[e] = key
}

// Remove deletes an entity from the bucket it was recorded under.
// Returns false if the entity was not indexed.
func (sg *SpatialGrid) Remove(e *Entity) bool {
	key, ok := sg.keys[e]
	if !ok {
		return false
	}
	delete(sg.keys, e)

	bucket := sg.cells[key]
	for i, other := range bucket {
		if other != e {
			continue
		}
		// Shift rather than swap so bucket order stays insertion order.
		copy(bucket[i:], bucket[i+1:])
		bucket[len(bucket)-1] = nil
		bucket = bucket[:len(bucket)-1]
		break
	}
	if len(bucket) == 0 {
		delete(sg.cells, key)
	} else {
		sg.cells[key] = bucket
	}
	return true
}

// Update re-buckets an entity whose position crossed a cell boundary.
// Returns true if the entity changed cells. Unindexed entities are inserted.
func (sg *SpatialGrid) Update(e *Entity) bool {
	old, ok := sg.keys[e]
	if !ok {
		sg.Insert(e)
		return true
	}
	if sg.Key(e.X, e.Y) == old {
		return false
	}
	sg.Remove(e)
	sg.Insert(e)
	return true
}

// NeighborhoodKeys returns the cell containing (x, y) followed by its four
// axis-adjacent cells in the order +x, -x, +y, -y. Diagonal cells are not included.
func (sg *SpatialGrid) NeighborhoodKeys(x, y float64) [5]CellKey {
	c := sg.Key(x, y)
	return [5]CellKey{
		c,
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// QueryNeighborhood returns the entities in the cell containing (x, y) and its
// four axis-adjacent cells. Querying empty cells yields an empty result.
func (sg *SpatialGrid) QueryNeighborhood(x, y float64) []*Entity {
	var nearby []*Entity
	for _, key := range sg.NeighborhoodKeys(x, y) {
		nearby = append(nearby, sg.cells[key]...)
	}
	return nearby
}

// Bucket returns a copy of the entities in one cell, safe to iterate while the
// grid is being modified.
func (sg *SpatialGrid) Bucket(key CellKey) []*Entity {
	bucket := sg.cells[key]
	if len(bucket) == 0 {
		return nil
	}
	snapshot := make([]*Entity, len(bucket))
	copy(snapshot, bucket)
	return snapshot
}

// KeyOf returns the cell an entity is currently recorded under.
func (sg *SpatialGrid) KeyOf(e *Entity) (CellKey, bool) {
	key, ok := sg.keys[e]
	return key, ok
}

// Contains reports whether the entity is indexed.
func (sg *SpatialGrid) Contains(e *Entity) bool {
	_, ok := sg.keys[e]
	return ok
}

// Len returns the number of indexed entities.
func (sg *SpatialGrid) Len() int {
	return len(sg.keys)
}

// CellCount returns the number of non-empty cells.
func (sg *SpatialGrid) CellCount() int {
	return len(sg.cells)
}

// Clear removes all entities from the grid.
func (sg *SpatialGrid) Clear() {
	sg.cells = make(map[CellKey][]*Entity)
	sg.keys = make(map[*Entity]CellKey)
}
