// tile_list.go - Ordered Tile storage with a cached draw-order permutation

package gm8run

import "sort"

// TileList mirrors InstanceList's cached-permutation design (spec §4.C)
// for tiles. Tiles have no externally visible identity, so removal is by
// list position rather than by ID.
type TileList struct {
	entries []Tile

	order      []int
	orderDirty bool
}

// NewTileList returns an empty list.
func NewTileList() *TileList {
	return &TileList{orderDirty: true}
}

// Add appends a tile and marks the cached order stale.
func (l *TileList) Add(t Tile) int {
	l.entries = append(l.entries, t)
	l.orderDirty = true
	return len(l.entries) - 1
}

// RemoveAt deletes the tile at the given position, if in range.
func (l *TileList) RemoveAt(idx int) {
	if idx < 0 || idx >= len(l.entries) {
		return
	}
	last := len(l.entries) - 1
	l.entries[idx] = l.entries[last]
	l.entries = l.entries[:last]
	l.orderDirty = true
}

// Get returns the tile at position idx, or false if out of range.
func (l *TileList) Get(idx int) (*Tile, bool) {
	if idx < 0 || idx >= len(l.entries) {
		return nil, false
	}
	return &l.entries[idx], true
}

// Len returns the number of tiles currently in the list.
func (l *TileList) Len() int {
	return len(l.entries)
}

// MarkDirty forces the cached draw order to be rebuilt on the next
// DrawSort call.
func (l *TileList) MarkDirty() {
	l.orderDirty = true
}

// DrawSort rebuilds the cached descending-depth permutation if stale,
// preserving insertion order among equal depths.
func (l *TileList) DrawSort() {
	if !l.orderDirty {
		return
	}
	order := make([]int, len(l.entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return l.entries[order[a]].Depth.Greater(l.entries[order[b]].Depth)
	})
	l.order = order
	l.orderDirty = false
}

// TileDrawIter walks the cached draw-order permutation defensively.
type TileDrawIter struct {
	order []int
	pos   int
}

// IterByDrawing returns an iterator over the cached draw order.
func (l *TileList) IterByDrawing() *TileDrawIter {
	return &TileDrawIter{order: l.order}
}

// Next returns the next valid index into list, or (0, false) when
// exhausted, skipping indices that fell out of range since the cache was
// built.
func (it *TileDrawIter) Next(list *TileList) (int, bool) {
	for it.pos < len(it.order) {
		idx := it.order[it.pos]
		it.pos++
		if idx >= 0 && idx < len(list.entries) {
			return idx, true
		}
	}
	return 0, false
}
