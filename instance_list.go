// instance_list.go - Ordered Instance storage with a cached draw-order permutation

package gm8run

import "sort"

// InstanceList stores instances in insertion order and publishes a
// lazily-rebuilt permutation sorted by descending depth (spec §3, §4.C).
// The permutation is not re-sorted mid-frame even if depths change or
// entries are removed during a custom-draw callback (spec §5); callers
// iterating via IterByDrawing must tolerate stale indices.
type InstanceList struct {
	entries []Instance
	byID    map[InstanceID]int

	order      []int
	orderDirty bool
	nextID     InstanceID
}

// NewInstanceList returns an empty list.
func NewInstanceList() *InstanceList {
	return &InstanceList{
		byID:       make(map[InstanceID]int),
		orderDirty: true,
	}
}

// Add appends an instance, assigning it a fresh ID if it doesn't already
// have one, and marks the cached order stale.
func (l *InstanceList) Add(inst Instance) InstanceID {
	if inst.ID == 0 {
		l.nextID++
		inst.ID = l.nextID
	} else if inst.ID >= l.nextID {
		l.nextID = inst.ID + 1
	}
	l.byID[inst.ID] = len(l.entries)
	l.entries = append(l.entries, inst)
	l.orderDirty = true
	return inst.ID
}

// Remove deletes the instance with the given ID, if present. Removal is
// visible to future membership iteration immediately, but the cached
// draw order is only marked dirty, not rebuilt (spec §5).
func (l *InstanceList) Remove(id InstanceID) {
	idx, ok := l.byID[id]
	if !ok {
		return
	}
	last := len(l.entries) - 1
	l.entries[idx] = l.entries[last]
	l.byID[l.entries[idx].ID] = idx
	l.entries = l.entries[:last]
	delete(l.byID, id)
	l.orderDirty = true
}

// Get returns the instance at the given list position, or false if idx is
// out of range. Positions shift on Remove, so this is only meaningful
// within a single pass over a stable snapshot.
func (l *InstanceList) Get(idx int) (*Instance, bool) {
	if idx < 0 || idx >= len(l.entries) {
		return nil, false
	}
	return &l.entries[idx], true
}

// GetByID returns the instance with the given ID, or false if absent.
func (l *InstanceList) GetByID(id InstanceID) (*Instance, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	return &l.entries[idx], true
}

// Len returns the number of instances currently in the list.
func (l *InstanceList) Len() int {
	return len(l.entries)
}

// MarkDirty forces the cached draw order to be rebuilt on the next
// DrawSort call. Must be invoked whenever an element's depth changes.
func (l *InstanceList) MarkDirty() {
	l.orderDirty = true
}

// DrawSort rebuilds the cached descending-depth permutation if it is
// stale. The sort is stable: equal depths preserve insertion order.
func (l *InstanceList) DrawSort() {
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

// InstanceDrawIter walks the cached draw-order permutation, skipping
// indices that have since fallen out of range (spec §5: defensive
// skipping of removed elements under mid-frame mutation).
type InstanceDrawIter struct {
	order []int
	pos   int
}

// IterByDrawing returns an iterator over the cached draw order. Call
// DrawSort first to ensure the cache reflects the current membership.
func (l *InstanceList) IterByDrawing() *InstanceDrawIter {
	return &InstanceDrawIter{order: l.order}
}

// Next returns the next valid index into list, or (0, false) when
// exhausted. list must be the same InstanceList the iterator was created
// from (or one that has not shrunk the entries this iterator still
// expects to skip past defensively).
func (it *InstanceDrawIter) Next(list *InstanceList) (int, bool) {
	for it.pos < len(it.order) {
		idx := it.order[it.pos]
		it.pos++
		if idx >= 0 && idx < len(list.entries) {
			return idx, true
		}
	}
	return 0, false
}
