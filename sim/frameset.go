package sim

// FrameSlot is one memory frame. The Occupied flag distinguishes an empty
// slot from any resident page, so every integer remains a valid page ID.
type FrameSlot struct {
	Page     PageID
	Occupied bool
}

// FrameSet holds the pages currently resident in memory. Slots are indexed
// 0..capacity-1 and a free slot is always filled lowest-index first, so the
// display order of a run is deterministic.
type FrameSet struct {
	slots []FrameSlot
	index map[PageID]int // resident page -> slot index
}

// NewFrameSet creates an empty frame set with the given capacity
func NewFrameSet(capacity int) (*FrameSet, error) {
	if capacity < 1 {
		return nil, ErrInvalidFrameCapacity("NewFrameSet", capacity)
	}

	return &FrameSet{
		slots: make([]FrameSlot, capacity),
		index: make(map[PageID]int),
	}, nil
}

// Capacity returns the number of slots
func (fs *FrameSet) Capacity() int {
	return len(fs.slots)
}

// Resident returns the number of occupied slots
func (fs *FrameSet) Resident() int {
	return len(fs.index)
}

// Full reports whether every slot is occupied
func (fs *FrameSet) Full() bool {
	return len(fs.index) == len(fs.slots)
}

// Contains reports whether the page is currently resident.
// Only current occupants count; evicted pages are forgotten.
func (fs *FrameSet) Contains(page PageID) bool {
	_, exists := fs.index[page]
	return exists
}

// Insert places the page into the lowest-index free slot and returns the
// slot index. Returns an error if the set is full or the page is already
// resident, both of which indicate a caller bug.
func (fs *FrameSet) Insert(page PageID) (int, error) {
	if _, exists := fs.index[page]; exists {
		return 0, NewSimError(ErrCodeInternal, "Insert",
			"page already resident", nil)
	}

	for i := range fs.slots {
		if !fs.slots[i].Occupied {
			fs.slots[i] = FrameSlot{Page: page, Occupied: true}
			fs.index[page] = i
			return i, nil
		}
	}

	return 0, NewSimError(ErrCodeInternal, "Insert",
		"no free slot available", nil)
}

// Evict removes the page from its slot and returns the freed slot index.
// Returns false if the page is not resident.
func (fs *FrameSet) Evict(page PageID) (int, bool) {
	slot, exists := fs.index[page]
	if !exists {
		return 0, false
	}

	fs.slots[slot] = FrameSlot{}
	delete(fs.index, page)
	return slot, true
}

// Snapshot returns a copy of the current slot contents.
// The copy is independent of later mutations of the frame set.
func (fs *FrameSet) Snapshot() []FrameSlot {
	snapshot := make([]FrameSlot, len(fs.slots))
	copy(snapshot, fs.slots)
	return snapshot
}

// ResidentPages returns the set of resident pages in slot order
func (fs *FrameSet) ResidentPages() []PageID {
	pages := make([]PageID, 0, len(fs.index))
	for _, slot := range fs.slots {
		if slot.Occupied {
			pages = append(pages, slot.Page)
		}
	}
	return pages
}
