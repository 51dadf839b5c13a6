package sim

import (
	"container/list"
	"sync"
)

// FIFONode represents a node in the arrival queue
type FIFONode struct {
	page PageID
}

// FIFOReplacer implements FIFO (First-In, First-Out) replacement policy.
// The arrival queue holds every resident page exactly once, oldest arrival
// at the front. Unlike LRU, a repeat access never reorders the queue.
type FIFOReplacer struct {
	queue *list.List
	index map[PageID]*list.Element
	mutex sync.Mutex
}

// NewFIFOReplacer creates a new FIFO replacer
func NewFIFOReplacer() *FIFOReplacer {
	return &FIFOReplacer{
		queue: list.New(),
		index: make(map[PageID]*list.Element),
		mutex: sync.Mutex{},
	}
}

// Record appends a newly loaded page to the back of the arrival queue
// Recording a page that is already tracked is a no-op: arrival order is
// fixed at load time and must not change on later accesses.
func (f *FIFOReplacer) Record(page PageID) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if _, exists := f.index[page]; exists {
		return
	}

	node := &FIFONode{page: page}
	elem := f.queue.PushBack(node)
	f.index[page] = elem
}

// Victim selects the longest-resident page for eviction
// Returns the page ID and true if a victim was found, or 0 and false if the
// queue is empty.
func (f *FIFOReplacer) Victim() (PageID, bool) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	oldest := f.queue.Front()
	if oldest == nil {
		return 0, false
	}

	node := oldest.Value.(*FIFONode)
	page := node.page

	// Remove from both queue and map
	f.queue.Remove(oldest)
	delete(f.index, page)

	return page, true
}

// Size returns the number of resident pages tracked
func (f *FIFOReplacer) Size() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.queue.Len()
}

// Pages returns the tracked pages in arrival order, oldest first
func (f *FIFOReplacer) Pages() []PageID {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	pages := make([]PageID, 0, f.queue.Len())
	for elem := f.queue.Front(); elem != nil; elem = elem.Next() {
		pages = append(pages, elem.Value.(*FIFONode).page)
	}
	return pages
}
