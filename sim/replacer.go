package sim

// PageID identifies a page in a reference string.
type PageID int

// Replacer interface for page replacement policies
// The simulator asks it for a victim when every frame is occupied.
type Replacer interface {
	// Record notes that a page has been loaded into a frame
	Record(page PageID)

	// Victim selects and removes the page to evict
	// Returns the page ID and true if a victim was found, false otherwise
	Victim() (PageID, bool)

	// Size returns the number of resident pages tracked
	Size() int
}

// NewReplacer creates a replacer based on the specified policy name.
// Only FIFO is supported; the policy seam exists so the simulator does
// not hard-code eviction order.
func NewReplacer(policy string) (Replacer, error) {
	switch policy {
	case "fifo", "":
		return NewFIFOReplacer(), nil
	default:
		return nil, ErrUnknownPolicy("NewReplacer", policy)
	}
}
