package materialize

import "path/filepath"

// Ledger is an ordered record of the paths created during a single run. Paths
// are kept in creation order and each path is recorded once.
type Ledger struct {
	paths []string
	index map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]struct{})}
}

// Add appends the cleaned path to the ledger. Returns false if the path is
// already recorded.
func (ledger *Ledger) Add(path string) bool {
	path = filepath.Clean(path)
	if ledger.Contains(path) {
		return false
	}
	if ledger.index == nil {
		ledger.index = make(map[string]struct{})
	}
	ledger.index[path] = struct{}{}
	ledger.paths = append(ledger.paths, path)
	return true
}

// Contains returns true if the path is recorded.
func (ledger *Ledger) Contains(path string) bool {
	_, found := ledger.index[filepath.Clean(path)]
	return found
}

// Paths returns a copy of the recorded paths in creation order.
func (ledger *Ledger) Paths() []string {
	return append([]string(nil), ledger.paths...)
}

// Len returns the number of recorded paths.
func (ledger *Ledger) Len() int {
	return len(ledger.paths)
}

// Reset clears the ledger. It is called once the recorded paths are rolled back
// or the run is committed.
func (ledger *Ledger) Reset() {
	ledger.paths = nil
	ledger.index = make(map[string]struct{})
}
