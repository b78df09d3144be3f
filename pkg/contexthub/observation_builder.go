package contexthub

import "sync"

// ObservationBuilder accumulates tool observations across one turn's loop
// iterations. Mutated only by the loop task; the lock exists because slim
// snapshots are persisted from background tasks.
type ObservationBuilder struct {
	mu    sync.Mutex
	items []Observation
}

// NewObservationBuilder creates an empty accumulator.
func NewObservationBuilder() *ObservationBuilder {
	return &ObservationBuilder{}
}

// Add appends one tool observation.
func (b *ObservationBuilder) Add(o Observation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, o)
}

// Build returns a snapshot section of the accumulated observations.
func (b *ObservationBuilder) Build() ObservationsSection {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]Observation, len(b.items))
	copy(items, b.items)
	return ObservationsSection{Items: items}
}

// Last returns the most recent observation, or nil.
func (b *ObservationBuilder) Last() *Observation {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) == 0 {
		return nil
	}
	last := b.items[len(b.items)-1]
	return &last
}

// Len reports the number of accumulated observations.
func (b *ObservationBuilder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
