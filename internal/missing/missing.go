// Package missing tracks bibliography fields that could not be resolved
// during a conversion run.
package missing

// Count is one reported label with its occurrence count.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Tracker counts missing-field occurrences for a single conversion run.
// Labels are reported in first-insertion order. A nil Tracker is valid and
// records nothing, so callers that don't care about reporting can pass nil.
type Tracker struct {
	counts map[string]int
	order  []string
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Record increments the count for label.
func (t *Tracker) Record(label string) {
	if t == nil {
		return
	}
	if _, seen := t.counts[label]; !seen {
		t.order = append(t.order, label)
	}
	t.counts[label]++
}

// HasMissing reports whether anything has been recorded.
func (t *Tracker) HasMissing() bool {
	return t != nil && len(t.order) > 0
}

// Report returns the recorded labels and counts in first-insertion order.
func (t *Tracker) Report() []Count {
	if t == nil {
		return nil
	}
	report := make([]Count, len(t.order))
	for i, label := range t.order {
		report[i] = Count{Label: label, Count: t.counts[label]}
	}
	return report
}
