package model

import "fmt"

// Weight pairs an axis label with its requested share of the total.
type Weight struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Table is an ordered proportion table over a single axis. Order matters: the
// apportionment engine breaks rounding ties by table iteration order, so a
// Table is a slice rather than a map. Values are expected to sum to roughly
// 1.0 but are used as supplied - the engine never renormalises them.
type Table []Weight

// NewTable builds a table from alternating label/value pairs supplied as
// Weight entries, preserving the given order.
func NewTable(weights ...Weight) Table {
	return Table(weights)
}

// Labels returns the table labels in iteration order.
func (t Table) Labels() []string {
	var ret []string
	for _, w := range t {
		ret = append(ret, w.Label)
	}
	return ret
}

// Value returns the weight for the supplied label, 0 when absent.
func (t Table) Value(label string) float64 {
	for _, w := range t {
		if w.Label == label {
			return w.Value
		}
	}
	return 0
}

// Sum returns the total of all weights.
func (t Table) Sum() float64 {
	var ret float64
	for _, w := range t {
		ret += w.Value
	}
	return ret
}

// Validate checks the table against the supplied request total. An empty
// table is only valid when nothing is requested; negative weights and
// duplicate labels are always invalid.
func (t Table) Validate(total int) error {
	if len(t) == 0 && total > 0 {
		return fmt.Errorf("table cannot be empty when total is %d", total)
	}
	seen := make(map[string]bool, len(t))
	for _, w := range t {
		if w.Label == "" {
			return fmt.Errorf("table label cannot be empty")
		}
		if w.Value < 0 {
			return fmt.Errorf("table weight for %q cannot be negative: %v", w.Label, w.Value)
		}
		if seen[w.Label] {
			return fmt.Errorf("duplicate table label: %q", w.Label)
		}
		seen[w.Label] = true
	}
	return nil
}
