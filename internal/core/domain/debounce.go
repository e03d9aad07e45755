package domain

import "time"

// Debouncer collapses rapid duplicate scanner submissions into a single
// logical add. A resubmission of the last SKU before the deadline is
// dropped, and the deadline is extended from the latest attempt. A
// different SKU, or the same SKU after the window elapsed, is accepted
// and re-arms the window.
type Debouncer struct {
	window   time.Duration
	lastSKU  string
	deadline time.Time
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

func (d *Debouncer) Accept(sku string, now time.Time) bool {
	duplicate := sku == d.lastSKU && now.Before(d.deadline)
	d.lastSKU = sku
	d.deadline = now.Add(d.window)
	return !duplicate
}
