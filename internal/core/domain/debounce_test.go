package domain

import (
	"testing"
	"time"
)

func TestDebouncer_Accept(t *testing.T) {
	window := 200 * time.Millisecond
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("first submission accepted", func(t *testing.T) {
		d := NewDebouncer(window)
		if !d.Accept("A1", base) {
			t.Fatal("expected first submission to be accepted")
		}
	})

	t.Run("duplicate inside window dropped", func(t *testing.T) {
		d := NewDebouncer(window)
		d.Accept("A1", base)
		if d.Accept("A1", base.Add(50*time.Millisecond)) {
			t.Fatal("expected duplicate inside window to be dropped")
		}
	})

	t.Run("duplicate after window accepted", func(t *testing.T) {
		d := NewDebouncer(window)
		d.Accept("A1", base)
		if !d.Accept("A1", base.Add(250*time.Millisecond)) {
			t.Fatal("expected submission after window to be accepted")
		}
	})

	t.Run("different sku always accepted", func(t *testing.T) {
		d := NewDebouncer(window)
		d.Accept("A1", base)
		if !d.Accept("B2", base.Add(10*time.Millisecond)) {
			t.Fatal("expected different sku to be accepted")
		}
	})

	t.Run("drop extends the window from the latest attempt", func(t *testing.T) {
		d := NewDebouncer(window)
		d.Accept("A1", base)

		// dropped at +150ms, so the window now runs to +350ms
		if d.Accept("A1", base.Add(150*time.Millisecond)) {
			t.Fatal("expected drop at +150ms")
		}
		if d.Accept("A1", base.Add(300*time.Millisecond)) {
			t.Fatal("expected drop at +300ms, window was extended")
		}
		if !d.Accept("A1", base.Add(600*time.Millisecond)) {
			t.Fatal("expected accept once the extended window elapsed")
		}
	})
}
