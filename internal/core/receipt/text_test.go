package receipt

import (
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	out := string(RenderText(testSale(t), testShop))

	t.Run("contains no control codes", func(t *testing.T) {
		if strings.ContainsRune(out, 0x1b) || strings.ContainsRune(out, 0x1d) {
			t.Fatal("plain-text rendering must not carry printer control codes")
		}
	})

	t.Run("bordered header with shop name", func(t *testing.T) {
		lines := strings.Split(out, "\n")
		if lines[0] != strings.Repeat("=", 56) {
			t.Fatalf("expected top border, got %q", lines[0])
		}
		if !strings.Contains(lines[1], "TOKO GRAND SALES RECEIPT") {
			t.Fatalf("expected shop title, got %q", lines[1])
		}
	})

	t.Run("transaction metadata", func(t *testing.T) {
		if !strings.Contains(out, "Time: 2025-06-01 14:30:45\n") {
			t.Fatal("expected timestamp line")
		}
		if !strings.Contains(out, "Transaction ID: 20250601143045\n") {
			t.Fatal("expected transaction id line")
		}
	})

	t.Run("numbered fixed-width item rows", func(t *testing.T) {
		want := "  1. P1         | Apple       | 2   |     10,000 |   20,000\n"
		if !strings.Contains(out, want) {
			t.Fatalf("expected row %q in:\n%s", want, out)
		}
		if !strings.Contains(out, "  2. P2         | Choco Wafer | 1   |") {
			t.Fatalf("expected second row with truncated name in:\n%s", out)
		}
	})

	t.Run("total and footer", func(t *testing.T) {
		if !strings.Contains(out, "TOTAL PAYMENT: Rp45,000\n") {
			t.Fatal("expected total line")
		}
		if !strings.Contains(out, "THANK YOU!") || !strings.Contains(out, "Please Come Again") {
			t.Fatal("expected thank-you footer")
		}
	})

	t.Run("same logical content as the device stream", func(t *testing.T) {
		sale := testSale(t)
		if sale.RecomputeTotal() != sale.Total {
			t.Fatal("snapshot total mismatch")
		}
	})
}
