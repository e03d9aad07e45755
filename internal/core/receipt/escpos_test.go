package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/tokogrand/pos-register/internal/core/domain"
)

var testShop = Shop{
	Name:           "TOKO GRAND",
	AddressLines:   []string{"Jl. Moh Saleh Bantilan", "Tolitoli, Sulawesi Tengah"},
	Phone:          "085222224333",
	CurrencyPrefix: "Rp",
}

func testSale(t *testing.T) *domain.Sale {
	t.Helper()
	at := time.Date(2025, 6, 1, 14, 30, 45, 0, time.UTC)
	return domain.NewSale(at, []domain.CartLine{
		{SKU: "P1", Name: "Apple", UnitPrice: domain.NewAmountFromValue(10000), Quantity: 2},
		{SKU: "P2", Name: "Choco Wafer Jumbo", UnitPrice: domain.NewAmountFromValue(25000), Quantity: 1},
	})
}

func TestRenderESCPOS(t *testing.T) {
	out := RenderESCPOS(testSale(t), testShop)

	t.Run("starts with printer reset", func(t *testing.T) {
		if !bytes.HasPrefix(out, []byte{0x1b, '@'}) {
			t.Fatalf("expected ESC @ preamble, got % x", out[:2])
		}
	})

	t.Run("ends with paper cut", func(t *testing.T) {
		if !bytes.HasSuffix(out, []byte{0x1d, 'V', 0x00}) {
			t.Fatalf("expected GS V 0 suffix, got % x", out[len(out)-3:])
		}
	})

	t.Run("shop name is centered and bold", func(t *testing.T) {
		want := append([]byte{0x1b, 0x61, 0x01}, []byte{0x1b, 0x45, 0x01}...)
		want = append(want, []byte("TOKO GRAND")...)
		want = append(want, 0x1b, 0x45, 0x00)
		if !bytes.Contains(out, want) {
			t.Fatal("expected centered bold shop name sequence")
		}
	})

	t.Run("transaction metadata is left-aligned", func(t *testing.T) {
		want := append([]byte{0x1b, 0x61, 0x00}, []byte("Time: 2025-06-01 14:30:45\nID: 20250601143045\n")...)
		if !bytes.Contains(out, want) {
			t.Fatal("expected left-aligned time and transaction id block")
		}
	})

	t.Run("item line uses fixed columns with separators and no decimals", func(t *testing.T) {
		want := []byte("Apple       2x10,000     20,000\n")
		if !bytes.Contains(out, want) {
			t.Fatalf("expected item line %q in:\n%s", want, out)
		}
	})

	t.Run("long names continue on an indented line", func(t *testing.T) {
		if !bytes.Contains(out, []byte("Choco Wafe")) {
			t.Fatal("expected truncated first segment of long name")
		}
		if !bytes.Contains(out, []byte("\n  r Jumbo\n")) {
			t.Fatal("expected indented continuation of long name")
		}
	})

	t.Run("total is right-aligned and bold", func(t *testing.T) {
		want := append([]byte{0x1b, 0x61, 0x02}, 0x1b, 0x45, 0x01)
		want = append(want, []byte("TOTAL: Rp45,000\n")...)
		want = append(want, 0x1b, 0x45, 0x00)
		if !bytes.Contains(out, want) {
			t.Fatal("expected right-aligned bold total")
		}
	})

	t.Run("thank-you block before the cut", func(t *testing.T) {
		if !bytes.Contains(out, []byte("THANK YOU!\nPlease Come Again\n")) {
			t.Fatal("expected thank-you block")
		}
	})

	t.Run("deterministic for the same sale", func(t *testing.T) {
		if !bytes.Equal(out, RenderESCPOS(testSale(t), testShop)) {
			t.Fatal("expected identical output for identical input")
		}
	})
}
