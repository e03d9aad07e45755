package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tokogrand/pos-register/internal/core/domain"
)

const textWidth = 56

// RenderText builds the fixed-width plain-text rendering of a sale, the
// document written under the receipts directory on every commit.
func RenderText(sale *domain.Sale, shop Shop) []byte {
	var buf bytes.Buffer
	border := strings.Repeat("=", textWidth)
	rule := strings.Repeat("-", textWidth)

	buf.WriteString(border + "\n")
	buf.WriteString(center(shop.Name+" SALES RECEIPT", textWidth) + "\n")
	buf.WriteString(border + "\n")
	fmt.Fprintf(&buf, "Time: %s\n", sale.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Transaction ID: %s\n", sale.TransactionID)
	buf.WriteString(rule + "\n")
	buf.WriteString("No. SKU        | Name        | Qty | Unit Price | Subtotal\n")
	buf.WriteString(rule + "\n")

	for i, line := range sale.Lines {
		fmt.Fprintf(&buf, "%3d. %-10s | %-11s | %-3d | %10s | %8s\n",
			i+1,
			truncate(line.SKU, 10),
			truncate(line.Name, 11),
			line.Quantity,
			line.UnitPrice.Format(),
			line.Subtotal().Format(),
		)
	}

	buf.WriteString(rule + "\n")
	fmt.Fprintf(&buf, "TOTAL PAYMENT: %s%s\n", shop.CurrencyPrefix, sale.Total.Format())
	buf.WriteString(border + "\n")
	buf.WriteString(center("THANK YOU!", textWidth) + "\n")
	buf.WriteString(center("Please Come Again", textWidth) + "\n")
	buf.WriteString(border + "\n")

	return buf.Bytes()
}
