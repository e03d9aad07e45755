package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tokogrand/pos-register/internal/core/domain"
)

// 58mm thermal paper fits 32 columns in the default font.
const printerWidth = 32

const itemNameWidth = 10

var (
	cmdInit        = []byte{0x1b, '@'}
	cmdAlignLeft   = []byte{0x1b, 0x61, 0x00}
	cmdAlignCenter = []byte{0x1b, 0x61, 0x01}
	cmdAlignRight  = []byte{0x1b, 0x61, 0x02}
	cmdBoldOn      = []byte{0x1b, 0x45, 0x01}
	cmdBoldOff     = []byte{0x1b, 0x45, 0x00}
	cmdCutPaper    = []byte{0x1d, 'V', 0x00}
)

// RenderESCPOS builds the raw command stream for an ESC/POS thermal
// printer: reset, centered bold header, left-aligned transaction
// metadata, the itemized block, a right-aligned bold total, the
// thank-you block and a paper cut.
func RenderESCPOS(sale *domain.Sale, shop Shop) []byte {
	var buf bytes.Buffer
	rule := strings.Repeat("-", printerWidth)

	buf.Write(cmdInit)

	buf.Write(cmdAlignCenter)
	buf.Write(cmdBoldOn)
	buf.WriteString(shop.Name)
	buf.Write(cmdBoldOff)
	buf.WriteByte('\n')
	for _, line := range shop.AddressLines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "Phone: %s\n\n", shop.Phone)

	buf.Write(cmdAlignLeft)
	fmt.Fprintf(&buf, "Time: %s\n", sale.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "ID: %s\n", sale.TransactionID)
	buf.WriteString(rule + "\n")
	buf.WriteString("Item        Q x Price Subtotal\n")
	buf.WriteString(rule + "\n")

	for _, line := range sale.Lines {
		fmt.Fprintf(&buf, "%-*s %2dx%5s %10s\n",
			itemNameWidth, truncate(line.Name, itemNameWidth),
			line.Quantity,
			line.UnitPrice.Format(),
			line.Subtotal().Format(),
		)
		if len(line.Name) > itemNameWidth {
			fmt.Fprintf(&buf, "  %s\n", line.Name[itemNameWidth:])
		}
	}

	buf.WriteString(rule + "\n")
	buf.Write(cmdAlignRight)
	buf.Write(cmdBoldOn)
	fmt.Fprintf(&buf, "TOTAL: %s%s\n", shop.CurrencyPrefix, sale.Total.Format())
	buf.Write(cmdBoldOff)

	buf.Write(cmdAlignCenter)
	buf.WriteString("\nTHANK YOU!\nPlease Come Again\n")
	buf.WriteString(strings.Repeat("=", printerWidth) + "\n\n\n")
	buf.Write(cmdCutPaper)

	return buf.Bytes()
}
