// Package receipt renders committed sales as printer command streams and
// plain-text documents. Rendering is a pure function of the sale snapshot
// and the shop identity, so any persisted sale can be re-rendered for
// reprint or audit.
package receipt

import "strings"

// Shop is the identity block printed at the top of every receipt.
type Shop struct {
	Name           string
	AddressLines   []string
	Phone          string
	CurrencyPrefix string
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
