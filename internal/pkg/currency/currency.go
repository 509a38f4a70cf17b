// internal/pkg/currency/currency.go
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Suffix is the fixed display suffix for all amounts
const Suffix = " FCFA"

// Format renders an integer FCFA amount with French digit grouping and the
// currency suffix, e.g. 25000 -> "25 000 FCFA". FCFA has no subunit, so
// amounts are whole numbers.
func Format(amount int64) string {
	// printers buffer internally, so build one per call
	p := message.NewPrinter(language.French)
	return p.Sprint(number.Decimal(amount)) + Suffix
}
