// Package currency parses free-form currency input.
//
// Amounts arrive as whatever the user typed or the categorization service
// extracted: "$1,234.56", "USD 12.50", "12". Parsing never fails — an
// unparseable string yields zero, and callers treat zero as "no valid
// amount entered" in their validation.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Parse extracts a decimal amount from free-form currency text.
// It returns zero for anything that does not contain a usable number.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	// Accounting notation: (12.34) is negative
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	// Drop tokens that are ISO 4217 codes, like "EUR 12.50"
	var kept []string
	for _, field := range strings.Fields(s) {
		if _, err := currency.ParseISO(field); err == nil {
			continue
		}
		kept = append(kept, field)
	}
	s = strings.Join(kept, "")

	// Strip currency symbols and any other decoration
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == ',':
			// thousands separator
		}
	}

	amount, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}

	if negative {
		amount = amount.Neg()
	}

	return amount
}

// Symbol returns the symbol for an ISO 4217 currency code. If the code is
// not valid, it is returned unchanged so that it can still be displayed.
func Symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	return fmt.Sprint(currency.Symbol(unit))
}
