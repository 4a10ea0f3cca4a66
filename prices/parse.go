package prices

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

type Currency string

const (
	CurrencyEUR     Currency = "EUR"
	CurrencyCAD     Currency = "CAD"
	CurrencyUnknown Currency = "UNKNOWN"
)

// Price is the structured result of parsing a raw price string.
type Price struct {
	// The numeric amount, always finite and non-negative
	Amount float64 `json:"amount"`

	// The currency classified from the input text
	Currency Currency `json:"currency"`

	// Whether the input carried a leading "from" qualifier
	FromPrefix bool `json:"from_prefix,omitempty"`
}

var (
	eurPattern = regexp.MustCompile(`(?i)€|\beur\b`)
	cadPattern = regexp.MustCompile(`(?i)\bca\$|\bcad\b|\$`)

	// First integer or decimal token, with either . or , as separator
	numberPattern = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?`)
)

// Parse extracts a structured price from free-form text such as
// "from €21.00", "CA$17.90", or "12,10". Only the first currency signal
// and the first numeric token are considered, so mixed garbage around the
// price is tolerated. The boolean is false when no numeric token exists;
// a missing price is a routine outcome, not an error.
func Parse(raw string) (Price, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Price{}, false
	}

	var price Price
	if len(raw) > 5 && strings.EqualFold(raw[:5], "from ") {
		price.FromPrefix = true
		raw = strings.TrimSpace(raw[5:])
	}

	price.Currency = CurrencyUnknown
	if eurPattern.MatchString(raw) {
		price.Currency = CurrencyEUR
	} else if cadPattern.MatchString(raw) {
		price.Currency = CurrencyCAD
	}

	token := numberPattern.FindString(raw)
	if token == "" {
		return Price{}, false
	}

	amount, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Price{}, false
	}

	price.Amount = amount
	return price, true
}

// FormatCAD renders an amount in the storefront display style, with the
// symbol attached directly to two fixed decimals and no thousands
// separator.
func FormatCAD(amount float64) string {
	return "CA$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// ConvertAndFormat parses a raw price string, converts EUR amounts with
// the given CAD-per-EUR rate, and renders the result for display. CAD and
// unclassified amounts are assumed to already be in the display currency
// and pass through unconverted. The empty string signals that there is no
// price to display.
func ConvertAndFormat(raw string, cadPerEur float64) string {
	price, found := Parse(raw)
	if !found {
		return ""
	}

	amount := price.Amount
	if price.Currency == CurrencyEUR {
		amount *= cadPerEur
	}

	formatted := FormatCAD(amount)
	if price.FromPrefix {
		return "from " + formatted
	}
	return formatted
}
