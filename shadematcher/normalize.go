package shadematcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decompose accented characters and drop the combining marks, so that
// "GENÈVE" and "GENEVE" compare equal.
var marksStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var punctReplacer = strings.NewReplacer(
	".", "",
	"*", "",
	"-", " ",
)

// Normalize produces the canonical comparable form of a free-text label:
// uppercase, accents stripped, periods and asterisks removed, hyphens
// converted to spaces, and whitespace collapsed. The result of Normalize
// is stable under a second application.
func Normalize(str string) string {
	str = strings.ToUpper(str)
	stripped, _, err := transform.String(marksStripper, str)
	if err == nil {
		str = stripped
	}
	str = punctReplacer.Replace(str)
	return strings.Join(strings.Fields(str), " ")
}

// Compare strings after both are Normalize-d.
func Equals(str1, str2 string) bool {
	return Normalize(str1) == Normalize(str2)
}

// Check if str1 contains str2 after both are Normalize-d.
func Contains(str1, str2 string) bool {
	return strings.Contains(Normalize(str1), Normalize(str2))
}
