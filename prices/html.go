package prices

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromHTML pulls the first parsable price text out of a scraped HTML
// fragment, scanning leaf elements in document order. It returns the raw
// text of the matching element, suitable for Parse, or the empty string
// when the fragment holds no price.
func FromHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var out string
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Children().Length() > 0 {
			return true
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		if _, found := Parse(text); found {
			out = text
			return false
		}
		return true
	})
	return out
}
