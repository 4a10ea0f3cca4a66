package catalog

import (
	"github.com/shadeline/go-shadeline/shadematcher"
)

// FilterByCategory returns the products belonging to the target category.
// An empty target or the catch-all "All" returns the input unchanged.
// Tagged products match on their tags; untagged products fall back to the
// keyword table.
func FilterByCategory(products []Product, target string, keywords shadematcher.KeywordTable) []Product {
	if target == "" || target == "All" {
		return products
	}

	var out []Product
	for _, product := range products {
		if shadematcher.MatchCategory(product.Probe(), target, keywords) {
			out = append(out, product)
		}
	}
	return out
}

// DefaultCategoryKeywords is the keyword table used by the storefront for
// products scraped without explicit category tags. Callers may pass their
// own table instead; nothing in this package reads it implicitly.
var DefaultCategoryKeywords = shadematcher.KeywordTable{
	"Complexion":              {"complexion", "foundation", "concealer", "powder", "bb cream"},
	"Cuticle Care":            {"cuticle", "nail", "mava"},
	"Eye Colour":              {"eye shadow", "eyelid", "eye colour"},
	"Eyebrows & Lashes":       {"lash", "brow", "eyebrow", "mascara", "double-lash", "double-brow"},
	"Foot Care":               {"foot", "pedi"},
	"Gift Sets":               {"kit", "set", "gift", "coffret", "collection"},
	"Hair & Body":             {"hair", "body", "tanoa"},
	"Hand care":               {"hand", "hand cream"},
	"Lip balm":                {"lip balm", "lip-balm"},
	"Lip Colour":              {"lipstick", "lip", "lip colour", "lip-colour", "mavalip"},
	"Makeup Removers":         {"remover", "makeup remover", "make-up remover"},
	"Manicure Essentials":     {"manicure", "nail", "emery", "buffer", "scissors", "clippers", "stick"},
	"Nail Colour":             {"nail polish", "nail-polish", "shades", "colors", "colours", "pop wave", "neo nudes"},
	"Nail Polish Collections": {"collection", "pop wave", "neo nudes", "terra topia", "yummy", "whisper"},
	"Nail Polish Removers":    {"remover", "nail polish remover", "thinner"},
	"Nail Repair":             {"scientifique", "nailactan", "mava-flex", "mavaderma", "nail shield", "ridge filler"},
	"Skincare":                {"skin", "serum", "cream", "mask", "chrono", "anti-age", "multi-moisturizing", "vitalizing"},
}
