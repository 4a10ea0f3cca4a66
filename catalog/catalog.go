package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shadeline/go-shadeline/shadematcher"
)

// Product is a single scraped storefront record, as stored in the
// all_products JSON dump.
type Product struct {
	URL              string               `json:"url,omitempty"`
	Slug             string               `json:"slug"`
	Title            string               `json:"title,omitempty"`
	Price            string               `json:"price,omitempty"`
	PriceFrom        string               `json:"price_from,omitempty"`
	Rating           float64              `json:"rating,omitempty"`
	ReviewCount      int                  `json:"review_count,omitempty"`
	Tagline          string               `json:"tagline,omitempty"`
	MainDescription  string               `json:"main_description,omitempty"`
	KeyIngredients   string               `json:"key_ingredients,omitempty"`
	HowToUse         string               `json:"how_to_use,omitempty"`
	Note             string               `json:"note,omitempty"`
	SafetyDirections string               `json:"safety_directions,omitempty"`
	Sizes            []string             `json:"sizes,omitempty"`
	Images           []string             `json:"images,omitempty"`
	LocalImages      []string             `json:"local_images,omitempty"`
	Categories       []string             `json:"categories,omitempty"`
	Shades           []shadematcher.Shade `json:"shades,omitempty"`
	YoutubeVideo     string               `json:"youtube_video,omitempty"`
	ScrapedAt        string               `json:"scraped_at,omitempty"`
}

// Probe shapes the product for category matching.
func (p *Product) Probe() shadematcher.CategoryProbe {
	return shadematcher.CategoryProbe{
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.MainDescription,
		Categories:  p.Categories,
	}
}

// TitleFromSlug recovers a display title from a product slug for records
// scraped without one, converting kebab-case to Title Case after dropping
// the export prefix.
func TitleFromSlug(slug string) string {
	slug = strings.TrimPrefix(slug, "all-products_")

	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// LoadProductsReader decodes a product store from r, filling empty titles
// from slugs.
func LoadProductsReader(r io.Reader) ([]Product, error) {
	var products []Product
	err := json.NewDecoder(r).Decode(&products)
	if err != nil {
		return nil, fmt.Errorf("error decoding product store: %w", err)
	}

	for i := range products {
		if strings.TrimSpace(products[i].Title) == "" {
			products[i].Title = TitleFromSlug(products[i].Slug)
		}
	}
	return products, nil
}

// LoadProducts reads and decodes the product store at the given path.
func LoadProducts(path string) ([]Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadProductsReader(file)
}

// LoadDetailedProduct merges the products_detailed record for a slug over
// the base record. Fields present in the detailed file take precedence,
// anything absent keeps the base value.
func LoadDetailedProduct(dir, slug string, base Product) (Product, error) {
	data, err := os.ReadFile(filepath.Join(dir, slug+".json"))
	if err != nil {
		return base, err
	}

	merged := base
	err = json.Unmarshal(data, &merged)
	if err != nil {
		return base, fmt.Errorf("error decoding detailed product %s: %w", slug, err)
	}
	return merged, nil
}
