package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shadeline/go-shadeline/shadematcher"
)

// Manifest is the pre-generated image index, grouping local asset paths by
// product folder and by shade folder. It is built once at scrape time and
// treated as read-only here.
type Manifest struct {
	Products  map[string][]string `json:"products"`
	Shades    map[string][]string `json:"shades"`
	Generated string              `json:"generated,omitempty"`
}

// LoadManifest reads and decodes an image manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	err = json.Unmarshal(data, &manifest)
	if err != nil {
		return nil, fmt.Errorf("error decoding image manifest: %w", err)
	}
	return &manifest, nil
}

// ProductImages returns the local image paths for a product slug, trying
// the bare slug and the prefixed export folder name.
func (m *Manifest) ProductImages(slug string) []string {
	for _, folder := range []string{slug, "all-products_" + slug} {
		images := m.Products[folder]
		if len(images) > 0 {
			return images
		}
	}
	return nil
}

// ResolveShades attaches local shade imagery from the manifest, dropping
// any shade without a matching folder.
func (m *Manifest) ResolveShades(shades []shadematcher.Shade, maxImagesPerShade int) []shadematcher.Shade {
	return shadematcher.ResolveShadeImages(shades, shadematcher.FolderIndex(m.Shades), maxImagesPerShade)
}

// Apply rewrites each product's imagery to the local paths declared in the
// manifest, where available. Products without local imagery are left
// untouched, and their shade lists are preserved as scraped.
func (m *Manifest) Apply(products []Product, maxImagesPerShade int) {
	for i := range products {
		local := m.ProductImages(products[i].Slug)
		if len(local) == 0 {
			continue
		}
		products[i].Images = local
		products[i].LocalImages = local
		if len(products[i].Shades) > 0 {
			products[i].Shades = m.ResolveShades(products[i].Shades, maxImagesPerShade)
		}
	}
}
