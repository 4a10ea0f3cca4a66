package catalog

import (
	"os"
	"path/filepath"
)

type LogCallbackFunc func(format string, a ...interface{})

// Loader reads a scraped product store and its image manifest from a data
// directory, preferring the most recent export when more than one is
// present.
type Loader struct {
	// Directory holding the scraped JSON exports
	DataDir string

	// Path of the pre-generated image manifest, optional
	ManifestPath string

	// How many images to keep per shade, 0 for all
	MaxImagesPerShade int

	LogCallback LogCallbackFunc
}

func (l *Loader) printf(format string, a ...interface{}) {
	if l.LogCallback != nil {
		l.LogCallback("[catalog] "+format, a...)
	}
}

// Filenames probed under DataDir, newest export first.
var storeFilenames = []string{
	"all_products_new.json",
	"all_products.json",
}

// Load reads the product store, attaching local imagery from the manifest
// when one is configured.
func (l *Loader) Load() ([]Product, error) {
	path := ""
	for _, name := range storeFilenames {
		candidate := filepath.Join(l.DataDir, name)
		_, err := os.Stat(candidate)
		if err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, os.ErrNotExist
	}
	l.printf("loading products from %s", path)

	products, err := LoadProducts(path)
	if err != nil {
		return nil, err
	}
	l.printf("loaded %d products", len(products))

	if l.ManifestPath != "" {
		manifest, err := LoadManifest(l.ManifestPath)
		if err != nil {
			return nil, err
		}
		manifest.Apply(products, l.MaxImagesPerShade)
	}

	return products, nil
}

// LoadBySlug returns one product with its products_detailed record merged
// in, when that file exists.
func (l *Loader) LoadBySlug(slug string) (Product, bool, error) {
	products, err := l.Load()
	if err != nil {
		return Product{}, false, err
	}

	for _, product := range products {
		if product.Slug != slug {
			continue
		}
		detailed, err := LoadDetailedProduct(filepath.Join(l.DataDir, "products_detailed"), slug, product)
		if err != nil {
			// No detailed record is the common case
			return product, true, nil
		}
		l.printf("merged detailed record for %s", slug)

		// The detailed record carries scraped shade names, so local
		// imagery has to be resolved again after the merge
		if l.ManifestPath != "" {
			manifest, err := LoadManifest(l.ManifestPath)
			if err != nil {
				return Product{}, false, err
			}
			merged := []Product{detailed}
			manifest.Apply(merged, l.MaxImagesPerShade)
			detailed = merged[0]
		}
		return detailed, true, nil
	}
	return Product{}, false, nil
}
