package main

import (
	"flag"
	"io"
	"os"

	"github.com/scizorman/go-ndjson"
	log "github.com/sirupsen/logrus"

	_ "github.com/joho/godotenv/autoload"

	"github.com/shadeline/go-shadeline/catalog"
	"github.com/shadeline/go-shadeline/prices"
)

// exportElement is one NDJSON record of the catalog export: the product
// record with its prices converted to display currency and its shade list
// reduced to locally photographed shades.
type exportElement struct {
	catalog.Product
	DisplayPrice     string `json:"display_price,omitempty"`
	DisplayPriceFrom string `json:"display_price_from,omitempty"`
}

func run() error {
	dataDirOpt := flag.String("data", "scraped_data", "Directory holding the scraped JSON exports")
	manifestOpt := flag.String("manifest", "", "Path of the image manifest (optional)")
	categoryOpt := flag.String("category", "", "Only export products in this category")
	slugOpt := flag.String("slug", "", "Export a single product with its detailed record merged")
	maxImagesOpt := flag.Int("max-images", 0, "Images kept per shade (0 for all)")
	outputOpt := flag.String("output", "", "Output file (default stdout)")
	liveRateOpt := flag.Bool("live-rate", false, "Fetch the EUR to CAD rate instead of using CAD_PER_EUR")
	flag.Parse()

	rate := prices.CadPerEur()
	if *liveRateOpt {
		liveRate, err := prices.GetExchangeRate("EUR")
		if err != nil {
			log.Warnf("Live rate unavailable, using %.2f: %v", rate, err)
		} else if liveRate > 0 {
			rate = liveRate
		}
	}
	log.Infof("Converting EUR prices at %.4f CAD", rate)

	loader := catalog.Loader{
		DataDir:           *dataDirOpt,
		ManifestPath:      *manifestOpt,
		MaxImagesPerShade: *maxImagesOpt,
		LogCallback:       log.Debugf,
	}

	var products []catalog.Product
	if *slugOpt != "" {
		product, found, err := loader.LoadBySlug(*slugOpt)
		if err != nil {
			return err
		}
		if !found {
			log.Warnf("No product with slug %q", *slugOpt)
			return nil
		}
		products = []catalog.Product{product}
	} else {
		var err error
		products, err = loader.Load()
		if err != nil {
			return err
		}
		products = catalog.FilterByCategory(products, *categoryOpt, catalog.DefaultCategoryKeywords)
	}
	log.Infof("Exporting %d products", len(products))

	flat := make([]exportElement, 0, len(products))
	for _, product := range products {
		flat = append(flat, exportElement{
			Product:          product,
			DisplayPrice:     prices.ConvertAndFormat(product.Price, rate),
			DisplayPriceFrom: prices.ConvertAndFormat(product.PriceFrom, rate),
		})
	}

	output, err := ndjson.Marshal(flat)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	if *outputOpt != "" {
		file, err := os.Create(*outputOpt)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	_, err = writer.Write(output)
	return err
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalogtool: %v", err)
	}
}
