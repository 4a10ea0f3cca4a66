package prices

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Rate applied to EUR amounts when no override is configured.
const DefaultCADPerEUR = 1.45

// EnvCADPerEUR is the environment variable consulted by CadPerEur.
const EnvCADPerEUR = "CAD_PER_EUR"

// CadPerEur returns the CAD-per-EUR conversion rate from the environment,
// falling back to DefaultCADPerEUR when the variable is unset, malformed,
// or non-positive.
func CadPerEur() float64 {
	rate, err := strconv.ParseFloat(os.Getenv(EnvCADPerEUR), 64)
	if err == nil && rate > 0 {
		return rate
	}
	return DefaultCADPerEUR
}

// GetExchangeRate fetches the live conversion rate from the given base
// currency to CAD.
func GetExchangeRate(currency string) (float64, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient = cleanhttp.DefaultClient()

	resp, err := client.StandardClient().Get("https://api.exchangeratesapi.io/latest?base=" + currency)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var reply struct {
		Rates struct {
			CAD float64 `json:"CAD"`
		} `json:"rates"`
	}
	err = json.NewDecoder(resp.Body).Decode(&reply)
	if err != nil {
		return 0, err
	}

	return reply.Rates.CAD, nil
}
