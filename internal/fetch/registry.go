package fetch

import (
	"fmt"
	"sort"
)

// Stores maps a short store code to its public products.json endpoint.
// Add more stores here as you discover them.
var Stores = map[string]string{
	"scs":          "https://speedcubeshop.com/products.json",
	"cubicle":      "https://thecubicle.com/products.json",
	"cubelelo":     "https://cubelelo.com/products.json",
	"dailypuzzles": "https://dailypuzzles.com.au/products.json",
	"gancube":      "https://gancube.com/products.json",
	"kewbz":        "https://kewbz.co.uk/products.json",
	"sc-za":        "https://www.speedcubes.co.za/products.json",
}

func StoreURL(code string) (string, error) {
	url, ok := Stores[code]
	if !ok {
		return "", fmt.Errorf("unknown store %q (known: %v)", code, StoreCodes())
	}
	return url, nil
}

func StoreCodes() []string {
	codes := make([]string, 0, len(Stores))
	for c := range Stores {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
