package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cubeindex/cubecatalog/internal/fetch"
	"github.com/cubeindex/cubecatalog/internal/logging"
)

func main() {
	var (
		outFile = flag.String("out", "", "output file (defaults to <stores-dir>/<store>_products.json)")
		dir     = flag.String("stores-dir", "stores_products", "directory for downloaded catalogs")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: fetcher [flags] <store>\n\nstores: %s\n\nflags:\n",
			strings.Join(fetch.StoreCodes(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	storeCode := flag.Arg(0)

	logger := logging.NewStdLogger("fetcher ")

	baseURL, err := fetch.StoreURL(storeCode)
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := fetch.NewClient(baseURL)
	client.Logger = logger

	products, err := client.FetchAll(ctx)
	if err != nil {
		logger.Printf("fetch stopped: %v", err)
		if len(products) == 0 {
			os.Exit(1)
		}
		logger.Printf("keeping %d products collected before the failure", len(products))
	}

	path := *outFile
	if path == "" {
		path = filepath.Join(*dir, storeCode+"_products.json")
	}

	if err := writeProducts(path, products); err != nil {
		logger.Printf("writing %s: %v", path, err)
		os.Exit(1)
	}

	logger.Printf("collected %d products from %s, saved to %s", len(products), storeCode, path)
}

func writeProducts(path string, products []json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o644)
}
