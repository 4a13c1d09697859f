package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string // dev | prod

	StoresDir  string // directory of <store>_products.json files
	OutputFile string // local normalized dump

	StoreBackend string // memory | mysql | supabase
	MySQLDSN     string // required when STORE_BACKEND=mysql
	SupabaseURL  string // required when STORE_BACKEND=supabase
	SupabaseKey  string

	// Optional: run MySQL migrations at startup (dev convenience)
	RunMigrations bool
}

func Load() Config {
	// .env.local wins over .env, matching how credentials have always
	// been kept next to the importer.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	return Config{
		Env:           getenv("ENV", "dev"),
		StoresDir:     getenv("STORES_DIR", "stores_products"),
		OutputFile:    getenv("OUTPUT_FILE", "normalized_outputs/all_products_normalized.json"),
		StoreBackend:  getenv("STORE_BACKEND", "memory"),
		MySQLDSN:      getenv("DB_DSN", ""),
		SupabaseURL:   getenv("SUPABASE_URL", ""),
		SupabaseKey:   getenv("SUPABASE_KEY", ""),
		RunMigrations: getenv("RUN_MIGRATIONS", "false") == "true",
	}
}

func getenv(key string, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
