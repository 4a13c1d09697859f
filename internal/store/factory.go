package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type FactoryConfig struct {
	Backend     string // memory | mysql | supabase
	MySQLDSN    string
	SupabaseURL string
	SupabaseKey string
}

type FactoryResult struct {
	Store Store
	DB    *sql.DB // only set for mysql
}

func NewStore(ctx context.Context, cfg FactoryConfig) (FactoryResult, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = "memory"
	}

	switch backend {
	case "memory":
		return FactoryResult{Store: NewMemoryStore()}, nil

	case "mysql":
		if strings.TrimSpace(cfg.MySQLDSN) == "" {
			return FactoryResult{}, errors.New("DB_DSN is required when STORE_BACKEND=mysql")
		}

		db, err := openMySQL(cfg.MySQLDSN)
		if err != nil {
			return FactoryResult{}, err
		}

		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := db.PingContext(c); err != nil {
			_ = db.Close()
			return FactoryResult{}, err
		}

		return FactoryResult{Store: NewMySQLStore(db), DB: db}, nil

	case "supabase":
		s, err := NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Store: s}, nil

	default:
		return FactoryResult{}, errors.New("unknown STORE_BACKEND (use memory, mysql or supabase)")
	}
}

func openMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// A run is one short batch import; keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
