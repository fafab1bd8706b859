package config

import (
	"fmt"
	"os"
	"strings"
)

// Backend selects which store implementation serves the data layer.
// Swapping backends is a deployment concern only; nothing outside this
// package and the wiring in routes changes with it.
const (
	BackendMemory = "memory"
	BackendDB     = "db"
	BackendREST   = "rest"
)

type Config struct {
	Mode    string // log/gin mode: "dev" or "prod"
	Port    string
	Backend string

	// DB backend
	DBDriver    string // "postgres" or "sqlite"
	DatabaseDSN string
	SQLitePath  string

	// REST backend: one base URL per partition. V1 serves revenue, V2
	// serves invoices and customers, V3 serves the invoices_table read
	// model. Each partition can be repointed independently.
	MockAPIV1 string
	MockAPIV2 string
	MockAPIV3 string

	CORSOrigin string
}

func Load() (*Config, error) {
	cfg := &Config{
		Mode:        getenv("APP_MODE", "dev"),
		Port:        getenv("PORT", "8080"),
		Backend:     strings.ToLower(getenv("BACKEND", BackendMemory)),
		DBDriver:    strings.ToLower(getenv("DB_DRIVER", "postgres")),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		SQLitePath:  getenv("SQLITE_PATH", "dashboard.db"),
		MockAPIV1:   os.Getenv("MOCK_API_V1"),
		MockAPIV2:   os.Getenv("MOCK_API_V2"),
		MockAPIV3:   os.Getenv("MOCK_API_V3"),
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:3000"),
	}

	switch cfg.Backend {
	case BackendMemory:
	case BackendDB:
		if cfg.DBDriver == "postgres" && cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("BACKEND=db with DB_DRIVER=postgres requires DATABASE_DSN")
		}
	case BackendREST:
		if cfg.MockAPIV1 == "" || cfg.MockAPIV2 == "" || cfg.MockAPIV3 == "" {
			return nil, fmt.Errorf("BACKEND=rest requires MOCK_API_V1, MOCK_API_V2 and MOCK_API_V3")
		}
	default:
		return nil, fmt.Errorf("unknown BACKEND %q", cfg.Backend)
	}

	return cfg, nil
}

func getenv(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}
