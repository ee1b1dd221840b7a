package app

import (
	"github.com/stocklane/product-service/internal/platform/envutil"
)

type Config struct {
	ListenAddr string
	LogMode    string
	// DBDriver selects the store backend: "postgres" or "sqlite".
	DBDriver   string
	SQLitePath string
}

func LoadConfig() Config {
	return Config{
		ListenAddr: envutil.String("GRPC_ADDR", ":9090"),
		LogMode:    envutil.String("LOG_MODE", "development"),
		DBDriver:   envutil.String("DB_DRIVER", "postgres"),
		SQLitePath: envutil.String("SQLITE_PATH", "products.db"),
	}
}
