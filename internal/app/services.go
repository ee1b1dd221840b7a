package app

import (
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/services"
)

type Services struct {
	Product *services.ProductService
}

func wireServices(r Repos, log *logger.Logger) Services {
	log.Info("Wiring services...")
	return Services{
		Product: services.NewProductService(r.Product, log),
	}
}
