package handler

import (
	"github.com/deppfellow/classifieds/internal/server"
	"github.com/deppfellow/classifieds/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Listing *ListingHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s, services.Listing),
		OpenAPI: NewOpenAPIHandler(s),
		Listing: NewListingHandler(s, services.Listing),
	}
}
