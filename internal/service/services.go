package service

import (
	"github.com/deppfellow/classifieds/internal/repository"
	"github.com/deppfellow/classifieds/internal/server"
)

type Services struct {
	Listing *ListingService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Listing: NewListingService(s, repos.Listing),
	}, nil
}
