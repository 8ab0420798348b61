package repository

import (
	"github.com/deppfellow/classifieds/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Listing *ListingRepository
}

// NewRepositories constructs the repository container. When seeding is
// enabled in config, the listing store starts with the fixture listings.
func NewRepositories(s *server.Server) *Repositories {
	listings := NewListingRepository()

	if s.Config.Primary.Seed {
		listings.Seed(Fixtures())
		s.Logger.Info().
			Int("count", listings.Count()).
			Msg("seeded listing store")
	}

	return &Repositories{
		Listing: listings,
	}
}
