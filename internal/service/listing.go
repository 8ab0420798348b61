package service

import (
	"context"
	"strings"

	"github.com/deppfellow/classifieds/internal/errs"
	"github.com/deppfellow/classifieds/internal/lib/pagination"
	"github.com/deppfellow/classifieds/internal/model"
	"github.com/deppfellow/classifieds/internal/repository"
	"github.com/deppfellow/classifieds/internal/server"
	"github.com/deppfellow/classifieds/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

// ListingService implements the listing operations on top of the store.
type ListingService struct {
	server *server.Server
	repo   *repository.ListingRepository
}

func NewListingService(s *server.Server, repo *repository.ListingRepository) *ListingService {
	return &ListingService{
		server: s,
		repo:   repo,
	}
}

// PageQuery is a page request with an optional category filter. Zero
// Page or Limit means "use the configured default".
type PageQuery struct {
	Page     int
	Limit    int
	Category model.Category
}

// ListResult is the response of ListListings.
//
// Total and TotalPages are computed over the whole store, not over the
// filtered set; existing clients page with these numbers.
type ListResult struct {
	Items      []*model.Listing `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// SearchResult is the response of SearchListings. Total counts the
// matches after the category filter.
type SearchResult struct {
	Items []*model.Listing `json:"items"`
	Total int              `json:"total"`
}

// CreateListing validates fields and stores a new listing.
func (s *ListingService) CreateListing(ctx context.Context, fields map[string]interface{}) (*model.Listing, error) {
	listing, err := model.NewListing(fields)
	if err != nil {
		return nil, validation.FromRuleError(err)
	}

	created := s.repo.Create(listing)

	zerolog.Ctx(ctx).Info().
		Int("listing_id", created.ID).
		Str("type", string(created.Type)).
		Msg("listing created")

	return created, nil
}

// ListListings returns one page of the listings, optionally restricted to
// one category.
func (s *ListingService) ListListings(ctx context.Context, q PageQuery) *ListResult {
	all := s.repo.List()
	page := s.params(q)

	filtered := filterByCategory(all, q.Category)

	return &ListResult{
		Items:      pagination.Slice(filtered, page),
		Total:      len(all),
		Page:       page.Page,
		TotalPages: pagination.TotalPages(len(all), page.Limit),
	}
}

// SearchListings returns one page of the listings whose name contains
// name, ignoring case.
func (s *ListingService) SearchListings(ctx context.Context, name string, q PageQuery) *SearchResult {
	needle := cases.Fold().String(name)

	var matched []*model.Listing
	for _, l := range s.repo.List() {
		if strings.Contains(cases.Fold().String(l.Name), needle) {
			matched = append(matched, l)
		}
	}

	filtered := filterByCategory(matched, q.Category)

	zerolog.Ctx(ctx).Debug().
		Str("name", name).
		Int("matches", len(filtered)).
		Msg("listing search")

	return &SearchResult{
		Items: pagination.Slice(filtered, s.params(q)),
		Total: len(filtered),
	}
}

// GetListing returns the listing with id.
func (s *ListingService) GetListing(ctx context.Context, id int) (*model.Listing, error) {
	listing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return listing, nil
}

// UpdateListing shallow-merges fields into the listing with id. The result
// is not re-validated.
func (s *ListingService) UpdateListing(ctx context.Context, id int, fields map[string]interface{}) (*model.Listing, error) {
	listing, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, notFound(err)
	}

	zerolog.Ctx(ctx).Info().
		Int("listing_id", id).
		Int("fields", len(fields)).
		Msg("listing updated")

	return listing, nil
}

// DeleteListing removes the listing with id.
func (s *ListingService) DeleteListing(ctx context.Context, id int) error {
	if err := s.repo.Delete(id); err != nil {
		return notFound(err)
	}

	zerolog.Ctx(ctx).Info().
		Int("listing_id", id).
		Msg("listing deleted")

	return nil
}

// Count returns the number of stored listings.
func (s *ListingService) Count() int {
	return s.repo.Count()
}

func (s *ListingService) params(q PageQuery) pagination.Params {
	cfg := s.server.Config.Pagination
	return pagination.New(q.Page, q.Limit, cfg.DefaultPage, cfg.DefaultLimit)
}

func filterByCategory(listings []*model.Listing, category model.Category) []*model.Listing {
	if category == "" {
		return listings
	}

	out := make([]*model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Type == category {
			out = append(out, l)
		}
	}
	return out
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return errs.NewNotFoundError("Item not found", false, nil)
	}
	return errors.Wrap(err, "listing store")
}
