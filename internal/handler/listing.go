package handler

import (
	"strconv"

	"github.com/deppfellow/classifieds/internal/errs"
	"github.com/deppfellow/classifieds/internal/model"
	"github.com/deppfellow/classifieds/internal/server"
	"github.com/deppfellow/classifieds/internal/service"
	"github.com/labstack/echo/v4"
)

// ListingHandler serves the /items endpoints.
type ListingHandler struct {
	Handler
	listingService *service.ListingService
}

func NewListingHandler(s *server.Server, listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler:        NewHandler(s),
		listingService: listingService,
	}
}

func (h *ListingHandler) CreateListing(c echo.Context, req *CreateListingRequest) (*model.Listing, error) {
	return h.listingService.CreateListing(c.Request().Context(), req.Fields)
}

func (h *ListingHandler) ListListings(c echo.Context, req *ListListingsRequest) (*service.ListResult, error) {
	return h.listingService.ListListings(c.Request().Context(), service.PageQuery{
		Page:     req.Page,
		Limit:    req.Limit,
		Category: model.Category(req.AdTypeFilter),
	}), nil
}

func (h *ListingHandler) SearchListings(c echo.Context, req *SearchListingsRequest) (*service.SearchResult, error) {
	return h.listingService.SearchListings(c.Request().Context(), req.Name, service.PageQuery{
		Page:     req.Page,
		Limit:    req.Limit,
		Category: model.Category(req.AdTypeFilter),
	}), nil
}

func (h *ListingHandler) GetListing(c echo.Context, req *ListingIDRequest) (*model.Listing, error) {
	id, err := parseListingID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.listingService.GetListing(c.Request().Context(), id)
}

func (h *ListingHandler) UpdateListing(c echo.Context, req *UpdateListingRequest) (*model.Listing, error) {
	id, err := parseListingID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.listingService.UpdateListing(c.Request().Context(), id, req.Fields)
}

func (h *ListingHandler) DeleteListing(c echo.Context, req *ListingIDRequest) error {
	id, err := parseListingID(req.ID)
	if err != nil {
		return err
	}
	return h.listingService.DeleteListing(c.Request().Context(), id)
}

// parseListingID treats an id that is not an integer as an id that does
// not exist.
func parseListingID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewNotFoundError("Item not found", false, nil)
	}
	return id, nil
}
