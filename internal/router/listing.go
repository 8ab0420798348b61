package router

import (
	"net/http"

	"github.com/deppfellow/classifieds/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerListingRoutes(r *echo.Echo, h *handler.Handlers) {
	lh := h.Listing

	items := r.Group("/items")

	items.POST("", handler.Handle(lh.Handler, lh.CreateListing, http.StatusCreated, handler.Request[handler.CreateListingRequest]()))
	items.GET("", handler.Handle(lh.Handler, lh.ListListings, http.StatusOK, handler.Request[handler.ListListingsRequest]()))

	// Static segment, registered ahead of /:id for readability; echo
	// prefers static over param routes either way.
	items.GET("/search", handler.Handle(lh.Handler, lh.SearchListings, http.StatusOK, handler.Request[handler.SearchListingsRequest]()))

	items.GET("/:id", handler.Handle(lh.Handler, lh.GetListing, http.StatusOK, handler.Request[handler.ListingIDRequest]()))
	items.PUT("/:id", handler.Handle(lh.Handler, lh.UpdateListing, http.StatusOK, handler.Request[handler.UpdateListingRequest]()))
	items.DELETE("/:id", handler.HandleNoContent(lh.Handler, lh.DeleteListing, http.StatusNoContent, handler.Request[handler.ListingIDRequest]()))
}
