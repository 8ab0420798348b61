package handler

import (
	"encoding/json"

	"github.com/deppfellow/classifieds/internal/errs"
	"github.com/deppfellow/classifieds/internal/model"
	"github.com/deppfellow/classifieds/internal/validation"
)

// CreateListingRequest is the body of POST /items: one flat JSON object.
type CreateListingRequest struct {
	Fields map[string]interface{}
}

func (r *CreateListingRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

// Validate applies the common and per-category required-field rules.
func (r *CreateListingRequest) Validate() error {
	if err := model.CheckFields(r.Fields); err != nil {
		return validation.FromRuleError(err)
	}
	return nil
}

// UpdateListingRequest is PUT /items/:id. Fields is merged as-is.
type UpdateListingRequest struct {
	ID     string `param:"id"`
	Fields map[string]interface{}
}

// UnmarshalJSON fills Fields only; ID comes from the path.
func (r *UpdateListingRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *UpdateListingRequest) Validate() error {
	return nil
}

// ListingIDRequest addresses one listing by its path id.
type ListingIDRequest struct {
	ID string `param:"id"`
}

func (r *ListingIDRequest) Validate() error {
	return nil
}

// ListListingsRequest holds the GET /items query. Zero page or limit means
// the configured default.
type ListListingsRequest struct {
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Limit        int    `query:"limit" validate:"omitempty,min=1"`
	AdTypeFilter string `query:"adTypeFilter"`
}

func (r *ListListingsRequest) Validate() error {
	return validation.Struct(r)
}

// SearchListingsRequest holds the GET /items/search query.
type SearchListingsRequest struct {
	Name         string `query:"name"`
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Limit        int    `query:"limit" validate:"omitempty,min=1"`
	AdTypeFilter string `query:"adTypeFilter"`
}

func (r *SearchListingsRequest) Validate() error {
	if r.Name == "" {
		return errs.NewBadRequestError("Query parameter 'name' is required", true, nil, []errs.FieldError{{
			Field: "name",
			Error: "is required",
		}}, nil)
	}
	return validation.Struct(r)
}
