package repository

import (
	"errors"
	"sync"

	"github.com/deppfellow/classifieds/internal/model"
)

// ErrListingNotFound is returned when no listing has the requested id.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository is the in-memory listing store.
//
// Listings keep insertion order. Ids come from a counter that starts at 0
// and only moves forward, so a deleted id is never handed out again.
// Callers always receive copies; mutation goes through the methods.
type ListingRepository struct {
	mu       sync.RWMutex
	listings []*model.Listing
	nextID   int
}

// NewListingRepository returns an empty store whose first id is 0.
func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

// Create assigns the next id to a copy of listing, appends it and returns it.
func (r *ListingRepository) Create(listing *model.Listing) *model.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := listing.Clone()
	stored.ID = r.nextID
	r.nextID++

	r.listings = append(r.listings, stored)

	return stored.Clone()
}

// List returns every listing in insertion order.
func (r *ListingRepository) List() []*model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Listing, len(r.listings))
	for i, l := range r.listings {
		out[i] = l.Clone()
	}
	return out
}

// Count returns the number of stored listings.
func (r *ListingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.listings)
}

// GetByID returns the listing with id, or ErrListingNotFound.
func (r *ListingRepository) GetByID(id int) (*model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrListingNotFound
	}
	return r.listings[i].Clone(), nil
}

// Update shallow-merges fields into the listing with id and returns the
// result. The merged listing is not re-validated.
func (r *ListingRepository) Update(id int, fields map[string]interface{}) (*model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrListingNotFound
	}

	r.listings[i].Merge(fields)
	return r.listings[i].Clone(), nil
}

// Delete removes the listing with id.
func (r *ListingRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrListingNotFound
	}

	r.listings = append(r.listings[:i], r.listings[i+1:]...)
	return nil
}

// Seed appends listings with the ids they already carry and moves the
// counter past the highest of them.
func (r *ListingRepository) Seed(listings []*model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range listings {
		r.listings = append(r.listings, l.Clone())
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
	}
}

// indexOf must be called with r.mu held.
func (r *ListingRepository) indexOf(id int) int {
	for i, l := range r.listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}
