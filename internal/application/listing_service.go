package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

// ListingService owns the listing lifecycle: creation, seller-only
// mutation, and the filtered/paginated reads with seller expansion.
type ListingService struct {
	Listings repository.ListingRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewListingService(listings repository.ListingRepository, users repository.UserRepository, logger *logrus.Logger) *ListingService {
	return &ListingService{Listings: listings, Users: users, Logger: logger}
}

// listingConstraints is the single validation contract for listings.
// Create and Update both run merged state through it, so an update can
// never relax a constraint Create enforces.
type listingConstraints struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Category    string  `json:"category" validate:"required,oneof=plastic paper metal glass organic electronics textiles other"`
	Quantity    float64 `json:"quantity" validate:"gte=1"`
	Unit        string  `json:"unit" validate:"required,oneof=kg pieces bags boxes tons"`
	Price       float64 `json:"price" validate:"gte=0"`
	Condition   string  `json:"condition" validate:"required,oneof=excellent good fair poor"`
	Status      string  `json:"status" validate:"required,oneof=available sold reserved expired"`
}

func checkListing(l *entity.Listing) error {
	return checkStruct(listingConstraints{
		Title:       l.Title,
		Description: l.Description,
		Category:    l.Category,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
		Price:       l.Price,
		Condition:   l.Condition,
		Status:      l.Status,
	})
}

// SellerView is the public projection of a listing's owner. Address is
// only present on single-listing reads.
type SellerView struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *entity.Address `json:"address,omitempty"`
}

// ListingView is a listing with its seller expanded. A nil seller means
// the owning account no longer exists.
type ListingView struct {
	entity.Listing
	Seller *SellerView `json:"seller"`
}

type CreateListingInput struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Quantity       float64         `json:"quantity"`
	Unit           string          `json:"unit"`
	Price          float64         `json:"price"`
	Images         []string        `json:"images"`
	Location       entity.Location `json:"location"`
	Condition      string          `json:"condition"`
	PickupRequired *bool           `json:"pickupRequired"`
	ExpiryDate     *time.Time      `json:"expiryDate"`
	Tags           []string        `json:"tags"`
}

// Create validates the input and persists a new listing owned by the
// caller. Status always starts as available.
func (s *ListingService) Create(ctx context.Context, in CreateListingInput, seller *entity.User) (*entity.Listing, error) {
	l := &entity.Listing{
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		Price:          in.Price,
		Images:         in.Images,
		Location:       in.Location,
		Seller:         seller.ID,
		Status:         entity.ListingStatusAvailable,
		Condition:      in.Condition,
		PickupRequired: true,
		ExpiryDate:     in.ExpiryDate,
		Tags:           in.Tags,
	}
	if l.Condition == "" {
		l.Condition = entity.ConditionGood
	}
	if in.PickupRequired != nil {
		l.PickupRequired = *in.PickupRequired
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}

	if err := checkListing(l); err != nil {
		return nil, err
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"listing_id": l.ID.Hex(),
		"seller":     seller.ID.Hex(),
		"category":   l.Category,
	}).Info("listing created")
	return l, nil
}

// Get returns one listing with the seller expanded to the full public
// view (address included).
func (s *ListingService) Get(ctx context.Context, id string) (*ListingView, error) {
	l, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, l, true), nil
}

// List returns one page of listings matching the filter, newest-first,
// sellers expanded to the restricted view (no address).
func (s *ListingService) List(ctx context.Context, f repository.ListingFilter, page, limit int) ([]ListingView, int64, error) {
	listings, total, err := s.Listings.Find(ctx, f, page, limit)
	if err != nil {
		return nil, 0, err
	}

	// Cache seller lookups within the page.
	sellers := map[primitive.ObjectID]*SellerView{}
	views := make([]ListingView, 0, len(listings))
	for i := range listings {
		l := listings[i]
		view, ok := sellers[l.Seller]
		if !ok {
			view = s.sellerView(ctx, l.Seller, false)
			sellers[l.Seller] = view
		}
		views = append(views, ListingView{Listing: l, Seller: view})
	}
	return views, total, nil
}

// UpdateListingInput is the typed partial update. Seller and timestamps
// are not representable here, so they cannot be set by a client.
type UpdateListingInput struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Quantity       *float64         `json:"quantity"`
	Unit           *string          `json:"unit"`
	Price          *float64         `json:"price"`
	Images         *[]string        `json:"images"`
	Location       *entity.Location `json:"location"`
	Condition      *string          `json:"condition"`
	PickupRequired *bool            `json:"pickupRequired"`
	ExpiryDate     *time.Time       `json:"expiryDate"`
	Tags           *[]string        `json:"tags"`
	Status         *string          `json:"status"`
}

// Update applies a partial update to a listing the caller owns, then
// re-validates the merged record.
func (s *ListingService) Update(ctx context.Context, id string, in UpdateListingInput, requester *entity.User) (*ListingView, error) {
	l, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Seller != requester.ID {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Category != nil {
		l.Category = *in.Category
	}
	if in.Quantity != nil {
		l.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		l.Unit = *in.Unit
	}
	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.Images != nil {
		l.Images = *in.Images
	}
	if in.Location != nil {
		l.Location = *in.Location
	}
	if in.Condition != nil {
		l.Condition = *in.Condition
	}
	if in.PickupRequired != nil {
		l.PickupRequired = *in.PickupRequired
	}
	if in.ExpiryDate != nil {
		l.ExpiryDate = in.ExpiryDate
	}
	if in.Tags != nil {
		l.Tags = *in.Tags
	}
	if in.Status != nil {
		l.Status = *in.Status
	}

	if err := checkListing(l); err != nil {
		return nil, err
	}
	if err := s.Listings.Update(ctx, l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.expand(ctx, l, false), nil
}

// Delete permanently removes a listing the caller owns.
func (s *ListingService) Delete(ctx context.Context, id string, requester *entity.User) error {
	l, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if l.Seller != requester.ID {
		return ErrForbidden
	}
	if err := s.Listings.Delete(ctx, l.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithField("listing_id", id).Info("listing deleted")
	return nil
}

// ListBySeller returns every listing the caller owns, all statuses,
// newest-first.
func (s *ListingService) ListBySeller(ctx context.Context, seller *entity.User) ([]entity.Listing, error) {
	return s.Listings.FindBySeller(ctx, seller.ID)
}

// Purchases is a deliberate stub: transactions are not recorded yet, so
// the history is always empty rather than an error.
func (s *ListingService) Purchases(ctx context.Context, requester *entity.User) ([]entity.Listing, error) {
	return []entity.Listing{}, nil
}

func (s *ListingService) get(ctx context.Context, id string) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	l, err := s.Listings.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return l, err
}

func (s *ListingService) expand(ctx context.Context, l *entity.Listing, withAddress bool) *ListingView {
	return &ListingView{Listing: *l, Seller: s.sellerView(ctx, l.Seller, withAddress)}
}

func (s *ListingService) sellerView(ctx context.Context, id primitive.ObjectID, withAddress bool) *SellerView {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		// Orphaned reference: the seller account was deleted.
		return nil
	}
	v := &SellerView{ID: u.ID.Hex(), Name: u.Name, Email: u.Email, Phone: u.Phone}
	if withAddress {
		addr := u.Address
		v.Address = &addr
	}
	return v
}
