package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ListingFilter is the structured predicate applied to listing queries.
// All conditions combine with AND; Location internally matches city OR
// state. An empty Status means no status restriction (FindBySeller);
// list endpoints default it to "available" before reaching the store.
type ListingFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Location string
	Status   string
	Search   string
}

// ListingRepository defines the persistence operations for listings.
// All multi-record reads sort newest-first on creation time.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Listing, error)
	Update(ctx context.Context, l *entity.Listing) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Find(ctx context.Context, f ListingFilter, page, limit int) ([]entity.Listing, int64, error)
	FindBySeller(ctx context.Context, seller primitive.ObjectID) ([]entity.Listing, error)
}
