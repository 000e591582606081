package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
)

// UserFilter narrows a paged user enumeration. Location is a
// case-insensitive substring matched against address city or state.
type UserFilter struct {
	UserType string
	Location string
}

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]entity.User, error)
	Find(ctx context.Context, f UserFilter, page, limit int) ([]entity.User, int64, error)
}
