package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

// UserService covers profile reads and the owner-only mutations.
type UserService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

// userConstraints re-validates a profile after a partial update.
type userConstraints struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	Phone        string `json:"phone" validate:"required,min=7,max=15"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url"`
}

// List returns every account. Admin only.
func (s *UserService) List(ctx context.Context, requester *entity.User) ([]entity.User, error) {
	if !requester.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Users.List(ctx)
}

// Get returns a single account by id. Unauthenticated read.
func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	u, err := s.Users.GetByID(ctx, oid)
	if err == repository.ErrNotFound {
		return nil, ErrNotFound
	}
	return u, err
}

// UpdateUserInput is the typed partial update for a profile. Only the
// fields here are client-settable; email and password have no path in.
type UpdateUserInput struct {
	Name         *string         `json:"name"`
	Phone        *string         `json:"phone"`
	Address      *entity.Address `json:"address"`
	ProfileImage *string         `json:"profileImage"`
}

// Update applies a partial update to the requester's own profile.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput, requester *entity.User) (*entity.User, error) {
	if requester.ID.Hex() != id {
		return nil, ErrForbidden
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.ProfileImage != nil {
		u.ProfileImage = *in.ProfileImage
	}

	if err := checkStruct(userConstraints{
		Name:         u.Name,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}); err != nil {
		return nil, err
	}

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the requester's own account. Listings owned by the
// account are left in place; their seller reference goes stale.
func (s *UserService) Delete(ctx context.Context, id string, requester *entity.User) error {
	if requester.ID.Hex() != id {
		return ErrForbidden
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if err := s.Users.Delete(ctx, oid); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithField("user_id", id).Info("account deleted")
	return nil
}

// ListByType returns a page of users of one type, optionally narrowed
// by a location substring, newest-first.
func (s *UserService) ListByType(ctx context.Context, userType string, page, limit int, location string) ([]entity.User, int64, error) {
	return s.Users.Find(ctx, repository.UserFilter{UserType: userType, Location: location}, page, limit)
}
