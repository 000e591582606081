package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
	"github.com/ISudhan/cleannect-waste-management/pkg/helpers"
)

// AuthService issues bearer tokens at registration/login and resolves
// them back to identities for the route guard.
type AuthService struct {
	Users  repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Logger: logger}
}

type RegisterInput struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phone    string         `json:"phone"`
	UserType string         `json:"userType"`
	Address  entity.Address `json:"address"`
}

// registerConstraints is the validation contract for new accounts.
type registerConstraints struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
	Phone    string `json:"phone" validate:"required,min=7,max=15"`
	UserType string `json:"userType" validate:"required,oneof=household collector buyer both"`
}

type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register creates a user and signs them in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, Token, error) {
	if err := checkStruct(registerConstraints{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Phone:    in.Phone,
		UserType: in.UserType,
	}); err != nil {
		return nil, Token{}, err
	}

	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, Token{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, Token{}, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, Token{}, err
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		UserType: in.UserType,
		Address:  in.Address,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, Token{}, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "userType": u.UserType}).Info("user registered")

	tok, err := s.issue(u)
	if err != nil {
		return nil, Token{}, err
	}
	return u, tok, nil
}

// Login verifies email and password and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, Token, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, Token{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, Token{}, ErrInvalidCredentials
	}
	tok, err := s.issue(u)
	if err != nil {
		return nil, Token{}, err
	}
	return u, tok, nil
}

// ResolveToken verifies a bearer token and resolves it to the user it
// names. Any failure, including a since-deleted user, reads as an
// invalid token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (Token, error) {
	value, exp, err := s.Tokens.Generate(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token generation failed")
		return Token{}, err
	}
	return Token{Value: value, ExpiresAt: exp}, nil
}
