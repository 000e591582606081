package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User types. "both" marks a dual-role account that can sell and buy.
const (
	UserTypeHousehold = "household"
	UserTypeCollector = "collector"
	UserTypeBuyer     = "buyer"
	UserTypeBoth      = "both"
	UserTypeAdmin     = "admin"
)

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes and never serialized.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Phone        string             `bson:"phone" json:"phone"`
	UserType     string             `bson:"userType" json:"userType"`
	Address      Address            `bson:"address" json:"address"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the user may enumerate all accounts.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}
