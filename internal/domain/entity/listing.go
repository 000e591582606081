package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing status lifecycle. New listings always start out available.
const (
	ListingStatusAvailable = "available"
	ListingStatusSold      = "sold"
	ListingStatusReserved  = "reserved"
	ListingStatusExpired   = "expired"
)

const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
)

type Location struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// Listing is a seller's offer of a quantity of categorized waste material
// for a price. The seller is fixed at creation and never reassigned.
type Listing struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Quantity       float64            `bson:"quantity" json:"quantity"`
	Unit           string             `bson:"unit" json:"unit"`
	Price          float64            `bson:"price" json:"price"`
	Images         []string           `bson:"images" json:"images"`
	Location       Location           `bson:"location" json:"location"`
	Seller         primitive.ObjectID `bson:"seller" json:"seller"`
	Status         string             `bson:"status" json:"status"`
	Condition      string             `bson:"condition" json:"condition"`
	PickupRequired bool               `bson:"pickupRequired" json:"pickupRequired"`
	ExpiryDate     *time.Time         `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	Tags           []string           `bson:"tags" json:"tags"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
