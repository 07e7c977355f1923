package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("authentication required")
var ErrUnauthorized = errors.New("insufficient privilege")
var ErrInvalidSession = errors.New("invalid or expired session")
var ErrRateLimited = errors.New("rate limit exceeded")
var ErrConsentRequired = errors.New("consent is required")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Address represents a physical location.
type Address struct {
	Address     string      `json:"address" bson:"address"`
	City        string      `json:"city" bson:"city"`
	State       string      `json:"state" bson:"state"`
	ZipCode     string      `json:"zip_code" bson:"zip_code"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// Property is the core aggregate root: a single real-estate listing.
//
// Visibility invariant: when IsPublic is true, AllowedUsers carries no meaning
// and is cleared on every write; when false, access is gated by AllowedUsers
// membership or the admin role.
type Property struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Price        float64   `json:"price" bson:"price"`
	Currency     string    `json:"currency" bson:"currency"`
	Location     Address   `json:"location" bson:"location"`
	AreaSqM      float64   `json:"area_sqm" bson:"area_sqm"`
	Bedrooms     int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms    int       `json:"bathrooms" bson:"bathrooms"`
	Images       []string  `json:"images" bson:"images"`
	IsPublic     bool      `json:"is_public" bson:"is_public"`
	AllowedUsers []string  `json:"allowed_users,omitempty" bson:"allowed_users,omitempty"`
	CreatedBy    string    `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Normalize enforces the visibility invariant before the record is persisted.
func (p *Property) Normalize() {
	if p.IsPublic {
		p.AllowedUsers = nil
	}
}
