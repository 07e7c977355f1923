package handler

import "time"

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type addressRequest struct {
	Address     string             `json:"address"  validate:"required"`
	City        string             `json:"city"     validate:"required"`
	State       string             `json:"state"`
	ZipCode     string             `json:"zip_code"`
	Coordinates coordinatesRequest `json:"coordinates"`
}

type propertyRequest struct {
	Title        string         `json:"title"       validate:"required"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"       validate:"required,gt=0"`
	Currency     string         `json:"currency"    validate:"required"`
	Location     addressRequest `json:"location"    validate:"required"`
	AreaSqM      float64        `json:"area_sqm"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	Images       []string       `json:"images"`
	IsPublic     bool           `json:"is_public"`
	AllowedUsers []string       `json:"allowed_users"`
}

// Response-only types owned by the transport layer, kept separate from domain
// types so the JSON contract is not coupled to internal changes.

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type addressResponse struct {
	Address     string              `json:"address"`
	City        string              `json:"city"`
	State       string              `json:"state,omitempty"`
	ZipCode     string              `json:"zip_code,omitempty"`
	Coordinates coordinatesResponse `json:"coordinates"`
}

type propertyResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency"`
	Location    addressResponse `json:"location"`
	AreaSqM     float64         `json:"area_sqm,omitempty"`
	Bedrooms    int             `json:"bedrooms,omitempty"`
	Bathrooms   int             `json:"bathrooms,omitempty"`
	Images      []string        `json:"images,omitempty"`
	IsPublic    bool            `json:"is_public"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type createPropertyResponse struct {
	ID string `json:"id"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPropertiesResponse struct {
	Data       []propertyResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type accessCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
