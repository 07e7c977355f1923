package domain

import "time"

// Lead represents a contact-form submission captured from the public site.
// Consent is recorded verbatim at submission time; a lead without consent is
// rejected before it reaches storage.
type Lead struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message    string    `json:"message" bson:"message"`
	PropertyID string    `json:"property_id,omitempty" bson:"property_id,omitempty"`
	Consent    bool      `json:"consent" bson:"consent"`
	ClientIP   string    `json:"client_ip" bson:"client_ip"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
