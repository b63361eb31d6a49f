// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// OfferStatus is the lifecycle state shown in the offer list.
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusInactive OfferStatus = "inactive"
	OfferStatusSoldOut  OfferStatus = "sold_out"
	OfferStatusExpired  OfferStatus = "expired"
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusDraft    OfferStatus = "draft"
)

// CreationMode tells whether an offer was typed in or synchronized from a provider.
type CreationMode string

const (
	CreationModeManual   CreationMode = "manual"
	CreationModeImported CreationMode = "imported"
)

// Venue is the place (physical or virtual) an offer is attached to.
type Venue struct {
	ID         int64     `json:"id"`
	OffererID  int64     `json:"offerer_id"`
	Name       string    `json:"name"`
	PublicName string    `json:"public_name,omitempty"`
	IsVirtual  bool      `json:"is_virtual"`
	Street     string    `json:"street,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	City       string    `json:"city,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Offer is one row of the back-office offer list.
type Offer struct {
	ID           int64        `json:"id"`
	VenueID      int64        `json:"venue_id"`
	Venue        Venue        `json:"venue"`
	Name         string       `json:"name"`
	ISBN         string       `json:"isbn,omitempty"`
	CategoryID   string       `json:"category_id"`
	Status       OfferStatus  `json:"status"`
	CreationMode CreationMode `json:"creation_mode"`
	IsEvent      bool         `json:"is_event"`
	Stocks       int          `json:"stocks"`
	// BeginningDate is the first event date; nil for things.
	BeginningDate *time.Time `json:"beginning_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
