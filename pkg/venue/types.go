// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package venue

import (
	"time"
)

type VenueRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Slug     string `json:"slug" validate:"required,max=63,hostname_rfc1123"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// BookingRequest references a venue and a customer by id. Both must belong to
// the bound tenant, the database refuses anything else.
type BookingRequest struct {
	VenueID    string    `json:"venue_id" validate:"required,uuid"`
	CustomerID string    `json:"customer_id" validate:"required,uuid"`
	EventDate  time.Time `json:"event_date" validate:"required"`
	Status     string    `json:"status" validate:"omitempty,oneof=inquiry confirmed cancelled"`
}
