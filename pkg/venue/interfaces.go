// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package venue

import (
	"context"

	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/session"
)

type ServiceInterface interface {
	ListVenues(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Venue, error)
	CreateVenue(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *VenueRequest) (*types.Venue, error)
	GetVenue(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Venue, error)

	ListCustomers(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Customer, error)
	CreateCustomer(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *CustomerRequest) (*types.Customer, error)
	GetCustomer(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Customer, error)

	ListBookings(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Booking, error)
	CreateBooking(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *BookingRequest) (*types.Booking, error)
	GetBooking(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Booking, error)
}

type SessionInterface interface {
	Run(ctx context.Context, principal *types.Principal, assumption *session.Assumption, work func(context.Context, *session.Session) error) error
}

type StorageInterface interface {
	CreateVenue(ctx context.Context, v *types.Venue) (*types.Venue, error)
	GetVenue(ctx context.Context, id string) (*types.Venue, error)
	ListVenues(ctx context.Context, page, size int64) ([]*types.Venue, error)
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	GetCustomer(ctx context.Context, id string) (*types.Customer, error)
	ListCustomers(ctx context.Context, page, size int64) ([]*types.Customer, error)
	CreateBooking(ctx context.Context, b *types.Booking) (*types.Booking, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	ListBookings(ctx context.Context, page, size int64) ([]*types.Booking, error)
}
