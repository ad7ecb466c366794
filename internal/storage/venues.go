// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/types"
)

var (
	venueColumns    = []string{"id", "tenant_id", "name", "slug", "capacity", "created_at"}
	customerColumns = []string{"id", "tenant_id", "name", "email", "created_at"}
	bookingColumns  = []string{"id", "tenant_id", "venue_id", "customer_id", "event_date", "status", "created_at"}
)

const defaultBookingStatus = "inquiry"

func scanVenue(row rowScanner) (*types.Venue, error) {
	v := new(types.Venue)
	if err := row.Scan(&v.ID, &v.TenantID, &v.Name, &v.Slug, &v.Capacity, &v.CreatedAt); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Storage) CreateVenue(ctx context.Context, v *types.Venue) (*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVenue")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.checkQuota(ctx, tenantID, "venues", func(p *types.SubscriptionPackage) int { return p.MaxVenues }); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanVenue(
		s.db.Statement(ctx).
			Insert("venues").
			Columns("id", "tenant_id", "name", "slug", "capacity").
			Values(id, tenantID, v.Name, v.Slug, v.Capacity).
			Suffix(returning(venueColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapTenantWriteError(err, "failed to insert venue")
	}

	return created, nil
}

func (s *Storage) GetVenue(ctx context.Context, id string) (*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVenue")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	v, err := scanVenue(
		s.db.Statement(ctx).
			Select(venueColumns...).
			From("venues").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get venue")
	}

	return v, nil
}

func (s *Storage) ListVenues(ctx context.Context, page, size int64) ([]*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVenues")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	venues, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(venueColumns...).
			From("venues").
			Where(sq.Eq{"tenant_id": tenantID}).
			OrderBy("name", "id").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
		scanVenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	return venues, nil
}

func scanCustomer(row rowScanner) (*types.Customer, error) {
	c := new(types.Customer)
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Storage) CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanCustomer(
		s.db.Statement(ctx).
			Insert("customers").
			Columns("id", "tenant_id", "name", "email").
			Values(id, tenantID, c.Name, c.Email).
			Suffix(returning(customerColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapTenantWriteError(err, "failed to insert customer")
	}

	return created, nil
}

func (s *Storage) GetCustomer(ctx context.Context, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomer")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	c, err := scanCustomer(
		s.db.Statement(ctx).
			Select(customerColumns...).
			From("customers").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get customer")
	}

	return c, nil
}

func (s *Storage) ListCustomers(ctx context.Context, page, size int64) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomers")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	customers, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(customerColumns...).
			From("customers").
			Where(sq.Eq{"tenant_id": tenantID}).
			OrderBy("name", "id").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
		scanCustomer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func scanBooking(row rowScanner) (*types.Booking, error) {
	b := new(types.Booking)
	if err := row.Scan(&b.ID, &b.TenantID, &b.VenueID, &b.CustomerID, &b.EventDate, &b.Status, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBooking inserts a booking for the bound tenant. A venue or customer of
// another tenant fails the composite foreign keys with ErrCrossTenantConstraint.
func (s *Storage) CreateBooking(ctx context.Context, b *types.Booking) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBooking")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	status := b.Status
	if status == "" {
		status = defaultBookingStatus
	}

	created, err := scanBooking(
		s.db.Statement(ctx).
			Insert("bookings").
			Columns("id", "tenant_id", "venue_id", "customer_id", "event_date", "status").
			Values(id, tenantID, b.VenueID, b.CustomerID, b.EventDate, status).
			Suffix(returning(bookingColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapTenantWriteError(err, "failed to insert booking")
	}

	return created, nil
}

func (s *Storage) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBooking")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	b, err := scanBooking(
		s.db.Statement(ctx).
			Select(bookingColumns...).
			From("bookings").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, notFound(err, "failed to get booking")
	}

	return b, nil
}

func (s *Storage) ListBookings(ctx context.Context, page, size int64) ([]*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBookings")
	defer span.End()

	tenantID, err := db.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	bookings, err := queryAll(ctx,
		s.db.Statement(ctx).
			Select(bookingColumns...).
			From("bookings").
			Where(sq.Eq{"tenant_id": tenantID}).
			OrderBy("event_date", "id").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
		scanBooking,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}
