// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
	"github.com/canonical/venue-tenancy/pkg/session"
)

var _ ServiceInterface = (*Service)(nil)

// Service is the tenant-scoped venue surface. Every call runs in one bound
// transaction for the caller's tenant, or the assumed one.
type Service struct {
	sessions SessionInterface
	storage  StorageInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", elevation.ErrInvalidRequest, err)
	}
	return nil
}

// checkID rejects path ids that are not uuids before they reach a uuid column.
func (s *Service) checkID(id string) error {
	if err := s.validate.Var(id, "required,uuid"); err != nil {
		return fmt.Errorf("%w: invalid id %q", elevation.ErrInvalidRequest, id)
	}
	return nil
}

func scoped[T any](ctx context.Context, s *Service, principal *types.Principal, assumption *session.Assumption, perm permissions.Permission, work func(context.Context) (T, error)) (T, error) {
	var result T

	err := s.sessions.Run(ctx, principal, assumption, func(ctx context.Context, sess *session.Session) error {
		if err := sess.Require(ctx, perm); err != nil {
			return err
		}

		var err error
		result, err = work(ctx)
		if errors.Is(err, storage.ErrCrossTenantConstraint) {
			s.logger.Security().CrossTenantViolation(sess.Principal.UserID, sess.TenantID(), err.Error())
		}
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

func (s *Service) ListVenues(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.ListVenues")
	defer span.End()

	return scoped(ctx, s, principal, assumption, permissions.VenueRead, func(ctx context.Context) ([]*types.Venue, error) {
		return s.storage.ListVenues(ctx, page, size)
	})
}

// CreateVenue counts against the MaxVenues limit of the tenant's package.
func (s *Service) CreateVenue(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *VenueRequest) (*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.CreateVenue")
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.VenueCreate, func(ctx context.Context) (*types.Venue, error) {
		return s.storage.CreateVenue(ctx, &types.Venue{Name: req.Name, Slug: req.Slug, Capacity: req.Capacity})
	})
}

func (s *Service) GetVenue(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Venue, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.GetVenue")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.VenueRead, func(ctx context.Context) (*types.Venue, error) {
		return s.storage.GetVenue(ctx, id)
	})
}

func (s *Service) ListCustomers(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.ListCustomers")
	defer span.End()

	return scoped(ctx, s, principal, assumption, permissions.CustomerRead, func(ctx context.Context) ([]*types.Customer, error) {
		return s.storage.ListCustomers(ctx, page, size)
	})
}

func (s *Service) CreateCustomer(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.CreateCustomer")
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.CustomerCreate, func(ctx context.Context) (*types.Customer, error) {
		return s.storage.CreateCustomer(ctx, &types.Customer{Name: req.Name, Email: req.Email})
	})
}

func (s *Service) GetCustomer(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.GetCustomer")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.CustomerRead, func(ctx context.Context) (*types.Customer, error) {
		return s.storage.GetCustomer(ctx, id)
	})
}

// ListBookings needs the eventBooking feature on the tenant's package.
func (s *Service) ListBookings(ctx context.Context, principal *types.Principal, assumption *session.Assumption, page, size int64) ([]*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.ListBookings")
	defer span.End()

	return scoped(ctx, s, principal, assumption, permissions.BookingRead, func(ctx context.Context) ([]*types.Booking, error) {
		return s.storage.ListBookings(ctx, page, size)
	})
}

func (s *Service) CreateBooking(ctx context.Context, principal *types.Principal, assumption *session.Assumption, req *BookingRequest) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.CreateBooking")
	defer span.End()

	if err := s.check(req); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.BookingCreate, func(ctx context.Context) (*types.Booking, error) {
		return s.storage.CreateBooking(ctx, &types.Booking{
			VenueID:    req.VenueID,
			CustomerID: req.CustomerID,
			EventDate:  req.EventDate,
			Status:     req.Status,
		})
	})
}

func (s *Service) GetBooking(ctx context.Context, principal *types.Principal, assumption *session.Assumption, id string) (*types.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "venue.Service.GetBooking")
	defer span.End()

	if err := s.checkID(id); err != nil {
		return nil, err
	}

	return scoped(ctx, s, principal, assumption, permissions.BookingRead, func(ctx context.Context) (*types.Booking, error) {
		return s.storage.GetBooking(ctx, id)
	})
}

func NewService(sessions SessionInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		sessions: sessions,
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
