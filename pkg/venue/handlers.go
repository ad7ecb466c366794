// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/session"
)

type requestScope struct {
	principal  *types.Principal
	assumption *session.Assumption
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/venues", a.listVenues)
	mux.Post("/api/v0/venues", a.createVenue)
	mux.Get("/api/v0/venues/{id}", a.getVenue)

	mux.Get("/api/v0/customers", a.listCustomers)
	mux.Post("/api/v0/customers", a.createCustomer)
	mux.Get("/api/v0/customers/{id}", a.getCustomer)

	mux.Get("/api/v0/bookings", a.listBookings)
	mux.Post("/api/v0/bookings", a.createBooking)
	mux.Get("/api/v0/bookings/{id}", a.getBooking)
}

// request pulls the principal and the optional assumption off r.
func (a *API) request(w http.ResponseWriter, r *http.Request) (*requestScope, bool) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, authentication.ErrAuthentication)
		return nil, false
	}

	return &requestScope{principal: principal, assumption: session.AssumptionFromRequest(r)}, true
}

func (a *API) listVenues(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	items, err := a.service.ListVenues(r.Context(), scope.principal, scope.assumption, page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, items, page)
}

func (a *API) createVenue(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	req := new(VenueRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	item, err := a.service.CreateVenue(r.Context(), scope.principal, scope.assumption, req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, item, nil)
}

func (a *API) getVenue(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	item, err := a.service.GetVenue(r.Context(), scope.principal, scope.assumption, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, item, nil)
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	items, err := a.service.ListCustomers(r.Context(), scope.principal, scope.assumption, page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, items, page)
}

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	req := new(CustomerRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	item, err := a.service.CreateCustomer(r.Context(), scope.principal, scope.assumption, req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, item, nil)
}

func (a *API) getCustomer(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	item, err := a.service.GetCustomer(r.Context(), scope.principal, scope.assumption, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, item, nil)
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	items, err := a.service.ListBookings(r.Context(), scope.principal, scope.assumption, page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, items, page)
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	req := new(BookingRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	item, err := a.service.CreateBooking(r.Context(), scope.principal, scope.assumption, req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, item, nil)
}

func (a *API) getBooking(w http.ResponseWriter, r *http.Request) {
	scope, ok := a.request(w, r)
	if !ok {
		return
	}

	item, err := a.service.GetBooking(r.Context(), scope.principal, scope.assumption, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, item, nil)
}
