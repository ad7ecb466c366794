// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/types"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/session"
)

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
	mux.Post("/api/v0/tenants", a.provisionTenant)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Put("/api/v0/tenants/{id}/status", a.setTenantStatus)
	mux.Put("/api/v0/tenants/{id}/package", a.setTenantPackage)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)
	mux.Get("/api/v0/tenants/{id}/audit", a.listAuditEntries)

	mux.Post("/api/v0/packages", a.createPackage)
	mux.Get("/api/v0/packages", a.listPackages)
	mux.Get("/api/v0/packages/{id}", a.getPackage)
	mux.Put("/api/v0/packages/{id}", a.updatePackage)
	mux.Delete("/api/v0/packages/{id}", a.deletePackage)

	mux.Get("/api/v0/users", a.listUsers)
	mux.Post("/api/v0/users", a.createUser)
	mux.Put("/api/v0/users/{id}/permissions", a.updateUserPermissions)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (*types.Principal, bool) {
	p, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		httptypes.WriteError(w, a.logger, authentication.ErrAuthentication)
	}
	return p, ok
}

func (a *API) provisionTenant(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(elevation.ProvisionRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	out, err := a.service.ProvisionTenant(r.Context(), principal, req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, out, nil)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	tenants, err := a.service.ListTenants(r.Context(), principal, page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, tenants, page)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	t, err := a.service.GetTenant(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, t, nil)
}

func (a *API) setTenantStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(StatusRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	t, err := a.service.SetTenantStatus(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, t, nil)
}

func (a *API) setTenantPackage(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PackageAssignment)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	t, err := a.service.SetTenantPackage(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, t, nil)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTenant(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listAuditEntries(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	entries, err := a.service.ListAuditEntries(r.Context(), principal, chi.URLParam(r, "id"), page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, entries, page)
}

func (a *API) createPackage(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PackageRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	p, err := a.service.CreatePackage(r.Context(), principal, req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, p, nil)
}

func (a *API) listPackages(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	packages, err := a.service.ListPackages(r.Context(), principal)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, packages, nil)
}

func (a *API) getPackage(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	p, err := a.service.GetPackage(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, p, nil)
}

func (a *API) updatePackage(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PackageRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	p, err := a.service.UpdatePackage(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, p, nil)
}

func (a *API) deletePackage(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeletePackage(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePagination(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	users, err := a.service.ListUsers(r.Context(), principal, session.AssumptionFromRequest(r), page.Page, page.Size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, users, page)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(UserRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	u, err := a.service.CreateUser(r.Context(), principal, session.AssumptionFromRequest(r), req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusCreated, u, nil)
}

func (a *API) updateUserPermissions(w http.ResponseWriter, r *http.Request) {
	principal, ok := a.principal(w, r)
	if !ok {
		return
	}

	req := new(PermissionsRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	u, err := a.service.UpdateUserPermissions(r.Context(), principal, session.AssumptionFromRequest(r), chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteData(w, a.logger, http.StatusOK, u, nil)
}
