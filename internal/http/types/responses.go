// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
)

// ErrBadRequest marks a request the API could not decode.
var ErrBadRequest = errors.New("bad request")

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

type Response struct {
	Data    any         `json:"data"`
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

// StatusFromError maps the error taxonomy onto an HTTP status and a message
// safe to return. Denials share one body whatever their cause, so a caller
// cannot tell a row of another tenant from a missing one.
func StatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, authentication.ErrAuthentication):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, authorization.ErrAuthorization),
		errors.Is(err, db.ErrMissingTenantContext),
		errors.Is(err, db.ErrInvalidBinding),
		errors.Is(err, elevation.ErrTenantNotFound),
		errors.Is(err, storage.ErrRowSecurity):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, ErrBadRequest), errors.Is(err, elevation.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, storage.ErrCrossTenantConstraint):
		return http.StatusConflict, "conflicting or unknown reference"
	case errors.Is(err, storage.ErrQuotaExceeded):
		return http.StatusConflict, storage.ErrQuotaExceeded.Error()
	case errors.Is(err, storage.ErrPackageInUse):
		return http.StatusConflict, storage.ErrPackageInUse.Error()
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrForeignKeyViolation):
		return http.StatusConflict, "conflict"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not found"
	}

	return http.StatusInternalServerError, "internal server error"
}

// WriteJSON writes body with the given status.
func WriteJSON(w http.ResponseWriter, logger logging.LoggerInterface, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// WriteData wraps data in a Response.
func WriteData(w http.ResponseWriter, logger logging.LoggerInterface, status int, data any, meta *Pagination) {
	WriteJSON(w, logger, status, Response{Data: data, Status: status, Meta: meta})
}

// WriteError writes the mapped status for err. Server errors are logged, the
// rest are expected outcomes of a request.
func WriteError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	status, message := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	WriteJSON(w, logger, status, ErrorResponse{Status: status, Message: message})
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}

	return nil
}

// maxPage keeps the offset of the largest page within a bigint.
const maxPage = math.MaxInt64 / int64(db.MaxPageSize)

// ParsePagination reads the page and size query parameters. Missing values
// are zero, which storage turns into its defaults.
func ParsePagination(r *http.Request) (*Pagination, error) {
	p := new(Pagination)

	for _, q := range []struct {
		name string
		dst  *int64
		max  int64
	}{
		{"page", &p.Page, maxPage},
		{"size", &p.Size, int64(db.MaxPageSize)},
	} {
		raw := r.URL.Query().Get(q.name)
		if raw == "" {
			continue
		}

		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, q.name)
		}
		if v > q.max {
			return nil, fmt.Errorf("%w: %s exceeds %d", ErrBadRequest, q.name, q.max)
		}
		*q.dst = v
	}

	return p, nil
}
