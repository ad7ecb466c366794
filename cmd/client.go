// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/venue-tenancy/internal/http/types"
	"github.com/canonical/venue-tenancy/pkg/session"
)

// apiClient talks to the JSON API as the holder of a bearer token.
type apiClient struct {
	endpoint string
	token    string

	assumeTenant string
	assumeReason string

	client *http.Client
}

func newAPIClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		// remove trailing slash
		endpoint:     strings.TrimSuffix(endpoint, "/"),
		token:        accessToken,
		assumeTenant: assumeTenant,
		assumeReason: assumeReason,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

// do sends body as JSON and decodes the data field of the response into out.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.assumeTenant != "" {
		req.Header.Set(session.AssumeTenantHeader, c.assumeTenant)
		req.Header.Set(session.AssumeReasonHeader, c.assumeReason)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		e := new(httptypes.ErrorResponse)
		if err := json.NewDecoder(resp.Body).Decode(e); err != nil || e.Message == "" {
			return fmt.Errorf("api error (status %d)", resp.StatusCode)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, e.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&httptypes.Response{Data: out}); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
