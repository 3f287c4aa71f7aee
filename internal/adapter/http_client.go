// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/meridiancon/companion-sync/internal/config"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/models"
)

const (
	syncPath          = "/Api/Sync"
	communicationPath = "/Api/Communication/PrivateMessages"
)

type httpDeltaFetcher struct {
	client *resty.Client
	logger *logger.Logger

	mu          sync.RWMutex
	token       string
	tokenExpiry time.Time
}

// NewHTTPDeltaFetcher builds the resty-backed DeltaFetcher for the given
// adapter configuration. BaseURL defaults to nothing on purpose: a missing
// base URL is a configuration error caught by config validation, not here.
func NewHTTPDeltaFetcher(cfg config.ClientAdapter, log *logger.Logger) DeltaFetcher {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpDeltaFetcher{client: cli, logger: log}
}

func (h *httpDeltaFetcher) FetchDelta(ctx context.Context, since *time.Time) (models.SyncResponse, error) {
	req := h.client.R().SetContext(ctx)
	if since != nil {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339))
	}

	resp, err := req.Get(syncPath)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: decode sync response: %v", ErrMalformedResponse, err)
	}
	if err = sr.Validate(); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return sr, nil
}

func (h *httpDeltaFetcher) FetchCommunications(ctx context.Context) ([]models.Communication, error) {
	token, err := h.usableToken()
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Get(communicationPath)
	if err != nil {
		return nil, fmt.Errorf("communications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Communication
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode communications response: %v", ErrMalformedResponse, err)
	}

	return items, nil
}

// SetToken installs the bearer token for authenticated calls. The token is
// parsed without signature verification, only to learn its expiry; the
// backend remains the authority on validity.
func (h *httpDeltaFetcher) SetToken(token string) error {
	token = strings.TrimSpace(token)

	h.mu.Lock()
	defer h.mu.Unlock()

	if token == "" {
		h.token = ""
		h.tokenExpiry = time.Time{}
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return fmt.Errorf("bearer token has no usable expiry: %w", err)
	}

	h.token = token
	h.tokenExpiry = expiry.Time
	return nil
}

func (h *httpDeltaFetcher) usableToken() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" {
		return "", ErrUnauthorized
	}
	if !h.tokenExpiry.IsZero() && time.Now().After(h.tokenExpiry) {
		return "", fmt.Errorf("%w: bearer token expired", ErrUnauthorized)
	}
	return h.token, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
