// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package adapter

import (
	"context"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/utils"
	"github.com/medvision/clinic-sync/models"
)

type httpBackendAdapter struct {
	client *resty.Client
	// hasher is nil when no integrity key is configured; verification is
	// then skipped entirely.
	hasher *utils.Hasher
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises the base URL from backendCfg.BaseURL and
// configures the underlying resty client with the resolved base URL and
// request timeout. appCfg.HashKey, when non-empty, enables HMAC verification
// of pulled entity payloads.
func NewHTTPBackendAdapter(backendCfg config.ClientBackend, appCfg config.ClientApp, log *logger.Logger) (BackendAdapter, error) {
	if backendCfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}

	timeout := backendCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(backendCfg.BaseURL, "/")).
		SetTimeout(timeout)

	var hasher *utils.Hasher
	if appCfg.HashKey != "" {
		hasher = utils.NewHasher(appCfg.HashKey)
	}

	return &httpBackendAdapter{
		client: cli,
		hasher: hasher,
		logger: log,
	}, nil
}

func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	operatorID, err := parseOperatorIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse operator id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, OperatorID: operatorID}, nil
}

func (h *httpBackendAdapter) ListClinics(ctx context.Context) ([]models.Clinic, error) {
	resp, err := h.authedRequest(ctx).Get("/api/clinics")
	if err != nil {
		return nil, fmt.Errorf("list clinics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var clinics []models.Clinic
	if err = json.Unmarshal(resp.Body(), &clinics); err != nil {
		return nil, fmt.Errorf("decode clinics response: %w", err)
	}

	return clinics, nil
}

func (h *httpBackendAdapter) PullEntity(ctx context.Context, clinicID, entity string) (models.EntityPayload, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/clinics/%s/%s", clinicID, entity))
	if err != nil {
		return models.EntityPayload{}, fmt.Errorf("pull %s request: %w", entity, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityPayload{}, err
	}

	var payload models.EntityPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.EntityPayload{}, fmt.Errorf("decode %s pull response: %w", entity, err)
	}
	if payload.Entity == "" {
		payload.Entity = entity
	}

	if err = h.verifyIntegrity(payload); err != nil {
		return models.EntityPayload{}, err
	}

	return payload, nil
}

// verifyIntegrity recomputes the HMAC-SHA256 digest over the serialized
// records and compares it with the hash attached by the backend. The check
// is skipped when either side has no key/hash configured.
func (h *httpBackendAdapter) verifyIntegrity(payload models.EntityPayload) error {
	if h.hasher == nil || payload.Hash == "" {
		return nil
	}

	serialized, err := json.Marshal(payload.Records)
	if err != nil {
		return fmt.Errorf("serialize %s records for integrity check: %w", payload.Entity, err)
	}

	expected, err := hex.DecodeString(payload.Hash)
	if err != nil {
		return fmt.Errorf("%w: malformed digest for %s", ErrIntegrityMismatch, payload.Entity)
	}
	if !hmac.Equal(expected, h.hasher.Hash(serialized)) {
		return fmt.Errorf("%w: %s", ErrIntegrityMismatch, payload.Entity)
	}

	return nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseOperatorIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
