package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bot-keeper/internal/config"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpManagementAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPManagementAdapter constructs the HTTP implementation of
// [ManagementAdapter]. cfg.HTTPAddress may omit the scheme, "http" is
// assumed. cfg.Token, when set, is used for authenticated calls until Login
// replaces it.
func NewHTTPManagementAdapter(cfg config.ClientConfig, logger *logger.Logger) (ManagementAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpManagementAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpManagementAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpManagementAdapter) Token() string {
	return h.token
}

// Login POSTs admin to /api/auth/login and stores the bearer token from the
// Authorization response header.
func (h *httpManagementAdapter) Login(ctx context.Context, admin models.Admin) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(admin).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", admin.Login).Msg("logged in")

	return token, nil
}

func (h *httpManagementAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpManagementAdapter) ListClients(ctx context.Context) ([]models.ClientView, error) {
	var clients []models.ClientView

	resp, err := h.authedRequest(ctx).
		SetResult(&clients).
		Get("/api/clients")
	if err != nil {
		return nil, fmt.Errorf("list clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return clients, nil
}

func (h *httpManagementAdapter) GetClient(ctx context.Context, id string) (models.ClientView, error) {
	var client models.ClientView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&client).
		Get("/api/client/{id}")
	if err != nil {
		return models.ClientView{}, fmt.Errorf("get client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClientView{}, err
	}

	return client, nil
}

func (h *httpManagementAdapter) CreateClient(ctx context.Context, payload models.ClientPayload) (models.ClientView, error) {
	return h.putClient(ctx, models.NewClientSentinel, payload)
}

func (h *httpManagementAdapter) UpdateClient(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error) {
	if id == models.NewClientSentinel {
		return models.ClientView{}, fmt.Errorf("%w: %q is reserved for creation", ErrBadRequest, id)
	}
	return h.putClient(ctx, id, payload)
}

func (h *httpManagementAdapter) putClient(ctx context.Context, id string, payload models.ClientPayload) (models.ClientView, error) {
	var client models.ClientView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(payload).
		SetResult(&client).
		Put("/api/client/{id}")
	if err != nil {
		return models.ClientView{}, fmt.Errorf("put client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClientView{}, err
	}

	return client, nil
}

func (h *httpManagementAdapter) DeleteClient(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/client/{id}")
	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpManagementAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
