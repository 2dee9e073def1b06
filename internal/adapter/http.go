package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = token
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// authedRequest prepares a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context, tags []string) ([]models.Recipe, error) {
	var recipes []models.Recipe

	request := h.authedRequest(ctx).SetResult(&recipes)
	if len(tags) > 0 {
		request.SetQueryParam("tags", strings.Join(tags, ","))
	}

	resp, err := request.Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	var created models.Recipe

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recipe).
		SetResult(&created).
		Post("/api/recipes")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, ref string) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.authedRequest(ctx).
		SetResult(&recipe).
		Get("/api/recipes/" + url.PathEscape(ref))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, ref string, recipe models.Recipe) (models.Recipe, error) {
	var updated models.Recipe

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recipe).
		SetResult(&updated).
		Put("/api/recipes/" + url.PathEscape(ref))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, ref string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/recipes/" + url.PathEscape(ref))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CopyRecipe(ctx context.Context, ref string) (models.Recipe, error) {
	var copied models.Recipe

	resp, err := h.authedRequest(ctx).
		SetResult(&copied).
		Post("/api/recipes/" + url.PathEscape(ref) + "/copy")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("copy recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return copied, nil
}

func (h *httpServerAdapter) ListTags(ctx context.Context, tags []string) ([]models.Tag, error) {
	var result []models.Tag

	request := h.authedRequest(ctx).SetResult(&result)
	if len(tags) > 0 {
		request.SetQueryParam("tags", strings.Join(tags, ","))
	}

	resp, err := request.Get("/api/recipe-tags")
	if err != nil {
		return nil, fmt.Errorf("list tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *httpServerAdapter) ListShares(ctx context.Context) ([]models.ShareConfig, error) {
	var shares []models.ShareConfig

	resp, err := h.authedRequest(ctx).
		SetResult(&shares).
		Get("/api/shares")
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return shares, nil
}

func (h *httpServerAdapter) CreateShare(ctx context.Context, granteeEmail string, role models.ShareRole) (models.ShareConfig, error) {
	var share models.ShareConfig

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"email": granteeEmail, "role": role}).
		SetResult(&share).
		Post("/api/shares")
	if err != nil {
		return models.ShareConfig{}, fmt.Errorf("create share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareConfig{}, err
	}

	return share, nil
}

func (h *httpServerAdapter) DeleteShare(ctx context.Context, shareID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/shares/" + url.PathEscape(shareID))
	if err != nil {
		return fmt.Errorf("delete share request: %w", err)
	}

	return mapHTTPError(resp)
}
