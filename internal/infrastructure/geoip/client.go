package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/config"
	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	consent    bool
	logger     *zap.Logger
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewClient creates an IP-geolocation backed position provider. Permission
// maps to the configured consent flag; the service never probes a device
// sensor directly.
func NewClient(cfg *config.GeolocationConfig, logger *zap.Logger) repository.GeolocationProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		consent: cfg.Consent,
		logger:  logger,
	}
}

// RequestPermission answers from configuration. A denied answer is the
// normal path when consent was not given; it is not an error.
func (c *client) RequestPermission(_ context.Context) (bool, error) {
	return c.consent, nil
}

// CurrentPosition resolves the caller's approximate position from its IP.
func (c *client) CurrentPosition(ctx context.Context) (*domain.Position, error) {
	url := fmt.Sprintf("%s/json", c.baseURL)

	c.logger.Debug("Calling geolocation API", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geolocation API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geolocation API error: status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if lookup.Status != "success" {
		c.logger.Error("Geolocation API returned non-success status",
			zap.String("status", lookup.Status),
			zap.String("message", lookup.Message))
		return nil, fmt.Errorf("geolocation lookup failed: %s", lookup.Message)
	}

	return &domain.Position{
		Latitude:  lookup.Lat,
		Longitude: lookup.Lon,
		Timestamp: time.Now(),
	}, nil
}
