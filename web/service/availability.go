package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gamevault/logger"
)

// AvailabilityStatus classifies the result of a name availability lookup.
type AvailabilityStatus string

const (
	StatusTaken     AvailabilityStatus = "taken"
	StatusAvailable AvailabilityStatus = "available"
	StatusUnknown   AvailabilityStatus = "unknown"
)

const (
	mojangAPIURL  = "https://api.mojang.com"
	lookupTimeout = 5 * time.Second
)

// AvailabilityService checks whether a game name is already registered in the
// Mojang profile registry. Lookups are stateless and independent of sessions.
type AvailabilityService struct {
	client  *http.Client
	baseURL string
}

func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{
		client:  &http.Client{Timeout: lookupTimeout},
		baseURL: mojangAPIURL,
	}
}

// NewAvailabilityServiceWithBaseURL points the service at an alternative
// registry endpoint. Used in tests.
func NewAvailabilityServiceWithBaseURL(baseURL string) *AvailabilityService {
	s := NewAvailabilityService()
	s.baseURL = baseURL
	return s
}

// CheckName performs a single outbound lookup for name. A profile hit maps to
// StatusTaken, an empty response to StatusAvailable, and everything else
// (unexpected status, network failure, timeout) to StatusUnknown. It never
// returns an error: StatusUnknown means "no information", not failure.
func (s *AvailabilityService) CheckName(ctx context.Context, name string) AvailabilityStatus {
	lookupURL := fmt.Sprintf("%s/users/profiles/minecraft/%s", s.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		logger.Warning("build availability request err:", err)
		return StatusUnknown
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warningf("availability lookup for %q failed: %v", name, err)
		return StatusUnknown
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return StatusTaken
	case http.StatusNoContent:
		return StatusAvailable
	default:
		logger.Warningf("availability lookup for %q returned status %d", name, resp.StatusCode)
		return StatusUnknown
	}
}
