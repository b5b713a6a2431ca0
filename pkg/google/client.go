package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/ikkim/foodreview-backend/pkg/logger"
	"github.com/pkg/errors"
)

const maxResponseBytes = 1 << 20

// Client represents a Google userinfo API client
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Google client with the given configuration
func NewClient(config Config) (*Client, error) {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// UserInfo exchanges an access token for the account's profile. Any non-200
// answer means the token was not accepted.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	endpoint, err := url.Parse(c.config.UserInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid userinfo URL")
	}
	query := endpoint.Query()
	query.Set("access_token", accessToken)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Google userinfo request failed", err)
		return nil, errors.Wrapf(ErrNetworkError, "userinfo request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(ErrNetworkError, "read userinfo response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Google rejected access token", map[string]interface{}{
			"status_code": resp.StatusCode,
		})
		return nil, errors.Wrapf(ErrInvalidToken, "userinfo returned status %d", resp.StatusCode)
	}

	var payload userInfoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "decode userinfo: %v", err)
	}
	return payload.toUserInfo(), nil
}
