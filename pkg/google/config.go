package google

import (
	"errors"
	"time"
)

const (
	DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	DefaultTimeout     = 10 * time.Second
)

// Config holds Google userinfo client configuration
type Config struct {
	UserInfoURL string
	Timeout     time.Duration
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.UserInfoURL == "" {
		return errors.New("userinfo URL is required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}
