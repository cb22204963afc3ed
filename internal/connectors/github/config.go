package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/issueblog/internal/core/domain"
)

// Config identifies the repository whose issues hold the posts.
type Config struct {
	Owner string
	Repo  string

	// APIURL is the REST API base URL. Empty means api.github.com.
	APIURL string
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(settings *domain.Settings) (*Config, error) {
	if settings == nil {
		return nil, ErrRepoNotConfigured
	}
	cfg := &Config{
		Owner:  strings.TrimSpace(settings.Owner),
		Repo:   strings.TrimSpace(settings.Repo),
		APIURL: strings.TrimSpace(settings.APIURL),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the repository is set and the API URL parses.
func (c *Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return ErrRepoNotConfigured
	}
	if _, err := c.baseURL(); err != nil {
		return err
	}
	return nil
}

// baseURL returns the API base URL with the trailing slash go-github needs.
// It returns nil for the public API.
func (c *Config) baseURL() (*url.URL, error) {
	if c.APIURL == "" || c.APIURL == domain.DefaultGitHubAPI {
		return nil, nil
	}
	raw := c.APIURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: github.api_url %q", domain.ErrInvalidInput, c.APIURL)
	}
	return u, nil
}
