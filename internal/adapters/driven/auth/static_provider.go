package auth

import (
	"context"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider serves a personal access token read from
// configuration. PATs don't expire, so there is no refresh.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a token provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthInvalid
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodPAT.
func (p *StaticTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPAT
}

// IsAuthenticated returns true if a token is set.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
