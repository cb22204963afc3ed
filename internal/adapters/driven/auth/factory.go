package auth

import (
	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// NewTokenProvider returns the token provider matching the settings:
// a static PAT provider when a token is configured, otherwise anonymous.
func NewTokenProvider(settings *domain.Settings) driven.TokenProvider {
	if settings == nil || settings.AuthMethod() == domain.AuthMethodNone {
		return NewNullTokenProvider()
	}
	return NewStaticTokenProvider(settings.Token)
}
