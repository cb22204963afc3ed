package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceType_IsValid(t *testing.T) {
	assert.True(t, SourceTypeGitHub.IsValid())
	assert.True(t, SourceTypeFilesystem.IsValid())
	assert.False(t, SourceType("gitlab").IsValid())
}

func TestCacheBackend_IsValid(t *testing.T) {
	assert.True(t, CacheBackendMemory.IsValid())
	assert.True(t, CacheBackendSQLite.IsValid())
	assert.True(t, CacheBackendNone.IsValid())
	assert.False(t, CacheBackend("redis").IsValid())
}

func TestCacheBackend_Description(t *testing.T) {
	assert.Equal(t, "Disabled", CacheBackendNone.Description())
	assert.Equal(t, "Unknown", CacheBackend("redis").Description())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, SourceTypeGitHub, s.Source)
	assert.Equal(t, "blog", s.Label)
	assert.Equal(t, DefaultPageSize, s.PageSize)
	assert.Equal(t, DefaultMaxPages, s.MaxPages)
	assert.Equal(t, CacheBackendMemory, s.Cache)
	assert.Equal(t, DefaultCacheTTL, s.CacheTTL)
	assert.Equal(t, AuthMethodNone, s.AuthMethod())
}

func TestSettings_Validate(t *testing.T) {
	t.Run("github requires owner and repo", func(t *testing.T) {
		s := DefaultSettings()

		err := s.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("github with repository is valid", func(t *testing.T) {
		s := DefaultSettings()
		s.Owner = "chizukuo"
		s.Repo = "blog"

		assert.NoError(t, s.Validate())
	})

	t.Run("filesystem requires path", func(t *testing.T) {
		s := DefaultSettings()
		s.Source = SourceTypeFilesystem

		assert.ErrorIs(t, s.Validate(), ErrNotConfigured)

		s.SourcePath = "/tmp/issues"
		assert.NoError(t, s.Validate())
	})

	t.Run("rejects unknown cache backend", func(t *testing.T) {
		s := DefaultSettings()
		s.Owner, s.Repo = "o", "r"
		s.Cache = "redis"

		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})

	t.Run("rejects empty label", func(t *testing.T) {
		s := DefaultSettings()
		s.Owner, s.Repo = "o", "r"
		s.Label = ""

		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})
}

func TestSettings_AuthMethod(t *testing.T) {
	s := Settings{Token: "ghp_x"}
	assert.Equal(t, AuthMethodPAT, s.AuthMethod())
}
