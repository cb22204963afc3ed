package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// SourceType identifies where raw issues are read from.
type SourceType string

// Available source types.
const (
	// SourceTypeGitHub reads issues from the GitHub REST API.
	SourceTypeGitHub SourceType = "github"

	// SourceTypeFilesystem reads issue JSON dumps from a local directory.
	SourceTypeFilesystem SourceType = "filesystem"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeGitHub, SourceTypeFilesystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// CacheBackend identifies where fetched issue pages are kept for reuse.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendMemory keeps pages in process memory.
	CacheBackendMemory CacheBackend = "memory"

	// CacheBackendSQLite keeps pages in a SQLite database so that
	// consecutive CLI invocations share them.
	CacheBackendSQLite CacheBackend = "sqlite"

	// CacheBackendNone disables caching.
	CacheBackendNone CacheBackend = "none"
)

// IsValid returns true if the cache backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendMemory, CacheBackendSQLite, CacheBackendNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendMemory:
		return "In-memory (per process)"
	case CacheBackendSQLite:
		return "SQLite (shared across runs)"
	case CacheBackendNone:
		return "Disabled"
	default:
		return unknownDescription
	}
}

// Default settings values.
const (
	DefaultLabel     = "blog"
	DefaultMaxPages  = 10
	DefaultCacheTTL  = 60 * time.Second
	DefaultHTTPPort  = 8080
	DefaultGitHubAPI = "https://api.github.com/"
)

// Settings holds application configuration.
type Settings struct {
	// Source selects where raw issues come from.
	Source SourceType

	// SourcePath is the dump directory for the filesystem source.
	SourcePath string

	// Owner and Repo identify the GitHub repository holding the posts.
	Owner string
	Repo  string

	// Label is the marker label that turns an issue into a post.
	Label string

	// Token is the GitHub access token. Empty means anonymous access.
	Token string

	// APIURL is the GitHub API base URL.
	APIURL string

	// PageSize is the default listing page size.
	PageSize int

	// MaxPages bounds how many listing pages a slug lookup walks.
	MaxPages int

	// Cache selects the cache backend and CacheTTL its reuse window.
	Cache    CacheBackend
	CacheTTL time.Duration

	// DataDir holds the SQLite cache database.
	DataDir string

	// BaseURL is the public site URL used for sitemaps.
	BaseURL string

	// HTTPPort is the port for the HTTP API server.
	HTTPPort int
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Source:   SourceTypeGitHub,
		Label:    DefaultLabel,
		APIURL:   DefaultGitHubAPI,
		PageSize: DefaultPageSize,
		MaxPages: DefaultMaxPages,
		Cache:    CacheBackendMemory,
		CacheTTL: DefaultCacheTTL,
		HTTPPort: DefaultHTTPPort,
	}
}

// Validate checks that the settings can drive an issue source.
func (s *Settings) Validate() error {
	if !s.Source.IsValid() {
		return fmt.Errorf("%w: unknown source type %q", ErrInvalidInput, s.Source)
	}
	if !s.Cache.IsValid() {
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidInput, s.Cache)
	}
	switch s.Source {
	case SourceTypeGitHub:
		if s.Owner == "" || s.Repo == "" {
			return fmt.Errorf("%w: github.owner and github.repo are required "+
				"(set in config file or REPO_OWNER/REPO_NAME env vars)", ErrNotConfigured)
		}
	case SourceTypeFilesystem:
		if s.SourcePath == "" {
			return fmt.Errorf("%w: source.path is required for the filesystem source", ErrNotConfigured)
		}
	}
	if s.Label == "" {
		return fmt.Errorf("%w: github.label must not be empty", ErrInvalidInput)
	}
	return nil
}

// AuthMethod returns how the issue tracker will be accessed.
func (s *Settings) AuthMethod() AuthMethod {
	if s.Token == "" {
		return AuthMethodNone
	}
	return AuthMethodPAT
}
