package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGitHubOwner  = "github.owner"
	keyGitHubRepo   = "github.repo"
	keyGitHubLabel  = "github.label"
	keyGitHubToken  = "github.token"
	keyGitHubAPIURL = "github.api_url"
	keyPageSize     = "posts.page_size"
	keyMaxPages     = "posts.max_pages"
	keyCacheBackend = "cache.backend"
	keyCacheTTL     = "cache.ttl_seconds"
	keySiteBaseURL  = "site.base_url"
	keyHTTPPort     = "http.port"
	keySourceType   = "source.type"
	keySourcePath   = "source.path"
)

// envPrefix prefixes the environment override of every key:
// "github.owner" is overridden by ISSUEBLOG_GITHUB_OWNER.
const envPrefix = "ISSUEBLOG_"

// setting describes one configuration key.
type setting struct {
	key string

	// legacyEnv is an additional environment variable honoured for the key.
	legacyEnv string

	secret  bool
	integer bool

	apply func(s *domain.Settings, value string) error
	value func(s *domain.Settings) string
}

var settingDefs = []setting{
	{
		key:       keyGitHubOwner,
		legacyEnv: "REPO_OWNER",
		apply:     func(s *domain.Settings, v string) error { s.Owner = v; return nil },
		value:     func(s *domain.Settings) string { return s.Owner },
	},
	{
		key:       keyGitHubRepo,
		legacyEnv: "REPO_NAME",
		apply:     func(s *domain.Settings, v string) error { s.Repo = v; return nil },
		value:     func(s *domain.Settings) string { return s.Repo },
	},
	{
		key:   keyGitHubLabel,
		apply: func(s *domain.Settings, v string) error { s.Label = v; return nil },
		value: func(s *domain.Settings) string { return s.Label },
	},
	{
		key:       keyGitHubToken,
		legacyEnv: "GITHUB_TOKEN",
		secret:    true,
		apply:     func(s *domain.Settings, v string) error { s.Token = v; return nil },
		value:     func(s *domain.Settings) string { return s.Token },
	},
	{
		key:   keyGitHubAPIURL,
		apply: func(s *domain.Settings, v string) error { s.APIURL = v; return nil },
		value: func(s *domain.Settings) string { return s.APIURL },
	},
	{
		key:     keyPageSize,
		integer: true,
		apply: func(s *domain.Settings, v string) error {
			n, err := positiveInt(v)
			if err != nil {
				return err
			}
			if n > domain.MaxPageSize {
				return fmt.Errorf("must be at most %d", domain.MaxPageSize)
			}
			s.PageSize = n
			return nil
		},
		value: func(s *domain.Settings) string { return strconv.Itoa(s.PageSize) },
	},
	{
		key:     keyMaxPages,
		integer: true,
		apply: func(s *domain.Settings, v string) error {
			n, err := positiveInt(v)
			s.MaxPages = n
			return err
		},
		value: func(s *domain.Settings) string { return strconv.Itoa(s.MaxPages) },
	},
	{
		key: keyCacheBackend,
		apply: func(s *domain.Settings, v string) error {
			b := domain.CacheBackend(strings.ToLower(v))
			if !b.IsValid() {
				return fmt.Errorf("unknown cache backend %q", v)
			}
			s.Cache = b
			return nil
		},
		value: func(s *domain.Settings) string { return s.Cache.String() },
	},
	{
		key:     keyCacheTTL,
		integer: true,
		apply: func(s *domain.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return errors.New("must be a non-negative number of seconds")
			}
			s.CacheTTL = time.Duration(n) * time.Second
			return nil
		},
		value: func(s *domain.Settings) string { return strconv.Itoa(int(s.CacheTTL / time.Second)) },
	},
	{
		key:   keySiteBaseURL,
		apply: func(s *domain.Settings, v string) error { s.BaseURL = v; return nil },
		value: func(s *domain.Settings) string { return s.BaseURL },
	},
	{
		key:     keyHTTPPort,
		integer: true,
		apply: func(s *domain.Settings, v string) error {
			n, err := positiveInt(v)
			if err == nil && n > 65535 {
				err = errors.New("must be a valid port")
			}
			s.HTTPPort = n
			return err
		},
		value: func(s *domain.Settings) string { return strconv.Itoa(s.HTTPPort) },
	},
	{
		key: keySourceType,
		apply: func(s *domain.Settings, v string) error {
			t := domain.SourceType(strings.ToLower(v))
			if !t.IsValid() {
				return fmt.Errorf("unknown source type %q", v)
			}
			s.Source = t
			return nil
		},
		value: func(s *domain.Settings) string { return s.Source.String() },
	},
	{
		key:   keySourcePath,
		apply: func(s *domain.Settings, v string) error { s.SourcePath = v; return nil },
		value: func(s *domain.Settings) string { return s.SourcePath },
	},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service. getenv looks up
// environment overrides; nil uses os.Getenv.
func NewSettingsService(configStore driven.ConfigStore, getenv func(string) string) *SettingsService {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &SettingsService{
		configStore: configStore,
		getenv:      getenv,
	}
}

// Get returns the effective settings. Invalid stored or environment values
// are reported as errors rather than silently replaced.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	for _, def := range settingDefs {
		value, _, ok := s.lookup(def)
		if !ok {
			continue
		}
		if err := def.apply(&settings, value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, def.key, err)
		}
	}
	return &settings, nil
}

// Entries lists every known key with its effective value.
func (s *SettingsService) Entries() []driving.SettingEntry {
	defaults := domain.DefaultSettings()
	entries := make([]driving.SettingEntry, 0, len(settingDefs))
	for _, def := range settingDefs {
		value, source, ok := s.lookup(def)
		if !ok {
			value, source = def.value(&defaults), driving.SettingSourceDefault
		}
		entries = append(entries, driving.SettingEntry{
			Key:    def.key,
			Value:  value,
			Source: source,
			Secret: def.secret,
		})
	}
	return entries
}

// Set validates and persists one configuration value.
func (s *SettingsService) Set(key, value string) error {
	def, ok := findSetting(key)
	if !ok {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	value = strings.TrimSpace(value)
	scratch := domain.DefaultSettings()
	if err := def.apply(&scratch, value); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	var stored any = value
	if def.integer {
		stored, _ = strconv.Atoi(value)
	}
	if err := s.configStore.Set(def.key, stored); err != nil {
		return fmt.Errorf("set %s: %w", def.key, err)
	}
	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// SetToken persists the GitHub access token.
func (s *SettingsService) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token must not be empty", domain.ErrInvalidInput)
	}
	return s.Set(keyGitHubToken, token)
}

// lookup finds the effective raw value of a key, environment first.
func (s *SettingsService) lookup(def setting) (string, driving.SettingSource, bool) {
	if v := strings.TrimSpace(s.getenv(EnvName(def.key))); v != "" {
		return v, driving.SettingSourceEnv, true
	}
	if def.legacyEnv != "" {
		if v := strings.TrimSpace(s.getenv(def.legacyEnv)); v != "" {
			return v, driving.SettingSourceEnv, true
		}
	}
	if raw, ok := s.configStore.Get(def.key); ok {
		if v := strings.TrimSpace(fmt.Sprint(raw)); v != "" {
			return v, driving.SettingSourceConfig, true
		}
	}
	return "", "", false
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// SettingKeys returns every known configuration key.
func SettingKeys() []string {
	keys := make([]string, len(settingDefs))
	for i, def := range settingDefs {
		keys[i] = def.key
	}
	return keys
}

func findSetting(key string) (setting, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, def := range settingDefs {
		if def.key == key {
			return def, true
		}
	}
	return setting{}, false
}

func positiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errors.New("must be a positive integer")
	}
	return n, nil
}
