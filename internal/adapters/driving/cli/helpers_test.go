package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/issueblog/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/issueblog/internal/connectors/filesystem"
	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/services"
	"github.com/custodia-labs/issueblog/internal/normalisers/post"
)

var fixtureTime = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func fixtureIssues() []domain.RawIssue {
	blog := []domain.Label{{Name: "blog"}}
	return []domain.RawIssue{
		{
			Number:    3,
			Title:     "Issue title",
			Body:      "---\nslug: hello-world\nlang: en\ntitle: Hello World\n---\n## Intro\ntext\n### Detail\nmore",
			State:     "open",
			CreatedAt: fixtureTime.Add(2 * time.Hour),
			UpdatedAt: fixtureTime.Add(3 * time.Hour),
			Labels:    blog,
		},
		{
			Number:    2,
			Title:     "你好",
			Body:      "正文",
			State:     "open",
			CreatedAt: fixtureTime.Add(time.Hour),
			UpdatedAt: fixtureTime.Add(time.Hour),
			Labels:    blog,
		},
		{
			Number:    1,
			Title:     "Not a post",
			Body:      "---\nslug: hidden\nlang: en\n---\nx",
			State:     "open",
			CreatedAt: fixtureTime,
			Labels:    []domain.Label{{Name: "bug"}},
		},
	}
}

// setupTestServices wires real services over a filesystem dump and returns
// the settings service for inspection.
func setupTestServices(t *testing.T) *services.SettingsService {
	t.Helper()

	dir := t.TempDir()
	src := filesystem.New(dir)
	require.NoError(t, src.WriteIssues(context.Background(), fixtureIssues()))

	settingsSvc := services.NewSettingsService(memory.NewConfigStore(), func(string) string { return "" })
	settings := domain.DefaultSettings()
	settings.BaseURL = "https://blog.example.com"

	postSvc := services.NewPostService(src, post.New(), &settings)
	postSvc.SetClock(func() time.Time { return fixtureTime })

	SetServices(Services{
		Posts:    postSvc,
		Export:   services.NewExportService(src, &settings),
		Settings: settingsSvc,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return settingsSvc
}

// runCommand executes the root command with args and returns its output.
// Flag variables are reset first because cobra keeps them between runs.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	postLang = string(domain.DefaultLocale)
	postJSON = false
	listPage = 1
	listPerPage = domain.DefaultPageSize
	sitemapBaseURL = ""
	servePort = 0

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
