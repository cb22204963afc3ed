// Package github implements an IssueSource backed by the GitHub REST API.
//
// The source lists the issues of a single repository filtered by label and
// state. Each call maps to exactly one API request; paging is left to the
// caller.
//
// # Authentication
//
// A personal access token is optional. Without one, requests are made
// anonymously and GitHub allows 60 requests per hour.
//
// # Rate Limiting
//
// Requests pass through a token bucket before reaching the API. When GitHub
// reports the limit as exhausted, the source fails fast with
// [domain.ErrRateLimited] instead of waiting for the reset.
//
// # Example Usage
//
//	cfg, _ := github.ConfigFromSettings(settings)
//	client := github.NewClient(cfg, tokenProvider)
//	source := github.NewSource(client)
//
//	issues, err := source.ListIssues(ctx, driven.IssueQuery{Label: "blog"})
package github
