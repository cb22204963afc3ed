package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issueblog/internal/core/domain"
	"github.com/custodia-labs/issueblog/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.IssueSource = (*Source)(nil)

// Source lists blog issues from a GitHub repository, newest first.
type Source struct {
	client *Client
}

// NewSource creates an issue source backed by client.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// ListIssues fetches one page of issues carrying the query label.
// Filtering by label and state is done by GitHub.
func (s *Source) ListIssues(ctx context.Context, q driven.IssueQuery) ([]domain.RawIssue, error) {
	state := q.State
	if state == "" {
		state = driven.IssueStateOpen
	}
	opts := &gh.IssueListByRepoOptions{
		State:     state,
		Sort:      "created",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			Page:    q.Page,
			PerPage: q.PerPage,
		},
	}
	if q.Label != "" {
		opts.Labels = []string{q.Label}
	}

	issues, err := s.client.ListIssuesPage(ctx, opts)
	if err != nil {
		return nil, err
	}

	raw := make([]domain.RawIssue, 0, len(issues))
	for _, issue := range issues {
		if issue != nil {
			raw = append(raw, toRawIssue(issue))
		}
	}
	return raw, nil
}

// toRawIssue converts a go-github issue into the domain shape.
func toRawIssue(issue *gh.Issue) domain.RawIssue {
	raw := domain.RawIssue{
		ID:        issue.GetID(),
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
		HTMLURL:   issue.GetHTMLURL(),
		Labels:    make([]domain.Label, 0, len(issue.Labels)),
		User: domain.User{
			Login:     issue.GetUser().GetLogin(),
			AvatarURL: issue.GetUser().GetAvatarURL(),
			HTMLURL:   issue.GetUser().GetHTMLURL(),
		},
	}
	for _, l := range issue.Labels {
		raw.Labels = append(raw.Labels, domain.Label{
			ID:    l.GetID(),
			Name:  l.GetName(),
			Color: l.GetColor(),
		})
	}
	if links := issue.GetPullRequestLinks(); links != nil {
		raw.PullRequest = &domain.PullRequestRef{
			URL:     links.GetURL(),
			HTMLURL: links.GetHTMLURL(),
		}
	}
	return raw
}
