package domain

import "time"

// RawIssue is an issue record as returned by the issue tracker.
// JSON tags follow the GitHub REST API so that dumps of the API
// response decode directly.
type RawIssue struct {
	ID          int64           `json:"id"`
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	State       string          `json:"state,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Labels      []Label         `json:"labels"`
	User        User            `json:"user"`
	HTMLURL     string          `json:"html_url"`
	PullRequest *PullRequestRef `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether the tracker returned a pull request
// through its issues endpoint.
func (i *RawIssue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// HasLabel returns true if the issue carries a label with the given name.
func (i *RawIssue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Label is an issue label.
type Label struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// User is the author of an issue.
type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// PullRequestRef marks an issue record that is really a pull request.
type PullRequestRef struct {
	URL     string `json:"url,omitempty"`
	HTMLURL string `json:"html_url,omitempty"`
}
