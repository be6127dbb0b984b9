package models

import "time"

// Comment is a pull request review comment as returned by the GitHub API.
// Only Body is read by the pipeline, the rest is carried for logging.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Path      string    `json:"path,omitempty"`
	Line      int       `json:"line,omitempty"`
	URL       string    `json:"html_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GitHubUser struct {
	Login string `json:"login"`
}

// GitHubReviewComment mirrors the subset of the pulls/{n}/comments payload we need.
type GitHubReviewComment struct {
	ID        int64      `json:"id"`
	User      GitHubUser `json:"user"`
	Body      string     `json:"body"`
	Path      string     `json:"path"`
	Line      int        `json:"line"`
	HTMLURL   string     `json:"html_url"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c GitHubReviewComment) ToComment() Comment {
	return Comment{
		ID:        c.ID,
		Author:    c.User.Login,
		Body:      c.Body,
		Path:      c.Path,
		Line:      c.Line,
		URL:       c.HTMLURL,
		CreatedAt: c.CreatedAt,
	}
}

type GitHubIssueCommentRequest struct {
	Body string `json:"body"`
}

type GitHubIssueCommentResponse struct {
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}

// GitHubEvent is the part of the Actions event payload that carries the PR number.
type GitHubEvent struct {
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}
