package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 8 * time.Second
	GITHUB_TIMEOUT  = 30 * time.Second
	GITHUB_PER_PAGE = 100
	// hard stop for runaway pagination
	GITHUB_MAX_PAGES = 50
	USER_AGENT       = "prsentiment-client/1.0 (+https://github.com/spacesedan/prsentiment)"
)
