package translation

import "time"

const (
	USER_AGENT = "prsentiment/1.0 (+https://github.com/spacesedan/prsentiment)"

	CACHE_KEY_PREFIX    = "prsentiment:translation:"
	CACHE_OP_TIMEOUT    = 2 * time.Second
	VALKEY_PING_TIMEOUT = 3 * time.Second
)
