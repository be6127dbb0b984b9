package clients

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spacesedan/prsentiment/internal/models"
)

// ReadPullRequestNumber reads the PR number from a GitHub Actions event file.
func ReadPullRequestNumber(eventPath string) (int, error) {
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return 0, fmt.Errorf("reading event file: %w", err)
	}

	var event models.GitHubEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("parsing event file: %w", err)
	}
	if event.PullRequest.Number <= 0 {
		return 0, fmt.Errorf("no pull_request.number in event file %s", eventPath)
	}
	return event.PullRequest.Number, nil
}
