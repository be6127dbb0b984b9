package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/spacesedan/prsentiment/internal/models"
)

const (
	googleTranslatePath  = "/language/translate/v2"
	googleTranslateScope = "https://www.googleapis.com/auth/cloud-translation"
)

type googleTranslateRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type googleTranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// GoogleBackend calls the Cloud Translation v2 REST API.
type GoogleBackend struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGoogleBackend authenticates with apiKey when set, otherwise with
// Application Default Credentials.
func NewGoogleBackend(ctx context.Context, baseURL, apiKey string, timeout time.Duration) (*GoogleBackend, error) {
	var client *http.Client
	if apiKey != "" {
		client = &http.Client{Timeout: timeout}
	} else {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
		c, err := google.DefaultClient(ctx, googleTranslateScope)
		if err != nil {
			return nil, fmt.Errorf("loading google default credentials: %w", err)
		}
		c.Timeout = timeout
		client = c
	}

	slog.Info("[GoogleTranslate] Client initialized",
		slog.Duration("timeout", timeout),
		slog.Bool("api_key", apiKey != ""))

	return &GoogleBackend{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

func (g *GoogleBackend) Name() string {
	return "google"
}

func (g *GoogleBackend) Translate(ctx context.Context, text string, source, target models.LanguageCode) (string, error) {
	body, err := json.Marshal(googleTranslateRequest{
		Q:      []string{text},
		Source: string(source),
		Target: string(target),
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	// keep the key out of the URL, transport errors print it
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+googleTranslatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("X-Goog-Api-Key", g.apiKey)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling translate API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate API error (status %d): %s", resp.StatusCode, preview(respBody))
	}

	var out googleTranslateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(out.Data.Translations) == 0 {
		return "", ErrEmptyTranslation
	}

	return out.Data.Translations[0].TranslatedText, nil
}

func preview(body []byte) string {
	raw := string(body)
	if len(raw) > 200 {
		raw = raw[:200]
	}
	return raw
}
