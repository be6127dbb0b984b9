package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/prsentiment/config"
	"github.com/spacesedan/prsentiment/internal/monitoring"
)

func TestBuildProbes(t *testing.T) {
	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resources":{}}`))
	}))
	defer github.Close()

	translate := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer translate.Close()

	s := config.Settings{
		TargetLanguage:     "en",
		Translator:         config.TranslatorGoogle,
		TranslationTimeout: 5 * time.Second,
		GoogleAPIKey:       "bad",
		GoogleTranslateURL: translate.URL,
		GitHubToken:        "test-token",
		GitHubAPIURL:       github.URL,
	}

	probes := buildProbes(s)
	require.Len(t, probes, 2)

	results := monitoring.RunProbes(context.Background(), probes)
	assert.Equal(t, "github", results[0].Name)
	assert.True(t, results[0].Healthy, results[0].Error)
	assert.Equal(t, "translator:google", results[1].Name)
	assert.False(t, results[1].Healthy)
	assert.Contains(t, results[1].Error, "status 403")
}

func TestBuildProbesIncludesValkeyWhenConfigured(t *testing.T) {
	probes := buildProbes(config.Settings{Translator: config.TranslatorOpenAI, ValkeyAddress: "127.0.0.1:6379"})

	require.Len(t, probes, 3)
	assert.Equal(t, "valkey", probes[2].Name)
}
