package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/prsentiment/internal/models"
)

const (
	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"

	DetectorAccuracyLow  = "low"
	DetectorAccuracyHigh = "high"

	defaultSupportedLanguages = "de,es"
	defaultTargetLanguage     = "en"
	defaultPositiveThreshold  = 0.10
	defaultNegativeThreshold  = -0.10
	defaultTruncateLength     = 50
	defaultGoogleTranslateURL = "https://translation.googleapis.com"
	defaultOpenAIModel        = "gpt-4o-mini"
	defaultTranslationTimeout = 15 * time.Second
	defaultCacheTTL           = 24 * time.Hour
	defaultGitHubAPIURL       = "https://api.github.com"
)

// Settings is the static configuration for one pipeline run. It is built once
// and only read afterwards.
type Settings struct {
	SupportedLanguages models.LanguageSet
	TargetLanguage     models.LanguageCode
	LanguageNames      map[models.LanguageCode]string

	PositiveThreshold float64
	NegativeThreshold float64
	TruncateLength    int

	// lingua minimum relative distance, 0 disables the filter
	DetectorMinRelativeDistance float64
	// low loads only the small trigram models
	DetectorAccuracy            string

	Translator         string
	TranslationTimeout time.Duration
	GoogleAPIKey       string
	GoogleTranslateURL string
	OpenAIAPIKey       string
	OpenAIModel        string

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool
	CacheTTL       time.Duration

	GitHubToken      string
	GitHubAPIURL     string
	GitHubRepository string
	GitHubEventPath  string

	LogLevel slog.Level
}

// LoadSettings reads Settings from the process environment and validates them.
func LoadSettings() (Settings, error) {
	return loadSettings(os.LookupEnv)
}

func loadSettings(lookup func(string) (string, bool)) (Settings, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	var errs []error

	s := Settings{
		TargetLanguage:     models.NormalizeLanguageCode(get("TARGET_LANGUAGE", defaultTargetLanguage)),
		DetectorAccuracy:   strings.ToLower(get("DETECTOR_ACCURACY", DetectorAccuracyLow)),
		Translator:         strings.ToLower(get("TRANSLATOR", TranslatorGoogle)),
		GoogleAPIKey:       get("GOOGLE_TRANSLATE_API_KEY", ""),
		GoogleTranslateURL: strings.TrimRight(get("GOOGLE_TRANSLATE_URL", defaultGoogleTranslateURL), "/"),
		OpenAIAPIKey:       get("OPENAI_API_KEY", ""),
		OpenAIModel:        get("OPENAI_MODEL", defaultOpenAIModel),
		ValkeyAddress:      get("VALKEY_INIT_ADDRESS", ""),
		ValkeyPassword:     get("VALKEY_PASSWORD", ""),
		ValkeyTLS:          get("VALKEY_TLS", "") == "true",
		GitHubToken:        get("GITHUB_TOKEN", ""),
		GitHubAPIURL:       strings.TrimRight(get("GITHUB_API_URL", defaultGitHubAPIURL), "/"),
		GitHubRepository:   get("GITHUB_REPOSITORY", ""),
		GitHubEventPath:    get("GITHUB_EVENT_PATH", ""),
	}

	var codes []models.LanguageCode
	for _, raw := range strings.Split(get("SUPPORTED_LANGUAGES", defaultSupportedLanguages), ",") {
		codes = append(codes, models.NormalizeLanguageCode(raw))
	}
	s.SupportedLanguages = models.NewLanguageSet(codes...)

	s.LanguageNames = DefaultLanguageNames()
	if raw := get("LANGUAGE_NAMES", ""); raw != "" {
		overrides, err := parseLanguageNames(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("LANGUAGE_NAMES: %w", err))
		}
		for code, name := range overrides {
			s.LanguageNames[code] = name
		}
	}

	s.PositiveThreshold = parseFloat(get, "SENTIMENT_POSITIVE_THRESHOLD", defaultPositiveThreshold, &errs)
	s.NegativeThreshold = parseFloat(get, "SENTIMENT_NEGATIVE_THRESHOLD", defaultNegativeThreshold, &errs)
	s.DetectorMinRelativeDistance = parseFloat(get, "DETECTOR_MIN_RELATIVE_DISTANCE", 0, &errs)
	s.TruncateLength = parseInt(get, "REPORT_TRUNCATE_LENGTH", defaultTruncateLength, &errs)
	s.TranslationTimeout = parseDuration(get, "TRANSLATION_TIMEOUT", defaultTranslationTimeout, &errs)
	s.CacheTTL = parseDuration(get, "TRANSLATION_CACHE_TTL", defaultCacheTTL, &errs)

	level, err := ParseLogLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, err)
	}
	s.LogLevel = level

	if len(errs) > 0 {
		return Settings{}, errors.Join(errs...)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the invariants the pipeline relies on. Every supported
// language must have a display name so the report never renders a blank.
func (s Settings) Validate() error {
	var errs []error

	if s.SupportedLanguages.Len() == 0 {
		errs = append(errs, errors.New("SUPPORTED_LANGUAGES must not be empty"))
	}
	if s.TargetLanguage == "" {
		errs = append(errs, errors.New("TARGET_LANGUAGE must not be empty"))
	}
	if s.SupportedLanguages.Contains(s.TargetLanguage) {
		errs = append(errs, fmt.Errorf("SUPPORTED_LANGUAGES must not contain the target language %q", s.TargetLanguage))
	}
	for _, code := range s.SupportedLanguages.Codes() {
		if strings.TrimSpace(s.LanguageNames[code]) == "" {
			errs = append(errs, fmt.Errorf("no display name for supported language %q, add it to LANGUAGE_NAMES", code))
		}
	}
	if s.PositiveThreshold < 0 || s.PositiveThreshold > 1 {
		errs = append(errs, fmt.Errorf("SENTIMENT_POSITIVE_THRESHOLD %.2f must be in [0, 1]", s.PositiveThreshold))
	}
	if s.NegativeThreshold > 0 || s.NegativeThreshold < -1 {
		errs = append(errs, fmt.Errorf("SENTIMENT_NEGATIVE_THRESHOLD %.2f must be in [-1, 0]", s.NegativeThreshold))
	}
	if s.TruncateLength <= 0 {
		errs = append(errs, fmt.Errorf("REPORT_TRUNCATE_LENGTH must be positive, got %d", s.TruncateLength))
	}
	if s.DetectorMinRelativeDistance < 0 || s.DetectorMinRelativeDistance > 0.99 {
		errs = append(errs, fmt.Errorf("DETECTOR_MIN_RELATIVE_DISTANCE %.2f must be in [0, 0.99]", s.DetectorMinRelativeDistance))
	}
	if s.DetectorAccuracy != DetectorAccuracyLow && s.DetectorAccuracy != DetectorAccuracyHigh {
		errs = append(errs, fmt.Errorf("unknown DETECTOR_ACCURACY %q, want %q or %q", s.DetectorAccuracy, DetectorAccuracyLow, DetectorAccuracyHigh))
	}
	if s.ValkeyAddress != "" && s.CacheTTL < time.Second {
		errs = append(errs, fmt.Errorf("TRANSLATION_CACHE_TTL must be at least 1s, got %s", s.CacheTTL))
	}
	switch s.Translator {
	case TranslatorGoogle:
	case TranslatorOpenAI:
		if s.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when TRANSLATOR=openai"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown TRANSLATOR %q, want %q or %q", s.Translator, TranslatorGoogle, TranslatorOpenAI))
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func parseFloat(get func(string, string) string, key string, def float64, errs *[]error) float64 {
	raw := get(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func parseInt(get func(string, string) string, key string, def int, errs *[]error) int {
	raw := get(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func parseDuration(get func(string, string) string, key string, def time.Duration, errs *[]error) time.Duration {
	raw := get(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}
