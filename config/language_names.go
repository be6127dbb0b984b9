package config

import (
	"fmt"
	"strings"

	"github.com/spacesedan/prsentiment/internal/models"
)

// defaultLanguageNames covers the languages the report knows how to label
// without extra configuration.
var defaultLanguageNames = map[models.LanguageCode]string{
	"ar": "Arabic",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nb": "Norwegian",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sv": "Swedish",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

func DefaultLanguageNames() map[models.LanguageCode]string {
	out := make(map[models.LanguageCode]string, len(defaultLanguageNames))
	for k, v := range defaultLanguageNames {
		out[k] = v
	}
	return out
}

// parseLanguageNames parses "de=German,es=Spanish" overrides.
func parseLanguageNames(raw string) (map[models.LanguageCode]string, error) {
	out := make(map[models.LanguageCode]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, name, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || strings.TrimSpace(code) == "" || name == "" {
			return nil, fmt.Errorf("invalid language name entry %q, want code=Name", pair)
		}
		out[models.NormalizeLanguageCode(code)] = name
	}
	return out, nil
}
