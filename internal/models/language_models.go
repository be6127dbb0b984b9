package models

import (
	"sort"
	"strings"
)

// LanguageCode is a lower-case ISO 639-1 tag such as "de" or "es".
type LanguageCode string

func NormalizeLanguageCode(raw string) LanguageCode {
	code := strings.ToLower(strings.TrimSpace(raw))
	// "de-AT", "es_MX" -> base language
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return LanguageCode(code)
}

// LanguageSet is an immutable set of language codes. The zero value is empty.
type LanguageSet struct {
	codes map[LanguageCode]struct{}
}

func NewLanguageSet(codes ...LanguageCode) LanguageSet {
	set := LanguageSet{codes: make(map[LanguageCode]struct{}, len(codes))}
	for _, c := range codes {
		c = NormalizeLanguageCode(string(c))
		if c == "" {
			continue
		}
		set.codes[c] = struct{}{}
	}
	return set
}

func (s LanguageSet) Contains(code LanguageCode) bool {
	_, ok := s.codes[code]
	return ok
}

func (s LanguageSet) Len() int {
	return len(s.codes)
}

// Codes returns the members in sorted order.
func (s LanguageSet) Codes() []LanguageCode {
	out := make([]LanguageCode, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s LanguageSet) String() string {
	codes := s.Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

type DetectOutcome string

const (
	DetectSupported      DetectOutcome = "supported"
	DetectTargetLanguage DetectOutcome = "target_language"
	DetectUnsupported    DetectOutcome = "unsupported"
	DetectAmbiguous      DetectOutcome = "ambiguous"
	DetectEmpty          DetectOutcome = "empty"
)

// Detection is the result of language detection. Language is set for
// supported, target_language and unsupported outcomes.
type Detection struct {
	Language LanguageCode  `json:"language,omitempty"`
	Outcome  DetectOutcome `json:"outcome"`
}

func (d Detection) Supported() bool {
	return d.Outcome == DetectSupported
}
