package models

// Translation is the outcome of a translation attempt. FellBack marks that the
// backend failed and Text is the untranslated original.
type Translation struct {
	Text     string       `json:"text"`
	Source   LanguageCode `json:"source"`
	Target   LanguageCode `json:"target"`
	FellBack bool         `json:"fell_back"`
}

type AnalysisRecord struct {
	CommentID           int64        `json:"comment_id,omitempty"`
	OriginalText        string       `json:"original_text"`
	DetectedLanguage    LanguageCode `json:"detected_language"`
	TranslatedText      string       `json:"translated_text"`
	TranslationFellBack bool         `json:"translation_fell_back"`
	Sentiment           Sentiment    `json:"sentiment_analysis"`
}
