package translation

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spacesedan/prsentiment/internal/models"
)

const openAITranslatePrompt = `You translate code review comments.
Translate the user's message from %s to %s.
Return only the translation: no quotes, no explanations, no markdown fences.
Keep identifiers, file names and code exactly as written.`

// OpenAIBackend translates with a chat completion model.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

func NewOpenAIBackend(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *OpenAIBackend {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithHeader("User-Agent", USER_AGENT),
	}, opts...)

	slog.Info("[OpenAITranslate] Client initialized",
		slog.String("model", model),
		slog.Duration("timeout", timeout))

	return &OpenAIBackend{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (o *OpenAIBackend) Name() string {
	return "openai"
}

func (o *OpenAIBackend) Translate(ctx context.Context, text string, source, target models.LanguageCode) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(openAITranslatePrompt, source, target)),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(o.model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyTranslation
	}
	translated := strings.TrimSpace(completion.Choices[0].Message.Content)
	if translated == "" {
		return "", ErrEmptyTranslation
	}
	return translated, nil
}
