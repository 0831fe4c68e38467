package completion

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
	"github.com/wordweaver-ai/wordweaver/pkg/errors"
)

// Provider turns a prompt into at most one completion text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service talks to an OpenAI-compatible chat completion API (Groq by
// default). It is built once and shared by all requests.
type Service struct {
	client openai.Client
	model  string
	logger *logger.Logger
}

func New(apiKey, baseURL, model string, httpClient *http.Client, log *logger.Logger) *Service {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &Service{
		client: openai.NewClient(opts...),
		model:  model,
		logger: log,
	}
}

func (s *Service) Model() string {
	return s.model
}

// Complete sends prompt as a single user message and asks for one choice.
// A response without text is reported as ErrCodeEmptyCompletion; every other
// failure as ErrCodeProvider.
func (s *Service) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		N: openai.Int(1),
	})
	if err != nil {
		var apiErr *openai.Error
		if stderrors.As(err, &apiErr) {
			s.logger.Debug("completion API error", "model", s.model, "status", apiErr.StatusCode, "error", err)
		}
		return "", errors.Wrap(err, errors.ErrCodeProvider, "completion request failed")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New(errors.ErrCodeEmptyCompletion, "completion has no content")
	}

	return resp.Choices[0].Message.Content, nil
}
