package orchestrator

import (
	"context"
	"time"

	"github.com/wordweaver-ai/wordweaver/internal/infra/limiter"
	"github.com/wordweaver-ai/wordweaver/internal/infra/logger"
	"github.com/wordweaver-ai/wordweaver/internal/service/completion"
	"github.com/wordweaver-ai/wordweaver/internal/service/prompt"
	"github.com/wordweaver-ai/wordweaver/pkg/errors"
)

type GenerateRequest struct {
	RequestID   string
	Description string
	Platform    string
	Style       string
	Language    string
}

type GenerateResponse struct {
	RequestID string
	Result    string
}

type Orchestrator struct {
	provider completion.Provider
	limiter  *limiter.Limiter
	logger   *logger.Logger
}

func New(provider completion.Provider, lim *limiter.Limiter, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		limiter:  lim,
		logger:   log,
	}
}

// Generate builds the caption prompt and makes exactly one provider call.
// Errors keep the provider's code so the transport can map them.
func (o *Orchestrator) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	release, err := o.limiter.Acquire(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRateLimited, "rate limit exceeded")
	}
	defer release()

	o.logger.Info("starting caption generation",
		"request_id", req.RequestID,
		"platform", req.Platform,
		"style", req.Style,
		"language", req.Language,
		"description_len", len(req.Description),
	)

	p := prompt.Build(req.Description, req.Platform, req.Language)

	start := time.Now()
	text, err := o.provider.Complete(ctx, p)
	if err != nil {
		if errors.Is(err, errors.ErrCodeEmptyCompletion) {
			o.logger.Warn("provider returned empty completion",
				"request_id", req.RequestID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		} else {
			o.logger.Error("failed to contact completion provider",
				"request_id", req.RequestID,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		}
		return nil, err
	}

	o.logger.Info("caption generation completed",
		"request_id", req.RequestID,
		"duration_ms", time.Since(start).Milliseconds(),
		"result_len", len(text),
	)

	return &GenerateResponse{
		RequestID: req.RequestID,
		Result:    text,
	}, nil
}
