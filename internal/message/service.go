package message

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lazycommit/cli/internal/errs"
)

// ErrEmptyResponse is returned when the service answers with no usable text.
var ErrEmptyResponse = errors.New("the model returned an empty response")

// Completer is the narrow contract to the external text-generation service.
type Completer interface {
	Complete(ctx context.Context, prompt, model string, maxTokens int) (string, error)
}

// Service builds prompts and maps completion results onto commit messages.
// Every call is a fresh generation: no retries, no caching.
type Service struct {
	completer Completer
	log       *zap.Logger
}

// NewService wires a completer. A nil logger is replaced with a no-op one.
func NewService(completer Completer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{completer: completer, log: log}
}

// Generate asks the completion service for a commit message describing the
// request's diff. Failures are marked as generation errors; the caller decides
// whether to offer a retry.
func (s *Service) Generate(ctx context.Context, req Request) (Message, error) {
	prompt := BuildPrompt(req)
	s.log.Debug("requesting commit message",
		zap.String("model", req.Model),
		zap.Int("max_tokens", req.MaxTokens),
		zap.String("language", string(req.Language)),
		zap.Int("prompt_bytes", len(prompt)))

	raw, err := s.completer.Complete(ctx, prompt, req.Model, req.MaxTokens)
	if err != nil {
		return Message{}, errs.Generation(errors.Wrap(err, "completion request failed"))
	}

	msg, ok := Parse(raw)
	if !ok {
		return Message{}, errs.Generation(errors.WithHint(ErrEmptyResponse,
			"Try again, or pick a different model with --model."))
	}

	s.log.Debug("parsed commit message",
		zap.String("summary", msg.Summary),
		zap.Int("body_bytes", len(msg.Body)))
	return msg, nil
}
