package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studymate-agent/internal/domain"
)

const defaultLLMTimeout = 60 * time.Second

// LLMClient is a single-prompt text completion collaborator.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// StudyService turns study requests into prompts and relays them to the LLM.
type StudyService struct {
	llm     LLMClient
	timeout time.Duration
	logger  *slog.Logger
}

func NewStudyService(llm LLMClient, timeout time.Duration, logger *slog.Logger) (*StudyService, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyService{llm: llm, timeout: timeout, logger: logger}, nil
}

// Generate builds the prompt for req and relays it.
func (s *StudyService) Generate(ctx context.Context, req domain.Request) (string, error) {
	if req == nil {
		return "", newError(ErrorInvalidInput, "nil_request", nil)
	}
	prompt := BuildPrompt(req)
	s.logger.Debug("formatted prompt", "kind", req.Kind(), "prompt", prompt)
	return s.Relay(ctx, prompt)
}

// Relay calls the LLM exactly once and returns its text unmodified. The wait
// is bounded by the service timeout even if the client ignores ctx.
func (s *StudyService) Relay(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	start := time.Now()
	s.logger.Info("starting LLM request")
	go func() {
		text, err := s.llm.Complete(ctx, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			s.logger.Error("LLM request failed", "err", res.err, "elapsed", time.Since(start))
			return "", classifyLLMError(res.err)
		}
		s.logger.Info("LLM request finished", "elapsed", time.Since(start), "chars", len(res.text))
		return res.text, nil
	case <-ctx.Done():
		s.logger.Error("LLM request abandoned", "err", ctx.Err(), "elapsed", time.Since(start))
		return "", classifyLLMError(ctx.Err())
	}
}

func classifyLLMError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newError(ErrorTimeout, "llm_timeout", err)
	case errors.Is(err, context.Canceled):
		return newError(ErrorInternal, "request_canceled", err)
	}
	if status, ok := upstreamStatusCode(err); ok && status == 429 {
		return newError(ErrorRateLimited, "llm_rate_limited", err)
	}
	return newError(ErrorUpstream, "llm_error", err)
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}
