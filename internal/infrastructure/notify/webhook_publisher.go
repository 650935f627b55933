package notify

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/platform/resilience"
	"github.com/clubpulse/matchday/internal/usecase"
)

type WebhookPublisherConfig struct {
	URL     string
	Token   string
	Timeout time.Duration

	CircuitFailureCount   int
	CircuitOpenTimeout    time.Duration
	CircuitHalfOpenMaxReq int
}

// WebhookPublisher delivers post-commit notices to a configured HTTP
// endpoint. Delivery is best effort and asynchronous; ingestion never blocks
// or fails on it. A circuit breaker skips delivery attempts while the
// endpoint is down.
type WebhookPublisher struct {
	client  *fasthttp.Client
	url     string
	token   string
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

var _ usecase.Notifier = (*WebhookPublisher)(nil)

func NewWebhookPublisher(cfg WebhookPublisherConfig, logger *logging.Logger) *WebhookPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
		FailureThreshold: cfg.CircuitFailureCount,
		OpenTimeout:      cfg.CircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
	})

	return &WebhookPublisher{
		client:  &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		url:     strings.TrimSpace(cfg.URL),
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		breaker: resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		logger:  logger,
	}
}

func (p *WebhookPublisher) MatchIngested(ctx context.Context, notice usecase.MatchIngestedNotice) {
	if p.url == "" {
		return
	}

	go func() {
		if err := p.deliver(notice); err != nil {
			p.logger.WarnContext(ctx, "webhook delivery failed",
				"match_id", notice.MatchID,
				"club_id", notice.ClubID,
				"error", err,
			)
			return
		}
		p.logger.DebugContext(ctx, "webhook delivered", "match_id", notice.MatchID)
	}()
}

func (p *WebhookPublisher) deliver(notice usecase.MatchIngestedNotice) error {
	if err := p.breaker.Allow(); err != nil {
		return errors.Wrap(err, "webhook circuit open")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body, err := sonic.Marshal(notice)
	if err != nil {
		return errors.Wrap(err, "encode notice")
	}
	if _, err := buf.Write(body); err != nil {
		return errors.Wrap(err, "buffer notice")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(buf.Bytes())

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		p.breaker.RecordFailure()
		return errors.Wrap(err, "post webhook")
	}
	if code := resp.StatusCode(); code/100 != 2 {
		p.breaker.RecordFailure()
		return errors.Newf("webhook returned status %d", code)
	}

	p.breaker.RecordSuccess()
	return nil
}
