// Package notify delivers club event webhooks, e.g. a schedule change pushed
// to a club's registered endpoint.
package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("webhook transient failure")

// Event is the envelope posted to a club webhook endpoint.
type Event struct {
	Type       string    `json:"type"`
	ClubID     string    `json:"clubId"`
	ResourceID string    `json:"resourceId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

type WebhookPublisherConfig struct {
	EndpointURL    string
	SigningToken   string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

type WebhookPublisher struct {
	client         *http.Client
	endpointURL    string
	signingToken   string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhookPublisher(cfg WebhookPublisherConfig, logger *logging.Logger) *WebhookPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &WebhookPublisher{
		client: &http.Client{
			Timeout: timeout,
		},
		endpointURL:    strings.TrimRight(strings.TrimSpace(cfg.EndpointURL), "/"),
		signingToken:   strings.TrimSpace(cfg.SigningToken),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (p *WebhookPublisher) Publish(ctx context.Context, event Event) error {
	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "webhook circuit breaker rejected request", "state", p.breaker.State())
			return fmt.Errorf("webhook endpoint is temporarily unavailable: %w", err)
		}
	}

	if strings.TrimSpace(event.Type) == "" {
		return crerr.New("event type is required")
	}
	endpointURL, err := validateHTTPBaseURL(p.endpointURL)
	if err != nil {
		return crerr.Wrap(err, "invalid NOTIFY_WEBHOOK_URL")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := sonic.Marshal(event)
	if err != nil {
		return crerr.Wrap(err, "marshal webhook event")
	}
	bodyText := truncateForLog(string(body), 4096)
	curlPreview := buildWebhookCurlPreview(endpointURL, bodyText, p.signingToken != "")

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.endpoint_url", endpointURL),
			attribute.String("webhook.event_type", event.Type),
			attribute.String("webhook.club_id", event.ClubID),
			attribute.String("webhook.request_body", bodyText),
			attribute.String("webhook.request_curl_preview", curlPreview),
		)
	}
	p.logger.InfoContext(ctx, "webhook publish request", "event_type", event.Type, "club_id", event.ClubID, "endpoint_url", endpointURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.signingToken != "" {
		req.Header.Set("X-Webhook-Token", p.signingToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post webhook event_type=%s endpoint_url=%s: %v", errWebhookTransient, event.Type, endpointURL, err)
		p.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf(
				"%w: post webhook status=%d event_type=%s endpoint_url=%s body=%s",
				errWebhookTransient,
				resp.StatusCode,
				event.Type,
				endpointURL,
				strings.TrimSpace(string(raw)),
			)
			p.recordCircuitResult(callErr)
			return callErr
		}

		callErr := fmt.Errorf(
			"post webhook status=%d event_type=%s endpoint_url=%s body=%s",
			resp.StatusCode,
			event.Type,
			endpointURL,
			strings.TrimSpace(string(raw)),
		)
		p.recordCircuitResult(callErr)
		return callErr
	}

	p.logger.InfoContext(ctx, "webhook event published", "event_type", event.Type, "club_id", event.ClubID)
	p.recordCircuitResult(nil)
	return nil
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func buildWebhookCurlPreview(endpointURL, body string, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart("POST")
	appendPart(shellQuote(endpointURL))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("X-Webhook-Token: ***"))
	}
	appendPart("-d")
	appendPart(shellQuote(body))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}

func (p *WebhookPublisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	if err == nil {
		p.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		p.breaker.RecordFailure()
		return
	}
	p.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
