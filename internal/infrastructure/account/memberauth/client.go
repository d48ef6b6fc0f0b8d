// Package memberauth verifies access tokens against the club member account
// service via its introspection endpoint. Verified principals are cached
// briefly by token hash, and the endpoint is guarded by a circuit breaker so
// an account service outage degrades to fast failures instead of piling up
// requests.
package memberauth

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/clubadmin/internal/domain/user"
	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/platform/resilience"
	"github.com/pitchside/clubadmin/internal/usecase"
)

var errTransient = errors.New("memberauth: transient failure")

type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.CircuitBreaker
	cache         *principalCache
	logger        *logging.Logger
}

func NewClient(
	httpClient *http.Client,
	baseURL, introspectPath, adminKey string,
	breakerCfg resilience.CircuitBreakerConfig,
	cacheTTL time.Duration,
	logger *logging.Logger,
) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		cfg := resilience.NormalizeCircuitBreakerConfig(breakerCfg)
		breaker = resilience.NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		adminKey:      adminKey,
		breaker:       breaker,
		cache:         newPrincipalCache(cacheTTL, 4096),
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, errors.Mark(errors.New("token is required"), usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if principal, ok := c.cache.Get(cacheKey); ok {
		return principal, nil
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, errors.Mark(errors.Wrap(err, "member account service unavailable"), usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.introspect(ctx, token)
	if c.breaker != nil {
		if errors.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return user.Principal{}, err
	}

	c.cache.Set(cacheKey, principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "request introspection"), errTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, errors.Mark(errors.New("introspection denied"), usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, errors.Mark(errors.Wrap(err, "read introspect response"), errTransient)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "introspection non-200", "status_code", resp.StatusCode)
		failure := errors.Newf("introspection failed with status %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			failure = errors.Mark(failure, errTransient)
		}
		return user.Principal{}, failure
	}

	var decoded introspectResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, errors.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, errors.Mark(errors.New("inactive token"), usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, errors.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
