package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/craftcms/commerce-paypal-checkout/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// Client executes provider requests against one environment. The token store
// is shared; clients built with the same credentials reuse cached bearer
// tokens across requests.
type Client struct {
	env          Environment
	httpClient   *http.Client
	tokens       TokenStore
	refreshToken string
	logger       *slog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRefreshToken switches token acquisition to the refresh-token flow.
func WithRefreshToken(refreshToken string) ClientOption {
	return func(c *Client) {
		c.refreshToken = refreshToken
	}
}

func NewClient(env Environment, tokens TokenStore, logger *slog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		env:        env,
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute sends one request and normalizes the outcome: a 2xx result becomes
// a Response, anything else becomes a *APIError. Bearer authorization is
// attached to every request except the token requests themselves.
func (c *Client) Execute(ctx context.Context, req *Request) (*Response, error) {
	var bodyReader io.Reader
	contentType := ""

	switch {
	case req.form != nil:
		bodyReader = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.env.BaseURL()+req.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if err := c.injectAuthorization(ctx, httpReq, req); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(req.Name, "transport_error").Inc()
		return nil, fmt.Errorf("error calling paypal: %w", err)
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	metrics.ProviderRequestDuration.WithLabelValues(req.Name, status).Observe(time.Since(start).Seconds())
	metrics.ProviderRequestsTotal.WithLabelValues(req.Name, status).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResult errorResult
		if err := json.Unmarshal(body, &errResult); err != nil || errResult.Message == "" {
			return nil, &APIError{
				Message:    strings.TrimSpace(string(body)),
				StatusCode: resp.StatusCode,
				Raw:        body,
			}
		}
		return nil, &APIError{
			Name:       errResult.Name,
			Message:    errResult.Message,
			StatusCode: resp.StatusCode,
			Raw:        body,
		}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Raw:        body,
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &response.Result); err != nil {
			return nil, fmt.Errorf("error decoding paypal response: %w", err)
		}
	}

	return response, nil
}

// injectAuthorization attaches a bearer token unless the request already
// carries an Authorization header or is itself a token request. The outcome
// is never a missing header on an outgoing call; concurrent callers may fetch
// a token redundantly, which the shared store resolves last-writer-wins.
func (c *Client) injectAuthorization(ctx context.Context, httpReq *http.Request, req *Request) error {
	if req.tokenRequest || httpReq.Header.Get("Authorization") != "" {
		return nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return fmt.Errorf("error obtaining access token: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token.Token)
	return nil
}

// accessToken returns a cached token for this environment's credentials,
// fetching a fresh one when the cache is empty or expired.
func (c *Client) accessToken(ctx context.Context) (*AccessToken, error) {
	key := tokenCacheKey(c.env)
	if token, ok := c.tokens.Get(key); ok && !token.IsExpired() {
		return token, nil
	}

	resp, err := c.Execute(ctx, NewAccessTokenRequest(c.env, c.refreshToken))
	if err != nil {
		return nil, err
	}

	var result accessTokenResult
	if err := json.Unmarshal(resp.Raw, &result); err != nil {
		return nil, fmt.Errorf("error decoding token response: %w", err)
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}

	token := &AccessToken{
		Token:     result.AccessToken,
		TokenType: result.TokenType,
		ExpiresIn: result.ExpiresIn,
		CreatedAt: time.Now(),
	}
	c.tokens.Set(key, token, time.Duration(result.ExpiresIn)*time.Second)

	c.logger.Debug("fetched paypal access token", "expires_in", result.ExpiresIn)
	return token, nil
}
