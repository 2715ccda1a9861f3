package playerinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/LevelInfo_Go/internal/domain"
	"github.com/osse101/LevelInfo_Go/internal/logger"
	"github.com/osse101/LevelInfo_Go/internal/metrics"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 4 << 20

// Fetcher retrieves a player's info payload by uid
type Fetcher interface {
	Fetch(ctx context.Context, uid string) (Payload, error)
}

// Client calls the third-party player info service.
// Each Fetch is a single GET bounded by Timeout; there is no retry.
type Client struct {
	BaseURL string
	Region  string
	Timeout time.Duration
	Client  *http.Client
}

// NewClient creates a new player info client
func NewClient(baseURL, region string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if region == "" {
		region = DefaultRegion
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: baseURL,
		Region:  region,
		Timeout: timeout,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch requests the player info for uid.
//
// Failures come back as domain errors: ErrUpstreamStatus for a non-200 reply,
// ErrUpstreamEmpty for an empty or falsy body, *UpstreamTimeoutError when the
// timeout elapses, and *UpstreamError for anything else.
func (c *Client) Fetch(ctx context.Context, uid string) (Payload, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug(LogMsgFetching, "uid", uid, "region", c.Region)

	payload, err := c.fetch(ctx, uid)

	metrics.PlayerInfoDuration.Observe(time.Since(start).Seconds())
	metrics.PlayerInfoRequests.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		log.Warn(LogMsgFetchFailed, "uid", uid, "error", err, "duration", time.Since(start))
		return nil, err
	}

	log.Info(LogMsgFetchSuccess, "uid", uid, "duration", time.Since(start))
	return payload, nil
}

func (c *Client) fetch(ctx context.Context, uid string) (Payload, error) {
	endpoint, err := c.buildURL(uid)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &domain.UpstreamTimeoutError{Timeout: c.Timeout}
		}
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, &domain.UpstreamTimeoutError{Timeout: c.Timeout}
		}
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to read body: %w", err)}
	}

	return decodePayload(body)
}

func (c *Client) buildURL(uid string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryParamUID, uid)
	q.Set(QueryParamRegion, c.Region)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodePayload parses a response body into a Payload. Numbers are kept as
// json.Number so large exp totals survive intact.
func decodePayload(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.ErrUpstreamEmpty
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to decode body: %w", err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &domain.UpstreamError{Err: errors.New("failed to decode body: unexpected data after JSON value")}
	}

	if isFalsy(data) {
		return nil, domain.ErrUpstreamEmpty
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("unexpected payload type %T", data)}
	}
	return Payload(obj), nil
}

// isFalsy reports whether a decoded JSON value carries no data:
// null, false, zero, "", [] or {}.
func isFalsy(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case bool:
		return !d
	case string:
		return d == ""
	case json.Number:
		f, err := d.Float64()
		return err == nil && f == 0
	case []any:
		return len(d) == 0
	case map[string]any:
		return len(d) == 0
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrUpstreamStatus):
		return metrics.OutcomeBadStatus
	case errors.Is(err, domain.ErrUpstreamEmpty):
		return metrics.OutcomeEmpty
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeUnexpected
	}
}
