// internal/httpx/client.go

package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Attempt policy shared by every outbound REST call: three attempts with
// exponential backoff starting at one second.
const (
	maxRetries      = 2
	initialInterval = 1 * time.Second
)

// Client wraps outbound JSON calls with the shared timeout and retry
// policy. All REST adapters go through it.
type Client struct {
	http *http.Client
}

// New creates a client whose individual calls time out after timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// NewWithClient wraps an existing http.Client (one carrying an auth
// transport, say) with the shared retry policy.
func NewWithClient(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Request describes one outbound call.
type Request struct {
	Method string
	URL    string
	Header http.Header

	// Body is marshaled as JSON when non-nil. RawBody wins when set.
	Body    interface{}
	RawBody []byte

	// Out receives the decoded JSON response when non-nil. RawOut receives
	// the raw response bytes instead when non-nil (audio, media).
	Out    interface{}
	RawOut *[]byte
}

// Do performs the request, retrying connection failures and 5xx/429
// responses. 4xx responses other than 429 fail immediately.
func (c *Client) Do(ctx context.Context, req Request) error {
	operation := func() error {
		body, err := encodeBody(req)
		if err != nil {
			return backoff.Permanent(err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		for key, values := range req.Header {
			for _, value := range values {
				httpReq.Header.Add(key, value)
			}
		}
		if body != nil && httpReq.Header.Get("Content-Type") == "" {
			httpReq.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(httpReq)
		if err != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%s %s: reading response: %w", req.Method, req.URL, err)
		}

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL, resp.StatusCode, snippet(data))
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL, resp.StatusCode, snippet(data)))
		}

		if req.RawOut != nil {
			*req.RawOut = data
			return nil
		}
		if req.Out != nil {
			if err := json.Unmarshal(data, req.Out); err != nil {
				return backoff.Permanent(fmt.Errorf("%s %s: decoding response: %w", req.Method, req.URL, err))
			}
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}

func encodeBody(req Request) (io.Reader, error) {
	if req.RawBody != nil {
		return bytes.NewReader(req.RawBody), nil
	}
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		return bytes.NewReader(data), nil
	}
	return nil, nil
}

// snippet trims response bodies so error messages stay readable.
func snippet(data []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
