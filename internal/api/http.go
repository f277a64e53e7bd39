package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient is the concrete ShopClient/AuthClient speaking JSON over HTTP.
type HTTPClient struct {
	shopBase string
	authBase string
	apiKey   string
	hc       *http.Client
}

// NewHTTPClient builds a client for the given endpoints. timeout bounds each
// request in addition to the caller's context.
func NewHTTPClient(shopBase, authBase, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		shopBase: strings.TrimRight(shopBase, "/"),
		authBase: strings.TrimRight(authBase, "/"),
		apiKey:   apiKey,
		hc:       &http.Client{Timeout: timeout},
	}
}

// statusError reports a non-2xx answer. Callers that know what a status
// means for their endpoint translate it; everyone else surfaces it as-is.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.code, e.url)
}

// do sends one request and decodes the JSON answer into out (skipped when
// out is nil). A JSON null body leaves out untouched, which is how the
// database reports an absent node.
func (c *HTTPClient) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode, url: url}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
