package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/sharefile/internal/common"
)

// maxErrorBody bounds how much of an error response is kept in StatusError.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL *url.URL
	api     *http.Client
	blob    *http.Client
}

type Option func(*HTTPClient)

// WithHTTPClient sets the client used for API calls. It is expected to carry
// the session credentials (see package auth).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.api = c }
}

// WithBlobClient sets the client used for PUT requests to upload slots.
func WithBlobClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.blob = c }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{baseURL: u, api: &http.Client{}, blob: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*CreateTransferResponse, error) {
	var resp CreateTransferResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "transfers"), req, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("%w: missing transfer id", ErrMalformedResponse)
	}
	return &resp, nil
}

func (c *HTTPClient) RequestSlot(ctx context.Context, transferID string, req FileSlotRequest) (*FileSlotResponse, error) {
	var resp FileSlotResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "transfers", transferID, "files"), req, &resp); err != nil {
		return nil, err
	}
	if resp.UploadURL == "" {
		return nil, fmt.Errorf("%w: missing upload url", ErrMalformedResponse)
	}
	return &resp, nil
}

func (c *HTTPClient) Finalize(ctx context.Context, transferID string) error {
	return c.do(ctx, http.MethodPost, c.endpoint("api", "transfers", transferID, "finalize"), nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.endpoint("api", "health"), nil, nil)
}

// UploadBlob sends the whole body to uploadURL in a single PUT. size must be
// the exact body length: block blob storage rejects chunked requests.
func (c *HTTPClient) UploadBlob(ctx context.Context, uploadURL string, contentType string, body io.Reader, size int64) error {
	if contentType == "" {
		contentType = common.DefaultMimeType
	}
	if size == 0 {
		body = http.NoBody
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set(common.BlobTypeHeaderName, common.BlobTypeBlockBlob)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.blob.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return mapStatus(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	base := strings.TrimSuffix(c.baseURL.String(), "/")
	return base + "/" + strings.Join(escaped, "/")
}

func (c *HTTPClient) do(ctx context.Context, method, target string, in any, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(common.RequestIDHeaderName, id)
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(b)),
	}
}
