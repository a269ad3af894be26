// Package client calls the showcase API through the same contract entries the
// server registers, validating request bodies before they are sent and
// response bodies against the schema declared for the returned status.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/hairizuan-noorazman/showcase/api"
)

// APIError is an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("API error (%d): %s (field: %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client is a typed HTTP client for the showcase API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithDebug writes each request line and response status to w.
func WithDebug(w io.Writer) Option {
	return func(c *Client) {
		c.debug = w
	}
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs the contract entry for resource and action. params fill the path
// placeholders and body, when the entry declares an input, is checked against it
// before sending. The result is the value decoded by the response schema.
func (c *Client) Do(ctx context.Context, resource api.Resource, action api.Action, params map[string]string, body interface{}) (interface{}, error) {
	entry, err := api.Lookup(resource, action)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if entry.Input != nil {
		if err := entry.Input.Check(body); err != nil {
			return nil, fmt.Errorf("invalid %s %s request: %w", resource, action, err)
		}
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, entry, params, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, entry)
}

func (c *Client) newRequest(ctx context.Context, entry api.Entry, params map[string]string, body io.Reader) (*http.Request, error) {
	path, err := api.BuildURL(entry.Path, params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, entry.Method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request, entry api.Entry) (interface{}, error) {
	if c.debug != nil {
		fmt.Fprintf(c.debug, "DEBUG: %s %s\n", req.Method, req.URL.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug != nil {
		fmt.Fprintf(c.debug, "DEBUG: Status %d\n", resp.StatusCode)
	}

	schema, ok := entry.Response(resp.StatusCode)
	if !ok {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: unexpectedBody(resp.StatusCode, data)}
	}

	value, err := schema.Decode(data)
	if err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: unexpectedBody(resp.StatusCode, data)}
		}
		return nil, fmt.Errorf("response does not match contract: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if eb, ok := value.(*api.ErrorBody); ok {
			apiErr.Message = eb.Message
			apiErr.Field = eb.Field
		}
		return nil, apiErr
	}

	return value, nil
}

func unexpectedBody(status int, data []byte) string {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return http.StatusText(status)
	}
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}

func idParams(id uint) map[string]string {
	return map[string]string{"id": strconv.FormatUint(uint64(id), 10)}
}

func list[T any](ctx context.Context, c *Client, resource api.Resource) ([]T, error) {
	v, err := c.Do(ctx, resource, api.ActionList, nil, nil)
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func object[T any](ctx context.Context, c *Client, resource api.Resource, action api.Action, params map[string]string, body interface{}) (*T, error) {
	v, err := c.Do(ctx, resource, action, params, body)
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func remove(ctx context.Context, c *Client, resource api.Resource, id uint) error {
	_, err := c.Do(ctx, resource, api.ActionDelete, idParams(id), nil)
	return err
}

// UploadImage sends content as the image field of a multipart upload and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	entry, err := api.Lookup(api.Upload, api.ActionUpload)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := c.newRequest(ctx, entry, nil, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	v, err := c.send(req, entry)
	if err != nil {
		return "", err
	}
	return v.(*api.UploadResponse).URL, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	return object[api.HealthResponse](ctx, c, api.Health, api.ActionCheck, nil, nil)
}
