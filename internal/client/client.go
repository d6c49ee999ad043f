// Package client talks to the coffee-order REST API on behalf of the
// ordering engine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Beka01247/coffee-order/internal/ordering"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v1"

	requestIDHeader = "X-Request-Id"
	maxBodyBytes    = 4 << 20
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

// Client implements ordering.Backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

var _ ordering.Backend = (*Client)(nil)

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
		logger:  cfg.Logger,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// do sends one request. out, when non-nil, receives the "data" member of the
// response envelope. Non-2xx responses become *ordering.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw)
		c.logger.Debugw("backend request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"code", apiErr.Code,
			"request_id", requestID,
		)
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", path, err)
	}

	return nil
}

func decodeError(status int, raw []byte) *ordering.APIError {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	return &ordering.APIError{
		Status:  status,
		Code:    body.Code,
		Message: body.Error,
		Kind:    errorKind(status, body.Code),
	}
}

// errorKind maps the error code first and falls back to the status for
// responses that carry none.
func errorKind(status int, code string) error {
	switch code {
	case "ALREADY_ORDERED":
		return ordering.ErrAlreadyOrdered
	case "ORDERING_CLOSED":
		return ordering.ErrOrderingClosed
	case "SYNC_IN_PROGRESS":
		return ordering.ErrSyncInProgress
	case "MENU_MODE_LOCKED":
		return ordering.ErrMenuModeLocked
	case "NOT_FOUND":
		return ordering.ErrNotFound
	}

	switch status {
	case http.StatusNotFound:
		return ordering.ErrNotFound
	case http.StatusForbidden:
		return ordering.ErrOrderingClosed
	}
	return nil
}

func departmentQuery(departmentID string) url.Values {
	return url.Values{"department_id": {departmentID}}
}

func isNotFound(err error) bool {
	return errors.Is(err, ordering.ErrNotFound)
}
