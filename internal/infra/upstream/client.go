// Package upstream implements the marketplace backend API interfaces over
// plain HTTP with the session token attached.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ketalog/config"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
)

// Client talks to the marketplace backend. It implements every API
// interface of the upstream package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   service.SessionService
	logger     *slog.Logger
}

// NewClient creates the backend client.
func NewClient(cfg config.UpstreamConfig, sessions service.SessionService, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		sessions: sessions,
		logger:   logger,
	}
}

// errorBody is the error envelope the backend serves on failures. Older
// endpoints use "error", newer ones "message".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one request. body is JSON-encoded when non-nil; the response
// is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

// doRaw performs one request and returns the raw response body.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewUnavailableError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewUnavailableError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.statusError(method, path, resp.StatusCode, data)
	}

	return data, nil
}

func (c *Client) statusError(method, path string, status int, data []byte) error {
	var body errorBody
	_ = json.Unmarshal(data, &body)
	message := body.Message
	if message == "" {
		message = body.Error
	}

	c.logger.Debug("backend rejected request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("message", message),
	)

	switch status {
	case http.StatusUnauthorized:
		if message == "" {
			return upstream.ErrUnauthorized
		}
		return errors.Wrap(upstream.ErrUnauthorized, message)
	case http.StatusNotFound:
		return errors.Wrapf(upstream.ErrNotFound, "%s %s", method, path)
	}

	return domainerrors.NewUpstreamError(status, message, "")
}
