package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "ghostwrite/internal/platform/errors"
)

// TokenSource exposes the current bearer token, if any. Requests proceed
// without an Authorization header when no token is available.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Gateway is the single chokepoint for backend HTTP calls. It owns the
// base URL and request timeout, attaches bearer auth, and on any 401
// response tears the session down through the configured hook before
// propagating the failure.
type Gateway struct {
	baseURL        string
	client         *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func(context.Context)) *Gateway {
	return &Gateway{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

// Do issues one JSON request. A non-nil body is encoded as the request
// payload; a non-nil out receives the decoded 2xx response body.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.tokens != nil {
		if token, ok := g.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, apperrors.ErrUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		if g.onUnauthorized != nil {
			slog.Warn("session no longer valid, signing out", "path", path)
			g.onUnauthorized(ctx)
		}
		return &apperrors.APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverMessage best-effort extracts {"message": ...} or {"error": ...}
// from an error body.
func serverMessage(body io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
