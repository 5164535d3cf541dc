package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/client/models"
)

// maxResponseBody caps how much of a response is read.
const maxResponseBody = 1 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:5058/api"). timeout bounds each request; zero
// means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LoginURL is the endpoint Login posts to.
func (c *HTTPClient) LoginURL() string {
	return c.baseURL + "/login"
}

func (c *HTTPClient) Login(ctx context.Context, nrCarteira, senha string) (*models.LoginResponse, error) {
	body, err := json.Marshal(models.LoginRequest{NrCarteira: nrCarteira, Senha: senha})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.LoginURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrNetworkFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, mapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, rejection(resp.StatusCode, data)
	}

	var out models.LoginResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: malformed login response: %w", ErrNetworkFailure, err)
	}
	if out.Nome == "" {
		return nil, fmt.Errorf("%w: login response without nome", ErrNetworkFailure)
	}
	return &out, nil
}

func rejection(status int, data []byte) error {
	var er models.ErrorResponse
	msg := DefaultLoginFailureMessage
	if err := json.Unmarshal(data, &er); err == nil && strings.TrimSpace(er.Mensagem) != "" {
		msg = er.Mensagem
	}
	return &AuthRejectedError{Status: status, Message: msg}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: request timed out: %w", ErrNetworkFailure, err)
	}
	return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
}
