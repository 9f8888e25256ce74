package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/google/uuid"
)

const (
	signupPath      = "/auth/signup/"
	loginPath       = "/auth/login/"
	currentUserPath = "/user/me"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client, e.g. with an httptest one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/rest/v1").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) do(ctx context.Context, method, path, accessToken string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}

func decode[T any](resp *http.Response, what string) (*T, error) {
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", what, err)
	}
	return &out, nil
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *HTTPClient) Signup(ctx context.Context, creds models.SignupCredentials) (*models.AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, signupPath, "", creds)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: MsgSignupFailed}
	}
	return decode[models.AuthResponse](resp, "signup")
}

// Login posts the credentials. On failure the server's "detail" becomes the
// error message when present.
func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, loginPath, "", creds)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		msg := MsgLoginFailed
		var eb models.ErrorBody
		if json.NewDecoder(resp.Body).Decode(&eb) == nil && eb.Detail != "" {
			msg = eb.Detail
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
	return decode[models.LoginResponse](resp, "login")
}

func (c *HTTPClient) CurrentUser(ctx context.Context, accessToken string) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, currentUserPath, accessToken, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: MsgFetchUserFailed}
	}
	return decode[models.User](resp, "current user")
}

// Close drops idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
