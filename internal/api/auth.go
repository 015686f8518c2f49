package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bytestashy/bytestashy/internal/common"
)

// The login exchange is two sequential requests with no retries:
// username/password buy a short-lived JWT, the JWT buys a long-lived API key.
// The token is never persisted; it exists only between the two calls.

type loginResponse struct {
	Token string `json:"token"`
}

type apiKeyResponse struct {
	Key string `json:"key"`
}

// Login posts the username and password and returns the bearer token.
// A 401 means the credentials were wrong; any other non-200 is an APIError.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.send(req)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", &common.AuthError{Message: "invalid credentials"}
	default:
		return "", &common.APIError{Status: status, Body: string(body)}
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", &common.ProtocolError{Err: err}
	}
	if lr.Token == "" {
		return "", &common.ProtocolError{Err: fmt.Errorf("login response carries no token")}
	}
	return lr.Token, nil
}

// CreateAPIKey exchanges the bearer token for a named long-lived API key.
// The server answers 201 on success; anything else is an APIError.
func (c *Client) CreateAPIKey(ctx context.Context, token, name string) (string, error) {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return "", fmt.Errorf("encoding key request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/keys", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building key request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("bytestashauth", "bearer "+token)

	status, body, err := c.send(req)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", &common.APIError{Status: status, Body: string(body)}
	}

	var kr apiKeyResponse
	if err := json.Unmarshal(body, &kr); err != nil {
		return "", &common.ProtocolError{Err: err}
	}
	if kr.Key == "" {
		return "", &common.ProtocolError{Err: fmt.Errorf("key response carries no key")}
	}
	return kr.Key, nil
}
