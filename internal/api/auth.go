package api

import (
	"context"
	"net/http"
)

// Credentials is the login/register request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Success  bool    `json:"success"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

// AuthAPI is the auth endpoint surface.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Register(ctx context.Context, creds Credentials) error
}

type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

func (c *AuthClient) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var res LoginResult
	if err := c.client.do(ctx, http.MethodPost, "/auth/login", "", creds, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

func (c *AuthClient) Register(ctx context.Context, creds Credentials) error {
	return c.client.do(ctx, http.MethodPost, "/auth/register", "", creds, nil)
}
