package api

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// Login authenticates against the auth service and stores the session
// token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	var resp types.LoginResponse
	if err := c.doJSON(ctx, "POST", c.baseURL+"/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.token = resp.Token
	}
	return &resp, nil
}

// Register creates an account and returns the same session shape as Login.
func (c *Client) Register(ctx context.Context, name, surname, email, password string) (*types.LoginResponse, error) {
	req := types.RegisterRequest{Name: name, Surname: surname, Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration request: %w", err)
	}

	var resp types.LoginResponse
	if err := c.doJSON(ctx, "POST", c.baseURL+"/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.token = resp.Token
	}
	return &resp, nil
}

// SessionExpiry reads the exp claim from the current token without
// verifying the signature. This is client-side bookkeeping only; the
// services verify tokens themselves.
func (c *Client) SessionExpiry() (time.Time, error) {
	if c.token == "" {
		return time.Time{}, fmt.Errorf("no session token")
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(c.token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("session token has no expiry")
	}
	return exp.Time, nil
}
