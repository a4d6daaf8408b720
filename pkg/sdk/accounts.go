package sdk

import (
	"context"
	"net/http"
)

// CreateAccount registers a new user. A taken username yields an *APIError
// with status 400 and code user_exists.
func (c *Client) CreateAccount(ctx context.Context, username, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/create-account", CredentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusCreated)
}

// Login verifies a username and password. It returns nil on a match.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", CredentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

func (c *Client) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/update-password", req)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
