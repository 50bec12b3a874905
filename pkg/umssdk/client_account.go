package umssdk

import (
	"context"
	"net/http"
)

// Register creates an account and logs it in.
// A taken email yields ErrEmailTaken; invalid fields yield a
// validation_failed error with Details.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/register", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login starts a session. Wrong credentials yield ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the session. It succeeds even when no session is active.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Profile returns the logged in user, or ErrUnauthenticated.
func (c *Client) Profile(ctx context.Context) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the logged in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, "/v1/profile", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ValidateField returns the message for one field. It never requires a
// session.
func (c *Client) ValidateField(ctx context.Context, req ValidateFieldRequest) (*ValidateFieldResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/validate", req)
	if err != nil {
		return nil, err
	}

	var out ValidateFieldResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
