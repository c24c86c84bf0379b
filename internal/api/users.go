package api

import (
	"context"
	"net/http"
)

// Credentials returned by a successful login, together with the signed-in
// user so callers need no follow-up profile fetch.
type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

type RegisterInput struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/users/login/", body, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/api/users/register/", in, nil)
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile/", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// ProfileUpdate carries the editable profile fields; zero values are omitted
// so a partial PATCH only touches what the caller set.
type ProfileUpdate struct {
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, patch ProfileUpdate) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodPatch, "/api/users/profile/", patch, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/api/users/change-password/", body, nil)
}
