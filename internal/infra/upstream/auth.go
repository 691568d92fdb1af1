package upstream

import (
	"context"
	"net/http"

	"ketalog/internal/domain/entity"
	"ketalog/internal/domain/upstream"
)

// Login exchanges credentials for a session token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*upstream.LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result upstream.LoginResult
	if err := c.do(ctx, http.MethodPost, "/admin/login", body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateProfile modifies the admin account.
func (c *Client) UpdateProfile(ctx context.Context, admin *entity.Admin, currentPassword, newPassword string) (*entity.Admin, error) {
	body := map[string]string{
		"name":   admin.Name,
		"email":  admin.Email,
		"mobile": admin.Mobile,
	}
	if newPassword != "" {
		body["currentPassword"] = currentPassword
		body["newPassword"] = newPassword
	}

	var updated entity.Admin
	if err := c.do(ctx, http.MethodPut, "/admin/profile", body, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
