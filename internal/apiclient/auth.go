package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
)

type LoginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	Message string             `json:"message"`
	User    models.UserProfile `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegistrationRequest struct {
	Login     string `json:"login"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login authenticates against the remote API. Invalid credentials come back
// as an *APIError, not as a transport failure.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (LoginResponse, error) {
	var resp LoginResponse
	err := c.post(ctx, "/auth/login", creds, &resp, genericErrorMessage)
	return resp, err
}

// Register creates an account. No token is stored at registration; the user
// signs in afterwards.
func (c *Client) Register(ctx context.Context, req RegistrationRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.post(ctx, "/auth/register", req, &resp, genericErrorMessage)
	return resp, err
}

// CurrentUser validates the stored token against GET /auth/me.
func (c *Client) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	var resp struct {
		Success bool               `json:"success"`
		User    models.UserProfile `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", &resp, genericErrorMessage); err != nil {
		return models.UserProfile{}, err
	}
	if !resp.Success {
		return models.UserProfile{}, &APIError{StatusCode: http.StatusUnauthorized, Message: genericErrorMessage}
	}
	return resp.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (MessageResponse, error) {
	var resp MessageResponse
	body := map[string]string{"email": email}
	err := c.post(ctx, "/auth/forgot-password", body, &resp, genericErrorMessage)
	return resp, err
}

func (c *Client) ResetPassword(ctx context.Context, resetToken string, req ResetPasswordRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.put(ctx, "/auth/reset-password/"+resetToken, req, &resp, genericErrorMessage)
	return resp, err
}

func (c *Client) UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	var resp struct {
		Success bool               `json:"success"`
		User    models.UserProfile `json:"user"`
	}
	if err := c.put(ctx, "/auth/update-profile", profile, &resp, genericErrorMessage); err != nil {
		return models.UserProfile{}, err
	}
	return resp.User, nil
}

func (c *Client) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.put(ctx, "/auth/update-password", req, &resp, genericErrorMessage)
	return resp, err
}

// UploadProfileImage sends the image as multipart form data under the "image"
// field.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, image io.Reader) (MessageResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return MessageResponse{}, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return MessageResponse{}, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return MessageResponse{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/upload-profile-image", &buf)
	if err != nil {
		return MessageResponse{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return MessageResponse{}, fmt.Errorf("POST /auth/upload-profile-image: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return MessageResponse{}, decodeError(httpResp, genericErrorMessage)
	}

	var resp MessageResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return MessageResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}
