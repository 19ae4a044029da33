package client

import (
	"context"
	"net/http"
)

// Auth endpoint paths, relative to the configured base URL.
const (
	EndpointRegister     = "/auth/registration/"
	EndpointLogin        = "/auth/login/"
	EndpointVerifyEmail  = "/auth/registration/verify-email/"
	EndpointResendEmail  = "/auth/registration/resend-email/"
	EndpointCurrentUser  = "/auth/user/"
	EndpointTokenRefresh = "/auth/token/refresh/"
)

// LoginPayload is the credential pair sent to the login endpoint.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupPayload is the registration form sent to the registration
// endpoint. The two password fields mirror the server-side contract.
type SignupPayload struct {
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// LoginUser is the identity fragment the login response carries today.
type LoginUser struct {
	Email string `json:"email"`
}

// LoginResponse is the success payload of the login endpoint. Access may
// be empty when the server defers token issuance.
type LoginResponse struct {
	Access string     `json:"access"`
	User   *LoginUser `json:"user"`
}

// DetailResponse is the generic detail-message payload used by the
// registration and verification endpoints.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// RefreshResponse is the success payload of the token refresh endpoint.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UserResponse is the full identity returned by the current-user
// endpoint.
type UserResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
	IsSuperuser bool   `json:"is_superuser"`
	IsStaff     bool   `json:"is_staff"`
}

// AuthAPI is the typed binding for the remote auth endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{client: c}
}

func (a *AuthAPI) Register(ctx context.Context, payload SignupPayload) (DetailResponse, error) {
	var out DetailResponse
	err := a.client.Do(ctx, http.MethodPost, EndpointRegister, payload, &out)
	return out, err
}

func (a *AuthAPI) Login(ctx context.Context, payload LoginPayload) (LoginResponse, error) {
	var out LoginResponse
	err := a.client.Do(ctx, http.MethodPost, EndpointLogin, payload, &out)
	return out, err
}

func (a *AuthAPI) VerifyEmail(ctx context.Context, key string) (DetailResponse, error) {
	var out DetailResponse
	err := a.client.Do(ctx, http.MethodPost, EndpointVerifyEmail, map[string]string{"key": key}, &out)
	return out, err
}

func (a *AuthAPI) ResendVerificationEmail(ctx context.Context, email string) (DetailResponse, error) {
	var out DetailResponse
	err := a.client.Do(ctx, http.MethodPost, EndpointResendEmail, map[string]string{"email": email}, &out)
	return out, err
}

func (a *AuthAPI) CurrentUser(ctx context.Context) (UserResponse, error) {
	var out UserResponse
	err := a.client.Do(ctx, http.MethodGet, EndpointCurrentUser, nil, &out)
	return out, err
}

// RefreshToken exchanges the refresh credential for a new access token.
// The refresh value may be empty when the server reads it from an
// httpOnly cookie instead.
func (a *AuthAPI) RefreshToken(ctx context.Context, refresh string) (RefreshResponse, error) {
	var out RefreshResponse
	err := a.client.Do(ctx, http.MethodPost, EndpointTokenRefresh, map[string]string{"refresh": refresh}, &out)
	return out, err
}
