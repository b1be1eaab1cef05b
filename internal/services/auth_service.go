package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// AuthServiceInterface forwards credential operations to the managed auth
// service. No passwords or tokens are handled locally; the upstream service is
// the sole source of truth for sessions.
type AuthServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.AuthResponse, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*response_models.UserResponse, error)
}

type AuthService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAuthService(supabaseURL, supabaseKey string) AuthServiceInterface {
	return &AuthService{
		baseURL: supabaseURL + "/auth/v1",
		apiKey:  supabaseKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *gotrueUser `json:"user"`

	// Set on signup responses when email confirmation is pending and no
	// session is issued; the body is then a bare user object.
	ID string `json:"id"`
}

type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	}
	return "unknown auth service error"
}

func (a *AuthService) do(ctx context.Context, method, path, bearer string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstreamErr gotrueError
		_ = json.Unmarshal(payload, &upstreamErr)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("%w: %s", utils.ErrUnauthorized, upstreamErr.text())
		}
		return nil, fmt.Errorf("%w: %s", utils.ErrUpstreamFailure, upstreamErr.text())
	}

	return payload, nil
}

func (a *AuthService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	body := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
		"data":     map[string]interface{}{"name": req.Name},
	}

	payload, err := a.do(ctx, http.MethodPost, "/signup", "", body)
	if err != nil {
		return nil, err
	}

	var session gotrueSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	// Tenants with email confirmation enabled return a user but no session.
	if session.AccessToken == "" {
		return nil, utils.ErrEmailConfirmationRequired
	}
	if session.User == nil {
		return nil, fmt.Errorf("%w: signup returned no user", utils.ErrUpstreamFailure)
	}

	return &response_models.AuthResponse{
		UserID:       session.User.ID,
		Email:        session.User.Email,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (a *AuthService) SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.AuthResponse, error) {
	body := map[string]string{"email": req.Email, "password": req.Password}

	payload, err := a.do(ctx, http.MethodPost, "/token?grant_type=password", "", body)
	if err != nil {
		return nil, err
	}

	var session gotrueSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	if session.AccessToken == "" || session.User == nil {
		return nil, fmt.Errorf("%w: sign in returned no session", utils.ErrUnauthorized)
	}

	return &response_models.AuthResponse{
		UserID:       session.User.ID,
		Email:        session.User.Email,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (a *AuthService) SignOut(ctx context.Context, accessToken string) error {
	_, err := a.do(ctx, http.MethodPost, "/logout", accessToken, nil)
	return err
}

func (a *AuthService) GetUser(ctx context.Context, accessToken string) (*response_models.UserResponse, error) {
	payload, err := a.do(ctx, http.MethodGet, "/user", accessToken, nil)
	if err != nil {
		return nil, err
	}

	var user gotrueUser
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: no user for token", utils.ErrUnauthorized)
	}

	return &response_models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.UserMetadata.Name,
	}, nil
}
