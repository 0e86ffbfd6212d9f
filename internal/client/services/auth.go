package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// Credential is what a successful login or signup yields. Token is empty
// when the backend authenticates by cookie only.
type Credential struct {
	Token string
	User  models.User
}

// SignupRequest is the registration body.
type SignupRequest struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	PasswordConfirm string      `json:"passwordConfirm"`
	Role            models.Role `json:"role,omitempty"`
}

// AuthService talks to the /auth endpoints.
//
// Contract:
//   - Login: exchange email and password for a credential.
//   - Signup: register and sign in.
//   - Logout: end the backend session; callers clear local state regardless.
type AuthService interface {
	Login(ctx context.Context, email, password string) (Credential, error)
	Signup(ctx context.Context, req SignupRequest) (Credential, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api Sender
	log logging.Logger
}

func NewAuthService(s Sender, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{api: s, log: log.With("resource", "/auth")}
}

func (a *authService) Login(ctx context.Context, email, password string) (Credential, error) {
	body := map[string]string{"email": email, "password": password}
	return a.authenticate(ctx, "/auth/login", body)
}

func (a *authService) Signup(ctx context.Context, req SignupRequest) (Credential, error) {
	return a.authenticate(ctx, "/auth/signup", req)
}

func (a *authService) Logout(ctx context.Context) error {
	return send(ctx, a.api, a.log, http.MethodGet, "/auth/logout", nil, nil)
}

func (a *authService) authenticate(ctx context.Context, path string, body any) (Credential, error) {
	resp, err := a.api.Send(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		a.log.Error(ctx, "request failed", "path", path, "error", err)
		return Credential{}, err
	}
	user, err := api.Unwrap[models.User](resp, "user")
	if err != nil {
		a.log.Error(ctx, "unwrap failed", "path", path, "error", err)
		return Credential{}, err
	}
	token, err := api.TopLevel[string](resp, "token")
	if err != nil && !errors.Is(err, api.ErrEnvelope) {
		return Credential{}, err
	}
	return Credential{Token: token, User: user}, nil
}
