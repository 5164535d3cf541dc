// Package services contains application services for the OdontoFast client.
// This file defines the session lifecycle service: login, quick login,
// logout, the authentication check and current-user lookup.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/client/client"
	"github.com/dmitrijs2005/odontofast/internal/client/models"
	"github.com/dmitrijs2005/odontofast/internal/client/repositories/session"
	"github.com/dmitrijs2005/odontofast/internal/logging"
)

// SessionService owns every policy about what a valid session is.
//
// Contract:
//   - Login: authenticate remotely and persist token + user record.
//   - QuickLogin: persist a fixed test identity without the network.
//   - Logout: clear both slots; an error means the session is indeterminate.
//   - IsAuthenticated: token present. Never fails (fail-closed).
//   - GetCurrentUser: decoded user record or nil. Never fails (fail-safe).
//   - SubmitLogin: validate a form, then Login, recording errors on the form.
//
// The service keeps no state of its own beyond what the store persists.
type SessionService interface {
	Login(ctx context.Context, nrCarteira, senha string) (*models.UserData, error)
	QuickLogin(ctx context.Context) (*models.UserData, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	GetCurrentUser(ctx context.Context) *models.UserData
	SubmitLogin(ctx context.Context, form *LoginForm) (*models.UserData, error)
}

// QuickLoginUser is the identity persisted by QuickLogin.
var QuickLoginUser = models.UserData{
	Nome:       "Usuário Teste",
	NrCarteira: "123456",
	Email:      "teste@odontofast.com",
	Perfil:     "paciente",
}

const quickLoginTokenPrefix = "fake-jwt-token-"

type sessionService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
	now    func() time.Time
	seq    atomic.Uint64
}

type Option func(*sessionService)

// WithClock replaces time.Now, used for quick-login tokens.
func WithClock(now func() time.Time) Option {
	return func(s *sessionService) { s.now = now }
}

// NewSessionService constructs a SessionService bound to the given API client
// and session store.
func NewSessionService(c client.Client, store session.Store, log logging.Logger, opts ...Option) SessionService {
	s := &sessionService{
		client: c,
		store:  store,
		log:    log.With("component", "session"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Login posts the credentials and persists the resulting session. A token,
// when issued, is written together with the user record in one PutAll; a
// token-less response stores the user record only.
func (s *sessionService) Login(ctx context.Context, nrCarteira, senha string) (*models.UserData, error) {
	resp, err := s.client.Login(ctx, nrCarteira, senha)
	if err != nil {
		s.log.Warn(ctx, "login failed", "nrCarteira", nrCarteira, "error", err)
		return nil, fmt.Errorf("login error: %w", err)
	}

	user := &models.UserData{Nome: resp.Nome, NrCarteira: nrCarteira}
	encoded, err := user.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	if resp.Token != "" {
		err = s.store.PutAll(ctx, map[string]string{
			session.TokenKey: resp.Token,
			session.UserKey:  encoded,
		})
	} else {
		s.log.Warn(ctx, "backend issued no token", "nrCarteira", nrCarteira)
		err = s.store.Put(ctx, session.UserKey, encoded)
	}
	if err != nil {
		s.log.Error(ctx, "persist session failed", "error", err)
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.log.Info(ctx, "login succeeded", "nrCarteira", nrCarteira, "token", resp.Token != "")
	return user, nil
}

func (s *sessionService) QuickLogin(ctx context.Context) (*models.UserData, error) {
	user := QuickLoginUser
	encoded, err := user.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	token := fmt.Sprintf("%s%d-%d", quickLoginTokenPrefix, s.now().UnixMilli(), s.seq.Add(1))
	if err := s.store.PutAll(ctx, map[string]string{
		session.TokenKey: token,
		session.UserKey:  encoded,
	}); err != nil {
		s.log.Error(ctx, "quick login failed", "error", err)
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.log.Info(ctx, "quick login succeeded")
	return &user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.ClearAll(ctx, session.Keys()...); err != nil {
		s.log.Error(ctx, "logout failed", "error", err)
		return fmt.Errorf("logout error: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	token, ok, err := s.store.Get(ctx, session.TokenKey)
	if err != nil {
		s.log.Warn(ctx, "auth check failed, treating as logged out", "error", err)
		return false
	}
	return ok && token != ""
}

func (s *sessionService) GetCurrentUser(ctx context.Context) *models.UserData {
	raw, ok, err := s.store.Get(ctx, session.UserKey)
	if err != nil {
		s.log.Warn(ctx, "read user record failed", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	user, err := models.DecodeUserData(raw)
	if err != nil {
		s.log.Warn(ctx, "stored user record is malformed", "error", err)
		return nil
	}
	if user.Nome == "" {
		s.log.Warn(ctx, "stored user record has no nome")
		return nil
	}
	return user
}

func (s *sessionService) SubmitLogin(ctx context.Context, form *LoginForm) (*models.UserData, error) {
	form.ServerError = ""
	form.Errors = map[string]string{}

	if err := ValidateLoginForm(form.NrCarteira, form.Senha); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			form.Errors = verr.Fields
		}
		return nil, err
	}

	user, err := s.Login(ctx, form.NrCarteira, form.Senha)
	if err != nil {
		form.ServerError = UserMessage(err)
		return nil, err
	}
	return user, nil
}
