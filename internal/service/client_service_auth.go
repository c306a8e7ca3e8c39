package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/session"
	"github.com/MKhiriev/webcrm-console/models"
)

type authService struct {
	adapter adapter.WebCRMAdapter
	session SessionManager

	logger *logger.Logger
}

// NewAuthService returns an AuthService that signs in through webcrm and
// keeps the credential in sessions.
func NewAuthService(webcrm adapter.WebCRMAdapter, sessions SessionManager, log *logger.Logger) AuthService {
	return &authService{adapter: webcrm, session: sessions, logger: log}
}

func (s *authService) SignIn(ctx context.Context, userName, password string) (models.Credential, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return models.Credential{}, ErrMissingCredentials
	}

	cred, err := s.adapter.SignIn(ctx, models.SignInRequest{UserName: userName, Password: password})
	if err != nil {
		// the password grant answers 400 invalid_grant, some servers 401
		if errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrUnauthorized) {
			s.logger.Info().Str("user", userName).Msg("sign in rejected")
			return models.Credential{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		s.logger.Err(err).Str("func", "authService.SignIn").Msg("sign in failed")
		return models.Credential{}, err
	}
	if cred.AccessToken == "" {
		return models.Credential{}, fmt.Errorf("sign in: %w", adapter.ErrDecodeResponse)
	}
	if cred.UserName == "" {
		cred.UserName = userName
	}

	if err = s.session.SignIn(ctx, cred); err != nil {
		return models.Credential{}, fmt.Errorf("sign in: %w", err)
	}

	s.logger.Info().Str("user", cred.UserName).Msg("signed in")
	return cred, nil
}

func (s *authService) RestoreSession(ctx context.Context) (models.Credential, error) {
	cred, err := s.session.Restore(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrNotSignedIn, err)
	}
	if err != nil {
		return models.Credential{}, err
	}
	return cred, nil
}

func (s *authService) SignOut(ctx context.Context) error {
	if err := s.session.SignOut(ctx); err != nil {
		s.logger.Err(err).Str("func", "authService.SignOut").Msg("sign out failed")
		return err
	}
	return nil
}
