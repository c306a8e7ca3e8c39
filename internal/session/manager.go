package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/store"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
)

// ErrNoSession is returned by [Manager.Restore] when there is no usable
// stored credential.
var ErrNoSession = errors.New("no active session")

// Manager holds the current credential in memory and mirrors it to the
// local store.
type Manager struct {
	repo   store.CredentialRepository
	broker *Broker
	logger *logger.Logger
	now    func() time.Time

	mu   sync.RWMutex
	cred *models.Credential

	unsubscribe func()
}

// NewManager wires a Manager to repo and subscribes it to broker so that a
// SessionExpired event clears the credential.
func NewManager(repo store.CredentialRepository, broker *Broker, log *logger.Logger) *Manager {
	m := &Manager{
		repo:   repo,
		broker: broker,
		logger: log,
		now:    time.Now,
	}
	m.unsubscribe = broker.Subscribe(m.onEvent)
	return m
}

// Token returns the current bearer token or "" when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cred == nil {
		return ""
	}
	return m.cred.AccessToken
}

// Credential returns a copy of the current credential.
func (m *Manager) Credential() (models.Credential, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cred == nil {
		return models.Credential{}, false
	}
	return *m.cred, true
}

// Restore loads the persisted credential. A credential whose token carries an
// expiry in the past is deleted and reported as [ErrNoSession].
func (m *Manager) Restore(ctx context.Context) (models.Credential, error) {
	cred, err := m.repo.GetCredential(ctx)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return models.Credential{}, ErrNoSession
	case errors.Is(err, store.ErrCorruptedCredential):
		m.logger.Warn().Err(err).Msg("discarding unreadable stored credential")
		_ = m.repo.DeleteCredential(ctx)
		return models.Credential{}, ErrNoSession
	case err != nil:
		return models.Credential{}, fmt.Errorf("restore session: %w", err)
	}

	if cred.AccessToken == "" || utils.IsTokenExpired(cred.AccessToken, m.now()) {
		m.logger.Info().Msg("stored credential expired")
		if err = m.repo.DeleteCredential(ctx); err != nil {
			return models.Credential{}, fmt.Errorf("delete expired credential: %w", err)
		}
		return models.Credential{}, ErrNoSession
	}

	m.set(&cred)
	return cred, nil
}

// SignIn stores cred and publishes SessionSignedIn.
func (m *Manager) SignIn(ctx context.Context, cred models.Credential) error {
	if err := m.repo.SaveCredential(ctx, cred); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	m.set(&cred)
	m.broker.Publish(models.SessionEvent{Kind: models.SessionSignedIn, Reason: cred.UserName})
	return nil
}

// SignOut clears the credential and publishes SessionSignedOut.
func (m *Manager) SignOut(ctx context.Context) error {
	m.set(nil)
	if err := m.repo.DeleteCredential(ctx); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	m.broker.Publish(models.SessionEvent{Kind: models.SessionSignedOut})
	return nil
}

// Close detaches the manager from the broker.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Manager) onEvent(ev models.SessionEvent) {
	if ev.Kind != models.SessionExpired {
		return
	}

	m.set(nil)
	// the request that triggered the event may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.repo.DeleteCredential(ctx); err != nil {
		m.logger.Err(err).Str("func", "Manager.onEvent").Msg("failed to clear expired credential")
	}
}

func (m *Manager) set(cred *models.Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = cred
}
