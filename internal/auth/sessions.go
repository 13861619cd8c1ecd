package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/staffdesk-dev/staffdesk/internal/models"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "staffdesk_session"

const tokenBytes = 32

type session struct {
	userID    uint
	expiresAt time.Time
}

// SessionManager binds opaque bearer tokens to user identities. State is
// process-wide and not persisted; restarting the process logs everyone out.
// A user may hold any number of concurrent, independent sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

// Create binds a fresh unguessable token to userID and returns it.
func (m *SessionManager) Create(userID uint) (string, error) {
	buf := make([]byte, tokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	token := hex.EncodeToString(buf)

	m.mu.Lock()
	m.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()

	return token, nil
}

// Resolve returns the identity bound to token, or ErrUnauthenticated for
// missing, expired or malformed tokens.
func (m *SessionManager) Resolve(token string) (uint, error) {
	if len(token) != tokenBytes*2 {
		return 0, models.ErrUnauthenticated
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok || time.Now().After(s.expiresAt) {
		return 0, models.ErrUnauthenticated
	}

	return s.userID, nil
}

// Destroy invalidates token. Idempotent; destroying an unknown or already
// destroyed token is a no-op.
func (m *SessionManager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// StartSweeper evicts expired sessions on the given interval until Stop is
// called. Resolve already rejects expired sessions; the sweeper only bounds
// memory growth.
func (m *SessionManager) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.done:
				return
			}
		}
	}()
}

func (m *SessionManager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

func (m *SessionManager) sweep() {
	now := time.Now()

	m.mu.Lock()
	for token, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, token)
		}
	}
	m.mu.Unlock()
}
