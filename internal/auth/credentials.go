// Package auth owns credential issuance/verification and the session store.
// Credential hashing is composed with the user record, not baked into it, so
// the hashing policy stays swappable and testable in isolation.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Credentials registers identities and verifies secrets against their
// stored bcrypt hashes.
type Credentials struct {
	users repository.UserRepository
	cost  int

	// dummyHash is compared against when the login name is unknown, so the
	// response time does not reveal whether the account exists.
	dummyHash []byte
}

func NewCredentials(users repository.UserRepository, cost int) (*Credentials, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("staffdesk.invalid"), cost)
	if err != nil {
		return nil, err
	}

	return &Credentials{users: users, cost: cost, dummyHash: dummy}, nil
}

// Register creates a user with a hashed secret and no team membership.
// A taken username fails with ErrDuplicateIdentity, enforced by the unique
// index on the username column.
func (c *Credentials) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = normalizeUsername(username)

	if username == "" || password == "" {
		return nil, models.ErrAuthFailure
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := c.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify checks a username/password pair. It fails with ErrAuthFailure for
// both an unknown username and a wrong password, and burns a bcrypt
// comparison either way.
func (c *Credentials) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := c.users.GetByUsername(ctx, normalizeUsername(username))

	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(password))
			return nil, models.ErrAuthFailure
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrAuthFailure
	}

	return user, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
