package auth

import (
	"context"
	"testing"

	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestCredentials(t *testing.T, users repository.UserRepository) *Credentials {
	t.Helper()

	creds, err := NewCredentials(users, bcrypt.MinCost)
	require.NoError(t, err)
	return creds
}

func TestCredentials_RegisterHashesSecret(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "alice" && u.TeamID == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 1
	}).Return(nil).Once()

	user, err := creds.Register(context.Background(), " Alice ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	users.AssertExpectations(t)
}

func TestCredentials_RegisterDuplicate(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	users.On("Create", mock.Anything, mock.Anything).Return(models.ErrDuplicateIdentity).Once()

	_, err := creds.Register(context.Background(), "alice", "secret123")

	assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
	users.AssertExpectations(t)
}

func TestCredentials_RegisterRejectsEmptyInput(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	_, err := creds.Register(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, models.ErrAuthFailure)

	_, err = creds.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, models.ErrAuthFailure)

	users.AssertNotCalled(t, "Create")
}

func TestCredentials_VerifyRoundTrip(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{Username: "alice", PasswordHash: string(hash)}
	stored.ID = 1

	users.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)

	user, err := creds.Verify(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// A near-miss is still a miss.
	_, err = creds.Verify(context.Background(), "alice", "secret124")
	assert.ErrorIs(t, err, models.ErrAuthFailure)

	_, err = creds.Verify(context.Background(), "alice", "Secret123")
	assert.ErrorIs(t, err, models.ErrAuthFailure)
}

func TestCredentials_VerifyUnknownUser(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound).Once()

	_, err := creds.Verify(context.Background(), "ghost", "whatever")

	// Same failure as a wrong password; the caller cannot tell which.
	assert.ErrorIs(t, err, models.ErrAuthFailure)
	users.AssertExpectations(t)
}

func TestCredentials_VerifyPropagatesStoreFailure(t *testing.T) {
	users := new(repository.MockUserRepository)
	creds := newTestCredentials(t, users)

	users.On("GetByUsername", mock.Anything, "alice").Return(nil, assert.AnError).Once()

	_, err := creds.Verify(context.Background(), "alice", "secret123")

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, models.ErrAuthFailure)
	users.AssertExpectations(t)
}
