package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateMapsUniqueViolation(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})

	err := repo.Create(context.Background(), &models.User{Username: "alice", PasswordHash: "x"})

	assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetTeam(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	teamID := uint(7)

	require.NoError(t, repo.SetTeam(context.Background(), 10, &teamID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetTeamUnknownUser(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetTeam(context.Background(), 42, nil)

	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteByUsernameUnknown(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`UPDATE "users" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
