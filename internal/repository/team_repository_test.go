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

func TestTeamRepository_CreateMapsUniqueViolation(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_teams_name"})

	err := repo.Create(context.Background(), &models.Team{Name: "Engineering"})

	assert.ErrorIs(t, err, models.ErrTeamExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_Create(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectQuery(`INSERT INTO "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	team := &models.Team{Name: "Engineering"}

	require.NoError(t, repo.Create(context.Background(), team))
	assert.Equal(t, uint(1), team.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_GetByIDNotFound(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectQuery(`SELECT \* FROM "teams"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, models.ErrTeamNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_RenameUnknownTeam(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectExec(`UPDATE "teams" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rename(context.Background(), 42, "Platform")

	assert.ErrorIs(t, err, models.ErrTeamNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_RenameOntoTakenName(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectExec(`UPDATE "teams" SET`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_teams_name"})

	err := repo.Rename(context.Background(), 1, "Sales")

	assert.ErrorIs(t, err, models.ErrTeamExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_DeleteClearsMembershipFirst(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "teams" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_DeleteUnknownTeamRollsBack(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "teams" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, models.ErrTeamNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_ListMembers(t *testing.T) {
	conn, mock := setupMockDB(t)
	repo := NewTeamRepository(conn)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "team_id"}).
			AddRow(10, "alice", 7).
			AddRow(11, "bob", 7))

	members, err := repo.ListMembers(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)
	assert.Equal(t, "bob", members[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
