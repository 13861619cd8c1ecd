// Package repository contains the storage access layer. Uniqueness of team
// names and usernames is enforced by unique indexes; the resulting SQLSTATE
// 23505 conflict is the single source of truth for "already exists", there
// is no separate existence pre-check anywhere.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Rename(ctx context.Context, id uint, newName string) error
	Delete(ctx context.Context, id uint) error
	ListMembers(ctx context.Context, teamID uint) ([]models.User, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SearchByFirstName(ctx context.Context, firstName string) ([]models.User, error)
	UpdateProfile(ctx context.Context, id uint, updates map[string]interface{}) error
	SetTeam(ctx context.Context, id uint, teamID *uint) error
	DeleteByUsername(ctx context.Context, username string) error
}

// translate maps driver-level failures onto the shared taxonomy. notFound and
// conflict name the sentinel appropriate for the entity being touched.
func translate(err, notFound, conflict error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return conflict
	}

	return err
}
