// Package directory keeps the team/user membership relation coherent across
// the team rename and delete lifecycle. Membership is a foreign key on the
// user row, so a rename is a single metadata update with zero propagation
// and a delete can never leave orphaned references behind.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
)

const (
	defaultOpTimeout  = 5 * time.Second
	defaultMaxRetries = 2
	retryBase         = 50 * time.Millisecond
)

type Service struct {
	teams      repository.TeamRepository
	users      repository.UserRepository
	opTimeout  time.Duration
	maxRetries uint64
}

func NewService(teams repository.TeamRepository, users repository.UserRepository) *Service {
	return &Service{
		teams:      teams,
		users:      users,
		opTimeout:  defaultOpTimeout,
		maxRetries: defaultMaxRetries,
	}
}

// ProfileUpdate carries a full profile edit. TeamName empty clears the
// membership.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Function  string
	TeamName  string
}

func (s *Service) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("team name must not be empty")
	}

	team := &models.Team{Name: name}

	err := s.run(ctx, func(ctx context.Context) error {
		return s.teams.Create(ctx, team)
	})

	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *Service) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team

	err := s.run(ctx, func(ctx context.Context) error {
		var err error
		teams, err = s.teams.List(ctx)
		return err
	})

	if err != nil {
		return nil, err
	}

	return teams, nil
}

// GetTeam resolves a team and its current members.
func (s *Service) GetTeam(ctx context.Context, teamID uint) (*models.Team, []models.User, error) {
	var (
		team    *models.Team
		members []models.User
	)

	err := s.run(ctx, func(ctx context.Context) error {
		var err error

		team, err = s.teams.GetByID(ctx, teamID)
		if err != nil {
			return err
		}

		members, err = s.teams.ListMembers(ctx, teamID)
		return err
	})

	if err != nil {
		return nil, nil, err
	}

	return team, members, nil
}

// RenameTeam updates the team's name and returns the renamed team together
// with its membership. Members are untouched; they reference the team by id,
// so the listing reflects the new name immediately and users that happened to
// carry the new name elsewhere are unaffected.
func (s *Service) RenameTeam(ctx context.Context, teamID uint, newName string) (*models.Team, []models.User, error) {
	newName = strings.TrimSpace(newName)

	if newName == "" {
		return nil, nil, fmt.Errorf("team name must not be empty")
	}

	err := s.run(ctx, func(ctx context.Context) error {
		return s.teams.Rename(ctx, teamID, newName)
	})

	if err != nil {
		return nil, nil, err
	}

	return s.GetTeam(ctx, teamID)
}

// DeleteTeam removes the team and clears the membership of its users, so no
// user is left referencing a team that no longer exists.
func (s *Service) DeleteTeam(ctx context.Context, teamID uint) error {
	return s.run(ctx, func(ctx context.Context) error {
		return s.teams.Delete(ctx, teamID)
	})
}

// ReassignMember moves a user to the team with the given name. An empty name
// clears the membership; an unknown name fails with ErrTeamNotFound instead
// of recording a dangling reference.
func (s *Service) ReassignMember(ctx context.Context, userID uint, teamName string) error {
	teamName = strings.TrimSpace(teamName)

	return s.run(ctx, func(ctx context.Context) error {
		teamID, err := s.resolveTeamID(ctx, teamName)
		if err != nil {
			return err
		}

		return s.users.SetTeam(ctx, userID, teamID)
	})
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	err := s.run(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.users.List(ctx)
		return err
	})

	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser resolves a user and attaches its team. A user referencing a team
// id that no longer resolves is reported as ErrInconsistent; the foreign-key
// policy should make that unreachable.
func (s *Service) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user *models.User

	err := s.run(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if user.TeamID == nil {
			return nil
		}

		team, err := s.teams.GetByID(ctx, *user.TeamID)
		if err != nil {
			if errors.Is(err, models.ErrTeamNotFound) {
				return fmt.Errorf("%w: user %d references team %d", models.ErrInconsistent, user.ID, *user.TeamID)
			}
			return err
		}

		user.Team = team
		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) SearchUsers(ctx context.Context, firstName string) ([]models.User, error) {
	var users []models.User

	err := s.run(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.users.SearchByFirstName(ctx, firstName)
		return err
	})

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateProfile overwrites the editable profile fields, resolving the team
// name to its id first.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	err := s.run(ctx, func(ctx context.Context) error {
		teamID, err := s.resolveTeamID(ctx, strings.TrimSpace(update.TeamName))
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"first_name": strings.TrimSpace(update.FirstName),
			"last_name":  strings.TrimSpace(update.LastName),
			"function":   strings.TrimSpace(update.Function),
			"team_id":    teamID,
		}

		return s.users.UpdateProfile(ctx, userID, updates)
	})

	if err != nil {
		return nil, err
	}

	return s.GetUser(ctx, userID)
}

func (s *Service) DeleteUserByLogin(ctx context.Context, username string) error {
	return s.run(ctx, func(ctx context.Context) error {
		return s.users.DeleteByUsername(ctx, username)
	})
}

func (s *Service) resolveTeamID(ctx context.Context, teamName string) (*uint, error) {
	if teamName == "" {
		return nil, nil
	}

	team, err := s.teams.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	return &team.ID, nil
}

// run executes op under the per-operation timeout, retrying transient store
// failures with capped backoff. Domain failures are never retried; anything
// still failing after the retry budget surfaces as ErrTransient.
func (s *Service) run(ctx context.Context, op func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewFibonacci(retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			if permanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})

	if err != nil && !permanent(err) {
		return fmt.Errorf("%w: %v", models.ErrTransient, err)
	}

	return err
}

func permanent(err error) bool {
	for _, sentinel := range []error{
		models.ErrTeamExists,
		models.ErrTeamNotFound,
		models.ErrUserNotFound,
		models.ErrDuplicateIdentity,
		models.ErrInconsistent,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
