package repository

import (
	"context"

	"github.com/staffdesk-dev/staffdesk/internal/models"
	"gorm.io/gorm"
)

type teamRepository struct {
	conn *gorm.DB
}

func NewTeamRepository(conn *gorm.DB) TeamRepository {
	return &teamRepository{conn: conn}
}

func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	err := r.conn.WithContext(ctx).Create(team).Error
	return translate(err, models.ErrTeamNotFound, models.ErrTeamExists)
}

func (r *teamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team

	if err := r.conn.WithContext(ctx).First(&team, id).Error; err != nil {
		return nil, translate(err, models.ErrTeamNotFound, models.ErrTeamExists)
	}

	return &team, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team

	if err := r.conn.WithContext(ctx).Where("name = ?", name).First(&team).Error; err != nil {
		return nil, translate(err, models.ErrTeamNotFound, models.ErrTeamExists)
	}

	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team

	if err := r.conn.WithContext(ctx).Order("name").Find(&teams).Error; err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepository) Rename(ctx context.Context, id uint, newName string) error {
	result := r.conn.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Update("name", newName)

	if result.Error != nil {
		return translate(result.Error, models.ErrTeamNotFound, models.ErrTeamExists)
	}

	if result.RowsAffected == 0 {
		return models.ErrTeamNotFound
	}

	return nil
}

// Delete clears membership and removes the team in one transaction, so a
// concurrent member listing can never observe a user pointing at a team row
// that is already gone.
func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	return r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Team{}, id)

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return models.ErrTeamNotFound
		}

		return nil
	})
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID uint) ([]models.User, error) {
	var members []models.User

	if err := r.conn.WithContext(ctx).Where("team_id = ?", teamID).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}
