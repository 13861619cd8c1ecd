package repository

import (
	"context"

	"github.com/staffdesk-dev/staffdesk/internal/models"
	"gorm.io/gorm"
)

type userRepository struct {
	conn *gorm.DB
}

func NewUserRepository(conn *gorm.DB) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.conn.WithContext(ctx).Create(user).Error
	return translate(err, models.ErrUserNotFound, models.ErrDuplicateIdentity)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := r.conn.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, models.ErrUserNotFound, models.ErrDuplicateIdentity)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	if err := r.conn.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err, models.ErrUserNotFound, models.ErrDuplicateIdentity)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := r.conn.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) SearchByFirstName(ctx context.Context, firstName string) ([]models.User, error) {
	var users []models.User

	if err := r.conn.WithContext(ctx).Where("first_name = ?", firstName).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.conn.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)

	if result.Error != nil {
		return translate(result.Error, models.ErrUserNotFound, models.ErrDuplicateIdentity)
	}

	if result.RowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) SetTeam(ctx context.Context, id uint, teamID *uint) error {
	result := r.conn.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("team_id", teamID)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) DeleteByUsername(ctx context.Context, username string) error {
	result := r.conn.WithContext(ctx).Where("username = ?", username).Delete(&models.User{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
