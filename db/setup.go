package db

import (
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return conn, nil
}

func MigrateDatabase(conn *gorm.DB) error {
	entities := []interface{}{
		&models.Team{},
		&models.User{},
		&models.Note{},
		&models.Message{},
		&models.Link{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
