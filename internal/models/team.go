package models

import "gorm.io/gorm"

type Team struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`

	Members []User `gorm:"foreignKey:TeamID"`
}
