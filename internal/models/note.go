package models

import "gorm.io/gorm"

type Note struct {
	gorm.Model

	Subject string `gorm:"index"`
	Title   string `gorm:"not null"`
	Content string
}
