package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	FirstName    string
	LastName     string
	Function     string
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Membership is a real foreign key, not a name match. A nil TeamID
	// means the user is unassigned.
	TeamID *uint `gorm:"index"`
	Team   *Team `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
