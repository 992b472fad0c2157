// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	Name         string `gorm:"type:varchar(100)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts []PostModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
