package model

import "time"

// PostModel mirrors the 'posts' table. AuthorID references users.id with no
// cascade; deleting an account that still owns posts is rejected by the store.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text;not null"`
	Published bool   `gorm:"not null;default:false"`
	AuthorID  int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
