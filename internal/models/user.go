package models

import (
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"column:password;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'worker'" json:"role"`
}

// AfterFind нормализует легаси-имена ролей на границе чтения из хранилища.
// Это единственное место нормализации: хендлеры и сервисы видят только
// канонические recruiter/worker.
func (u *User) AfterFind(tx *gorm.DB) error {
	u.Role = u.Role.Normalize()
	return nil
}
