package models

import (
	"time"
)

// BaseModel - общие поля всех таблиц.
// Идентификаторы целочисленные, auto-increment на стороне хранилища.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
