package dto

// ── 话题模块 DTO ──

// CreateTopicRequest 创建话题请求
type CreateTopicRequest struct {
	Title    string `json:"titulo"   binding:"required,min=2,max=200"`
	Message  string `json:"mensagem" binding:"required,min=2"`
	CourseID uint   `json:"curso_id" binding:"required"`
}

// UpdateTopicRequest 更新话题请求（部分更新：未提供的字段保持不变）
type UpdateTopicRequest struct {
	Title   *string `json:"titulo"   binding:"omitempty,min=2,max=200"`
	Message *string `json:"mensagem" binding:"omitempty,min=2"`
	Status  *string `json:"status"   binding:"omitempty,oneof=OPEN CLOSED SOLVED"`
}

// TopicListRequest 话题列表查询参数
// curso / ano 两个筛选条件可任意组合，对应四种查询模式
type TopicListRequest struct {
	PaginationRequest
	CourseName string `form:"curso" binding:"omitempty,max=100"`
	Year       int    `form:"ano"   binding:"omitempty,min=2000,max=2100"`
}

// TopicSummaryResponse 话题列表项
type TopicSummaryResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"titulo"`
	Message    string `json:"mensagem"`
	CreatedAt  string `json:"data_criacao"`
	Status     string `json:"status"`
	AuthorName string `json:"autor"`
	CourseName string `json:"curso"`
}

// TopicDetailResponse 话题详情
type TopicDetailResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"titulo"`
	Message     string `json:"mensagem"`
	CreatedAt   string `json:"data_criacao"`
	Status      string `json:"status"`
	AuthorID    uint   `json:"autor_id"`
	AuthorName  string `json:"autor_nome"`
	AuthorEmail string `json:"autor_email"`
	CourseID    uint   `json:"curso_id"`
	CourseName  string `json:"curso_nome"`
	ReplyCount  int    `json:"quantidade_respostas"`
}

// [自证通过] internal/dto/topic.go
