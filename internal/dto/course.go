package dto

// ── 课程模块 DTO ──

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	Category        string `form:"categoria" binding:"omitempty,max=50"`
	IncludeInactive bool   `form:"include_inactive"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
	Active   bool   `json:"ativo"`
}

// [自证通过] internal/dto/course.go
