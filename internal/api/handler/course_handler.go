package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/dto"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/service"
	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器（只读）
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 获取课程列表
// GET /cursos?categoria=&include_inactive=
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var req dto.CourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}
