package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/dto"
	"github.com/johnnymaxbr/forumhub-challenge-alura/internal/model"
)

// ── 测试辅助 ──

func setupTestReplyService() (ReplyService, *testMocks) {
	repo, mocks := newTestRepository()
	svc := NewReplyService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 测试 ──

func TestReplyService_Create_Success(t *testing.T) {
	svc, mocks := setupTestReplyService()
	author := seedUser(mocks, "Ana", "ana@example.com", "Secret123")
	seedCourse(mocks, 1, "Go")
	seedTopic(mocks, 1, "T", "m", author.ID, 1, time.Now())

	result, err := svc.Create(context.Background(), 1, &dto.CreateReplyRequest{
		Message: "Tenta reinstalar o SDK",
	}, author.ID)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Solution {
		t.Error("新回复不应默认标记为采纳答案")
	}
	if result.AuthorName != "Ana" {
		t.Errorf("期望作者名 Ana，实际=%s", result.AuthorName)
	}
	if result.TopicID != 1 {
		t.Errorf("期望 TopicID=1，实际=%d", result.TopicID)
	}
}

func TestReplyService_Create_TopicNotFound(t *testing.T) {
	svc, mocks := setupTestReplyService()
	author := seedUser(mocks, "Ana", "ana@example.com", "Secret123")

	_, err := svc.Create(context.Background(), 99, &dto.CreateReplyRequest{Message: "oi"}, author.ID)
	if !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("期望 ErrTopicNotFound，实际: %v", err)
	}
}

// ── ListByTopic 测试 ──

func TestReplyService_ListByTopic_OrderedAsc(t *testing.T) {
	svc, mocks := setupTestReplyService()
	author := seedUser(mocks, "Ana", "ana@example.com", "Secret123")
	seedCourse(mocks, 1, "Go")
	seedTopic(mocks, 1, "T", "m", author.ID, 1, time.Now())

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mocks.replies.Create(context.Background(), &model.Reply{Message: "segunda", AuthorID: author.ID, TopicID: 1, CreatedAt: base.Add(time.Hour)})
	mocks.replies.Create(context.Background(), &model.Reply{Message: "primeira", AuthorID: author.ID, TopicID: 1, CreatedAt: base})

	replies, err := svc.ListByTopic(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByTopic 应成功: %v", err)
	}
	if len(replies) != 2 {
		t.Fatalf("期望2条回复，实际=%d", len(replies))
	}
	if replies[0].Message != "primeira" {
		t.Errorf("回复应按创建时间正序: %s", replies[0].Message)
	}
}

func TestReplyService_ListByTopic_TopicNotFound(t *testing.T) {
	svc, _ := setupTestReplyService()

	_, err := svc.ListByTopic(context.Background(), 99)
	if !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("期望 ErrTopicNotFound，实际: %v", err)
	}
}

// ── MarkSolution 测试 ──

func TestReplyService_MarkSolution_ByTopicAuthor(t *testing.T) {
	svc, mocks := setupTestReplyService()
	topicAuthor := seedUser(mocks, "Ana", "ana@example.com", "Secret123")
	replyAuthor := seedUser(mocks, "Bruno", "bruno@example.com", "Secret123")
	seedCourse(mocks, 1, "Go")
	seedTopic(mocks, 1, "T", "m", topicAuthor.ID, 1, time.Now())

	reply := &model.Reply{Message: "resposta", AuthorID: replyAuthor.ID, TopicID: 1, CreatedAt: time.Now()}
	mocks.replies.Create(context.Background(), reply)

	result, err := svc.MarkSolution(context.Background(), reply.ID, topicAuthor.ID)
	if err != nil {
		t.Fatalf("话题作者采纳答案应成功: %v", err)
	}
	if !result.Solution {
		t.Error("回复应被标记为采纳答案")
	}
	if mocks.topics.topics[1].Status != model.TopicStatusSolved {
		t.Errorf("采纳答案后话题状态应为 SOLVED，实际: %s", mocks.topics.topics[1].Status)
	}
}

// 采纳权归话题作者，回复作者本人也不行
func TestReplyService_MarkSolution_Forbidden(t *testing.T) {
	svc, mocks := setupTestReplyService()
	topicAuthor := seedUser(mocks, "Ana", "ana@example.com", "Secret123")
	replyAuthor := seedUser(mocks, "Bruno", "bruno@example.com", "Secret123")
	seedCourse(mocks, 1, "Go")
	seedTopic(mocks, 1, "T", "m", topicAuthor.ID, 1, time.Now())

	reply := &model.Reply{Message: "resposta", AuthorID: replyAuthor.ID, TopicID: 1, CreatedAt: time.Now()}
	mocks.replies.Create(context.Background(), reply)

	_, err := svc.MarkSolution(context.Background(), reply.ID, replyAuthor.ID)
	if !errors.Is(err, ErrTopicForbidden) {
		t.Errorf("期望 ErrTopicForbidden，实际: %v", err)
	}
	if mocks.replies.replies[reply.ID].Solution {
		t.Error("被拒绝的操作不应修改回复")
	}
}

func TestReplyService_MarkSolution_NotFound(t *testing.T) {
	svc, mocks := setupTestReplyService()
	author := seedUser(mocks, "Ana", "ana@example.com", "Secret123")

	_, err := svc.MarkSolution(context.Background(), 99, author.ID)
	if !errors.Is(err, ErrReplyNotFound) {
		t.Errorf("期望 ErrReplyNotFound，实际: %v", err)
	}
}
